// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package notebook

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/nbedit/internal/source"
	"github.com/petar-djukic/nbedit/pkg/types"
)

func TestMultilineText_UnmarshalString(t *testing.T) {
	var m MultilineText
	require.NoError(t, json.Unmarshal([]byte(`"a\nb\nc"`), &m))
	assert.Equal(t, MultilineText{"a\n", "b\n", "c"}, m)
}

func TestMultilineText_UnmarshalArray(t *testing.T) {
	var m MultilineText
	require.NoError(t, json.Unmarshal([]byte(`["a\n","b\n"]`), &m))
	assert.Equal(t, MultilineText{"a\n", "b\n"}, m)
}

func TestMultilineText_UnmarshalArrayNotOnLineBoundaries(t *testing.T) {
	// nbformat permits array elements that break mid-line; loading must
	// re-establish one fragment per line.
	var m MultilineText
	require.NoError(t, json.Unmarshal([]byte(`["hel","lo\n","world\n"]`), &m))
	assert.Equal(t, MultilineText{"hello\n", "world\n"}, m)
	assert.Equal(t, "hello\nworld\n", m.String())
}

func TestCell_RaggedSourceAddressesRealLines(t *testing.T) {
	var cell Cell
	require.NoError(t, json.Unmarshal([]byte(`{
		"cell_type": "code",
		"source": ["hel","lo\n","world\n"]
	}`), &cell))

	patched, _, err := source.Apply(cell.Source, types.PatchRequest{
		Range: types.LineRange{Start: 1, End: 1},
		Mode:  types.ModeReplace,
		Text:  "X\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "X\nworld\n", source.Join(patched))
}

func TestMultilineText_MarshalAlwaysArray(t *testing.T) {
	out, err := json.Marshal(MultilineText{"a\n", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a\n","b"]`, string(out))

	out, err = json.Marshal(MultilineText(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestMultilineText_RoundTripThroughString(t *testing.T) {
	texts := []string{"", "x = 1", "x = 1\n", "a\n\nb\n", "π = 3\n"}
	for _, text := range texts {
		var m MultilineText
		encoded, err := json.Marshal(text)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(encoded, &m))
		assert.Equal(t, text, m.String())
	}
}

func TestNewCell(t *testing.T) {
	code := NewCell(TypeCode, "x = 1\n")
	assert.Equal(t, TypeCode, code.Type)
	assert.Len(t, code.ID, 8)
	assert.Equal(t, MultilineText{"x = 1\n"}, code.Source)
	assert.Equal(t, json.RawMessage("null"), code.ExecutionCount)
	assert.NotNil(t, code.Outputs)
	assert.Empty(t, code.Outputs)

	md := NewCell(TypeMarkdown, "# Title\n")
	assert.Nil(t, md.ExecutionCount)
	assert.Nil(t, md.Outputs)
}

func TestCell_MarshalCode(t *testing.T) {
	cell := NewCell(TypeCode, "x = 1\n")
	cell.ID = "abcd1234"

	out, err := json.Marshal(cell)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cell_type": "code",
		"execution_count": null,
		"id": "abcd1234",
		"metadata": {},
		"outputs": [],
		"source": ["x = 1\n"]
	}`, string(out))
}

func TestCell_MarshalMarkdownOmitsExecutionFields(t *testing.T) {
	cell := NewCell(TypeMarkdown, "# Title\n")
	cell.ID = "abcd1234"

	out, err := json.Marshal(cell)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cell_type": "markdown",
		"id": "abcd1234",
		"metadata": {},
		"source": ["# Title\n"]
	}`, string(out))
}

func TestCell_UnmarshalStringSource(t *testing.T) {
	var cell Cell
	require.NoError(t, json.Unmarshal([]byte(`{
		"cell_type": "code",
		"source": "a\nb\n",
		"execution_count": 3,
		"metadata": {"collapsed": true},
		"outputs": []
	}`), &cell))

	assert.Equal(t, MultilineText{"a\n", "b\n"}, cell.Source)
	assert.Equal(t, json.RawMessage("3"), cell.ExecutionCount)
	assert.NotNil(t, cell.Outputs)
	assert.JSONEq(t, `{"collapsed": true}`, string(cell.Metadata))
}

func TestDocument_RoundTripPreservesContent(t *testing.T) {
	raw := []byte(`{
		"cells": [
			{"cell_type": "code", "execution_count": 2, "metadata": {}, "outputs": [
				{"output_type": "stream", "name": "stdout", "text": ["hi\n"]}
			], "source": ["print('hi')\n"]},
			{"cell_type": "markdown", "metadata": {"tags": ["intro"]}, "source": "# Intro"}
		],
		"metadata": {"kernelspec": {"display_name": "Python 3", "language": "python", "name": "python3"}},
		"nbformat": 4,
		"nbformat_minor": 5
	}`)

	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var doc2 Document
	require.NoError(t, json.Unmarshal(out, &doc2))

	require.Len(t, doc2.Cells, 2)
	assert.Equal(t, "print('hi')\n", doc2.Cells[0].Source.String())
	assert.Equal(t, json.RawMessage("2"), doc2.Cells[0].ExecutionCount)
	assert.Equal(t, "hi\n", doc2.Cells[0].Outputs[0].Text())
	assert.Equal(t, "# Intro", doc2.Cells[1].Source.String())
	assert.JSONEq(t, `{"tags": ["intro"]}`, string(doc2.Cells[1].Metadata))
	assert.Equal(t, 4, doc2.NBFormat)
	assert.Equal(t, 5, doc2.NBFormatMinor)
	assert.Equal(t, "Python 3", doc2.Kernel())
}

func TestDocument_MarshalNoHTMLEscape(t *testing.T) {
	doc := Skeleton()
	doc.AddCell(-1, TypeCode, "if a < b and c > d:\n    pass\n")

	// The store encodes with SetEscapeHTML(false); mirror that here.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(doc))
	assert.Contains(t, buf.String(), "a < b and c > d")
	assert.NotContains(t, buf.String(), `\u003c`)
}

func TestSkeleton(t *testing.T) {
	doc := Skeleton()
	assert.Empty(t, doc.Cells)
	assert.Equal(t, 4, doc.NBFormat)
	assert.Equal(t, 5, doc.NBFormatMinor)
	assert.Equal(t, "Python 3", doc.Kernel())
	assert.Equal(t, "python", doc.Language())
	assert.True(t, doc.Validate().Valid())
}

func TestDocument_CellBounds(t *testing.T) {
	doc := Skeleton()
	doc.AddCell(-1, TypeCode, "x\n")

	_, err := doc.Cell(0)
	assert.NoError(t, err)

	_, err = doc.Cell(1)
	assert.Error(t, err)
	_, err = doc.Cell(-1)
	assert.Error(t, err)
}
