// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/nbedit/pkg/types"
)

func TestList(t *testing.T) {
	previews := []types.CellPreview{
		{
			Index:       0,
			Type:        "code",
			SourceLines: []string{"import os", "print(os.getcwd())"},
			HasOutputs:  true,
			OutputLines: []string{"/home/user", "done"},
		},
		{
			Index:       1,
			Type:        "markdown",
			SourceLines: []string{"# Notes"},
		},
	}

	out := List(previews, 2, 0)

	assert.Contains(t, out, "Total cells: 2\n")
	assert.Contains(t, out, "[0] CODE:\n    | import os\n    | print(os.getcwd())\n")
	assert.Contains(t, out, "    [OUTPUTS DETAILS]:\n    > /home/user\n    > done\n    > ...\n")
	assert.Contains(t, out, "[1] MARKDOWN:\n    | # Notes\n")
	assert.NotContains(t, out, "limit reached")
}

func TestList_LongSourceCompressed(t *testing.T) {
	previews := []types.CellPreview{{
		Index:       0,
		Type:        "code",
		SourceLines: []string{"l1", "l2", "l3", "l4", "l5", "l6"},
	}}

	out := List(previews, 1, 0)

	assert.Contains(t, out, "    | l1\n    | l2\n    | ...\n    | l5\n    | l6\n")
	assert.NotContains(t, out, "| l3")
}

func TestList_OutputMarkers(t *testing.T) {
	t.Run("image only", func(t *testing.T) {
		out := List([]types.CellPreview{{
			Type: "code", SourceLines: []string{"plot()"}, HasOutputs: true, HasImage: true,
		}}, 1, 0)
		assert.Contains(t, out, "    > [IMAGE DETECTED]\n")
		assert.NotContains(t, out, "[Data present]")
	})

	t.Run("opaque data", func(t *testing.T) {
		out := List([]types.CellPreview{{
			Type: "code", SourceLines: []string{"x"}, HasOutputs: true,
		}}, 1, 0)
		assert.Contains(t, out, "    > [Data present]\n")
	})
}

func TestList_LimitMarker(t *testing.T) {
	previews := []types.CellPreview{{Type: "code", SourceLines: []string{"x"}}}

	// The marker shows whenever a limit was in play, even at exact count.
	assert.Contains(t, List(previews, 1, 1), "... (limit reached)\n")
	assert.Contains(t, List(previews, 5, 1), "... (limit reached)\n")
	assert.NotContains(t, List(previews, 1, 0), "limit reached")
}

func TestSummaryJSON(t *testing.T) {
	summary := types.NotebookSummary{
		Notebook:   "nb.ipynb",
		TotalCells: 1,
		Cells: []types.CellSummary{{
			Index:        0,
			Type:         "code",
			Lines:        1,
			PreviewFirst: "if a < b: print('<br>')",
			PreviewLast:  "if a < b: print('<br>')",
		}},
	}

	out, err := SummaryJSON(summary)
	require.NoError(t, err)

	assert.Contains(t, out, `"notebook": "nb.ipynb"`)
	assert.Contains(t, out, `"total_cells": 1`)
	// No HTML escaping of <, >, &.
	assert.Contains(t, out, "if a < b: print('<br>')")
	assert.NotContains(t, out, `\u003c`)
}
