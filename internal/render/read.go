// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-rendering R2 (cell content, numbering, highlighting).
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/petar-djukic/nbedit/internal/source"
	"github.com/petar-djukic/nbedit/pkg/types"
)

// ReadOptions controls how a cell's content is rendered.
type ReadOptions struct {
	Numbered  bool // Prefix right-aligned 1-based line numbers
	Highlight bool // Syntax-highlight the source via chroma
}

// CellText assembles the text a read operation produces: the (possibly
// numbered, possibly highlighted) source, then the formatted outputs when
// they were requested.
func CellText(content *types.CellContent, opts ReadOptions) string {
	text := content.Source
	if opts.Highlight {
		text = Highlight(text, content.Language)
	}
	if opts.Numbered {
		text = Numbered(text)
	}
	if content.HasOutputsBlock {
		text += "\n\n" + content.OutputsText
	}
	return text
}

// ReadView wraps the cell text in the terminal header and footer.
func ReadView(content *types.CellContent, opts ReadOptions) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- Cell %d (%s) [%d lines] ---\n", content.Index, content.Type, content.LineCount)
	buf.WriteString(CellText(content, opts))
	buf.WriteString("\n---------------------------\n")
	return buf.String()
}

// Numbered prefixes each line with its right-aligned 1-based number.
func Numbered(text string) string {
	frags := source.Split(text)
	width := len(fmt.Sprint(len(frags)))

	var buf strings.Builder
	for i, frag := range frags {
		fmt.Fprintf(&buf, "%*d: %s", width, i+1, frag)
	}
	return buf.String()
}

// Highlight runs chroma over the text with the terminal16m formatter,
// falling back to the plain text on any failure (unknown language,
// tokenize or format errors).
func Highlight(text, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		return text
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return buf.String()
}
