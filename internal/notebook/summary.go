// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-notebook-model R4 (summaries, previews, statistics).
package notebook

import (
	"strings"

	"github.com/petar-djukic/nbedit/internal/source"
	"github.com/petar-djukic/nbedit/pkg/types"
)

const previewWidth = 80

// truncate caps a line at previewWidth characters.
func truncate(line string) string {
	if len(line) > previewWidth {
		return line[:previewWidth]
	}
	return line
}

// rstrippedLines returns the cell's source lines without terminators or
// trailing whitespace.
func rstrippedLines(text MultilineText) []string {
	lines := make([]string, len(text))
	for i, frag := range text {
		lines[i] = strings.TrimRight(frag, " \t\r\n")
	}
	return lines
}

// Summary builds the machine-readable digest emitted by list --json.
// A limit above zero caps how many cells are described.
func (d *Document) Summary(path string, limit int) types.NotebookSummary {
	summary := types.NotebookSummary{
		Notebook:   path,
		TotalCells: len(d.Cells),
		Cells:      []types.CellSummary{},
	}

	for i := range d.Cells {
		if limit > 0 && i >= limit {
			break
		}
		cell := &d.Cells[i]
		lines := source.Split(cell.Source.String())

		cs := types.CellSummary{
			Index:     i,
			Type:      cell.Type,
			Lines:     len(lines),
			HasOutput: cell.HasOutputs(),
		}
		if len(lines) > 0 {
			cs.PreviewFirst = truncate(trimTerminator(lines[0]))
			cs.PreviewLast = truncate(trimTerminator(lines[len(lines)-1]))
		}
		for _, out := range cell.Outputs {
			if out.HasImage() {
				cs.HasImage = true
				break
			}
		}
		summary.Cells = append(summary.Cells, cs)
	}
	return summary
}

func trimTerminator(frag string) string {
	frag = strings.TrimSuffix(frag, "\n")
	return strings.TrimSuffix(frag, "\r")
}

// Previews builds the per-cell data behind the human cell listing: the
// rstripped source lines, up to two non-blank output text lines, and
// whether any output carries an image.
func (d *Document) Previews(limit int) ([]types.CellPreview, int) {
	var previews []types.CellPreview
	for i := range d.Cells {
		if limit > 0 && i >= limit {
			break
		}
		cell := &d.Cells[i]

		p := types.CellPreview{
			Index:       i,
			Type:        cell.Type,
			SourceLines: rstrippedLines(cell.Source),
			HasOutputs:  cell.HasOutputs(),
		}
		for _, out := range cell.Outputs {
			if out.HasImage() {
				p.HasImage = true
			}
			if len(p.OutputLines) >= 2 {
				continue
			}
			for _, frag := range source.Split(out.Text()) {
				if strings.TrimSpace(frag) == "" || len(p.OutputLines) >= 2 {
					continue
				}
				p.OutputLines = append(p.OutputLines, truncate(strings.TrimRight(frag, " \t\r\n")))
			}
		}
		previews = append(previews, p)
	}
	return previews, len(d.Cells)
}

// Info gathers notebook-level metadata and statistics.
func (d *Document) Info(path string) types.NotebookInfo {
	info := types.NotebookInfo{
		Path:          path,
		NBFormat:      d.NBFormat,
		NBFormatMinor: d.NBFormatMinor,
		Kernel:        d.Kernel(),
		Cells:         len(d.Cells),
		TypeCounts:    map[string]int{},
	}

	for i := range d.Cells {
		cell := &d.Cells[i]
		info.TypeCounts[cell.Type]++
		if cell.HasOutputs() {
			info.WithOutputs++
		}
		info.SourceLines += len(source.Split(cell.Source.String()))
	}
	return info
}

// ReadCell assembles a cell's content for the read operation: its flat
// source, line count, and optionally its formatted outputs.
func (d *Document) ReadCell(index int, includeOutput bool) (*types.CellContent, error) {
	cell, err := d.Cell(index)
	if err != nil {
		return nil, err
	}

	text := cell.Source.String()
	content := &types.CellContent{
		Index:     index,
		Type:      cell.Type,
		Language:  d.Language(),
		Source:    text,
		LineCount: len(source.Split(text)),
	}
	if cell.Type == TypeMarkdown {
		content.Language = "markdown"
	}
	if includeOutput && cell.Outputs != nil {
		content.HasOutputsBlock = true
		content.OutputsText = FormatOutputs(cell.Outputs)
	}
	return content, nil
}
