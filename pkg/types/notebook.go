// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-notebook-model R4 (summaries, info, validation);
//
//	prd003-notebook-model R5 (CellError, OutputError).
package types

import (
	"fmt"
	"strings"
)

// CellSummary is the machine-readable digest of one cell, as emitted by
// the JSON cell listing.
type CellSummary struct {
	Index        int    `json:"index"`
	Type         string `json:"type"`
	Lines        int    `json:"lines"`
	HasOutput    bool   `json:"has_output"`
	PreviewFirst string `json:"preview_first,omitempty"` // First source line, capped at 80 chars
	PreviewLast  string `json:"preview_last,omitempty"`  // Last source line, capped at 80 chars
	HasImage     bool   `json:"has_image,omitempty"`
}

// NotebookSummary is the machine-readable digest of a whole notebook.
type NotebookSummary struct {
	Notebook   string        `json:"notebook"`
	TotalCells int           `json:"total_cells"`
	Cells      []CellSummary `json:"cells"`
}

// CellPreview carries the data behind one entry of the human cell listing:
// terminator-less source lines and a short probe of the textual output.
type CellPreview struct {
	Index       int
	Type        string
	SourceLines []string // Right-trimmed source lines
	HasOutputs  bool
	OutputLines []string // Up to two non-blank output lines
	HasImage    bool
}

// CellContent is a cell's full content as returned by a read operation.
type CellContent struct {
	Index           int
	Type            string
	Language        string // Lexer name for syntax highlighting
	Source          string // Flat source text
	LineCount       int
	HasOutputsBlock bool   // True when outputs were requested and the cell carries them
	OutputsText     string // Rendered output blocks; meaningful only with HasOutputsBlock
}

// NotebookInfo summarizes notebook-level metadata and statistics.
type NotebookInfo struct {
	Path          string
	NBFormat      int
	NBFormatMinor int
	Kernel        string         // Kernel display name, "Unknown" when absent
	Cells         int            // Total cell count
	TypeCounts    map[string]int // Cell count per cell type
	WithOutputs   int            // Cells carrying at least one output
	SourceLines   int            // Source lines across all cells
}

// ValidationReport lists structural problems found in a notebook. Errors
// make the notebook unusable; warnings are tolerated deviations.
type ValidationReport struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the notebook has no errors. Warnings do not make
// a notebook invalid.
func (r ValidationReport) Valid() bool { return len(r.Errors) == 0 }

// CellError reports a cell index that does not address the notebook.
type CellError struct {
	Index int // Requested cell index (0-based)
	Total int // Cells in the notebook
}

func (e CellError) Error() string {
	if e.Total == 0 {
		return fmt.Sprintf("cell index %d out of range: notebook has no cells", e.Index)
	}
	return fmt.Sprintf("cell index %d out of range: notebook has %d cells", e.Index, e.Total)
}

// OutputError reports an output lookup that failed: either the index does
// not address the cell's outputs, or the output holds no binary payload.
type OutputError struct {
	Cell  int      // Owning cell index (0-based)
	Index int      // Requested output index (0-based)
	Total int      // Outputs of the cell
	Keys  []string // Data keys present, when the failure is a missing payload
}

func (e OutputError) Error() string {
	if e.Index < 0 || e.Index >= e.Total {
		return fmt.Sprintf("output index %d out of range: cell %d has %d outputs", e.Index, e.Cell, e.Total)
	}
	if len(e.Keys) == 0 {
		return fmt.Sprintf("no image or PDF data in output %d of cell %d", e.Index, e.Cell)
	}
	return fmt.Sprintf("no image or PDF data in output %d of cell %d (available: %s)",
		e.Index, e.Cell, strings.Join(e.Keys, ", "))
}
