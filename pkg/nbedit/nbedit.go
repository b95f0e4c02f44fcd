// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package nbedit defines the public interface for nbedit, a programmatic
// Jupyter notebook editor for agents and scripts.
// Implements: prd001-editor-interface R1, R2, R3;
//
//	docs/ARCHITECTURE § Editor Interface.
package nbedit

import (
	"errors"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// ErrInvalidConfig wraps configuration validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures an Editor instance.
type Config struct {
	Path        string // Notebook file path (required; need not exist yet)
	Git         bool   // Auto-commit the notebook after successful mutations
	DirtyCommit bool   // Commit a dirty worktree separately before editing (default true with Git)
}

// AddRequest describes a new cell.
type AddRequest struct {
	Index int    // Insertion position; -1 appends
	Type  string // "code" or "markdown"
	Text  string // Cell content
}

// AddResult reports where a new cell landed.
type AddResult struct {
	Index    int  // Final 0-based index of the new cell
	Appended bool // True when the cell went to the end
}

// Editor edits one notebook document. Mutating operations persist
// atomically; read operations never write.
//
// Implements: prd001-editor-interface R2.1-R2.15.
type Editor interface {
	// Path returns the notebook file path.
	Path() string

	// Summary builds the machine-readable cell listing. A limit above
	// zero caps how many cells are described.
	Summary(limit int) (types.NotebookSummary, error)

	// Previews builds the human cell listing data and total cell count.
	Previews(limit int) ([]types.CellPreview, int, error)

	// Read returns one cell's content, optionally with formatted outputs.
	Read(index int, includeOutput bool) (*types.CellContent, error)

	// Search scans cell sources and output text. When nothing matches,
	// the closest corpus line may be returned as a suggestion.
	Search(query string, useRegex bool) ([]types.Match, *types.Match, error)

	// Update replaces a cell's whole source.
	Update(index int, text string, keepOutputs bool) error

	// Add inserts a new cell.
	Add(req AddRequest) (AddResult, error)

	// Delete removes a cell, reporting its type.
	Delete(index int) (string, error)

	// Diff renders a unified diff between a cell's source and candidate
	// text without modifying anything.
	Diff(index int, candidate string) (string, error)

	// Create persists the current document, writing the skeleton for a
	// notebook that does not exist yet.
	Create() error

	// SaveOutput decodes one output's binary payload into a file,
	// returning the mime key saved.
	SaveOutput(cellIndex, outputIndex int, path string) (string, error)

	// ClearOutputs resets execution state of code cells. Nil clears all;
	// explicit out-of-range or non-code indices are skipped with warnings.
	ClearOutputs(indices []int) (cleared []int, warnings []string, err error)

	// Patch applies a line-range edit to a cell's source.
	Patch(index int, req types.PatchRequest) (*types.PatchSummary, error)

	// Info gathers notebook metadata and statistics.
	Info() (types.NotebookInfo, error)

	// Validate checks the notebook structure.
	Validate() (types.ValidationReport, error)
}
