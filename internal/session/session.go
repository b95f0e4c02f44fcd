// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package session wires the notebook store, the source engine, and git
// integration into one editing session per invocation. The session owns
// the policy that a code cell whose source changes loses its captured
// outputs, and the save/commit sequencing around every mutation.
// Implements: prd005-session R1, R2;
//
//	docs/ARCHITECTURE § Session Orchestrator.
package session

import (
	"fmt"

	gitpkg "github.com/petar-djukic/nbedit/internal/git"
	"github.com/petar-djukic/nbedit/internal/notebook"
	"github.com/petar-djukic/nbedit/internal/source"
	"github.com/petar-djukic/nbedit/pkg/types"
)

// suggestionThreshold is the minimum similarity for offering a closest-line
// hint after a search that found nothing.
const suggestionThreshold = 0.5

// Deps holds injected dependencies for a session.
type Deps struct {
	Store *notebook.Store
	Git   *gitpkg.Repo // nil disables git integration
}

// Session is one load-operate-save pass over a notebook.
type Session struct {
	deps Deps
	doc  *notebook.Document
}

// New loads the notebook (or a skeleton when the file does not exist) and
// returns a ready session.
func New(deps Deps) (*Session, error) {
	doc, err := deps.Store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{deps: deps, doc: doc}, nil
}

// Path returns the notebook file path.
func (s *Session) Path() string {
	return s.deps.Store.Path()
}

// persist saves the document and, when git integration is active, commits
// the notebook file with a message generated from the action. A commit
// failure does not roll back the save; it surfaces as a warning error the
// caller may report.
func (s *Session) persist(action string) error {
	if err := s.deps.Store.Save(s.doc); err != nil {
		return err
	}
	if s.deps.Git != nil {
		if err := s.deps.Git.AutoCommit([]string{s.deps.Store.Path()}, action); err != nil {
			return fmt.Errorf("saved, but auto-commit failed: %w", err)
		}
	}
	return nil
}

// prepareMutation runs the pre-mutation git steps: a dirty worktree is
// committed separately so the notebook edit gets its own commit.
func (s *Session) prepareMutation() error {
	if s.deps.Git == nil {
		return nil
	}
	return s.deps.Git.HandleDirty()
}

// Summary builds the machine-readable cell listing.
func (s *Session) Summary(limit int) types.NotebookSummary {
	return s.doc.Summary(s.Path(), limit)
}

// Previews builds the human cell listing data and the total cell count.
func (s *Session) Previews(limit int) ([]types.CellPreview, int) {
	return s.doc.Previews(limit)
}

// Read returns one cell's content, optionally with formatted outputs.
func (s *Session) Read(index int, includeOutput bool) (*types.CellContent, error) {
	return s.doc.ReadCell(index, includeOutput)
}

// Search scans cell sources and output text for the query. When nothing
// matches, the most similar corpus line is returned as a suggestion (nil
// when the corpus has nothing close).
func (s *Session) Search(query string, useRegex bool) ([]types.Match, *types.Match, error) {
	corpus := s.doc.Corpus()
	matches, err := source.Search(corpus, query, useRegex)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) > 0 {
		return matches, nil, nil
	}

	closest, sim := source.ClosestLine(corpus, query)
	if sim < suggestionThreshold {
		return nil, nil, nil
	}
	return nil, &closest, nil
}

// Diff renders a unified diff between a cell's source and candidate text.
// Read-only: nothing is saved.
func (s *Session) Diff(index int, candidate string) (string, error) {
	cell, err := s.doc.Cell(index)
	if err != nil {
		return "", err
	}
	return source.Unified(cell.Source, candidate,
		fmt.Sprintf("Cell %d (Current)", index), "New Content")
}

// Update replaces a cell's whole source and saves. Code cells lose their
// outputs unless keepOutputs is set.
func (s *Session) Update(index int, text string, keepOutputs bool) error {
	if _, err := s.doc.Cell(index); err != nil {
		return err
	}
	if err := s.prepareMutation(); err != nil {
		return err
	}
	if err := s.doc.UpdateCell(index, text, keepOutputs); err != nil {
		return err
	}
	return s.persist(fmt.Sprintf("update cell %d", index))
}

// Add inserts a new cell and saves. Returns the final index and whether
// the cell was appended.
func (s *Session) Add(index int, cellType, text string) (int, bool, error) {
	if err := s.prepareMutation(); err != nil {
		return 0, false, err
	}
	at, appended := s.doc.AddCell(index, cellType, text)
	if err := s.persist(fmt.Sprintf("add %s cell at index %d", cellType, at)); err != nil {
		return at, appended, err
	}
	return at, appended, nil
}

// Delete removes a cell and saves, reporting the removed cell's type.
func (s *Session) Delete(index int) (string, error) {
	if _, err := s.doc.Cell(index); err != nil {
		return "", err
	}
	if err := s.prepareMutation(); err != nil {
		return "", err
	}
	cellType, err := s.doc.DeleteCell(index)
	if err != nil {
		return "", err
	}
	if err := s.persist(fmt.Sprintf("delete cell %d", index)); err != nil {
		return cellType, err
	}
	return cellType, nil
}

// Patch applies a line-range edit to a cell's source via the patch engine
// and saves. A code cell's outputs are always cleared: the source changed,
// so any captured output is stale.
func (s *Session) Patch(index int, req types.PatchRequest) (*types.PatchSummary, error) {
	cell, err := s.doc.Cell(index)
	if err != nil {
		return nil, err
	}

	patched, summary, err := source.Apply(cell.Source, req)
	if err != nil {
		return nil, err
	}

	if err := s.prepareMutation(); err != nil {
		return nil, err
	}
	cell.Source = patched
	if cell.Type == notebook.TypeCode {
		cell.ResetExecution()
	}
	if err := s.persist(fmt.Sprintf("patch lines in cell %d", index)); err != nil {
		return summary, err
	}
	return summary, nil
}

// ClearOutputs resets execution state of code cells and saves when at
// least one cell was cleared. Returns the cleared indices and any
// skip warnings.
func (s *Session) ClearOutputs(indices []int) ([]int, []string, error) {
	if err := s.prepareMutation(); err != nil {
		return nil, nil, err
	}
	cleared, warnings := s.doc.ClearOutputs(indices)
	if len(cleared) == 0 {
		return cleared, warnings, nil
	}
	if err := s.persist(fmt.Sprintf("clear outputs of %d cells", len(cleared))); err != nil {
		return cleared, warnings, err
	}
	return cleared, warnings, nil
}

// SaveOutput decodes the binary payload of one output and writes it to
// path. The notebook itself is not modified. Returns the mime key saved.
func (s *Session) SaveOutput(cellIndex, outputIndex int, path string) (string, error) {
	key, data, err := s.doc.ExtractBinary(cellIndex, outputIndex)
	if err != nil {
		return "", err
	}
	if err := notebook.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return key, nil
}

// Create persists the current document, which for a previously missing
// file is the skeleton notebook.
func (s *Session) Create() error {
	if err := s.prepareMutation(); err != nil {
		return err
	}
	return s.persist("create notebook")
}

// Info gathers notebook metadata and statistics.
func (s *Session) Info() types.NotebookInfo {
	return s.doc.Info(s.Path())
}

// Validate checks the notebook structure.
func (s *Session) Validate() types.ValidationReport {
	return s.doc.Validate()
}
