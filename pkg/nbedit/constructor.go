// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-editor-interface R4 (construction and validation).
package nbedit

import (
	"fmt"
	"os"
	"path/filepath"

	gitpkg "github.com/petar-djukic/nbedit/internal/git"
	"github.com/petar-djukic/nbedit/internal/notebook"
	"github.com/petar-djukic/nbedit/internal/session"
	"github.com/petar-djukic/nbedit/pkg/types"
)

// New validates the config, opens the enclosing git repository when
// requested, and returns a ready Editor. The notebook file itself is
// loaded lazily per operation; a missing file behaves as a skeleton.
func New(cfg Config) (Editor, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var repo *gitpkg.Repo
	if cfg.Git {
		r, err := gitpkg.Open(gitpkg.Config{
			WorkDir:     filepath.Dir(cfg.Path),
			AutoCommit:  true,
			DirtyCommit: cfg.DirtyCommit,
		})
		if err != nil {
			return nil, err
		}
		repo = r
	}

	return &editorAdapter{
		store: notebook.NewStore(cfg.Path),
		git:   repo,
	}, nil
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("Path is required")
	}
	dir := filepath.Dir(cfg.Path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q does not exist", dir)
	}
	return nil
}

// editorAdapter adapts internal/session.Session to the public Editor
// interface. Each operation runs in a fresh session so the document on
// disk is re-read per call.
type editorAdapter struct {
	store *notebook.Store
	git   *gitpkg.Repo
}

func (a *editorAdapter) session() (*session.Session, error) {
	return session.New(session.Deps{Store: a.store, Git: a.git})
}

func (a *editorAdapter) Path() string {
	return a.store.Path()
}

func (a *editorAdapter) Summary(limit int) (types.NotebookSummary, error) {
	s, err := a.session()
	if err != nil {
		return types.NotebookSummary{}, err
	}
	return s.Summary(limit), nil
}

func (a *editorAdapter) Previews(limit int) ([]types.CellPreview, int, error) {
	s, err := a.session()
	if err != nil {
		return nil, 0, err
	}
	previews, total := s.Previews(limit)
	return previews, total, nil
}

func (a *editorAdapter) Read(index int, includeOutput bool) (*types.CellContent, error) {
	s, err := a.session()
	if err != nil {
		return nil, err
	}
	return s.Read(index, includeOutput)
}

func (a *editorAdapter) Search(query string, useRegex bool) ([]types.Match, *types.Match, error) {
	s, err := a.session()
	if err != nil {
		return nil, nil, err
	}
	return s.Search(query, useRegex)
}

func (a *editorAdapter) Update(index int, text string, keepOutputs bool) error {
	s, err := a.session()
	if err != nil {
		return err
	}
	return s.Update(index, text, keepOutputs)
}

func (a *editorAdapter) Add(req AddRequest) (AddResult, error) {
	s, err := a.session()
	if err != nil {
		return AddResult{}, err
	}
	at, appended, err := s.Add(req.Index, req.Type, req.Text)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{Index: at, Appended: appended}, nil
}

func (a *editorAdapter) Delete(index int) (string, error) {
	s, err := a.session()
	if err != nil {
		return "", err
	}
	return s.Delete(index)
}

func (a *editorAdapter) Diff(index int, candidate string) (string, error) {
	s, err := a.session()
	if err != nil {
		return "", err
	}
	return s.Diff(index, candidate)
}

func (a *editorAdapter) Create() error {
	s, err := a.session()
	if err != nil {
		return err
	}
	return s.Create()
}

func (a *editorAdapter) SaveOutput(cellIndex, outputIndex int, path string) (string, error) {
	s, err := a.session()
	if err != nil {
		return "", err
	}
	return s.SaveOutput(cellIndex, outputIndex, path)
}

func (a *editorAdapter) ClearOutputs(indices []int) ([]int, []string, error) {
	s, err := a.session()
	if err != nil {
		return nil, nil, err
	}
	return s.ClearOutputs(indices)
}

func (a *editorAdapter) Patch(index int, req types.PatchRequest) (*types.PatchSummary, error) {
	s, err := a.session()
	if err != nil {
		return nil, err
	}
	return s.Patch(index, req)
}

func (a *editorAdapter) Info() (types.NotebookInfo, error) {
	s, err := a.session()
	if err != nil {
		return types.NotebookInfo{}, err
	}
	return s.Info(), nil
}

func (a *editorAdapter) Validate() (types.ValidationReport, error) {
	s, err := a.session()
	if err != nil {
		return types.ValidationReport{}, err
	}
	return s.Validate(), nil
}
