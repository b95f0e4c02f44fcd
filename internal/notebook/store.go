// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-persistence R1, R2 (load, skeleton, atomic save).
package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists one notebook file. All writes go through an atomic
// temp-and-rename so a crashed save never leaves a half-written notebook.
type Store struct {
	path string
}

// NewStore returns a store for the notebook at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the notebook file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the notebook. A missing file yields an in-memory skeleton
// document, not an error; the skeleton is only persisted by an explicit
// save. Unreadable or malformed JSON is an error.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Skeleton(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading notebook: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%s is not a valid notebook: %w", s.path, err)
	}
	return doc, nil
}

// Save writes the document in the canonical on-disk shape: 1-space indent,
// no HTML escaping, UTF-8 verbatim, trailing newline, sources as fragment
// arrays.
func (s *Store) Save(doc *Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", " ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding notebook: %w", err)
	}

	if err := atomicWrite(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("saving notebook: %w", err)
	}
	return nil
}

// atomicWrite writes data to path via a temp file in the same directory,
// preserving the permissions of an existing file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".nbedit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// WriteFile writes arbitrary bytes (extracted binary outputs, read
// --to-file content) with the same atomic discipline as notebook saves.
func WriteFile(path string, data []byte) error {
	return atomicWrite(path, data)
}
