// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package notebook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFileYieldsSkeleton(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.ipynb"))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Cells)
	assert.Equal(t, 4, doc.NBFormat)

	// Loading never creates the file.
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_LoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "not a valid notebook")
}

func TestStore_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nb.ipynb")
	store := NewStore(path)

	doc := Skeleton()
	doc.AddCell(-1, TypeCode, "s = 'héllo'\n")
	require.NoError(t, store.Save(doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	// 1-space indent, trailing newline, UTF-8 verbatim, array sources.
	assert.True(t, strings.HasPrefix(text, "{\n \"cells\""))
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.Contains(t, text, "héllo")
	assert.NotContains(t, text, `\u00e9`)
	assert.Contains(t, text, `"s = 'héllo'\n"`)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nb.ipynb")
	store := NewStore(path)

	doc := Skeleton()
	doc.AddCell(-1, TypeCode, "x = 1\ny = 2\n")
	doc.AddCell(-1, TypeMarkdown, "# Title")
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Cells, 2)
	assert.Equal(t, "x = 1\ny = 2\n", loaded.Cells[0].Source.String())
	assert.Equal(t, "# Title", loaded.Cells[1].Source.String())
	assert.Equal(t, doc.Cells[0].ID, loaded.Cells[0].ID)
	assert.Equal(t, "Python 3", loaded.Kernel())
	assert.True(t, loaded.Validate().Valid())
}

func TestStore_SavePreservesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nb.ipynb")
	store := NewStore(path)
	require.NoError(t, store.Save(Skeleton()))
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, store.Save(Skeleton()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "nb.ipynb"))
	require.NoError(t, store.Save(Skeleton()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "nb.ipynb", entries[0].Name())
}
