// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ValidRepo(t *testing.T) {
	dir := initTestRepo(t)

	repo, err := Open(Config{WorkDir: dir, AutoCommit: true, DirtyCommit: true})
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpen_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(Config{WorkDir: dir})
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestOpen_DetectsEnclosingRepo(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "notebooks")
	require.NoError(t, os.Mkdir(sub, 0o755))

	repo, err := Open(Config{WorkDir: sub})
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestIsDirty_CleanRepo(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestIsDirty_WithUnstagedChanges(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	// Modify a tracked file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# modified\n"), 0o644))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestIsDirty_WithUntrackedFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	// Create a new untracked file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.ipynb"), []byte("{}\n"), 0o644))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestHandleDirty_CleanRepoIsNoOp(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: true})
	require.NoError(t, err)

	require.NoError(t, repo.HandleDirty())

	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, "initial commit", msg)
}

func TestHandleDirty_CommitsDirtyFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: true})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# changed\n"), 0o644))

	require.NoError(t, repo.HandleDirty())

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, dirtyCommitMsg, msg)
}

func TestHandleDirty_RefusesWhenDirtyCommitDisabled(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, DirtyCommit: false})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# changed\n"), 0o644))

	assert.ErrorIs(t, repo.HandleDirty(), ErrDirtyWorkTree)
}

func TestAutoCommit(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: true})
	require.NoError(t, err)

	path := filepath.Join(dir, "analysis.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	require.NoError(t, repo.AutoCommit([]string{path}, "Updated cell 3 in analysis.ipynb"))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Contains(t, msg, "chore: updated cell 3 in analysis.ipynb")
	assert.Contains(t, msg, "Modified files:\n- analysis.ipynb")
	assert.Contains(t, msg, authorTrailer)
}

func TestAutoCommit_DisabledIsNoOp(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir, AutoCommit: false})
	require.NoError(t, err)

	path := filepath.Join(dir, "analysis.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	require.NoError(t, repo.AutoCommit([]string{path}, "Updated cell 0"))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestAutoCommit_RelativePathFromSubdir(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "notebooks")
	require.NoError(t, os.Mkdir(sub, 0o755))

	path := filepath.Join(sub, "deep.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	repo, err := Open(Config{WorkDir: sub, AutoCommit: true})
	require.NoError(t, err)

	require.NoError(t, repo.AutoCommit([]string{path}, "Added new code cell"))

	msg, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Contains(t, msg, "- notebooks/deep.ipynb")
}

// initTestRepo creates a temp dir with a git repo, an initial commit, and
// returns the directory path.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# test repo\n"), 0o644))

	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}
