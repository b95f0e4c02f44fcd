// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMessage(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		files      []string
		wantPrefix string
	}{
		{
			name:       "patch action",
			action:     "patch lines in cell 2",
			files:      []string{"analysis.ipynb"},
			wantPrefix: "fix:",
		},
		{
			name:       "markdown action",
			action:     "add markdown cell at index 0",
			files:      []string{"notes.ipynb"},
			wantPrefix: "docs:",
		},
		{
			name:       "clear action",
			action:     "clear outputs of 3 cells",
			files:      []string{"analysis.ipynb"},
			wantPrefix: "chore:",
		},
		{
			name:       "add action",
			action:     "add code cell at index 4",
			files:      []string{"analysis.ipynb"},
			wantPrefix: "feat:",
		},
		{
			name:       "generic action defaults to chore",
			action:     "update cell 1",
			files:      []string{"analysis.ipynb"},
			wantPrefix: "chore:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GenerateMessage(tt.action, tt.files)
			assert.True(t, strings.HasPrefix(msg, tt.wantPrefix), "message %q", msg)
			assert.Contains(t, msg, authorTrailer)
			assert.LessOrEqual(t, len(firstLineOf(msg)), maxSubjectLength)
		})
	}
}

func TestGenerateMessage_LongActionTruncated(t *testing.T) {
	long := "Replaced lines 1-40 in cell 7 of a notebook whose very long name pushes the subject well past its limit"
	msg := GenerateMessage(long, []string{"long.ipynb"})

	firstLine := firstLineOf(msg)
	assert.Len(t, firstLine, maxSubjectLength)
	assert.True(t, strings.HasSuffix(firstLine, "..."))
}

func TestGenerateMessage_IncludesFiles(t *testing.T) {
	msg := GenerateMessage("Deleted cell 2", []string{"a.ipynb", "sub/b.ipynb"})
	assert.Contains(t, msg, "Modified files:")
	assert.Contains(t, msg, "- a.ipynb")
	assert.Contains(t, msg, "- sub/b.ipynb")
}

func TestGenerateMessage_EmptyAction(t *testing.T) {
	msg := GenerateMessage("  ", nil)
	assert.Equal(t, "chore: edit notebook\n\n"+authorTrailer, msg)
}

func TestInferCommitType(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"patch cell source", "fix"},
		{"fix the import", "fix"},
		{"add markdown header", "docs"},
		{"clear all outputs", "chore"},
		{"remove cell 3", "chore"},
		{"create notebook skeleton", "feat"},
		{"insert lines after line 2", "feat"},
		{"update cell 1", "chore"},
		{"address the feedback", "chore"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCommitType(tt.action))
		})
	}
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("add a cell", "add"))
	assert.True(t, containsWord("re-add the cell", "add"))
	assert.False(t, containsWord("address the issue", "add"))
	assert.False(t, containsWord("", "add"))
}

func TestBuildSubject_StripsTrailingPeriod(t *testing.T) {
	assert.Equal(t, "chore: cleared outputs", buildSubject("chore", "Cleared outputs."))
}

func firstLineOf(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
