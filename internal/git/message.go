// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-git-integration R3 (commit message generation).
package git

import (
	"fmt"
	"strings"
	"unicode"
)

const maxSubjectLength = 72

// commitTypes maps action keywords to conventional commit types. Earlier
// entries win; "feat" is the fallback for additive actions.
var commitTypes = []struct {
	keywords []string
	prefix   string
}{
	{[]string{"patch", "fix", "repair", "resolve", "correct"}, "fix"},
	{[]string{"markdown", "doc", "readme", "documentation"}, "docs"},
	{[]string{"clear", "delete", "remove", "cleanup"}, "chore"},
	{[]string{"add", "create", "insert", "new"}, "feat"},
}

// GenerateMessage creates a conventional commit message from the action
// description and the list of modified files.
func GenerateMessage(action string, modifiedFiles []string) string {
	commitType := inferCommitType(action)
	subject := buildSubject(commitType, action)
	body := buildBody(modifiedFiles)

	msg := subject
	if body != "" {
		msg += "\n\n" + body
	}
	msg += "\n\n" + authorTrailer

	return msg
}

// inferCommitType determines the conventional commit type from action keywords.
func inferCommitType(action string) string {
	lower := strings.ToLower(action)
	for _, ct := range commitTypes {
		for _, kw := range ct.keywords {
			if containsWord(lower, kw) {
				return ct.prefix
			}
		}
	}
	return "chore"
}

// containsWord checks whether text contains keyword as a whole word
// (bounded by non-letter characters or string edges).
func containsWord(text, keyword string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], keyword)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(keyword)
		leftOK := start == 0 || !unicode.IsLetter(rune(text[start-1]))
		rightOK := end == len(text) || !unicode.IsLetter(rune(text[end]))
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

// buildSubject creates the first line of the commit message.
// Format: "type: summary" (max 72 chars).
func buildSubject(commitType, action string) string {
	summary := strings.TrimSpace(action)
	if summary == "" {
		summary = "edit notebook"
	}
	summary = strings.ToLower(summary[:1]) + summary[1:]
	summary = strings.TrimRight(summary, ".")

	subject := fmt.Sprintf("%s: %s", commitType, summary)
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}

	return subject
}

// buildBody creates the commit body listing modified files.
func buildBody(modifiedFiles []string) string {
	if len(modifiedFiles) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("Modified files:\n")
	for _, f := range modifiedFiles {
		buf.WriteString(fmt.Sprintf("- %s\n", f))
	}
	return buf.String()
}
