// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R6 (unified diff).
package source

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff (3 context lines) between the current
// fragments and candidate text. Fragments carry their own terminators into
// the comparison, so a change in nothing but a trailing newline is still
// reported. Identical inputs yield the empty string.
func Unified(current []string, candidate, fromLabel, toLabel string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        current,
		B:        Split(candidate),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("computing diff: %w", err)
	}
	// A terminator-less final fragment leaves the diff without a trailing
	// newline; add one so the output stays line-structured.
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
