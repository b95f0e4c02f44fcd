// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R3 (indentation reconciliation).
package source

import "strings"

// reconcile shifts replacement fragments so their first non-blank line lines
// up with the reference line's indentation. Blank fragments pass through
// untouched. When the replacement is entirely blank, or already aligned, the
// input is returned as-is.
func reconcile(frags []string, reference string) []string {
	donor := firstNonBlank(frags)
	if donor < 0 {
		return frags
	}
	delta := indentWidth(reference) - indentWidth(frags[donor])
	if delta == 0 {
		return frags
	}
	shifted := make([]string, len(frags))
	for i, f := range frags {
		if isBlank(f) {
			shifted[i] = f
			continue
		}
		shifted[i] = shiftIndent(f, delta)
	}
	return shifted
}

// firstNonBlank returns the index of the first non-blank fragment, or -1.
func firstNonBlank(frags []string) int {
	for i, f := range frags {
		if !isBlank(f) {
			return i
		}
	}
	return -1
}

// shiftIndent prepends delta spaces (delta > 0) or strips up to -delta
// leading whitespace characters (delta < 0, clamped to what the line has).
func shiftIndent(frag string, delta int) string {
	if delta > 0 {
		return strings.Repeat(" ", delta) + frag
	}
	strip := -delta
	if w := indentWidth(frag); strip > w {
		strip = w
	}
	return frag[strip:]
}
