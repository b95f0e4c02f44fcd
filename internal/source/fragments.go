// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package source implements line-level editing of cell sources: splitting
// text into terminator-keeping fragments, patching line ranges, reconciling
// indentation, diffing, and searching.
// Implements: prd002-source-engine R1, R2;
//
//	docs/ARCHITECTURE § Source Engine.
package source

import "strings"

// Split breaks text into line fragments, each keeping its terminator. Only
// the last fragment may lack one (text that does not end in a newline).
// Empty text yields nil. Join is the exact inverse for every input.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	frags := strings.SplitAfter(text, "\n")
	// SplitAfter leaves a trailing "" when text ends with the separator.
	if frags[len(frags)-1] == "" {
		frags = frags[:len(frags)-1]
	}
	return frags
}

// Join concatenates fragments back into flat text.
func Join(frags []string) string {
	return strings.Join(frags, "")
}

// hasTerminator reports whether the fragment ends with a line terminator.
func hasTerminator(frag string) bool {
	return strings.HasSuffix(frag, "\n")
}

// trimTerminator strips one trailing terminator, handling both "\n" and
// "\r\n". The rest of the fragment is untouched.
func trimTerminator(frag string) string {
	frag = strings.TrimSuffix(frag, "\n")
	return strings.TrimSuffix(frag, "\r")
}

// Terminator reports the line terminator convention of the given fragments:
// that of the first terminated fragment, or "\n" when none is terminated.
func Terminator(frags []string) string {
	for _, f := range frags {
		if hasTerminator(f) {
			if strings.HasSuffix(f, "\r\n") {
				return "\r\n"
			}
			return "\n"
		}
	}
	return "\n"
}

// isBlank reports whether the fragment holds only whitespace (or nothing).
func isBlank(frag string) bool {
	return strings.TrimSpace(frag) == ""
}

// indentWidth counts the leading spaces and tabs of a fragment. A blank
// line's terminator is not indentation.
func indentWidth(frag string) int {
	return len(frag) - len(strings.TrimLeft(frag, " \t"))
}
