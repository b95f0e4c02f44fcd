// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R1 (LineRange, PatchRequest);
//
//	prd002-source-engine R4 (RangeError).
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// EditMode selects how a patch applies its replacement text.
type EditMode int

const (
	ModeReplace     EditMode = iota // Replace the line range with the new text
	ModeInsertAfter                 // Insert the new text after the start line
)

func (m EditMode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeInsertAfter:
		return "insert-after"
	default:
		return "unknown"
	}
}

// LineRange is a 1-based inclusive range of lines within a cell's source.
// Start == End addresses a single line.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange parses a range argument of the form "5-10" or "5".
// A single value means a one-line range.
func ParseLineRange(s string) (LineRange, error) {
	first, second, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return LineRange{}, fmt.Errorf("invalid line range %q: use START-END or START", s)
	}
	if !found {
		return LineRange{Start: start, End: start}, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return LineRange{}, fmt.Errorf("invalid line range %q: use START-END or START", s)
	}
	return LineRange{Start: start, End: end}, nil
}

// PatchRequest describes a single line-level edit of one cell's source.
type PatchRequest struct {
	Range          LineRange // Lines to replace, or the anchor line for inserts
	Mode           EditMode  // Replace or insert-after
	Text           string    // Replacement or inserted content
	PreserveIndent bool      // Shift the new text to match surrounding indentation
}

// PatchSummary reports what a successful patch did. For insert-after mode,
// Range.Start holds the clamped anchor line actually used.
type PatchSummary struct {
	Mode  EditMode
	Range LineRange
	Lines int // Number of lines in the applied text
}

// RangeError reports a line range that does not address the patched source.
type RangeError struct {
	Start int // Requested start line (1-based)
	End   int // Requested end line (1-based, inclusive)
	Total int // Lines in the source being patched
}

func (e RangeError) Error() string {
	switch {
	case e.Start < 1:
		return fmt.Sprintf("start line must be >= 1 (got %d)", e.Start)
	case e.End > e.Total:
		return fmt.Sprintf("end line %d exceeds cell length (%d lines)", e.End, e.Total)
	default:
		return fmt.Sprintf("start line %d is after end line %d", e.Start, e.End)
	}
}
