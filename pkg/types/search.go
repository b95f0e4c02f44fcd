// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R5 (TextUnit, Match, PatternError).
package types

import "fmt"

// TextUnit is one searchable piece of a notebook: a cell's source, or the
// textual form of one of its outputs. Units are searched in notebook order,
// each cell's source before its outputs.
type TextUnit struct {
	Cell     int    // Owning cell index (0-based)
	Output   int    // Output index within the cell; -1 for the source itself
	CellType string // Owning cell's type, for match reporting
	Text     string // Flat text of the unit
}

// Match is one matching line found by a search. A Line of 0 marks a
// unit-level match: the pattern matched only across line boundaries, so no
// single line can be shown.
type Match struct {
	Cell     int    // Owning cell index (0-based)
	Output   int    // Output index; -1 when the match is in the source
	CellType string // Owning cell's type
	Line     int    // 1-based line number within the unit; 0 for a unit-level match
	Text     string // The matched line, without its terminator
}

// IsSource reports whether the match is in a cell source rather than an
// output.
func (m Match) IsSource() bool { return m.Output < 0 }

// PatternError reports a regex query that failed to compile.
type PatternError struct {
	Query string
	Err   error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Query, e.Err)
}

func (e PatternError) Unwrap() error { return e.Err }
