// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R5 (corpus search).
package source

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// Search scans corpus units in order for query, reporting each matching line.
// Literal queries are substring tests; regex queries compile once with
// multiline semantics. A unit with empty text never matches, and a query that
// fails to compile yields a PatternError.
func Search(corpus []types.TextUnit, query string, useRegex bool) ([]types.Match, error) {
	var re *regexp.Regexp
	if useRegex {
		compiled, err := regexp.Compile("(?m)" + query)
		if err != nil {
			return nil, &types.PatternError{Query: query, Err: err}
		}
		re = compiled
	}

	var matches []types.Match
	for _, unit := range corpus {
		// The unit-level test is cheap containment; only units that pass it
		// are split into lines.
		if unit.Text == "" || !matchText(unit.Text, query, re) {
			continue
		}
		lineMatched := false
		for i, frag := range Split(unit.Text) {
			line := trimTerminator(frag)
			if matchText(line, query, re) {
				lineMatched = true
				matches = append(matches, types.Match{
					Cell:     unit.Cell,
					Output:   unit.Output,
					CellType: unit.CellType,
					Line:     i + 1,
					Text:     line,
				})
			}
		}
		// A pattern can span line boundaries (regex with \n): the unit
		// matched even though no single line did. Report the unit itself.
		if !lineMatched {
			matches = append(matches, types.Match{
				Cell:     unit.Cell,
				Output:   unit.Output,
				CellType: unit.CellType,
			})
		}
	}
	return matches, nil
}

// matchText applies the query to text: regex when re is set, substring
// containment otherwise.
func matchText(text, query string, re *regexp.Regexp) bool {
	if re != nil {
		return re.MatchString(text)
	}
	return strings.Contains(text, query)
}
