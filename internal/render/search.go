// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-rendering R3 (search report).
package render

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/nbedit/pkg/types"
)

const matchLineWidth = 80

// SearchReport renders matches grouped by unit in corpus order, then a
// closing line naming the matched cells, or a no-match message with an
// optional closest-line suggestion.
func SearchReport(matches []types.Match, closest *types.Match) string {
	var buf strings.Builder

	if len(matches) == 0 {
		buf.WriteString("No matches found.\n")
		if closest != nil {
			fmt.Fprintf(&buf, "Closest line (Cell [%d], line %d): %s\n",
				closest.Cell, closest.Line, capLine(closest.Text))
		}
		return buf.String()
	}

	var matchedCells []int
	seen := map[int]bool{}
	lastUnit := struct{ cell, output int }{-1, -2}

	for _, m := range matches {
		if m.Cell != lastUnit.cell || m.Output != lastUnit.output {
			lastUnit.cell, lastUnit.output = m.Cell, m.Output
			if m.IsSource() {
				fmt.Fprintf(&buf, "Match in Cell [%d] SOURCE (%s):\n", m.Cell, m.CellType)
			} else {
				fmt.Fprintf(&buf, "Match in Cell [%d] OUTPUT %d:\n", m.Cell, m.Output)
			}
		}
		// Unit-level matches have no line to show; the header alone reports them.
		if m.Line > 0 {
			if m.IsSource() {
				fmt.Fprintf(&buf, "  > %s\n", capLine(m.Text))
			} else {
				fmt.Fprintf(&buf, "  >> %s\n", capLine(m.Text))
			}
		}
		if !seen[m.Cell] {
			seen[m.Cell] = true
			matchedCells = append(matchedCells, m.Cell)
		}
	}

	fmt.Fprintf(&buf, "Found matches in %d cells: %v\n", len(matchedCells), matchedCells)
	return buf.String()
}

// capLine strips surrounding whitespace and caps the line for terminal
// reporting.
func capLine(line string) string {
	line = strings.TrimSpace(line)
	if len(line) > matchLineWidth {
		return line[:matchLineWidth]
	}
	return line
}
