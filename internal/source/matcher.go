// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R5.4 (no-match diagnostics).
package source

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// ClosestLine finds the corpus line most similar to query, for diagnosing a
// search that found nothing. Returns the zero Match and 0 when the corpus
// has no non-blank text.
func ClosestLine(corpus []types.TextUnit, query string) (types.Match, float64) {
	var best types.Match
	var bestSim float64
	for _, unit := range corpus {
		for i, frag := range Split(unit.Text) {
			line := trimTerminator(frag)
			if isBlank(line) {
				continue
			}
			sim := similarity(line, query)
			if sim > bestSim {
				bestSim = sim
				best = types.Match{
					Cell:     unit.Cell,
					Output:   unit.Output,
					CellType: unit.CellType,
					Line:     i + 1,
					Text:     line,
				}
			}
		}
	}
	return best, bestSim
}

// similarity computes the Levenshtein-based similarity ratio between two
// strings using the go-diff library. Returns a value between 0.0 and 1.0.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
