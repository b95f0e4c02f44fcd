// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-source-engine R4 (line-range patching);
//
//	docs/ARCHITECTURE § Source Engine.
package source

import (
	"github.com/petar-djukic/nbedit/pkg/types"
)

// Apply validates req against the current fragments and returns the patched
// sequence. Pure: the inputs are never modified and the result shares no
// backing array with them.
func Apply(current []string, req types.PatchRequest) ([]string, *types.PatchSummary, error) {
	if req.Mode == types.ModeInsertAfter {
		return insertAfter(current, req)
	}
	return replaceRange(current, req)
}

// replaceRange swaps the 1-based inclusive range [start, end] for the
// request's text. Empty text deletes the range.
func replaceRange(current []string, req types.PatchRequest) ([]string, *types.PatchSummary, error) {
	total := len(current)
	start, end := req.Range.Start, req.Range.End
	if start < 1 || end > total || start > end {
		return nil, nil, &types.RangeError{Start: start, End: end, Total: total}
	}

	repl := Split(req.Text)
	// A replacement spliced mid-document must end with a terminator, or the
	// first surviving line after it would merge into the replacement.
	if len(repl) > 0 && end < total && !hasTerminator(repl[len(repl)-1]) {
		repl[len(repl)-1] += Terminator(current)
	}
	if req.PreserveIndent && len(repl) > 0 {
		repl = reconcile(repl, current[start-1])
	}

	patched := make([]string, 0, start-1+len(repl)+total-end)
	patched = append(patched, current[:start-1]...)
	patched = append(patched, repl...)
	patched = append(patched, current[end:]...)

	summary := &types.PatchSummary{
		Mode:  types.ModeReplace,
		Range: types.LineRange{Start: start, End: end},
		Lines: len(repl),
	}
	return patched, summary, nil
}

// insertAfter splices the request's text after line Range.Start. Point 0
// inserts at the top; a point beyond the last line clamps to appending.
// The inserted block always ends with a terminator so the first original
// line after it stays a separate line.
func insertAfter(current []string, req types.PatchRequest) ([]string, *types.PatchSummary, error) {
	total := len(current)
	point := req.Range.Start
	if point < 0 {
		point = 0
	}
	if point > total {
		point = total
	}

	repl := Split(req.Text)
	if len(repl) > 0 && !hasTerminator(repl[len(repl)-1]) {
		repl[len(repl)-1] += Terminator(current)
	}
	if req.PreserveIndent && len(repl) > 0 && point > 0 {
		repl = reconcile(repl, current[point-1])
	}

	patched := make([]string, 0, total+len(repl))
	patched = append(patched, current[:point]...)
	patched = append(patched, repl...)
	patched = append(patched, current[point:]...)

	summary := &types.PatchSummary{
		Mode:  types.ModeInsertAfter,
		Range: types.LineRange{Start: point, End: point},
		Lines: len(repl),
	}
	return patched, summary, nil
}
