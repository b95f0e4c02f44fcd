// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-rendering R1 (cell listing).
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// List renders the human cell listing: a header with the total count, then
// per cell its source preview (first two and last two lines when long) and
// a short probe of its outputs.
func List(previews []types.CellPreview, total, limit int) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Total cells: %d\n", total)

	for _, p := range previews {
		fmt.Fprintf(&buf, "[%d] %s:\n", p.Index, strings.ToUpper(p.Type))

		for _, line := range previewLines(p.SourceLines) {
			fmt.Fprintf(&buf, "    | %s\n", line)
		}

		if p.HasOutputs {
			buf.WriteString("    [OUTPUTS DETAILS]:\n")
			for _, line := range p.OutputLines {
				fmt.Fprintf(&buf, "    > %s\n", line)
			}
			if len(p.OutputLines) >= 2 {
				buf.WriteString("    > ...\n")
			}
			if p.HasImage {
				buf.WriteString("    > [IMAGE DETECTED]\n")
			}
			if len(p.OutputLines) == 0 && !p.HasImage {
				buf.WriteString("    > [Data present]\n")
			}
		}
		buf.WriteString("\n")
	}

	if limit > 0 && total >= limit {
		buf.WriteString("... (limit reached)\n")
	}
	return buf.String()
}

// previewLines compresses a long source to its first two and last two
// lines around an ellipsis marker. Four lines or fewer show in full.
func previewLines(lines []string) []string {
	if len(lines) <= 4 {
		return lines
	}
	preview := make([]string, 0, 5)
	preview = append(preview, lines[:2]...)
	preview = append(preview, "...")
	preview = append(preview, lines[len(lines)-2:]...)
	return preview
}

// SummaryJSON renders the machine-readable listing with 2-space indent
// and without HTML escaping.
func SummaryJSON(summary types.NotebookSummary) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary); err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}
	return buf.String(), nil
}
