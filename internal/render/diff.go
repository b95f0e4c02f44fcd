// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-rendering R4 (diff colorization).
package render

import (
	"strings"

	"github.com/petar-djukic/nbedit/internal/source"
)

// Diff colorizes a unified diff by line prefix: additions green, removals
// red, hunk headers cyan, file headers bold. An empty diff renders as a
// no-differences message.
func Diff(diff string, st Styles) string {
	if diff == "" {
		return "No differences found.\n"
	}

	var buf strings.Builder
	for _, frag := range source.Split(diff) {
		line := strings.TrimRight(frag, "\n")
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			buf.WriteString(st.Header.Render(line))
		case strings.HasPrefix(line, "@@"):
			buf.WriteString(st.Hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			buf.WriteString(st.Added.Render(line))
		case strings.HasPrefix(line, "-"):
			buf.WriteString(st.Removed.Render(line))
		default:
			buf.WriteString(line)
		}
		buf.WriteString("\n")
	}
	return buf.String()
}
