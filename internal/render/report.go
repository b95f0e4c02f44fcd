// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-rendering R5, R6 (validation and info views).
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// Validation renders the structure report: errors, warnings, and a
// one-line verdict.
func Validation(report types.ValidationReport, st Styles) string {
	var buf strings.Builder

	if len(report.Errors) > 0 {
		buf.WriteString("ERRORS:\n")
		for _, e := range report.Errors {
			fmt.Fprintf(&buf, "  %s\n", st.Error.Render("✗ "+e))
		}
	}
	if len(report.Warnings) > 0 {
		buf.WriteString("WARNINGS:\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&buf, "  %s\n", st.Warning.Render("⚠ "+w))
		}
	}

	switch {
	case len(report.Errors) == 0 && len(report.Warnings) == 0:
		buf.WriteString(st.OK.Render("✓ Notebook is valid") + "\n")
	case len(report.Errors) == 0:
		buf.WriteString(st.OK.Render(fmt.Sprintf("✓ Notebook is valid (%d warnings)", len(report.Warnings))) + "\n")
	default:
		buf.WriteString(st.Error.Render(fmt.Sprintf("✗ Notebook has %d errors", len(report.Errors))) + "\n")
	}
	return buf.String()
}

// Info renders notebook metadata and statistics in a fixed field order.
func Info(info types.NotebookInfo) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Notebook: %s\n", info.Path)
	fmt.Fprintf(&buf, "Format: nbformat %d.%d\n", info.NBFormat, info.NBFormatMinor)
	fmt.Fprintf(&buf, "Kernel: %s\n", info.Kernel)
	fmt.Fprintf(&buf, "Cells: %d total\n", info.Cells)

	// Code and markdown counts always show; other types follow sorted.
	fmt.Fprintf(&buf, "  - Code: %d\n", info.TypeCounts["code"])
	fmt.Fprintf(&buf, "  - Markdown: %d\n", info.TypeCounts["markdown"])
	var rest []string
	for t := range info.TypeCounts {
		if t != "code" && t != "markdown" {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	for _, t := range rest {
		fmt.Fprintf(&buf, "  - %s: %d\n", capitalize(t), info.TypeCounts[t])
	}

	fmt.Fprintf(&buf, "  - With outputs: %d\n", info.WithOutputs)
	fmt.Fprintf(&buf, "Total source lines: %d\n", info.SourceLines)
	return buf.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
