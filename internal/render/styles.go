// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render produces the terminal text for every nbedit command:
// cell listings, cell content with numbering and highlighting, search
// reports, colorized diffs, and validation/info views.
// Implements: prd007-rendering R1-R6;
//
//	docs/ARCHITECTURE § Renderer.
package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across views. The zero value
// renders everything plain; New(false) enables color.
type Styles struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Hunk    lipgloss.Style
	Header  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	OK      lipgloss.Style
}

// New builds the style set. With noColor set, every style is a no-op so
// output stays plain (NO_COLOR environments, piped output).
func New(noColor bool) Styles {
	if noColor {
		return Styles{}
	}
	return Styles{
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Hunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Header:  lipgloss.NewStyle().Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
