// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R4 (read).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/internal/notebook"
	"github.com/petar-djukic/nbedit/internal/render"
)

// newReadCmd creates the "read" command.
func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read INDEX",
		Short: "Read one cell's content",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}

	cmd.Flags().String("to-file", "", "Write the content to this file instead of stdout")
	cmd.Flags().Bool("include-output", false, "Include the cell's outputs")
	cmd.Flags().Bool("numbered", false, "Prefix source lines with line numbers")
	cmd.Flags().Bool("highlight", false, "Syntax-highlight the source")

	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	editor, err := openEditor()
	if err != nil {
		return err
	}

	includeOutput, _ := cmd.Flags().GetBool("include-output")
	content, err := editor.Read(index, includeOutput)
	if err != nil {
		return err
	}

	numbered, _ := cmd.Flags().GetBool("numbered")
	highlight, _ := cmd.Flags().GetBool("highlight")

	if toFile, _ := cmd.Flags().GetString("to-file"); toFile != "" {
		// Files get the plain text; escape sequences belong on terminals.
		text := render.CellText(content, render.ReadOptions{Numbered: numbered})
		if err := notebook.WriteFile(toFile, []byte(text)); err != nil {
			return fmt.Errorf("writing to file: %w", err)
		}
		fmt.Printf("Cell %d content written to '%s'\n", index, toFile)
		return nil
	}

	fmt.Print(render.ReadView(content, render.ReadOptions{
		Numbered:  numbered,
		Highlight: highlight,
	}))
	return nil
}
