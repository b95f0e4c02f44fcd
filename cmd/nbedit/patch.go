// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R7 (patch, diff).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/internal/render"
	"github.com/petar-djukic/nbedit/pkg/types"
)

// newPatchCmd creates the "patch" command.
func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch INDEX",
		Short: "Edit specific lines of a cell",
		Long:  "Patch replaces a 1-based inclusive line range of a cell's source with new content, or inserts the content after a line with --insert. Indentation of the new block is aligned to the surrounding code unless --no-preserve-indent is given.",
		Args:  cobra.ExactArgs(1),
		RunE:  runPatch,
	}

	addContentFlags(cmd)
	cmd.Flags().String("lines", "", "Line range to replace, e.g. 5-10 or 5 (required)")
	cmd.MarkFlagRequired("lines")
	cmd.Flags().Bool("insert", false, "Insert after the start line instead of replacing")
	cmd.Flags().Bool("no-preserve-indent", false, "Do not re-indent the new content")

	return cmd
}

func runPatch(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	lines, _ := cmd.Flags().GetString("lines")
	lineRange, err := types.ParseLineRange(lines)
	if err != nil {
		return err
	}

	content, err := getContent(cmd)
	if err != nil {
		return err
	}

	editor, err := openEditor()
	if err != nil {
		return err
	}

	insert, _ := cmd.Flags().GetBool("insert")
	noPreserve, _ := cmd.Flags().GetBool("no-preserve-indent")

	mode := types.ModeReplace
	if insert {
		mode = types.ModeInsertAfter
	}

	summary, err := editor.Patch(index, types.PatchRequest{
		Range:          lineRange,
		Mode:           mode,
		Text:           content,
		PreserveIndent: !noPreserve,
	})
	if err != nil {
		return err
	}

	if summary.Mode == types.ModeInsertAfter {
		fmt.Printf("Inserted %d lines after line %d in cell %d.\n", summary.Lines, summary.Range.Start, index)
	} else {
		fmt.Printf("Replaced lines %d-%d in cell %d.\n", summary.Range.Start, summary.Range.End, index)
	}
	return nil
}

// newDiffCmd creates the "diff" command.
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff INDEX",
		Short: "Preview a cell update as a unified diff",
		Args:  cobra.ExactArgs(1),
		RunE:  runDiff,
	}

	addContentFlags(cmd)

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	content, err := getContent(cmd)
	if err != nil {
		return err
	}

	editor, err := openEditor()
	if err != nil {
		return err
	}

	diff, err := editor.Diff(index, content)
	if err != nil {
		return err
	}

	fmt.Print(render.Diff(diff, styles()))
	return nil
}
