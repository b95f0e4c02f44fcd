// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R6 (update, add, delete).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/pkg/nbedit"
)

// newUpdateCmd creates the "update" command.
func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update INDEX",
		Short: "Replace a cell's whole source",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	addContentFlags(cmd)
	cmd.Flags().Bool("no-clear-output", false, "Keep the cell's captured outputs")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	keepOutputs, _ := cmd.Flags().GetBool("no-clear-output")
	if err := editor.Update(index, content, keepOutputs); err != nil {
		return err
	}

	fmt.Printf("Updated cell %d.\n", index)
	return nil
}

// newAddCmd creates the "add" command.
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new cell",
		RunE:  runAdd,
	}

	addContentFlags(cmd)
	cmd.Flags().Int("index", -1, "Insertion index (-1 appends)")
	cmd.Flags().String("type", "code", "Cell type (code or markdown)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	content, err := getContent(cmd)
	if err != nil {
		return err
	}

	cellType, _ := cmd.Flags().GetString("type")
	if cellType != "code" && cellType != "markdown" {
		return fmt.Errorf("invalid cell type %q: use code or markdown", cellType)
	}

	editor, err := openEditor()
	if err != nil {
		return err
	}

	index, _ := cmd.Flags().GetInt("index")
	result, err := editor.Add(nbedit.AddRequest{Index: index, Type: cellType, Text: content})
	if err != nil {
		return err
	}

	if result.Appended {
		fmt.Printf("Added new %s cell at the end (index %d).\n", cellType, result.Index)
	} else {
		fmt.Printf("Inserted new %s cell at index %d.\n", cellType, result.Index)
	}
	return nil
}

// newDeleteCmd creates the "delete" command.
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			editor, err := openEditor()
			if err != nil {
				return err
			}

			cellType, err := editor.Delete(index)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted cell %d (%s).\n", index, cellType)
			return nil
		},
	}
}
