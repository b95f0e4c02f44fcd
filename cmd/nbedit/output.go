// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R8 (clear-output, save-output).
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSaveOutputCmd creates the "save-output" command.
func newSaveOutputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save-output INDEX",
		Short: "Extract a binary output (image, PDF) to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSaveOutput,
	}

	cmd.Flags().Int("output-index", 0, "Index of the output within the cell")
	cmd.Flags().String("to-file", "", "Destination file (required)")
	cmd.MarkFlagRequired("to-file")

	return cmd
}

func runSaveOutput(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}

	editor, err := openEditor()
	if err != nil {
		return err
	}

	outputIndex, _ := cmd.Flags().GetInt("output-index")
	toFile, _ := cmd.Flags().GetString("to-file")

	key, err := editor.SaveOutput(index, outputIndex, toFile)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s data from Cell %d, Output %d to '%s'.\n", key, index, outputIndex, toFile)
	return nil
}

// newClearOutputCmd creates the "clear-output" command.
func newClearOutputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-output",
		Short: "Clear captured outputs of code cells",
		RunE:  runClearOutput,
	}

	cmd.Flags().Bool("all", false, "Clear outputs of all code cells")
	cmd.Flags().IntSlice("cells", nil, "Cell indices to clear")
	cmd.MarkFlagsMutuallyExclusive("all", "cells")
	cmd.MarkFlagsOneRequired("all", "cells")

	return cmd
}

func runClearOutput(cmd *cobra.Command, args []string) error {
	editor, err := openEditor()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	var indices []int
	if !all {
		indices, _ = cmd.Flags().GetIntSlice("cells")
	}

	cleared, warnings, err := editor.ClearOutputs(indices)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if all {
		fmt.Printf("Cleared outputs of %d code cells.\n", len(cleared))
		return nil
	}
	for _, i := range cleared {
		fmt.Printf("Cleared output of cell %d.\n", i)
	}
	return nil
}
