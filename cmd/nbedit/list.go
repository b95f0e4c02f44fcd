// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R3 (list).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/internal/render"
)

// newListCmd creates the "list" command.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cells with source and output previews",
		RunE:  runList,
	}

	cmd.Flags().Int("limit", 0, "Maximum cells to list (0 = all)")
	cmd.Flags().Bool("json", false, "Emit the machine-readable JSON listing")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	editor, err := openEditor()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	if asJSON {
		summary, err := editor.Summary(limit)
		if err != nil {
			return err
		}
		out, err := render.SummaryJSON(summary)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	previews, total, err := editor.Previews(limit)
	if err != nil {
		return err
	}
	fmt.Print(render.List(previews, total, limit))
	return nil
}
