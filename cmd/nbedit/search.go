// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R5 (search).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/internal/render"
)

// newSearchCmd creates the "search" command.
func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search cell sources and outputs",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().Bool("regex", false, "Treat the query as a regular expression")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	editor, err := openEditor()
	if err != nil {
		return err
	}

	useRegex, _ := cmd.Flags().GetBool("regex")
	matches, closest, err := editor.Search(args[0], useRegex)
	if err != nil {
		return err
	}

	fmt.Print(render.SearchReport(matches, closest))
	return nil
}
