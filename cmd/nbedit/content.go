// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R2 (content sourcing, index parsing).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// addContentFlags registers the content flags shared by the editing
// commands: exactly one of --content and --from-file must be given.
func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("content", "c", "", "Content string")
	cmd.Flags().StringP("from-file", "f", "", "Read content from this file")
	cmd.MarkFlagsMutuallyExclusive("content", "from-file")
	cmd.MarkFlagsOneRequired("content", "from-file")
}

// getContent resolves the content flags: file content when --from-file was
// given, the inline string otherwise.
func getContent(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("from-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}
	content, _ := cmd.Flags().GetString("content")
	return content, nil
}

// parseIndexArg parses the positional cell index argument.
func parseIndexArg(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid cell index %q", arg)
	}
	return index, nil
}
