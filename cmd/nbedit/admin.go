// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-cli R9 (create, info, validate).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/nbedit/internal/render"
)

// newCreateCmd creates the "create" command.
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new empty notebook",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := openEditor()
			if err != nil {
				return err
			}
			if err := editor.Create(); err != nil {
				return err
			}
			fmt.Printf("Created new notebook at %s\n", editor.Path())
			return nil
		},
	}
}

// newInfoCmd creates the "info" command.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show notebook metadata and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := openEditor()
			if err != nil {
				return err
			}
			info, err := editor.Info()
			if err != nil {
				return err
			}
			fmt.Print(render.Info(info))
			return nil
		},
	}
}

// newValidateCmd creates the "validate" command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the notebook structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := openEditor()
			if err != nil {
				return err
			}
			report, err := editor.Validate()
			if err != nil {
				return err
			}

			fmt.Print(render.Validation(report, styles()))
			if !report.Valid() {
				// Errors already printed; make the exit code reflect them.
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return fmt.Errorf("notebook has %d errors", len(report.Errors))
			}
			return nil
		},
	}
}
