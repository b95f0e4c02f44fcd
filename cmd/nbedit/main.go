// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command nbedit edits Jupyter notebook files programmatically, without a
// notebook runtime.
// Implements: prd008-cli R1;
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/nbedit/internal/render"
	"github.com/petar-djukic/nbedit/pkg/nbedit"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbedit",
		Short: "Agent-native Jupyter notebook editor",
		Long:  "nbedit lists, reads, searches, and edits the cells of a .ipynb file from the command line, preserving the notebook's JSON structure.",
	}

	// Global flags.
	rootCmd.PersistentFlags().StringP("notebook", "n", "", "Path to the .ipynb file")
	rootCmd.PersistentFlags().Bool("git", false, "Auto-commit the notebook after successful edits")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Bind flags to viper.
	viper.BindPFlag("notebook", rootCmd.PersistentFlags().Lookup("notebook"))
	viper.BindPFlag("git", rootCmd.PersistentFlags().Lookup("git"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Env vars: NBEDIT_NOTEBOOK, NBEDIT_GIT, etc.
	viper.SetEnvPrefix("NBEDIT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".nbedit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newSaveOutputCmd())
	rootCmd.AddCommand(newClearOutputCmd())
	rootCmd.AddCommand(newPatchCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openEditor builds the public editor from the global configuration.
func openEditor() (nbedit.Editor, error) {
	path := viper.GetString("notebook")
	if path == "" {
		return nil, fmt.Errorf("notebook path is required (--notebook, NBEDIT_NOTEBOOK, or config file)")
	}
	return nbedit.New(nbedit.Config{
		Path:        path,
		Git:         viper.GetBool("git"),
		DirtyCommit: true,
	})
}

// styles builds the render styles, honoring --no-color and NO_COLOR.
func styles() render.Styles {
	noColor := viper.GetBool("no-color")
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
	return render.New(noColor)
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print nbedit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nbedit %s\n", version)
		},
	}
}
