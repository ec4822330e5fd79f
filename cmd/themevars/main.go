// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	themeFileFlag string
	noDBFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "themevars",
	Short: "themevars - CSS color variables for light and dark themes",
	Long: `themevars turns a set of seed colors into ten-shade palettes for every
theme, exposes them as CSS custom properties scoped by [data-theme], and
derives the matching color tokens for utility CSS pipelines.

Themes come from the built-in light and dark presets, a YAML theme file and
overrides stored in the database, merged in that order.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&themeFileFlag, "file", "f", "", "theme file (overrides themes.file)")
	rootCmd.PersistentFlags().BoolVar(&noDBFlag, "no-db", false, "ignore overrides stored in the database")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
