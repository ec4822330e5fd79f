// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/themes"
)

var (
	outputFlag string
	themeFlag  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the theme stylesheet",
	Long:  "Resolve every theme and write the [data-theme] stylesheet to stdout or a file",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := buildPreset()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := writeOutput([]byte(p.CSS())); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the color tokens as JSON",
	Long:  "Print the color tokens the preset adds to a utility CSS theme",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := buildPreset()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		colors := p.ExtendTheme(&themes.HostTheme{}).Colors
		if themeFlag != "" {
			t, ok := p.Theme(themeFlag)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: theme %q not found\n", themeFlag)
				os.Exit(1)
			}
			colors = t.ThemeColors
		}

		if err := writeJSON(colors); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Print the CSS variables of a theme as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := buildPreset()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		t := p.DefaultTheme()
		if themeFlag != "" {
			var ok bool
			if t, ok = p.Theme(themeFlag); !ok {
				fmt.Fprintf(os.Stderr, "Error: theme %q not found\n", themeFlag)
				os.Exit(1)
			}
		}
		if t == nil {
			fmt.Fprintln(os.Stderr, "Error: no themes configured")
			os.Exit(1)
		}

		if err := writeJSON(t.ThemeVars); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate theme overrides",
	Long:  "Validate the theme file and stored overrides and report every problem found",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		overrides, err := loadOverrides()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		problems := checkOverrides(overrides, config.GetBool("themes.append_new"))
		for _, p := range problems {
			fmt.Println(p)
		}
		if len(problems) > 0 {
			os.Exit(1)
		}
		fmt.Printf("%d theme overrides OK\n", len(overrides))
	},
}

// checkOverrides validates each override and the resulting default theme count
func checkOverrides(overrides []themes.Override, appendNew bool) []string {
	known := map[string]bool{}
	for _, ts := range themes.DefaultThemes() {
		known[ts.Name] = true
	}

	var problems []string
	for _, o := range overrides {
		if err := themes.Validate(o); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", o.Name, err))
		}
		if !known[o.Name] && !appendNew {
			problems = append(problems, fmt.Sprintf("%s: not a built-in theme and themes.append_new is off; ignored", o.Name))
		}
		if appendNew {
			known[o.Name] = true
		}
	}

	p := themes.NewBuilder(themes.WithNewThemes(appendNew)).Build(overrides...)
	defaults := 0
	for _, t := range p.Themes {
		if t.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		problems = append(problems, fmt.Sprintf("expected exactly one default theme, found %d", defaults))
	}
	return problems
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return writeOutput(append(data, '\n'))
}

func writeOutput(data []byte) error {
	if outputFlag == "" || outputFlag == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputFlag, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFlag, err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{buildCmd, tokensCmd, varsCmd} {
		c.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default stdout)")
		rootCmd.AddCommand(c)
	}
	tokensCmd.Flags().StringVarP(&themeFlag, "theme", "t", "", "print the tokens of this theme instead of the default")
	varsCmd.Flags().StringVarP(&themeFlag, "theme", "t", "", "theme name (default: the default theme)")
	rootCmd.AddCommand(checkCmd)
}
