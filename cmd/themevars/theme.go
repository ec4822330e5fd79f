package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/db"
	"github.com/thatcatcamp/themevars/internal/logging"
	"github.com/thatcatcamp/themevars/internal/themefile"
	"github.com/thatcatcamp/themevars/internal/themes"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage stored theme overrides",
	Long:  "Add, list, show, and remove theme overrides kept in the database",
}

var themeAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store the overrides in a theme file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		overrides, err := themefile.Load(args[0], logging.Component("theme"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, o := range overrides {
			if err := themes.Validate(o); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", o.Name, err)
			}
			if err := db.SaveOverride(db.GetDB(), o); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving theme: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Theme override saved: %s\n", o.Name)
		}
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored theme overrides",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		overrides, err := db.ListOverrides(db.GetDB(), logging.Component("theme"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing themes: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODE\tBASE\tFAMILIES")
		for _, o := range overrides {
			mode, base := "-", "-"
			if o.Mode != nil {
				mode = string(*o.Mode)
			}
			if o.BaseColor != nil {
				base = *o.BaseColor
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", o.Name, mode, base, o.PrimaryColors.Len()+o.Colors.Len())
		}
		w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored theme override as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		o, err := db.GetOverride(db.GetDB(), args[0], logging.Component("theme"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		data, err := themefile.Marshal(o)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

var themeRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a stored theme override",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := db.DeleteOverride(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing theme: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Theme override removed: %s\n", args[0])
	},
}

func init() {
	themeCmd.AddCommand(themeAddCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeRemoveCmd)
	rootCmd.AddCommand(themeCmd)
}
