package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Installed fonts are not tracked, so there is nothing yet for these
// commands to work from.

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update all installed Nerd Fonts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Update functionality not yet implemented.")
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [font names...]",
		Short: "Remove installed Nerd Fonts",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Font removal not yet implemented.")
			for _, name := range args {
				fmt.Fprintf(out, "  Would remove: %s\n", name)
			}
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about installed fonts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Installed font detection not yet implemented.")
		},
	}
}
