package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(defaultOptions()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nfi",
		Short:   "nfi lists, downloads and installs Nerd Fonts",
		Version: "1.0.0",
		Long: `A CLI tool to list, download, and install Nerd Fonts into your
user font directory on macOS, Linux and Windows.

Examples:
  # Show the available fonts
  nfi list --details

  # Install fonts by (partial) name
  nfi install firacode hack

  # Pick fonts from a numbered list
  nfi install

  # Install the fonts listed in a selection file without confirmation
  nfi install -f fonts.yaml --yes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newInfoCmd())

	return rootCmd
}
