package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logandonley/nerd-font-installer/pkg/fm"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available Nerd Fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			t := newTheme(out)
			fonts := fm.Catalog()

			if !details {
				fmt.Fprintln(out, t.Heading("Available Nerd Fonts:"))
				for i, font := range fonts {
					fmt.Fprintf(out, "  %s. %s\n", t.Index(strconv.Itoa(i+1)), t.Name(font.Name))
				}
				return nil
			}

			fmt.Fprintln(out, t.Heading("Available Nerd Fonts (Detailed):"))
			for i, font := range fonts {
				fmt.Fprintf(out, "\n%s. %s\n", t.Index(strconv.Itoa(i+1)), t.Name(font.Name))
				fmt.Fprintf(out, "   %s: %s\n", t.Label("Description"), font.Description)
				fmt.Fprintf(out, "   %s: %.1f MB\n", t.Label("Size"), font.SizeMB)
				fmt.Fprintf(out, "   %s: %s\n", t.Label("Variants"), strings.Join(font.Variants, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show detailed information about fonts")
	return cmd
}
