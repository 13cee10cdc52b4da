package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logandonley/nerd-font-installer/internal/platform"
	"github.com/logandonley/nerd-font-installer/pkg/fm"
	"github.com/spf13/cobra"
)

type installFlags struct {
	yes          bool
	file         string
	refreshCache bool
}

func newInstallCmd(opts options) *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   "install [font names...] | -f <file>",
		Short: "Install one or more Nerd Fonts",
		Long: `Install one or more Nerd Fonts from the latest release.
Each name selects the first font whose name contains it, ignoring case.
Without names or -f, the fonts are picked from a numbered list.

Examples:
  # Install a single font
  nfi install FiraCode

  # Install multiple fonts without confirmation
  nfi install jetbrains meslo --yes

  # Install the fonts listed in a selection file
  nfi install -f fonts.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.file != "" && len(args) > 0 {
				return fmt.Errorf("when using -f flag, no additional arguments should be provided")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Install the fonts listed in a YAML selection file")
	cmd.Flags().BoolVar(&flags.refreshCache, "refresh-cache", false, "Refresh the system font cache after installing")

	return cmd
}

func runInstall(cmd *cobra.Command, opts options, flags installFlags, names []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	t, errT := newTheme(out), newTheme(errOut)
	in := bufio.NewReader(cmd.InOrStdin())
	catalog := fm.Catalog()

	if flags.file != "" {
		var err error
		if names, err = readSelectionFile(flags.file); err != nil {
			return err
		}
	}

	var toInstall []fm.FontEntry
	if len(names) == 0 && flags.file == "" {
		var err error
		if toInstall, err = fm.SelectInteractive(in, out, catalog, t); err != nil {
			return err
		}
	} else {
		for _, name := range fm.UnmatchedNames(catalog, names) {
			fmt.Fprintf(errOut, "%s no font matches %q\n", errT.Label("Warning:"), name)
		}
		toInstall = fm.SelectByName(catalog, names)
	}

	if len(toInstall) == 0 {
		fmt.Fprintln(out, t.Label("No fonts selected for installation."))
		return nil
	}

	if !flags.yes {
		ok, err := confirm(in, out, t, toInstall)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, t.Label("Installation cancelled."))
			return nil
		}
	}

	source := opts.source()
	installer := opts.installer(source).WithProgress(downloadProgress(out, t.enabled))
	fmt.Fprintf(out, "%s %s\n", t.Heading("Detected OS:"), t.Name(installer.OS().String()))

	manager := fm.NewManager(installer)
	summary := manager.InstallAll(cmd.Context(), toInstall, &progressReporter{
		out:    out,
		errOut: errOut,
		t:      t,
		errT:   errT,
		source: source,
	})

	if flags.refreshCache && summary.Succeeded > 0 {
		if dir, err := installer.FontDir(); err == nil {
			if err := platform.RefreshFontCache(cmd.Context(), installer.OS(), dir); err != nil {
				fmt.Fprintf(errOut, "%s failed to update font cache: %v\n", errT.Label("Warning:"), err)
			}
		}
	}

	result := t.Success(summary.String())
	if len(summary.Failed) > 0 {
		result = t.Failure(summary.String())
	}
	fmt.Fprintf(out, "\n%s %s\n", t.Heading("Installation Summary:"), result)
	if len(summary.Failed) > 0 {
		fmt.Fprintln(out, t.Label("Failed fonts:"))
		for _, name := range summary.Failed {
			fmt.Fprintf(out, "  - %s\n", t.Name(name))
		}
		return fmt.Errorf("some fonts failed to install")
	}

	return nil
}

func readSelectionFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening selection file: %w", err)
	}
	defer file.Close()

	return fm.ParseSelectionFile(file)
}

// confirm lists the selected fonts and asks whether to go ahead
func confirm(in *bufio.Reader, out io.Writer, t *theme, fonts []fm.FontEntry) (bool, error) {
	fmt.Fprintln(out, "\n"+t.Heading("Fonts to install:"))
	for _, font := range fonts {
		fmt.Fprintf(out, "  • %s (%.1f MB)\n", t.Name(font.Name), font.SizeMB)
	}
	fmt.Fprint(out, "\n"+t.Prompt("Continue with installation? [y/N]:")+" ")

	answer, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y"), nil
}

// progressReporter prints per-font progress of a batch installation
type progressReporter struct {
	out    io.Writer
	errOut io.Writer
	t      *theme
	errT   *theme
	source fm.Source
}

func (r *progressReporter) Started(i, total int, font fm.FontEntry) {
	counter := r.t.Index(fmt.Sprintf("[%d/%d]", i, total))
	fmt.Fprintf(r.out, "\n%s Installing %s...\n", counter, r.t.Name(font.Name))
	fmt.Fprintf(r.out, "  %s\n", r.t.Muted("Downloading from: "+r.source.URL(font)))
}

func (r *progressReporter) Succeeded(font fm.FontEntry, result fm.Result) {
	fmt.Fprintf(r.out, "  %s\n", r.t.Muted("Installed to: "+result.Dir))
	fmt.Fprintf(r.out, "%s Successfully installed '%s'! (%d files)\n", r.t.Success("✓"), r.t.Name(font.Name), len(result.Files))
}

func (r *progressReporter) Failed(font fm.FontEntry, err error) {
	fmt.Fprintf(r.errOut, "%s Failed to install '%s': %v\n", r.errT.Failure("✗"), r.errT.Name(font.Name), err)
}
