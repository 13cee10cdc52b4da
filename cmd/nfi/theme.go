package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ANSI palette, so the terminal's own theme decides the exact shades
var (
	accentColor  = lipgloss.Color("12")
	indexColor   = lipgloss.Color("14")
	nameColor    = lipgloss.Color("15")
	labelColor   = lipgloss.Color("11")
	successColor = lipgloss.Color("10")
	errorColor   = lipgloss.Color("9")
	mutedColor   = lipgloss.Color("8")
)

// theme styles text written to a terminal. Text for any other writer is
// left exactly as given.
type theme struct {
	enabled bool

	heading lipgloss.Style
	index   lipgloss.Style
	name    lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newTheme(w io.Writer) *theme {
	return newThemeWith(lipgloss.NewRenderer(w), isTerminal(w))
}

func newThemeWith(r *lipgloss.Renderer, enabled bool) *theme {
	return &theme{
		enabled: enabled,
		heading: r.NewStyle().Foreground(accentColor).Bold(true),
		index:   r.NewStyle().Foreground(indexColor),
		name:    r.NewStyle().Foreground(nameColor).Bold(true),
		label:   r.NewStyle().Foreground(labelColor),
		success: r.NewStyle().Foreground(successColor).Bold(true),
		failure: r.NewStyle().Foreground(errorColor).Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *theme) render(style lipgloss.Style, s string) string {
	if !t.enabled {
		return s
	}
	return style.Render(s)
}

func (t *theme) Heading(s string) string { return t.render(t.heading, s) }
func (t *theme) Index(s string) string   { return t.render(t.index, s) }
func (t *theme) Name(s string) string    { return t.render(t.name, s) }
func (t *theme) Prompt(s string) string  { return t.render(t.label, s) }
func (t *theme) Label(s string) string   { return t.render(t.label, s) }
func (t *theme) Success(s string) string { return t.render(t.success, s) }
func (t *theme) Failure(s string) string { return t.render(t.failure, s) }
func (t *theme) Muted(s string) string   { return t.render(t.muted, s) }
