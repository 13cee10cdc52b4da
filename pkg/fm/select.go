package fm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

func matches(entry FontEntry, fragment string) bool {
	// Casers carry state, so each comparison gets its own
	fold := cases.Fold()
	return strings.Contains(fold.String(entry.Name), fold.String(fragment))
}

// SelectByName returns, for each name fragment, the first entry whose name
// contains it case-insensitively. Fragments that match nothing are dropped
// and repeated matches are kept.
func SelectByName(entries []FontEntry, names []string) []FontEntry {
	var selected []FontEntry
	for _, name := range names {
		for _, entry := range entries {
			if matches(entry, name) {
				selected = append(selected, entry)
				break
			}
		}
	}
	return selected
}

// UnmatchedNames returns the fragments SelectByName would drop
func UnmatchedNames(entries []FontEntry, names []string) []string {
	var unmatched []string
	for _, name := range names {
		found := false
		for _, entry := range entries {
			if matches(entry, name) {
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, name)
		}
	}
	return unmatched
}

// ParseIndices interprets an interactive selection line. "all" selects every
// entry; otherwise the line is a comma separated list of 1-based indices and
// anything unparsable or out of range is skipped.
func ParseIndices(line string, entries []FontEntry) []FontEntry {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "all") {
		return append([]FontEntry(nil), entries...)
	}

	var selected []FontEntry
	for _, token := range strings.Split(line, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || i < 1 || i > len(entries) {
			continue
		}
		selected = append(selected, entries[i-1])
	}
	return selected
}

// Styler decorates the text of the selection menu
type Styler interface {
	Heading(s string) string
	Index(s string) string
	Name(s string) string
	Prompt(s string) string
}

// PlainStyler leaves text undecorated
type PlainStyler struct{}

func (PlainStyler) Heading(s string) string { return s }
func (PlainStyler) Index(s string) string   { return s }
func (PlainStyler) Name(s string) string    { return s }
func (PlainStyler) Prompt(s string) string  { return s }

// SelectInteractive prints the entries with their indices to out and reads
// one line of selection from in. Pass a *bufio.Reader to keep any input
// buffered past that line available to later reads.
func SelectInteractive(in io.Reader, out io.Writer, entries []FontEntry, style Styler) ([]FontEntry, error) {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	if style == nil {
		style = PlainStyler{}
	}

	fmt.Fprintln(out, style.Heading("No fonts specified. Available Nerd Fonts:"))
	for i, entry := range entries {
		fmt.Fprintf(out, "  %s. %s (%.1f MB)\n", style.Index(strconv.Itoa(i+1)), style.Name(entry.Name), entry.SizeMB)
	}
	fmt.Fprintln(out, "\n"+style.Prompt("Enter numbers separated by commas to select fonts, or 'all' to install all:"))
	fmt.Fprint(out, style.Prompt(">")+" ")

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	return ParseIndices(line, entries), nil
}
