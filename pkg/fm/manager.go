package fm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Installer runs the download and extraction of a single font
type Installer interface {
	Install(ctx context.Context, entry FontEntry) (Result, error)
}

// Reporter receives progress of a batch installation
type Reporter interface {
	// Started is called before the i-th (1-based) of total entries is installed
	Started(i, total int, entry FontEntry)

	// Succeeded is called after an entry was installed
	Succeeded(entry FontEntry, result Result)

	// Failed is called when installing an entry returned an error
	Failed(entry FontEntry, err error)
}

// Summary counts the outcome of a batch installation
type Summary struct {
	Succeeded int
	Total     int
	Failed    []string // Names of entries that failed, in install order
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d succeeded", s.Succeeded, s.Total)
}

// Manager installs selections of catalog entries
type Manager struct {
	installer Installer
}

// NewManager creates a manager that installs each font with installer
func NewManager(installer Installer) *Manager {
	return &Manager{installer: installer}
}

// InstallAll installs entries one after another in order. A failed entry is
// reported and the batch continues with the next one.
func (m *Manager) InstallAll(ctx context.Context, entries []FontEntry, reporter Reporter) Summary {
	summary := Summary{Total: len(entries)}

	for i, entry := range entries {
		reporter.Started(i+1, len(entries), entry)

		result, err := m.installer.Install(ctx, entry)
		if err != nil {
			reporter.Failed(entry, err)
			summary.Failed = append(summary.Failed, entry.Name)
			continue
		}

		reporter.Succeeded(entry, result)
		summary.Succeeded++
	}

	return summary
}

// SelectionFile lists fonts to install, by name fragment
type SelectionFile struct {
	Fonts []string `yaml:"fonts"`
}

// ParseSelectionFile reads a YAML selection file and returns the listed
// name fragments with blank entries removed
func ParseSelectionFile(r io.Reader) ([]string, error) {
	var file SelectionFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing selection file: %w", err)
	}

	var names []string
	for _, name := range file.Fonts {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
