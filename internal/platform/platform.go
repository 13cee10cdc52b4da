package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrNoHomeDir is returned when the home or data directory cannot be resolved
	ErrNoHomeDir = errors.New("no home or data directory resolvable")

	// ErrUnsupportedOS is returned for operating systems without a known font directory
	ErrUnsupportedOS = errors.New("unsupported OS")
)

// OS identifies a platform family with its own user font directory
type OS int

const (
	Unknown OS = iota
	Darwin
	Linux
	Windows
)

func (o OS) String() string {
	switch o {
	case Darwin:
		return "macOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	}
	return "Unknown"
}

// Detect returns the OS the binary is running on
func Detect() OS {
	return Parse(runtime.GOOS)
}

// Parse maps a GOOS value or display tag such as "macOS" to an OS
func Parse(tag string) OS {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "darwin", "macos":
		return Darwin
	case "linux":
		return Linux
	case "windows":
		return Windows
	}
	return Unknown
}

// Dirs supplies the base directories font paths are derived from
type Dirs struct {
	HomeDir func() (string, error) // User home directory
	DataDir func() (string, error) // Per-user application data root
}

// DefaultDirs returns Dirs backed by the running user's environment
func DefaultDirs() Dirs {
	return Dirs{
		HomeDir: os.UserHomeDir,
		DataDir: os.UserConfigDir,
	}
}

// UserFontDir returns the user-scoped font directory for the given OS.
// The directory is not created.
func UserFontDir(o OS, dirs Dirs) (string, error) {
	switch o {
	case Darwin:
		home, err := resolve(dirs.HomeDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Fonts"), nil
	case Linux:
		home, err := resolve(dirs.HomeDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "fonts"), nil
	case Windows:
		data, err := resolve(dirs.DataDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(data, "Microsoft", "Windows", "Fonts"), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedOS, o)
}

func resolve(fn func() (string, error)) (string, error) {
	if fn == nil {
		return "", ErrNoHomeDir
	}
	dir, err := fn()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	if dir == "" {
		return "", ErrNoHomeDir
	}
	return dir, nil
}
