package fm

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/logandonley/nerd-font-installer/internal/platform"
)

// Source fetches the archive of a catalog entry
type Source interface {
	// URL returns where the archive is fetched from
	URL(entry FontEntry) string

	// Download retrieves the archive data
	Download(ctx context.Context, entry FontEntry) (io.ReadCloser, error)
}

// Result describes the files written by one installation
type Result struct {
	Dir   string   // Resolved font directory
	Files []string // Paths of extracted font files, in archive order
}

// ProgressFunc wraps a download body so its transfer can be observed.
// The returned done func is called once the body has been consumed.
type ProgressFunc func(entry FontEntry, body io.Reader) (r io.Reader, done func())

// FontInstaller downloads a font archive and extracts its font files into
// the user font directory of the configured platform
type FontInstaller struct {
	source   Source
	os       platform.OS
	dirs     platform.Dirs
	tempDir  string
	progress ProgressFunc
}

func NewFontInstaller(source Source, o platform.OS, dirs platform.Dirs) *FontInstaller {
	return &FontInstaller{
		source:  source,
		os:      o,
		dirs:    dirs,
		tempDir: os.TempDir(),
	}
}

// WithTempDir sets the directory archives are staged in
func (fi *FontInstaller) WithTempDir(dir string) *FontInstaller {
	fi.tempDir = dir
	return fi
}

// WithProgress sets a hook observing each archive download
func (fi *FontInstaller) WithProgress(fn ProgressFunc) *FontInstaller {
	fi.progress = fn
	return fi
}

// OS returns the platform fonts are installed for
func (fi *FontInstaller) OS() platform.OS {
	return fi.os
}

// FontDir resolves the directory fonts are installed into
func (fi *FontInstaller) FontDir() (string, error) {
	dir, err := platform.UserFontDir(fi.os, fi.dirs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInstallPath, err)
	}
	return dir, nil
}

// Install downloads the entry's archive and writes every .ttf and .otf file
// it contains into the font directory, overwriting files of the same name.
// Files written before a failure are left in place.
func (fi *FontInstaller) Install(ctx context.Context, entry FontEntry) (Result, error) {
	body, err := fi.source.Download(ctx, entry)
	if err != nil {
		return Result{}, err
	}

	archivePath := filepath.Join(fi.tempDir, filepath.Base(entry.AssetName))
	defer os.Remove(archivePath)

	var data io.Reader = body
	done := func() {}
	if fi.progress != nil {
		data, done = fi.progress(entry, body)
	}

	err = saveArchive(archivePath, data)
	done()
	body.Close()
	if err != nil {
		return Result{}, err
	}

	fontDir, err := fi.FontDir()
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(fontDir, 0755); err != nil {
		return Result{}, fmt.Errorf("%w: creating font directory: %v", ErrInstallPath, err)
	}

	files, err := extractFonts(archivePath, fontDir)
	return Result{Dir: fontDir, Files: files}, err
}

// saveArchive writes data to a new file at dest. Anything already at dest,
// including a symlink, is removed first rather than written through.
func saveArchive(dest string, data io.Reader) error {
	if err := os.Remove(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing stale temporary file: %v", ErrIO, err)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("%w: creating temporary file: %v", ErrIO, err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing temporary file: %v", ErrIO, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing temporary file: %v", ErrIO, err)
	}
	return nil
}

func extractFonts(archivePath, fontDir string) ([]string, error) {
	zipReader, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrArchive, filepath.Base(archivePath), err)
	}
	defer zipReader.Close()

	var written []string
	for _, file := range zipReader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		name, ok := safeBaseName(file.Name)
		if !ok || !isFontFile(name) {
			continue
		}

		dest := filepath.Join(fontDir, name)
		if err := extractFontFile(file, dest); err != nil {
			return written, fmt.Errorf("extracting font file %s: %w", file.Name, err)
		}
		written = append(written, dest)
	}

	return written, nil
}

// Helper functions

func isFontFile(name string) bool {
	return strings.HasSuffix(name, ".ttf") || strings.HasSuffix(name, ".otf")
}

// safeBaseName returns the final component of an archive entry name,
// rejecting names that are absolute or escape the archive root
func safeBaseName(name string) (string, bool) {
	name = strings.ReplaceAll(name, `\`, "/")
	if name == "" || strings.HasPrefix(name, "/") || filepath.VolumeName(name) != "" {
		return "", false
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", false
		}
	}

	base := path.Base(path.Clean(name))
	if base == "." || base == "/" {
		return "", false
	}
	return base, true
}

func extractFontFile(file *zip.File, destFile string) (err error) {
	// Open the file from the archive
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("%w: opening file in archive: %v", ErrArchive, err)
	}
	defer src.Close()

	// Create the destination file
	dest, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("%w: creating destination file: %v", ErrIO, err)
	}
	defer func() {
		if cerr := dest.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing destination file: %v", ErrIO, cerr)
		}
	}()

	// Copy the contents
	if _, err := io.Copy(dest, src); err != nil {
		return fmt.Errorf("%w: copying file contents: %v", ErrIO, err)
	}
	return nil
}
