package main

import (
	"net/http"
	"os"

	"github.com/logandonley/nerd-font-installer/internal/platform"
	"github.com/logandonley/nerd-font-installer/pkg/fm"
)

// options holds the environment commands run against
type options struct {
	releaseURL string
	client     *http.Client // nil selects the default client
	os         platform.OS
	dirs       platform.Dirs
	tempDir    string
}

func defaultOptions() options {
	return options{
		releaseURL: fm.DefaultReleaseURL,
		os:         platform.Detect(),
		dirs:       platform.DefaultDirs(),
		tempDir:    os.TempDir(),
	}
}

func (o options) source() *fm.NerdFontsSource {
	return fm.NewNerdFontsSourceWithURL(o.client, o.releaseURL)
}

func (o options) installer(source fm.Source) *fm.FontInstaller {
	return fm.NewFontInstaller(source, o.os, o.dirs).WithTempDir(o.tempDir)
}
