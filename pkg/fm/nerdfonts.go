package fm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultReleaseURL serves assets of the most recent Nerd Fonts release
const DefaultReleaseURL = "https://github.com/ryanoasis/nerd-fonts/releases/latest/download"

var (
	// ErrDownload is returned when an archive cannot be fetched
	ErrDownload = errors.New("download failed")

	// ErrIO is returned when writing downloaded or extracted data fails
	ErrIO = errors.New("i/o error")

	// ErrInstallPath is returned when the font directory cannot be resolved or created
	ErrInstallPath = errors.New("install path error")

	// ErrArchive is returned when a downloaded archive cannot be read
	ErrArchive = errors.New("archive error")
)

// Common HTTP client with reasonable defaults
var defaultClient = &http.Client{
	Timeout: 5 * time.Minute,
	Transport: &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	},
}

// NerdFontsSource downloads font archives from a Nerd Fonts release
type NerdFontsSource struct {
	client  *http.Client
	baseURL string
}

// NewNerdFontsSource returns a source for the latest published release
func NewNerdFontsSource() *NerdFontsSource {
	return NewNerdFontsSourceWithURL(nil, DefaultReleaseURL)
}

// NewNerdFontsSourceWithURL returns a source fetching assets below baseURL.
// A nil client selects the default client.
func NewNerdFontsSourceWithURL(client *http.Client, baseURL string) *NerdFontsSource {
	if client == nil {
		client = defaultClient
	}
	return &NerdFontsSource{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// URL returns the download location of the entry's archive
func (s *NerdFontsSource) URL(entry FontEntry) string {
	return s.baseURL + "/" + entry.AssetName
}

// Download starts fetching the entry's archive. The caller closes the body.
func (s *NerdFontsSource) Download(ctx context.Context, entry FontEntry) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(entry), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrDownload, err)
	}
	req.Header.Set("User-Agent", "nerd-font-installer/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status: %s", ErrDownload, resp.Status)
	}

	return resp.Body, nil
}
