package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// GenericTimeout is the fixed budget for a generic HTTP fetch.
const GenericTimeout = 30 * time.Second

// GenericDownloader fetches arbitrary URLs over HTTP and infers the
// content kind from the Content-Type header.
type GenericDownloader struct {
	httpClient *http.Client
}

// NewGenericDownloader creates a generic downloader. If httpClient is
// nil a fresh client with the fixed timeout is used; an injected client
// keeps its own transport (proxy) but the timeout is applied per request.
func NewGenericDownloader(httpClient *http.Client) *GenericDownloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: GenericTimeout}
	}
	return &GenericDownloader{httpClient: httpClient}
}

// Fetch downloads the URL to destPath plus an inferred extension and
// returns the typed content. Non-2xx statuses are terminal.
func (d *GenericDownloader) Fetch(ctx context.Context, url, destPath string) (*Content, error) {
	ctx, cancel := context.WithTimeout(ctx, GenericTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	kind, ext := kindFromContentType(resp.Header.Get("Content-Type"))
	path := destPath + ext

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return &Content{Path: path, Kind: kind}, nil
}

// kindFromContentType maps a MIME type to a send kind and extension.
// Unknown types default to video/mp4.
func kindFromContentType(contentType string) (ContentKind, string) {
	switch {
	case strings.Contains(contentType, "audio"):
		return ContentAudio, ".mp3"
	case strings.Contains(contentType, "image"):
		return ContentPhoto, ".jpg"
	default:
		return ContentVideo, ".mp4"
	}
}
