package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// instaloaderBinary is the external Instagram downloader executable.
const instaloaderBinary = "instaloader"

// InstagramAvailable reports whether the instaloader binary can be
// found. Resolved once at startup, not per request.
func InstagramAvailable() bool {
	_, err := exec.LookPath(instaloaderBinary)
	return err == nil
}

// InstagramDownloader fetches Instagram posts via the instaloader
// executable, addressed by the shortcode embedded in the post URL.
type InstagramDownloader struct{}

// NewInstagramDownloader creates an Instagram downloader.
func NewInstagramDownloader() *InstagramDownloader {
	return &InstagramDownloader{}
}

// Fetch downloads the post's media into a directory next to destPath and
// returns the first media file found, typed by its extension.
func (d *InstagramDownloader) Fetch(ctx context.Context, url, destPath string) (*Content, error) {
	shortcode, err := shortcodeFromURL(url)
	if err != nil {
		return nil, err
	}

	dir := destPath + "_ig"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, instaloaderBinary,
		"--dirname-pattern", dir,
		"--no-metadata-json",
		"--no-captions",
		"--", "-"+shortcode,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("instaloader: %w: %s", err, out)
	}

	path, kind, err := firstMediaFile(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	// Move the media file out so the whole directory can be dropped.
	final := destPath + filepath.Ext(path)
	if err := os.Rename(path, final); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("move downloaded file: %w", err)
	}
	os.RemoveAll(dir)

	return &Content{Path: final, Kind: kind}, nil
}

// shortcodeFromURL extracts the post shortcode from URLs shaped like
// https://www.instagram.com/p/<shortcode>/.
func shortcodeFromURL(url string) (string, error) {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	shortcode := parts[len(parts)-1]
	if shortcode == "" {
		return "", ErrNoStream
	}
	return shortcode, nil
}

// firstMediaFile picks the first video or image file in dir.
func firstMediaFile(dir string) (string, ContentKind, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("read download dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".mp4":
			return filepath.Join(dir, entry.Name()), ContentVideo, nil
		case ".jpg", ".jpeg", ".png", ".webp":
			return filepath.Join(dir, entry.Name()), ContentPhoto, nil
		}
	}
	return "", 0, ErrNoStream
}
