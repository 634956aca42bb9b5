package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ytdlpBinary is the external YouTube downloader executable.
const ytdlpBinary = "yt-dlp"

// YouTubeAvailable reports whether the yt-dlp binary can be found.
// Resolved once at startup, not per request.
func YouTubeAvailable() bool {
	_, err := exec.LookPath(ytdlpBinary)
	return err == nil
}

// YouTubeDownloader fetches YouTube videos via the yt-dlp executable.
type YouTubeDownloader struct{}

// NewYouTubeDownloader creates a YouTube downloader.
func NewYouTubeDownloader() *YouTubeDownloader {
	return &YouTubeDownloader{}
}

// Fetch downloads the best progressive mp4 stream for the URL.
func (d *YouTubeDownloader) Fetch(ctx context.Context, url, destPath string) (*Content, error) {
	path := destPath + ".mp4"

	cmd := exec.CommandContext(ctx, ytdlpBinary,
		"--no-playlist",
		"-f", "best[ext=mp4]",
		"-o", path,
		url,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("yt-dlp: %w: %s", err, out)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, ErrNoStream
	}
	return &Content{Path: path, Kind: ContentVideo}, nil
}
