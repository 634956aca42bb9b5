// Package download fetches remote media: platform-specific downloaders
// for YouTube and Instagram plus a generic HTTP fallback.
package download

import (
	"context"
	"errors"
	"strings"
)

// Platform classifies a URL by its hosting service.
type Platform int

const (
	PlatformGeneric Platform = iota
	PlatformYouTube
	PlatformInstagram
)

// ContentKind is how a downloaded file is sent back to the chat.
type ContentKind int

const (
	ContentVideo ContentKind = iota
	ContentAudio
	ContentPhoto
)

// ErrNoStream indicates the platform had no eligible stream or post for
// the URL.
var ErrNoStream = errors.New("download: no eligible stream")

// Content is one downloaded transient file, typed for sending.
type Content struct {
	Path string
	Kind ContentKind
}

// Downloader fetches the content behind a URL into destPath (platform
// downloaders may adjust the extension).
type Downloader interface {
	Fetch(ctx context.Context, url, destPath string) (*Content, error)
}

// Classify routes a URL to a platform by substring match, in priority
// order. Matching is positional-agnostic: the substring may appear
// anywhere in the string.
func Classify(url string) Platform {
	switch {
	case strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(url, "instagram.com"):
		return PlatformInstagram
	default:
		return PlatformGeneric
	}
}
