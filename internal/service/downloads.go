package service

import (
	"context"

	"go.uber.org/zap"

	"tunebot/internal/download"
)

// Capabilities records which optional external dependencies were found
// at startup. Resolved once; never re-queried per request.
type Capabilities struct {
	YouTube    bool
	Instagram  bool
	TagWriting bool
}

// DownloadService routes URLs to the matching platform downloader, with
// the generic HTTP downloader as fallback for unavailable platforms.
type DownloadService struct {
	youtube   download.Downloader
	instagram download.Downloader
	generic   download.Downloader
	caps      Capabilities
	logger    *zap.Logger
}

// NewDownloadService creates a download service.
func NewDownloadService(
	youtube download.Downloader,
	instagram download.Downloader,
	generic download.Downloader,
	caps Capabilities,
	logger *zap.Logger,
) *DownloadService {
	return &DownloadService{
		youtube:   youtube,
		instagram: instagram,
		generic:   generic,
		caps:      caps,
		logger:    logger,
	}
}

// Fetch classifies the URL and downloads its content to destPath. A
// platform whose dependency is missing degrades to the generic
// downloader; there is no further fallback chain after that choice.
func (s *DownloadService) Fetch(ctx context.Context, url, destPath string) (*download.Content, error) {
	d := s.generic
	switch download.Classify(url) {
	case download.PlatformYouTube:
		if s.caps.YouTube {
			d = s.youtube
		} else {
			s.logger.Debug("YouTube downloader unavailable, using generic", zap.String("url", url))
		}
	case download.PlatformInstagram:
		if s.caps.Instagram {
			d = s.instagram
		} else {
			s.logger.Debug("Instagram downloader unavailable, using generic", zap.String("url", url))
		}
	}
	return d.Fetch(ctx, url, destPath)
}
