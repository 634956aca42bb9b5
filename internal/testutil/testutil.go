package testutil

import (
	"go.uber.org/zap"

	"tunebot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests.
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTrack creates a test track.
func NewTestTrack(title, artist, album, id string) domain.Track {
	return domain.Track{
		Title:  title,
		Artist: artist,
		Album:  album,
		ID:     id,
	}
}
