package service

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// CleanupService removes stale transient files left behind by crashed or
// interrupted workflows. Live workflows delete their own files; anything
// older than the retention window is an orphan.
type CleanupService struct {
	dir    string
	maxAge time.Duration
	logger *zap.Logger
}

// NewCleanupService creates a cleanup service for the transient dir.
func NewCleanupService(dir string, maxAge time.Duration, logger *zap.Logger) *CleanupService {
	return &CleanupService{dir: dir, maxAge: maxAge, logger: logger}
}

// RemoveStale deletes files in the transient dir older than the
// retention window.
func (s *CleanupService) RemoveStale() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			s.logger.Warn("Failed to remove stale file",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("Removed stale transient files", zap.Int("count", removed))
	}
	return nil
}
