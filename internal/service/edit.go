package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tunebot/internal/domain"
	"tunebot/internal/tagger"
)

var (
	// ErrInvalidFormat indicates the metadata text is missing one of the
	// required title/artist/album keys.
	ErrInvalidFormat = errors.New("edit: invalid metadata format")

	// ErrUnsupportedFile indicates the target file is not an .mp3.
	ErrUnsupportedFile = errors.New("edit: unsupported file type")

	// ErrEditingDisabled indicates tag writing is switched off.
	ErrEditingDisabled = errors.New("edit: metadata editing disabled")
)

// EditService parses replacement metadata and applies it to files.
type EditService struct {
	writer  tagger.Writer
	enabled bool
}

// NewEditService creates an edit service. enabled reflects the startup
// tag-writing capability.
func NewEditService(writer tagger.Writer, enabled bool) *EditService {
	return &EditService{writer: writer, enabled: enabled}
}

// ParseMetadata parses "key: value" lines into a replacement tag set.
// Keys are matched case-insensitively with surrounding whitespace
// ignored; values keep their inner content trimmed. Lines without a
// colon are skipped. Title, artist and album must all be present.
func ParseMetadata(text string) (*domain.TrackMetadata, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	title, hasTitle := fields["title"]
	artist, hasArtist := fields["artist"]
	album, hasAlbum := fields["album"]
	if !hasTitle || !hasArtist || !hasAlbum {
		return nil, ErrInvalidFormat
	}

	return &domain.TrackMetadata{Title: title, Artist: artist, Album: album}, nil
}

// Apply writes the replacement tags to filePath. Only .mp3 files are
// supported, and only when editing is enabled.
func (s *EditService) Apply(filePath string, meta domain.TrackMetadata) error {
	if !s.enabled {
		return ErrEditingDisabled
	}
	if !strings.EqualFold(filepath.Ext(filePath), ".mp3") {
		return ErrUnsupportedFile
	}
	if err := s.writer.Write(filePath, meta); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}
