package service

import (
	"context"

	"tunebot/internal/domain"
	"tunebot/internal/recognition"
)

// maxSearchResults caps search and trending result lists.
const maxSearchResults = 10

// MusicService fronts the recognition API for the workflows.
type MusicService struct {
	recognizer recognition.Recognizer
}

// NewMusicService creates a music service.
func NewMusicService(recognizer recognition.Recognizer) *MusicService {
	return &MusicService{recognizer: recognizer}
}

// Identify recognizes the track in a local file. Returns
// recognition.ErrNoMatch when the service found nothing.
func (s *MusicService) Identify(ctx context.Context, filePath string) (*domain.Track, error) {
	return s.recognizer.Recognize(ctx, filePath)
}

// Search returns up to ten tracks matching the query.
func (s *MusicService) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	return s.recognizer.Search(ctx, query, clampLimit(limit))
}

// Trending returns up to ten trending tracks.
func (s *MusicService) Trending(ctx context.Context, limit int) ([]domain.Track, error) {
	return s.recognizer.Trending(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxSearchResults {
		return maxSearchResults
	}
	return limit
}
