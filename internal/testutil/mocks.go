package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tunebot/internal/domain"
	"tunebot/internal/download"
)

// MockRecognizer is a mock for recognition.Recognizer
type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, filePath string) (*domain.Track, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Track), args.Error(1)
}

func (m *MockRecognizer) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

func (m *MockRecognizer) Trending(ctx context.Context, limit int) ([]domain.Track, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Track), args.Error(1)
}

// MockDownloader is a mock for download.Downloader
type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Fetch(ctx context.Context, url, destPath string) (*download.Content, error) {
	args := m.Called(ctx, url, destPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*download.Content), args.Error(1)
}

// MockTagWriter is a mock for tagger.Writer
type MockTagWriter struct {
	mock.Mock
}

func (m *MockTagWriter) Write(filePath string, meta domain.TrackMetadata) error {
	args := m.Called(filePath, meta)
	return args.Error(0)
}
