package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tunebot/internal/domain"
	"tunebot/internal/recognition"
	"tunebot/internal/testutil"
)

func TestMusicService_Identify(t *testing.T) {
	track := testutil.NewTestTrack("Song", "Artist", "Album", "123")

	rec := new(testutil.MockRecognizer)
	rec.On("Recognize", mock.Anything, "temp/file.tmp").Return(&track, nil)

	svc := NewMusicService(rec)
	got, err := svc.Identify(context.Background(), "temp/file.tmp")

	assert.NoError(t, err)
	assert.Equal(t, &track, got)
	rec.AssertExpectations(t)
}

func TestMusicService_IdentifyNoMatch(t *testing.T) {
	rec := new(testutil.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything).Return(nil, recognition.ErrNoMatch)

	svc := NewMusicService(rec)
	got, err := svc.Identify(context.Background(), "temp/file.tmp")

	assert.ErrorIs(t, err, recognition.ErrNoMatch)
	assert.Nil(t, got)
}

func TestMusicService_SearchClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		forwarded int
	}{
		{name: "zero becomes max", limit: 0, forwarded: 10},
		{name: "negative becomes max", limit: -1, forwarded: 10},
		{name: "above max clamped", limit: 50, forwarded: 10},
		{name: "within range kept", limit: 5, forwarded: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := new(testutil.MockRecognizer)
			rec.On("Search", mock.Anything, "xyz", tt.forwarded).Return([]domain.Track{}, nil)

			svc := NewMusicService(rec)
			_, err := svc.Search(context.Background(), "xyz", tt.limit)

			assert.NoError(t, err)
			rec.AssertExpectations(t)
		})
	}
}

func TestMusicService_Trending(t *testing.T) {
	tracks := []domain.Track{
		testutil.NewTestTrack("A", "B", "C", "1"),
		testutil.NewTestTrack("D", "E", "F", "2"),
	}

	rec := new(testutil.MockRecognizer)
	rec.On("Trending", mock.Anything, 10).Return(tracks, nil)

	svc := NewMusicService(rec)
	got, err := svc.Trending(context.Background(), 0)

	assert.NoError(t, err)
	assert.Equal(t, tracks, got)
}
