package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunebot/internal/domain"
	"tunebot/internal/testutil"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *domain.TrackMetadata
		wantErr  error
	}{
		{
			name:  "valid input",
			input: "Title: A\nArtist: B\nAlbum: C",
			expected: &domain.TrackMetadata{
				Title:  "A",
				Artist: "B",
				Album:  "C",
			},
		},
		{
			name:  "case-insensitive keys with whitespace",
			input: " title :  A \nARTIST: B\n Album : C",
			expected: &domain.TrackMetadata{
				Title:  "A",
				Artist: "B",
				Album:  "C",
			},
		},
		{
			name:  "value containing a colon",
			input: "Title: A: The Sequel\nArtist: B\nAlbum: C",
			expected: &domain.TrackMetadata{
				Title:  "A: The Sequel",
				Artist: "B",
				Album:  "C",
			},
		},
		{
			name:  "lines without colon are skipped",
			input: "here you go\nTitle: A\nArtist: B\nAlbum: C",
			expected: &domain.TrackMetadata{
				Title:  "A",
				Artist: "B",
				Album:  "C",
			},
		},
		{
			name:    "missing title",
			input:   "Artist: B\nAlbum: C",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "missing artist",
			input:   "Title: A\nAlbum: C",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "missing album",
			input:   "Title: A\nArtist: B",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "free text without any pairs",
			input:   "just some message",
			wantErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseMetadata(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, meta)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meta)
		})
	}
}

func TestEditService_Apply(t *testing.T) {
	meta := domain.TrackMetadata{Title: "X", Artist: "Y", Album: "Z"}

	t.Run("writes tags for mp3", func(t *testing.T) {
		writer := new(testutil.MockTagWriter)
		writer.On("Write", "temp/song.mp3", meta).Return(nil)

		svc := NewEditService(writer, true)
		err := svc.Apply("temp/song.mp3", meta)

		assert.NoError(t, err)
		writer.AssertExpectations(t)
	})

	t.Run("rejects non-mp3 extension", func(t *testing.T) {
		writer := new(testutil.MockTagWriter)

		svc := NewEditService(writer, true)
		err := svc.Apply("temp/song.flac", meta)

		assert.ErrorIs(t, err, ErrUnsupportedFile)
		writer.AssertNotCalled(t, "Write")
	})

	t.Run("rejects when editing disabled", func(t *testing.T) {
		writer := new(testutil.MockTagWriter)

		svc := NewEditService(writer, false)
		err := svc.Apply("temp/song.mp3", meta)

		assert.ErrorIs(t, err, ErrEditingDisabled)
		writer.AssertNotCalled(t, "Write")
	})

	t.Run("wraps writer failure", func(t *testing.T) {
		writer := new(testutil.MockTagWriter)
		writer.On("Write", "temp/song.mp3", meta).Return(errors.New("disk full"))

		svc := NewEditService(writer, true)
		err := svc.Apply("temp/song.mp3", meta)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnsupportedFile)
	})
}
