package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Platform
	}{
		{
			name:     "youtube watch URL",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: PlatformYouTube,
		},
		{
			name:     "youtu.be short URL",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: PlatformYouTube,
		},
		{
			name:     "youtube substring anywhere",
			url:      "http://proxy.example.com/?target=youtube.com/watch",
			expected: PlatformYouTube,
		},
		{
			name:     "instagram post",
			url:      "https://www.instagram.com/p/Cabc123/",
			expected: PlatformInstagram,
		},
		{
			name:     "instagram substring anywhere",
			url:      "http://mirror.example.com/instagram.com/p/x",
			expected: PlatformInstagram,
		},
		{
			name:     "youtube wins over instagram",
			url:      "http://youtube.com/?from=instagram.com",
			expected: PlatformYouTube,
		},
		{
			name:     "plain file URL",
			url:      "https://example.com/video.mp4",
			expected: PlatformGeneric,
		},
		{
			name:     "empty string",
			url:      "",
			expected: PlatformGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.url))
		})
	}
}

func TestShortcodeFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "post URL with trailing slash",
			url:      "https://www.instagram.com/p/Cabc123/",
			expected: "Cabc123",
		},
		{
			name:     "post URL without trailing slash",
			url:      "https://www.instagram.com/p/Cabc123",
			expected: "Cabc123",
		},
		{
			name:     "query string stripped",
			url:      "https://www.instagram.com/p/Cabc123/?igshid=x",
			expected: "Cabc123",
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shortcodeFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
