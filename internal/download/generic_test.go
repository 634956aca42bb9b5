package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericDownloader_Fetch(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		expectedKind ContentKind
		expectedExt  string
	}{
		{
			name:         "video",
			contentType:  "video/mp4",
			expectedKind: ContentVideo,
			expectedExt:  ".mp4",
		},
		{
			name:         "audio",
			contentType:  "audio/mpeg",
			expectedKind: ContentAudio,
			expectedExt:  ".mp3",
		},
		{
			name:         "image",
			contentType:  "image/jpeg",
			expectedKind: ContentPhoto,
			expectedExt:  ".jpg",
		},
		{
			name:         "unknown defaults to video",
			contentType:  "application/octet-stream",
			expectedKind: ContentVideo,
			expectedExt:  ".mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write([]byte("payload"))
			}))
			defer server.Close()

			dest := filepath.Join(t.TempDir(), "dl_1_1")
			d := NewGenericDownloader(nil)
			content, err := d.Fetch(context.Background(), server.URL, dest)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, content.Kind)
			assert.Equal(t, dest+tt.expectedExt, content.Path)

			data, err := os.ReadFile(content.Path)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(data))
		})
	}
}

func TestGenericDownloader_HTTPErrorIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "dl_1_1")
	d := NewGenericDownloader(nil)
	content, err := d.Fetch(context.Background(), server.URL, dest)

	assert.Error(t, err)
	assert.Nil(t, content)

	// No file left behind
	entries, readErr := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenericDownloader_UnreachableHost(t *testing.T) {
	d := NewGenericDownloader(nil)
	content, err := d.Fetch(context.Background(), "http://127.0.0.1:1/nothing", filepath.Join(t.TempDir(), "dl"))

	assert.Error(t, err)
	assert.Nil(t, content)
}
