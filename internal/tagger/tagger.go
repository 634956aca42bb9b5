// Package tagger writes ID3 tags to MP3 files.
package tagger

import (
	"fmt"

	"github.com/bogem/id3v2"

	"tunebot/internal/domain"
)

// Writer applies a replacement tag set to a local audio file.
type Writer interface {
	Write(filePath string, meta domain.TrackMetadata) error
}

// ID3Writer writes ID3v2 frames (TIT2, TPE1, TALB) to MP3 files.
// Other container formats are not supported.
type ID3Writer struct{}

// NewID3Writer creates an ID3 tag writer.
func NewID3Writer() *ID3Writer {
	return &ID3Writer{}
}

// Write opens the file's tag (creating one if the file has none), sets
// title, artist and album, and saves. The save either succeeds as a
// whole or returns an error; partial-write recovery is the caller's
// concern.
func (w *ID3Writer) Write(filePath string, meta domain.TrackMetadata) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	tag.SetTitle(meta.Title)
	tag.SetArtist(meta.Artist)
	tag.SetAlbum(meta.Album)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}
