// Package recognition is the client for the audio fingerprint service:
// file recognition, track search, and trending charts.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tunebot/internal/domain"
)

// ErrNoMatch indicates the service answered but recognized nothing.
// Transport or server failures are returned as ordinary errors so callers
// can tell the two apart, even when both end up rendered the same way.
var ErrNoMatch = errors.New("recognition: no match")

// Recognizer is the interface the workflows consume.
type Recognizer interface {
	Recognize(ctx context.Context, filePath string) (*domain.Track, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Track, error)
	Trending(ctx context.Context, limit int) ([]domain.Track, error)
}

// Client talks to a Shazam-style recognition API over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a recognition client for the given API base URL.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// track mirrors the service's track object. Album is not a top-level
// field; it hides in the sections metadata under the "Album" key.
type track struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Key      string `json:"key"`
	Sections []struct {
		Metadata []struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		} `json:"metadata"`
	} `json:"sections"`
}

func (t *track) toDomain() domain.Track {
	album := "Unknown"
	for _, section := range t.Sections {
		for _, meta := range section.Metadata {
			if meta.Title == "Album" && meta.Text != "" {
				album = meta.Text
			}
		}
	}
	return domain.Track{
		Title:  t.Title,
		Artist: t.Subtitle,
		Album:  album,
		ID:     t.Key,
	}
}

// Recognize uploads the file at filePath and returns the recognized
// track, or ErrNoMatch if the service found none.
func (c *Client) Recognize(ctx context.Context, filePath string) (*domain.Track, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/recognize", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognize request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognize: HTTP %d", resp.StatusCode)
	}

	var result struct {
		Track *track `json:"track"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode recognize response: %w", err)
	}
	if result.Track == nil {
		return nil, ErrNoMatch
	}

	t := result.Track.toDomain()
	return &t, nil
}

// Search returns up to limit tracks matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	return c.listTracks(ctx, c.baseURL+"/v1/search?"+params.Encode())
}

// Trending returns up to limit tracks from the world chart.
func (c *Client) Trending(ctx context.Context, limit int) ([]domain.Track, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return c.listTracks(ctx, c.baseURL+"/v1/trending?"+params.Encode())
}

func (c *Client) listTracks(ctx context.Context, u string) ([]domain.Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track list: HTTP %d", resp.StatusCode)
	}

	var result struct {
		Tracks []track `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode track list: %w", err)
	}

	tracks := make([]domain.Track, 0, len(result.Tracks))
	for i := range result.Tracks {
		tracks = append(tracks, result.Tracks[i].toDomain())
	}
	return tracks, nil
}
