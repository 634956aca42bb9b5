package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/domain"
)

// inlineResultLimit caps inline answers per Telegram conventions.
const inlineResultLimit = 10

// handleInline answers inline queries: trending tracks for an empty
// query, search matches otherwise. Search failures degrade to an empty
// answer; an empty result set is a valid outcome.
func (h *Handler) handleInline(c tele.Context) error {
	query := strings.TrimSpace(c.Query().Text)
	ctx := context.Background()

	var (
		tracks   []domain.Track
		err      error
		trending bool
	)
	if query == "" {
		trending = true
		tracks, err = h.music.Trending(ctx, inlineResultLimit)
	} else {
		tracks, err = h.music.Search(ctx, query, inlineResultLimit)
	}
	if err != nil {
		h.logger.Error("Inline search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		tracks = nil
	}

	results := make(tele.Results, 0, len(tracks))
	for i, track := range tracks {
		results = append(results, inlineResult(i, track, trending))
	}

	// Short cache and personal scope keep one user's results from being
	// served to another.
	return c.Answer(&tele.QueryResponse{
		Results:    results,
		CacheTime:  1,
		IsPersonal: true,
	})
}

func inlineResult(i int, track domain.Track, trending bool) *tele.ArticleResult {
	description := track.Artist
	body := fmt.Sprintf("🎵 *%s*\n👤 %s\n🔗 [Listen on Shazam](https://www.shazam.com/track/%s)",
		track.Title, track.Artist, track.ID)
	if trending {
		description = "Trending track"
		body = fmt.Sprintf("🔥 Trending: *%s*\n👤 %s\n🔗 [Listen on Shazam](https://www.shazam.com/track/%s)",
			track.Title, track.Artist, track.ID)
	}

	result := &tele.ArticleResult{
		Title:       fmt.Sprintf("%s - %s", track.Title, track.Artist),
		Description: description,
		Text:        body,
	}
	result.ParseMode = tele.ModeMarkdown
	result.SetResultID(strconv.Itoa(i))
	return result
}
