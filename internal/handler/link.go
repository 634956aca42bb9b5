package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/download"
	"tunebot/internal/texts"
)

// handleLink runs the download workflow for a message that starts with
// http: placeholder reply, platform-routed fetch, typed media send.
func (h *Handler) handleLink(c tele.Context, url string) error {
	userID := c.Sender().ID
	lang := h.sessions.Get(userID).Language

	placeholder, err := h.bot.Reply(c.Message(), texts.Get(lang, texts.Downloading))
	if err != nil {
		return err
	}

	dest := filepath.Join(h.tempDir, fmt.Sprintf("dl_%d_%d", userID, c.Message().ID))
	content, err := h.downloads.Fetch(context.Background(), url, dest)
	if err != nil {
		h.logger.Error("Download failed",
			zap.Int64("user_id", userID),
			zap.String("url", url),
			zap.Error(err),
		)
		return h.editMessage(c, placeholder, texts.Get(lang, texts.DownloadFailed))
	}

	if err := h.editMessage(c, placeholder, texts.Get(lang, texts.DownloadDone)); err != nil {
		h.logger.Warn("Failed to update download placeholder", zap.Error(err))
	}

	var sendErr error
	switch content.Kind {
	case download.ContentAudio:
		sendErr = c.Send(&tele.Audio{File: tele.FromDisk(content.Path)})
	case download.ContentPhoto:
		sendErr = c.Send(&tele.Photo{File: tele.FromDisk(content.Path)})
	default:
		sendErr = c.Send(&tele.Video{File: tele.FromDisk(content.Path)})
	}
	os.Remove(content.Path)

	if sendErr != nil {
		h.logger.Error("Failed to send downloaded content",
			zap.Int64("user_id", userID),
			zap.Error(sendErr),
		)
		return h.editMessage(c, placeholder, texts.Get(lang, texts.DownloadFailed))
	}
	return nil
}
