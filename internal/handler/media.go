package handler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/domain"
	"tunebot/internal/recognition"
	"tunebot/internal/texts"
)

// mediaFromMessage maps a message's attachment onto the closed media
// variant. Exactly one attachment field is set per Telegram message.
func mediaFromMessage(m *tele.Message) (domain.Media, bool) {
	switch {
	case m.Audio != nil:
		return domain.Media{
			Kind:     domain.MediaAudio,
			Size:     m.Audio.FileSize,
			FileID:   m.Audio.FileID,
			FileName: m.Audio.FileName,
		}, true
	case m.Voice != nil:
		return domain.Media{
			Kind:   domain.MediaVoice,
			Size:   m.Voice.FileSize,
			FileID: m.Voice.FileID,
		}, true
	case m.Video != nil:
		return domain.Media{
			Kind:     domain.MediaVideo,
			Size:     m.Video.FileSize,
			FileID:   m.Video.FileID,
			FileName: m.Video.FileName,
		}, true
	case m.VideoNote != nil:
		return domain.Media{
			Kind:   domain.MediaVideoNote,
			Size:   m.VideoNote.FileSize,
			FileID: m.VideoNote.FileID,
		}, true
	case m.Document != nil:
		return domain.Media{
			Kind:     domain.MediaDocument,
			Size:     m.Document.FileSize,
			FileID:   m.Document.FileID,
			FileName: m.Document.FileName,
		}, true
	default:
		return domain.Media{}, false
	}
}

// handleMedia routes an attachment: to the edit workflow when an edit
// session is open (no size check there), otherwise to recognition after
// the size gate.
func (h *Handler) handleMedia(c tele.Context) error {
	userID := c.Sender().ID

	media, ok := mediaFromMessage(c.Message())
	if !ok {
		return nil
	}

	if h.sessions.IsEditing(userID) {
		return h.handleEditFile(c, media)
	}

	lang := h.sessions.Get(userID).Language
	if media.TooLarge() {
		return c.Reply(texts.Get(lang, texts.FileTooLarge))
	}
	return h.recognizeMedia(c, media)
}

// recognizeMedia runs the recognition workflow: placeholder reply,
// transient local copy, recognizer call, in-place result edit. The local
// copy is removed before the result is even looked at.
func (h *Handler) recognizeMedia(c tele.Context, media domain.Media) error {
	userID := c.Sender().ID
	lang := h.sessions.Get(userID).Language

	placeholder, err := h.bot.Reply(c.Message(), texts.Get(lang, texts.Processing))
	if err != nil {
		return err
	}

	path := filepath.Join(h.tempDir, fmt.Sprintf("rec_%d_%d.tmp", userID, c.Message().ID))
	if err := h.bot.Download(&tele.File{FileID: media.FileID}, path); err != nil {
		h.logger.Error("Failed to download media for recognition",
			zap.Int64("user_id", userID),
			zap.String("kind", media.Kind.String()),
			zap.Error(err),
		)
		return h.editMessage(c, placeholder, texts.Get(lang, texts.NoMatch))
	}

	track, err := h.music.Identify(context.Background(), path)
	os.Remove(path)

	if err != nil {
		// NoMatch and transient failures render identically; only the
		// latter is worth an error log.
		if errors.Is(err, recognition.ErrNoMatch) {
			h.logger.Info("No recognition match", zap.Int64("user_id", userID))
		} else {
			h.logger.Error("Recognition failed",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return h.editMessage(c, placeholder, texts.Get(lang, texts.NoMatch))
	}

	h.logger.Info("Track recognized",
		zap.Int64("user_id", userID),
		zap.String("title", track.Title),
		zap.String("artist", track.Artist),
	)
	return h.editMessage(c, placeholder, texts.RenderResult(lang, track), tele.ModeMarkdown)
}
