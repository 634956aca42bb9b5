package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/domain"
	"tunebot/internal/service"
	"tunebot/internal/texts"
)

// handleEditFile records the file a user sent while an edit session is
// open. A second file simply overwrites a pending one.
func (h *Handler) handleEditFile(c tele.Context, media domain.Media) error {
	userID := c.Sender().ID
	lang := h.sessions.Get(userID).Language

	if !media.Editable() {
		return c.Reply(texts.Get(lang, texts.SendAudio))
	}

	name := safeFileName(media.FileName)
	path := filepath.Join(h.tempDir,
		fmt.Sprintf("edit_%d_%d_%s", userID, c.Message().ID, name))

	if err := h.bot.Download(&tele.File{FileID: media.FileID}, path); err != nil {
		h.logger.Error("Failed to download file for editing",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Reply(texts.Get(lang, texts.DownloadFailed))
	}

	h.sessions.BeginEdit(userID, path, name)
	return c.Reply(texts.Get(lang, texts.EditStarted))
}

// safeFileName strips any path components from a client-supplied file
// name so the transient file always lands inside the working directory.
func safeFileName(name string) string {
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "/" {
		return "audio"
	}
	return name
}

// handleMetadataText applies the user's replacement tags to the pending
// edit file. On rejection (bad format, wrong extension, writer failure)
// the edit session stays open so the user can retry without re-sending
// the file.
func (h *Handler) handleMetadataText(c tele.Context, text string) error {
	userID := c.Sender().ID
	sess := h.sessions.Get(userID)
	lang := sess.Language

	if sess.Edit == nil || sess.Edit.FilePath == "" {
		// Edit session opened but no file received yet.
		return c.Reply(texts.Get(lang, texts.EditMetadata))
	}

	meta, err := service.ParseMetadata(text)
	if err != nil {
		return c.Reply(texts.Get(lang, texts.InvalidMetadata))
	}

	if err := h.editor.Apply(sess.Edit.FilePath, *meta); err != nil {
		if errors.Is(err, service.ErrUnsupportedFile) || errors.Is(err, service.ErrEditingDisabled) {
			h.logger.Info("Tag write rejected",
				zap.Int64("user_id", userID),
				zap.String("file", sess.Edit.FileName),
				zap.Error(err),
			)
		} else {
			h.logger.Error("Tag write failed",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return c.Reply(texts.Get(lang, texts.DownloadFailed))
	}

	audio := &tele.Audio{
		File:     tele.FromDisk(sess.Edit.FilePath),
		FileName: sess.Edit.FileName,
	}
	if err := c.Send(audio); err != nil {
		h.logger.Error("Failed to send edited file",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Reply(texts.Get(lang, texts.DownloadFailed))
	}

	h.sessions.EndEdit(userID)
	os.Remove(sess.Edit.FilePath)

	return c.Reply(texts.Get(lang, texts.MetadataUpdated))
}
