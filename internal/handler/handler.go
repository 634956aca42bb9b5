package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/service"
	"tunebot/internal/session"
)

// botClient is the slice of the bot API the workflows call.
// *tele.Bot implements it.
type botClient interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
	Reply(to *tele.Message, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Download(file *tele.File, localFilename string) error
}

// Handler wires every bot interaction: it classifies each incoming
// update and dispatches it to exactly one workflow.
type Handler struct {
	bot       botClient
	sessions  *session.Store
	music     *service.MusicService
	editor    *service.EditService
	downloads *service.DownloadService
	tempDir   string
	logger    *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(
	bot botClient,
	sessions *session.Store,
	music *service.MusicService,
	editor *service.EditService,
	downloads *service.DownloadService,
	tempDir string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		sessions:  sessions,
		music:     music,
		editor:    editor,
		downloads: downloads,
		tempDir:   tempDir,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers. Classification order is
// load-bearing: commands, then language callbacks, then media (edit mode
// first, recognition second), then text (edit mode first, links second),
// then inline queries. Anything else is dropped without a reply.
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/language", h.handleLanguage)
	h.bot.Handle("/edit_metadata", h.handleEditMetadata)

	// Language selection buttons
	h.bot.Handle(&tele.Btn{Unique: btnLangUnique}, h.handleLanguageSelect)
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Media attachments
	for _, event := range []string{
		tele.OnAudio, tele.OnVoice, tele.OnVideo, tele.OnVideoNote, tele.OnDocument,
	} {
		h.bot.Handle(event, h.handleMedia)
	}

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline queries
	h.bot.Handle(tele.OnQuery, h.handleInline)
}

// handleText routes free text: metadata input while an edit session is
// open, links by the literal http prefix, everything else dropped.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if h.sessions.IsEditing(userID) {
		return h.handleMetadataText(c, text)
	}
	if strings.HasPrefix(text, "http") {
		return h.handleLink(c, text)
	}
	return nil
}

// cleanCallbackData removes all non-printable characters from callback data.
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// editMessage edits msg in place, falling back to a plain send when the
// edit is rejected (e.g. the message was already replaced).
func (h *Handler) editMessage(c tele.Context, msg *tele.Message, text string, opts ...interface{}) error {
	if _, err := h.bot.Edit(msg, text, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Send(text, opts...)
	}
	return nil
}
