package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"tunebot/internal/domain"
	"tunebot/internal/texts"
)

// btnLangUnique is the callback unique shared by all language buttons;
// the button payload carries the language code.
const btnLangUnique = "lang"

// handleStart handles /start. The language is reset to the default
// unconditionally; a pending edit session deliberately survives.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.SetLanguage(userID, domain.DefaultLanguage)
	return c.Reply(texts.Get(domain.DefaultLanguage, texts.Start), tele.ModeMarkdown)
}

// handleHelp handles /help.
func (h *Handler) handleHelp(c tele.Context) error {
	lang := h.sessions.Get(c.Sender().ID).Language
	return c.Reply(texts.Get(lang, texts.Help))
}

// handleLanguage handles /language: one button per supported language.
func (h *Handler) handleLanguage(c tele.Context) error {
	lang := h.sessions.Get(c.Sender().ID).Language

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, l := range []domain.Language{domain.LangEN, domain.LangFA} {
		btn := markup.Data(l.DisplayName(), btnLangUnique, string(l))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	return c.Reply(texts.Get(lang, texts.ChooseLanguage), markup)
}

// handleEditMetadata handles /edit_metadata: sends instructions and opens
// an edit session awaiting the file.
func (h *Handler) handleEditMetadata(c tele.Context) error {
	userID := c.Sender().ID
	lang := h.sessions.Get(userID).Language

	h.sessions.StartEdit(userID)
	return c.Reply(texts.Get(lang, texts.EditMetadata))
}

// handleLanguageSelect handles a language button press. Codes outside the
// closed language set are a silent no-op.
func (h *Handler) handleLanguageSelect(c tele.Context) error {
	userID := c.Sender().ID

	lang := domain.Language(cleanCallbackData(c.Data()))
	if !lang.Valid() {
		return nil
	}

	h.sessions.SetLanguage(userID, lang)
	h.logger.Info("Language changed",
		zap.Int64("user_id", userID),
		zap.String("language", string(lang)),
	)

	if err := c.Respond(&tele.CallbackResponse{Text: texts.Get(lang, texts.LangSelected)}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.editMessage(c, c.Message(), texts.Get(lang, texts.Start), tele.ModeMarkdown)
}

// handleCallback catches callbacks whose unique did not route directly
// (some clients strip it) and re-dispatches language selections by data
// prefix. Everything else is acknowledged and ignored.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if callback.Unique == btnLangUnique {
		return h.handleLanguageSelect(c)
	}
	if code, ok := strings.CutPrefix(data, btnLangUnique+"|"); ok {
		if domain.Language(code).Valid() {
			h.sessions.SetLanguage(c.Sender().ID, domain.Language(code))
			return h.editMessage(c, c.Message(),
				texts.Get(domain.Language(code), texts.Start), tele.ModeMarkdown)
		}
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
