package handler

import (
	"context"
	"net/http"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"

	"github.com/rs/zerolog"
)

// LanguageStore saves a session's language choice.
type LanguageStore interface {
	Set(ctx context.Context, session string, lang i18n.Lang) error
}

// LanguageHandler reads and changes the session language.
type LanguageHandler struct {
	prefs  LanguageStore
	tr     *i18n.Translator
	logger zerolog.Logger
}

// NewLanguageHandler creates a new language handler.
func NewLanguageHandler(prefs LanguageStore, tr *i18n.Translator, logger zerolog.Logger) *LanguageHandler {
	return &LanguageHandler{
		prefs:  prefs,
		tr:     tr,
		logger: logger.With().Str("handler", "language").Logger(),
	}
}

type languageView struct {
	Language i18n.Lang `json:"language"`
	Dir      string    `json:"dir"`
	IsRTL    bool      `json:"isRTL"`
}

func viewOf(lang i18n.Lang) languageView {
	return languageView{Language: lang, Dir: lang.Dir(), IsRTL: lang.IsRTL()}
}

// Get handles GET /api/language.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(middleware.LanguageFromContext(r.Context())))
}

// Set handles PUT /api/language.
func (h *LanguageHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.tr, h.logger)
		return
	}

	lang, ok := i18n.Parse(req.Language)
	if !ok {
		handleError(w, r, model.ErrInvalidLanguage, h.tr, h.logger)
		return
	}

	if err := h.prefs.Set(r.Context(), middleware.SessionFromContext(r.Context()), lang); err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	w.Header().Set("Content-Language", string(lang))
	writeJSON(w, http.StatusOK, viewOf(lang))
}
