package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageHandler(t *testing.T) {
	prefs := i18n.NewPreferences(storage.NewMemoryStore(), i18n.Arabic, zerolog.Nop())
	h := NewLanguageHandler(prefs, testTranslator(t), zerolog.Nop())
	srv := testServer(prefs, func(r chi.Router) {
		r.Get("/api/language", h.Get)
		r.Put("/api/language", h.Set)
	})
	session := uuid.NewString()

	get := func() languageView {
		req := httptest.NewRequest(http.MethodGet, "/api/language", nil)
		req.Header.Set(middleware.SessionHeader, session)
		w := do(srv, req)
		require.Equal(t, http.StatusOK, w.Code)
		return decodeBody[languageView](t, w.Body)
	}
	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/language", strings.NewReader(body))
		req.Header.Set(middleware.SessionHeader, session)
		return do(srv, req)
	}

	// nothing stored and no Accept-Language: the server default applies
	assert.Equal(t, i18n.English, get().Language)

	w := put(`{"language":"ar"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ar", w.Header().Get("Content-Language"))

	got := get()
	assert.Equal(t, i18n.Arabic, got.Language)
	assert.Equal(t, "rtl", got.Dir)
	assert.True(t, got.IsRTL)

	w = put(`{"language":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ErrCodeInvalidLanguage, decodeBody[model.ErrorResponse](t, w.Body).Error)
	assert.Equal(t, i18n.Arabic, get().Language)

	w = put(`not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
