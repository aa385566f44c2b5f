package handler

import (
	"net/http"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/region"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CountryHandler serves the shipping country table.
type CountryHandler struct {
	tr     *i18n.Translator
	logger zerolog.Logger
}

// NewCountryHandler creates a new country handler.
func NewCountryHandler(tr *i18n.Translator, logger zerolog.Logger) *CountryHandler {
	return &CountryHandler{
		tr:     tr,
		logger: logger.With().Str("handler", "country").Logger(),
	}
}

type countryView struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	PhoneCode string   `json:"phoneCode"`
	Regions   []string `json:"regions"`
}

// List handles GET /api/countries; names follow the request language.
func (h *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := string(middleware.LanguageFromContext(r.Context()))

	all := region.All()
	out := make([]countryView, 0, len(all))
	for _, c := range all {
		out = append(out, countryView{
			Code:      c.Code,
			Name:      c.Name(lang),
			PhoneCode: c.PhoneCode,
			Regions:   region.Regions(c.Code),
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Regions handles GET /api/countries/{code}/regions.
func (h *CountryHandler) Regions(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if _, ok := region.ByCode(code); !ok {
		handleError(w, r, model.ErrCountryNotFound, h.tr, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, region.Regions(code))
}
