package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/model"
	"alsayed-store/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	tr      *i18n.Translator
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, tr *i18n.Translator, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		tr:      tr,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products with optional category and featured filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		h.logger.Debug().Err(err).Msg("bad product filter")
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidQuery, h.tr, h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetBySlug handles GET /api/products/{slug}.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func parseProductFilter(r *http.Request) (service.ProductFilter, error) {
	var f service.ProductFilter
	q := r.URL.Query()
	if c := q.Get("category"); c != "" {
		f.Category = model.Category(c)
		if !f.Category.Valid() {
			return f, fmt.Errorf("unknown category %q", c)
		}
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid featured flag: %w", err)
		}
		f.FeaturedOnly = featured
	}
	return f, nil
}
