package handler

import (
	"net/http"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler serves order tracking and a shopper's order history.
type OrderHandler struct {
	tracking service.TrackingService
	orders   service.OrderService
	tr       *i18n.Translator
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(tracking service.TrackingService, orders service.OrderService, tr *i18n.Translator, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		tracking: tracking,
		orders:   orders,
		tr:       tr,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Track handles GET /api/orders/track/{orderNumber}.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LanguageFromContext(r.Context())

	tracking, err := h.tracking.Track(r.Context(), chi.URLParam(r, "orderNumber"), lang)
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tracking)
}

// ListMine handles GET /api/profile/orders.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, model.ErrUnauthorised, h.tr, h.logger)
		return
	}

	orders, err := h.orders.ListForUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
