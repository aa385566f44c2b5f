package handler

import (
	"net/http"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/service"
	"alsayed-store/internal/validation"

	"github.com/rs/zerolog"
)

// CheckoutHandler places orders from the session cart.
type CheckoutHandler struct {
	checkout service.CheckoutService
	carts    CartSource
	tr       *i18n.Translator
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, carts CartSource, tr *i18n.Translator, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		carts:    carts,
		tr:       tr,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

type checkoutResponse struct {
	*model.CheckoutResult
	FormattedTotal string `json:"formattedTotal"`
	Message        string `json:"message"`
}

// PlaceOrder handles POST /api/checkout.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form validation.CheckoutForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.tr, h.logger)
		return
	}

	req := &service.CheckoutRequest{
		Form: form,
		Cart: h.carts.Get(r.Context(), middleware.SessionFromContext(r.Context())),
	}
	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		req.UserID = &userID
	}

	result, err := h.checkout.PlaceOrder(r.Context(), req)
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	lang := middleware.LanguageFromContext(r.Context())
	writeJSON(w, http.StatusCreated, checkoutResponse{
		CheckoutResult: result,
		FormattedTotal: i18n.FormatPrice(result.Total),
		Message:        h.tr.T(lang, "checkout.success"),
	})
}
