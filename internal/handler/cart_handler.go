package handler

import (
	"context"
	"net/http"

	"alsayed-store/internal/cart"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartSource returns the cart of a session.
type CartSource interface {
	Get(ctx context.Context, session string) *cart.Store
}

// CartHandler handles the session cart.
type CartHandler struct {
	carts    CartSource
	products service.ProductService
	shipping service.ShippingPolicy
	tr       *i18n.Translator
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	carts CartSource,
	products service.ProductService,
	shipping service.ShippingPolicy,
	tr *i18n.Translator,
	logger zerolog.Logger,
) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		shipping: shipping,
		tr:       tr,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

type cartLineView struct {
	ProductID string          `json:"productId"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartView struct {
	Items          []cartLineView  `json:"items"`
	Count          int             `json:"count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Shipping       decimal.Decimal `json:"shipping"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
	IsOpen         bool            `json:"isOpen"`
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) store(r *http.Request) *cart.Store {
	return h.carts.Get(r.Context(), middleware.SessionFromContext(r.Context()))
}

func (h *CartHandler) render(w http.ResponseWriter, r *http.Request, status int, st *cart.Store) {
	lang := middleware.LanguageFromContext(r.Context())
	state := st.State()

	lines := st.Detailed()
	items := make([]cartLineView, 0, len(lines))
	for _, l := range lines {
		v := cartLineView{
			ProductID: l.ProductID,
			Slug:      l.Product.Slug,
			Name:      l.Product.Name(string(lang)),
			Size:      l.Size,
			Quantity:  l.Quantity,
			Price:     l.Price,
			LineTotal: l.LineTotal(),
		}
		if len(l.Product.Images) > 0 {
			v.Image = l.Product.Images[0]
		}
		items = append(items, v)
	}

	subtotal := state.Total()
	shipping := decimal.Zero
	if !state.IsEmpty() {
		shipping = h.shipping.ShippingFor(subtotal)
	}
	total := subtotal.Add(shipping)

	writeJSON(w, status, cartView{
		Items:          items,
		Count:          state.Count(),
		Subtotal:       subtotal,
		Shipping:       shipping,
		Total:          total,
		FormattedTotal: i18n.FormatPrice(total),
		IsOpen:         state.IsOpen,
	})
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.store(r))
}

// AddItem handles POST /api/cart/items. The unit price is taken from the
// catalogue, never from the client. Quantity defaults to 1.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.tr, h.logger)
		return
	}
	if req.ProductID == "" || req.Size == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, h.tr, h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	size, err := h.products.ResolveSize(r.Context(), req.ProductID, req.Size)
	if err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	st := h.store(r)
	if _, err := st.AddItem(r.Context(), req.ProductID, req.Size, size.Price, req.Quantity); err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}

	h.render(w, r, http.StatusOK, st)
}

// UpdateItem handles PATCH /api/cart/items. A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.tr, h.logger)
		return
	}
	if req.ProductID == "" || req.Size == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, h.tr, h.logger)
		return
	}

	st := h.store(r)
	if _, err := st.UpdateQuantity(r.Context(), req.ProductID, req.Size, req.Quantity); err != nil {
		handleError(w, r, err, h.tr, h.logger)
		return
	}
	h.render(w, r, http.StatusOK, st)
}

// RemoveItem handles DELETE /api/cart/items?productId=&size=.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	size := r.URL.Query().Get("size")
	if productID == "" || size == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, h.tr, h.logger)
		return
	}

	st := h.store(r)
	st.RemoveItem(r.Context(), productID, size)
	h.render(w, r, http.StatusOK, st)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	st := h.store(r)
	st.Clear(r.Context())
	h.render(w, r, http.StatusOK, st)
}

// Open handles POST /api/cart/open.
func (h *CartHandler) Open(w http.ResponseWriter, r *http.Request) {
	st := h.store(r)
	st.Open(r.Context())
	h.render(w, r, http.StatusOK, st)
}

// Close handles POST /api/cart/close.
func (h *CartHandler) Close(w http.ResponseWriter, r *http.Request) {
	st := h.store(r)
	st.Close(r.Context())
	h.render(w, r, http.StatusOK, st)
}

// Toggle handles POST /api/cart/toggle.
func (h *CartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	st := h.store(r)
	st.Toggle(r.Context())
	h.render(w, r, http.StatusOK, st)
}
