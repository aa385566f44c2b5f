package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alsayed-store/internal/cart"
	"alsayed-store/internal/catalog"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/service"
	"alsayed-store/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	srv      http.Handler
	registry *cart.Registry
	session  string
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	provider := catalog.NewProvider(nil, zerolog.Nop())
	provider.Replace(testProducts())

	registry := cart.NewRegistry(storage.NewMemoryStore(), provider, zerolog.Nop())
	h := NewCartHandler(
		registry,
		service.NewProductService(provider, zerolog.Nop()),
		service.ShippingPolicy{FreeShippingThreshold: decimal.NewFromInt(300), Fee: decimal.NewFromInt(25)},
		testTranslator(t),
		zerolog.Nop(),
	)

	srv := testServer(noLanguages{}, func(r chi.Router) {
		r.Get("/api/cart", h.Get)
		r.Delete("/api/cart", h.Clear)
		r.Post("/api/cart/items", h.AddItem)
		r.Patch("/api/cart/items", h.UpdateItem)
		r.Delete("/api/cart/items", h.RemoveItem)
		r.Post("/api/cart/open", h.Open)
		r.Post("/api/cart/close", h.Close)
		r.Post("/api/cart/toggle", h.Toggle)
	})

	return &cartFixture{srv: srv, registry: registry, session: uuid.NewString()}
}

func (f *cartFixture) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.SessionHeader, f.session)
	return do(f.srv, req)
}

func TestCartHandler_AddAndRead(t *testing.T) {
	f := newCartFixture(t)

	w := f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[cartView](t, f.request(http.MethodGet, "/api/cart", "").Body)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, "Amber Night", got.Items[0].Name)
	assert.Equal(t, 3, got.Count)
	assert.True(t, decimal.NewFromInt(300).Equal(got.Subtotal))
	assert.True(t, got.Shipping.IsZero(), "free shipping at the threshold")
	assert.Equal(t, "$300.00", got.FormattedTotal)
}

func TestCartHandler_ShippingPreview(t *testing.T) {
	f := newCartFixture(t)

	empty := decodeBody[cartView](t, f.request(http.MethodGet, "/api/cart", "").Body)
	assert.True(t, empty.Shipping.IsZero())
	assert.NotNil(t, empty.Items)

	w := f.request(http.MethodPost, "/api/cart/items", `{"productId":"P002","size":"50ml"}`)
	got := decodeBody[cartView](t, w.Body)
	assert.True(t, decimal.NewFromInt(25).Equal(got.Shipping))
	assert.True(t, decimal.NewFromInt(124).Equal(got.Total))
}

func TestCartHandler_AddItemErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{"invalid json", `{"productId":`, http.StatusBadRequest, model.ErrCodeInvalidJSON},
		{"unknown field", `{"productId":"P001","size":"50ml","price":"1"}`, http.StatusBadRequest, model.ErrCodeInvalidJSON},
		{"missing size", `{"productId":"P001"}`, http.StatusBadRequest, model.ErrCodeMissingField},
		{"unknown product", `{"productId":"P404","size":"50ml"}`, http.StatusNotFound, model.ErrCodeProductNotFound},
		{"unknown size", `{"productId":"P001","size":"5ml"}`, http.StatusNotFound, model.ErrCodeSizeNotFound},
		{"negative quantity", `{"productId":"P001","size":"50ml","quantity":-2}`, http.StatusBadRequest, model.ErrCodeInvalidQuantity},
		{"quantity above line limit", `{"productId":"P001","size":"50ml","quantity":100}`, http.StatusBadRequest, model.ErrCodeInvalidQuantity},
		{"max int quantity", `{"productId":"P001","size":"50ml","quantity":9223372036854775807}`, http.StatusBadRequest, model.ErrCodeInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)

			w := f.request(http.MethodPost, "/api/cart/items", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeBody[model.ErrorResponse](t, w.Body)
			assert.Equal(t, tt.expectedCode, resp.Error)

			st := f.registry.Get(context.Background(), f.session).State()
			assert.True(t, st.IsEmpty())
		})
	}
}

func TestCartHandler_LineQuantityLimit(t *testing.T) {
	f := newCartFixture(t)

	w := f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml","quantity":99}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ErrCodeInvalidQuantity, decodeBody[model.ErrorResponse](t, w.Body).Error)

	w = f.request(http.MethodPatch, "/api/cart/items", `{"productId":"P001","size":"50ml","quantity":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got := decodeBody[cartView](t, f.request(http.MethodGet, "/api/cart", "").Body)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 99, got.Items[0].Quantity)
	assert.Equal(t, 99, got.Count)
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	f := newCartFixture(t)
	f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml"}`)
	f.request(http.MethodPost, "/api/cart/items", `{"productId":"P002","size":"50ml"}`)

	got := decodeBody[cartView](t, f.request(http.MethodPatch, "/api/cart/items", `{"productId":"P001","size":"50ml","quantity":4}`).Body)
	assert.Equal(t, 5, got.Count)

	got = decodeBody[cartView](t, f.request(http.MethodPatch, "/api/cart/items", `{"productId":"P001","size":"50ml","quantity":0}`).Body)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "P002", got.Items[0].ProductID)

	w := f.request(http.MethodDelete, "/api/cart/items", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got = decodeBody[cartView](t, f.request(http.MethodDelete, "/api/cart/items?productId=P002&size=50ml", "").Body)
	assert.Empty(t, got.Items)
}

func TestCartHandler_ClearAndVisibility(t *testing.T) {
	f := newCartFixture(t)
	f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml"}`)

	got := decodeBody[cartView](t, f.request(http.MethodPost, "/api/cart/open", "").Body)
	assert.True(t, got.IsOpen)

	got = decodeBody[cartView](t, f.request(http.MethodPost, "/api/cart/toggle", "").Body)
	assert.False(t, got.IsOpen)

	got = decodeBody[cartView](t, f.request(http.MethodPost, "/api/cart/toggle", "").Body)
	assert.True(t, got.IsOpen)

	got = decodeBody[cartView](t, f.request(http.MethodPost, "/api/cart/close", "").Body)
	assert.False(t, got.IsOpen)

	got = decodeBody[cartView](t, f.request(http.MethodDelete, "/api/cart", "").Body)
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.Count)
}

func TestCartHandler_SessionsAreIsolated(t *testing.T) {
	f := newCartFixture(t)
	f.request(http.MethodPost, "/api/cart/items", `{"productId":"P001","size":"50ml"}`)

	other := *f
	other.session = uuid.NewString()

	got := decodeBody[cartView](t, other.request(http.MethodGet, "/api/cart", "").Body)
	assert.Empty(t, got.Items)

	got = decodeBody[cartView](t, f.request(http.MethodGet, "/api/cart", "").Body)
	assert.Len(t, got.Items, 1)
}
