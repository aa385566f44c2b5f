package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/cart"
	"alsayed-store/internal/catalog"
	"alsayed-store/internal/handler"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/metrics"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/notify"
	"alsayed-store/internal/repository"
	"alsayed-store/internal/router"
	"alsayed-store/internal/service"
	"alsayed-store/internal/storage"
	"alsayed-store/internal/validation"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "test-api-key"
	testJWTSecret = "integration-secret"
)

type testServer struct {
	handler    http.Handler
	redis      *miniredis.Miniredis
	dispatcher *notify.Dispatcher
}

func setupTestServer(t *testing.T, testDB *TestDB) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	// Initialize repositories
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	provider := catalog.NewProvider(productRepo, logger)
	require.NoError(t, provider.Load(ctx))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessions := storage.NewRedisStore(client, time.Hour, logger)

	carts := cart.NewRegistry(sessions, provider, logger)
	tr, err := i18n.NewTranslator(i18n.English)
	require.NoError(t, err)
	prefs := i18n.NewPreferences(sessions, i18n.English, logger)
	m := metrics.New(prometheus.NewRegistry())
	dispatcher := notify.NewDispatcher(notify.NewLogNotifier(logger), time.Second, m, logger)

	// Initialize services
	shipping := service.ShippingPolicy{FreeShippingThreshold: decimal.NewFromInt(300), Fee: decimal.NewFromInt(25)}
	products := service.NewProductService(provider, logger)
	checkout := service.NewCheckoutService(orderRepo, provider, validation.New(),
		service.NewOrderNumberGenerator("ALS"), dispatcher, m, shipping, logger)

	h := router.New(router.Handlers{
		Health:   handler.NewHealthHandler(testDB.Pool, provider, logger),
		Product:  handler.NewProductHandler(products, tr, logger),
		Cart:     handler.NewCartHandler(carts, products, shipping, tr, logger),
		Checkout: handler.NewCheckoutHandler(checkout, carts, tr, logger),
		Order: handler.NewOrderHandler(service.NewTrackingService(orderRepo, tr, logger),
			service.NewOrderService(orderRepo, logger), tr, logger),
		Language: handler.NewLanguageHandler(prefs, tr, logger),
		Country:  handler.NewCountryHandler(tr, logger),
	}, router.Options{
		APIKey:          testAPIKey,
		Languages:       prefs,
		DefaultLanguage: i18n.English,
		Verifier:        auth.NewVerifier(testJWTSecret),
		Metrics:         m,
	}, logger)

	return &testServer{handler: h, redis: mr, dispatcher: dispatcher}
}

// call sends a request for session with an optional JSON body and bearer token.
func (s *testServer) call(t *testing.T, method, path, session, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, session)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return s
}

func checkoutForm() validation.CheckoutForm {
	return validation.CheckoutForm{
		FirstName:     "Lina",
		LastName:      "Haddad",
		Email:         "lina@example.com",
		Phone:         "+971 50 123 4567",
		Address:       "Villa 12, Jumeirah Beach Road",
		City:          "Dubai",
		Country:       "AE",
		Notes:         "Leave at reception",
		PaymentMethod: "bank",
	}
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedProducts(t, testDB.Pool)
	server := setupTestServer(t, testDB)
	session := uuid.NewString()

	t.Run("GET /api/products returns newest first", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/products", session, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 2)
		assert.Equal(t, "P002", products[0].ID)
	})

	t.Run("GET /api/products?featured=true", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/products?featured=true", session, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 1)
		assert.Equal(t, "oud-royal", products[0].Slug)
	})

	t.Run("GET /api/products/{slug} not found", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/products/unknown", session, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCheckoutFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedProducts(t, testDB.Pool)
	server := setupTestServer(t, testDB)

	session := uuid.NewString()
	userID := uuid.New()
	token := signToken(t, userID)

	// 180 + 99 = 279, below the free shipping threshold
	w := server.call(t, http.MethodPost, "/api/cart/items", session, "", map[string]interface{}{"productId": "P001", "size": "50ml"})
	require.Equal(t, http.StatusOK, w.Code)
	w = server.call(t, http.MethodPost, "/api/cart/items", session, "", map[string]interface{}{"productId": "P002", "size": "50ml"})
	require.Equal(t, http.StatusOK, w.Code)

	persisted, err := server.redis.Get(cart.KeyPrefix + session)
	require.NoError(t, err)
	assert.Contains(t, persisted, `"productId":"P001"`)

	w = server.call(t, http.MethodPost, "/api/checkout", session, token, checkoutForm())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed model.CheckoutResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&placed))
	assert.Regexp(t, `^ALS-[0-9A-Z]+-[0-9A-Z]{5}$`, placed.OrderNumber)
	assert.True(t, decimal.NewFromInt(279).Equal(placed.Subtotal))
	assert.True(t, decimal.NewFromInt(25).Equal(placed.Shipping))
	assert.True(t, decimal.NewFromInt(304).Equal(placed.Total))
	assert.Equal(t, "Bank Transfer", placed.PaymentMethod)
	require.NoError(t, server.dispatcher.Wait(context.Background()))

	t.Run("cart is cleared", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/cart", session, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("order can be tracked by a lower-case number", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/orders/track/"+lower(placed.OrderNumber), uuid.NewString(), "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var tracking model.OrderTracking
		require.NoError(t, json.NewDecoder(w.Body).Decode(&tracking))
		assert.Equal(t, model.StatusPending, tracking.Order.Status)
		assert.Equal(t, 0, tracking.StageIndex)
		assert.Equal(t, "United Arab Emirates", tracking.Order.ShippingRegion)
		require.Len(t, tracking.Items, 2)
		assert.Equal(t, "Oud Royal", tracking.Items[0].ProductName)
		assert.Equal(t, "Rose Musk", tracking.Items[1].ProductName)
	})

	t.Run("order shows in the user's history", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/profile/orders", uuid.NewString(), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []model.OrderWithItems
		require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
		require.Len(t, orders, 1)
		assert.Equal(t, placed.OrderNumber, orders[0].OrderNumber)
		assert.Len(t, orders[0].Items, 2)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		w := server.call(t, http.MethodPost, "/api/checkout", session, "", checkoutForm())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), model.ErrCodeEmptyCart)
	})

	t.Run("unknown order number", func(t *testing.T) {
		w := server.call(t, http.MethodGet, "/api/orders/track/ALS-NOPE-00000", session, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCheckoutValidation_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedProducts(t, testDB.Pool)
	server := setupTestServer(t, testDB)
	session := uuid.NewString()

	w := server.call(t, http.MethodPost, "/api/cart/items", session, "", map[string]interface{}{"productId": "P002", "size": "50ml"})
	require.Equal(t, http.StatusOK, w.Code)

	form := checkoutForm()
	form.Phone = "call me"
	form.PaymentMethod = "card"

	w = server.call(t, http.MethodPost, "/api/checkout", session, "", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeValidationFailed, resp.Error)
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "paymentMethod")

	// the cart survives a rejected checkout
	w = server.call(t, http.MethodGet, "/api/cart", session, "", nil)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		w := httptest.NewRecorder()

		server.handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})
}

func lower(s string) string {
	return string(bytes.ToLower([]byte(s)))
}
