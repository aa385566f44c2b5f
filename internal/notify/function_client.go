package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// payload matches the request body of the send-order-confirmation function.
// Amounts are JSON numbers.
type payload struct {
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	OrderNumber     string        `json:"orderNumber"`
	Items           []payloadItem `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Shipping        float64       `json:"shipping"`
	Total           float64       `json:"total"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
}

type payloadItem struct {
	ProductName string  `json:"productName"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func newPayload(c Confirmation) payload {
	items := make([]payloadItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = payloadItem{
			ProductName: it.ProductName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Price:       it.Price.InexactFloat64(),
		}
	}
	return payload{
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		OrderNumber:     c.OrderNumber,
		Items:           items,
		Subtotal:        c.Subtotal.InexactFloat64(),
		Shipping:        c.Shipping.InexactFloat64(),
		Total:           c.Total.InexactFloat64(),
		ShippingAddress: c.ShippingAddress,
		PaymentMethod:   c.PaymentMethod,
	}
}

// FunctionClient posts confirmations to an HTTP function endpoint. Calls go
// through a circuit breaker that opens after consecutive failures.
type FunctionClient struct {
	url     string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  zerolog.Logger
}

// NewFunctionClient creates a client for the function at url.
func NewFunctionClient(url, apiKey string, timeout time.Duration, logger zerolog.Logger) *FunctionClient {
	logger = logger.With().Str("component", "notify").Logger()

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "order-confirmation",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("notification circuit breaker state changed")
		},
	})

	return &FunctionClient{
		url:     url,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  logger,
	}
}

// SendOrderConfirmation posts c to the function. Any non-2xx response is an error.
func (f *FunctionClient) SendOrderConfirmation(ctx context.Context, c Confirmation) error {
	body, err := json.Marshal(newPayload(c))
	if err != nil {
		return fmt.Errorf("failed to encode confirmation: %w", err)
	}

	_, err = f.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, f.post(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("order confirmation %s: %w", c.OrderNumber, err)
	}

	f.logger.Debug().Str("order_number", c.OrderNumber).Msg("order confirmation sent")
	return nil
}

func (f *FunctionClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("function returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// LogNotifier only logs confirmations. It is used when no function is configured.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier that writes to logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) SendOrderConfirmation(_ context.Context, c Confirmation) error {
	n.logger.Info().
		Str("order_number", c.OrderNumber).
		Str("email", c.CustomerEmail).
		Str("total", c.Total.StringFixed(2)).
		Int("items", len(c.Items)).
		Msg("order confirmation not sent, notifications disabled")
	return nil
}
