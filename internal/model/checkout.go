package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutResult is returned to the shopper after an order is placed.
type CheckoutResult struct {
	OrderID       uuid.UUID       `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []OrderItem     `json:"items"`
}
