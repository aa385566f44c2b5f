package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is the tag submitted by the checkout form.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentBankTransfer   PaymentMethod = "bank"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentBankTransfer
}

// Label returns the human-readable label stored on the order.
func (m PaymentMethod) Label() string {
	if m == PaymentBankTransfer {
		return "Bank Transfer"
	}
	return "Cash on Delivery"
}

// Order represents a placed customer order.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderNumber     string          `json:"orderNumber" db:"order_number"`
	UserID          *uuid.UUID      `json:"userId,omitempty" db:"user_id"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping" db:"shipping"`
	Total           decimal.Decimal `json:"total" db:"total"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	ShippingName    string          `json:"shippingName" db:"shipping_name"`
	ShippingPhone   string          `json:"shippingPhone" db:"shipping_phone"`
	ShippingEmail   string          `json:"shippingEmail" db:"shipping_email"`
	ShippingAddress string          `json:"shippingAddress" db:"shipping_address"`
	ShippingRegion  string          `json:"shippingRegion" db:"shipping_region"`
	ShippingCity    *string         `json:"shippingCity,omitempty" db:"shipping_city"`
	Notes           *string         `json:"notes,omitempty" db:"notes"`
	Status          OrderStatus     `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line snapshot taken when the order was placed.
// It is independent of later catalogue changes.
type OrderItem struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OrderID     uuid.UUID       `json:"-" db:"order_id"`
	ProductID   string          `json:"productId" db:"product_id"`
	ProductName string          `json:"productName" db:"product_name"`
	Size        string          `json:"size" db:"size"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// LineTotal returns price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderWithItems is an order header together with its line snapshots.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}
