// Package notify sends order confirmation messages through the hosted
// email function. Delivery is best effort: failures never undo an order.
package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

// Item is one purchased line as shown in the confirmation email.
type Item struct {
	ProductName string
	Size        string
	Quantity    int
	Price       decimal.Decimal
}

// Confirmation carries everything the email template needs.
type Confirmation struct {
	CustomerName    string
	CustomerEmail   string
	OrderNumber     string
	Items           []Item
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
}

// Notifier delivers order confirmations.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, c Confirmation) error
}
