package service

import (
	"context"

	"alsayed-store/internal/cart"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/model"
	"alsayed-store/internal/validation"

	"github.com/google/uuid"
)

// ProductFilter narrows a catalogue listing. Zero values mean no filter.
type ProductFilter struct {
	Category     model.Category
	FeaturedOnly bool
}

// ProductService defines read operations on the catalogue.
type ProductService interface {
	// List returns products matching filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// GetBySlug retrieves a single product by slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// ResolveSize returns the current price of a product size.
	ResolveSize(ctx context.Context, productID, size string) (model.Size, error)
}

// CheckoutRequest is a submitted checkout form together with the shopper's cart.
type CheckoutRequest struct {
	Form   validation.CheckoutForm
	Cart   *cart.Store
	UserID *uuid.UUID
}

// CheckoutService turns a cart into a placed order.
type CheckoutService interface {
	// PlaceOrder validates the request, records the order and clears the cart.
	PlaceOrder(ctx context.Context, req *CheckoutRequest) (*model.CheckoutResult, error)
}

// TrackingService looks up orders by their public order number.
type TrackingService interface {
	// Track returns the order's progress with labels in lang.
	Track(ctx context.Context, orderNumber string, lang i18n.Lang) (*model.OrderTracking, error)
}

// OrderService defines operations on a shopper's own orders.
type OrderService interface {
	// ListForUser returns the user's orders with items, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.OrderWithItems, error)
}
