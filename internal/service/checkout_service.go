package service

import (
	"context"
	"errors"
	"fmt"

	"alsayed-store/internal/cart"
	"alsayed-store/internal/model"
	"alsayed-store/internal/notify"
	"alsayed-store/internal/region"
	"alsayed-store/internal/repository"
	"alsayed-store/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	unknownProductName = "Unknown Product"

	// attempts at an unused order number before giving up
	maxOrderNumberAttempts = 3

	uniqueViolation       = "23505"
	orderNumberConstraint = "orders_order_number_key"
)

// Checkout outcomes reported to the CheckoutRecorder.
const (
	OutcomePlaced    = "placed"
	OutcomeEmptyCart = "empty_cart"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)

// ProductLookup resolves catalogue products by id.
type ProductLookup interface {
	ByID(id string) (model.Product, bool)
}

// Dispatcher delivers order confirmations in the background.
type Dispatcher interface {
	Dispatch(ctx context.Context, c notify.Confirmation)
}

// CheckoutRecorder counts checkout outcomes.
type CheckoutRecorder interface {
	ObserveCheckout(outcome string)
}

// ShippingPolicy decides the shipping fee from the subtotal.
type ShippingPolicy struct {
	FreeShippingThreshold decimal.Decimal
	Fee                   decimal.Decimal
}

// ShippingFor returns zero when subtotal reaches the threshold, otherwise the fee.
func (p ShippingPolicy) ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.Fee
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo  repository.OrderRepository
	catalog    ProductLookup
	validator  *validation.Validator
	numbers    *OrderNumberGenerator
	dispatcher Dispatcher
	recorder   CheckoutRecorder
	shipping   ShippingPolicy
	logger     zerolog.Logger
}

// NewCheckoutService creates a new checkout service. recorder may be nil.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	catalog ProductLookup,
	validator *validation.Validator,
	numbers *OrderNumberGenerator,
	dispatcher Dispatcher,
	recorder CheckoutRecorder,
	shipping ShippingPolicy,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:  orderRepo,
		catalog:    catalog,
		validator:  validator,
		numbers:    numbers,
		dispatcher: dispatcher,
		recorder:   recorder,
		shipping:   shipping,
		logger:     logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder runs the checkout:
//  1. reject an empty cart
//  2. validate the form
//  3. price the order and snapshot the lines
//  4. write header and items in one transaction
//  5. hand the confirmation email to the dispatcher
//  6. take the ordered lines off the cart
//
// Checkouts of one cart are serialised, so a cart is never ordered twice.
func (s *checkoutService) PlaceOrder(ctx context.Context, req *CheckoutRequest) (*model.CheckoutResult, error) {
	if req == nil || req.Cart == nil {
		return nil, fmt.Errorf("checkout request has no cart")
	}

	var result *model.CheckoutResult
	err := req.Cart.Checkout(ctx, func(state cart.State) error {
		var err error
		result, err = s.place(ctx, req, state)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.observe(OutcomePlaced)
	return result, nil
}

// place turns one cart snapshot into a stored order.
func (s *checkoutService) place(ctx context.Context, req *CheckoutRequest, state cart.State) (*model.CheckoutResult, error) {
	if state.IsEmpty() {
		s.observe(OutcomeEmptyCart)
		return nil, model.ErrEmptyCart
	}

	if err := s.validator.Checkout(&req.Form); err != nil {
		s.observe(OutcomeInvalid)
		return nil, err
	}
	form := req.Form
	method := model.PaymentMethod(form.PaymentMethod)

	subtotal := state.Total()
	shipping := s.shipping.ShippingFor(subtotal)

	countryName := region.EnglishName(form.Country)
	city := form.City

	order := &model.Order{
		UserID:          req.UserID,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal.Add(shipping),
		PaymentMethod:   method.Label(),
		ShippingName:    form.FullName(),
		ShippingPhone:   form.Phone,
		ShippingEmail:   form.Email,
		ShippingAddress: form.Address,
		ShippingRegion:  countryName,
		ShippingCity:    &city,
	}
	if form.Notes != "" {
		notes := form.Notes
		order.Notes = &notes
	}

	items := s.snapshot(state.Items)

	if err := s.createWithFreshNumber(ctx, order, items); err != nil {
		s.observe(OutcomeFailed)
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(items)).
		Str("total", order.Total.StringFixed(2)).
		Msg("order placed")

	s.dispatcher.Dispatch(ctx, confirmationFor(order, items, form.Address+", "+form.City+", "+countryName))

	return &model.CheckoutResult{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
	}, nil
}

// snapshot copies cart lines into order items, naming each product in English.
func (s *checkoutService) snapshot(lines []cart.LineItem) []model.OrderItem {
	items := make([]model.OrderItem, len(lines))
	for i, l := range lines {
		name := unknownProductName
		if p, ok := s.catalog.ByID(l.ProductID); ok {
			name = p.NameEn
		} else {
			s.logger.Warn().Str("product_id", l.ProductID).Msg("cart line refers to unknown product")
		}
		items[i] = model.OrderItem{
			ProductID:   l.ProductID,
			ProductName: name,
			Size:        l.Size,
			Quantity:    l.Quantity,
			Price:       l.Price,
		}
	}
	return items
}

func (s *checkoutService) createWithFreshNumber(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	for attempt := 1; ; attempt++ {
		number, err := s.numbers.Next()
		if err != nil {
			return fmt.Errorf("failed to generate order number: %w", err)
		}
		order.OrderNumber = number

		err = s.createOrder(ctx, order, items)
		if err == nil {
			return nil
		}
		if !isDuplicateOrderNumber(err) || attempt >= maxOrderNumberAttempts {
			return err
		}

		s.logger.Warn().
			Str("order_number", number).
			Int("attempt", attempt).
			Msg("order number already taken, retrying")
	}
}

// createOrder writes the header and its items in one transaction.
func (s *checkoutService) createOrder(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (s *checkoutService) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveCheckout(outcome)
	}
}

func isDuplicateOrderNumber(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == orderNumberConstraint
}

func confirmationFor(order *model.Order, items []model.OrderItem, address string) notify.Confirmation {
	lines := make([]notify.Item, len(items))
	for i, it := range items {
		lines[i] = notify.Item{
			ProductName: it.ProductName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	return notify.Confirmation{
		CustomerName:    order.ShippingName,
		CustomerEmail:   order.ShippingEmail,
		OrderNumber:     order.OrderNumber,
		Items:           lines,
		Subtotal:        order.Subtotal,
		Shipping:        order.Shipping,
		Total:           order.Total,
		ShippingAddress: address,
		PaymentMethod:   order.PaymentMethod,
	}
}
