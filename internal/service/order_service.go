package service

import (
	"context"
	"fmt"

	"alsayed-store/internal/model"
	"alsayed-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// ListForUser returns the user's orders with items, newest first.
func (s *orderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.OrderWithItems, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthorised
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list user orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.OrderWithItems{}
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Int("count", len(orders)).
		Msg("retrieved user orders")

	return orders, nil
}
