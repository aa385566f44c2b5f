package service

import (
	"context"
	"fmt"
	"strings"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/model"
	"alsayed-store/internal/repository"

	"github.com/rs/zerolog"
)

// Labeler translates message keys.
type Labeler interface {
	T(lang i18n.Lang, key string) string
}

// trackingService implements TrackingService.
type trackingService struct {
	orderRepo repository.OrderRepository
	labels    Labeler
	logger    zerolog.Logger
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(orderRepo repository.OrderRepository, labels Labeler, logger zerolog.Logger) TrackingService {
	return &trackingService{
		orderRepo: orderRepo,
		labels:    labels,
		logger:    logger.With().Str("service", "tracking").Logger(),
	}
}

// NormalizeOrderNumber trims and upper-cases a typed order number.
func NormalizeOrderNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Track looks up an order by number. A missing order yields model.ErrOrderNotFound;
// store failures are returned wrapped.
func (s *trackingService) Track(ctx context.Context, orderNumber string, lang i18n.Lang) (*model.OrderTracking, error) {
	number := NormalizeOrderNumber(orderNumber)
	if number == "" {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByOrderNumber(ctx, number)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", number).Msg("failed to look up order")
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Str("order_number", number).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to load order items")
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	index := model.StageIndex(order.Status)

	stages := make([]model.TrackingStage, len(model.StageSequence))
	for i, st := range model.StageSequence {
		key := "tracking.stage." + string(st)
		stages[i] = model.TrackingStage{
			Status:      st,
			Label:       s.labels.T(lang, key),
			Description: s.labels.T(lang, key+".desc"),
			Complete:    index >= 0 && i <= index,
			Current:     i == index,
		}
	}

	return &model.OrderTracking{
		Order:       *order,
		Items:       items,
		StatusLabel: s.labels.T(lang, "order.status."+string(order.Status)),
		StageIndex:  index,
		Cancelled:   order.Status == model.StatusCancelled,
		Stages:      stages,
	}, nil
}
