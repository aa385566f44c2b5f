package service

import (
	"context"

	"alsayed-store/internal/catalog"
	"alsayed-store/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService on top of the catalogue snapshot.
type productService struct {
	catalog *catalog.Provider
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(provider *catalog.Provider, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: provider,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// List returns products matching filter, newest first.
func (s *productService) List(_ context.Context, filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	switch {
	case filter.Category != "":
		if !filter.Category.Valid() {
			return []model.Product{}, nil
		}
		products = s.catalog.ByCategory(filter.Category)
	case filter.FeaturedOnly:
		products = s.catalog.Featured()
	default:
		products = s.catalog.All()
	}

	if filter.Category != "" && filter.FeaturedOnly {
		featured := products[:0]
		for _, p := range products {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		products = featured
	}

	s.logger.Debug().
		Str("category", string(filter.Category)).
		Bool("featured", filter.FeaturedOnly).
		Int("count", len(products)).
		Msg("listed products")

	return products, nil
}

// GetBySlug retrieves a single product by slug.
func (s *productService) GetBySlug(_ context.Context, slug string) (*model.Product, error) {
	if slug == "" {
		return nil, model.ErrProductNotFound
	}

	p, ok := s.catalog.BySlug(slug)
	if !ok {
		s.logger.Debug().Str("slug", slug).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return &p, nil
}

// ResolveSize returns the current price and stock of a product size.
func (s *productService) ResolveSize(_ context.Context, productID, size string) (model.Size, error) {
	p, ok := s.catalog.ByID(productID)
	if !ok {
		return model.Size{}, model.ErrProductNotFound
	}
	sz, ok := p.FindSize(size)
	if !ok {
		return model.Size{}, model.ErrSizeNotFound
	}
	return sz, nil
}
