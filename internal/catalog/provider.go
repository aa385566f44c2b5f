// Package catalog serves the read-only product catalogue from an in-memory
// snapshot that is rebuilt from the product store.
package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"alsayed-store/internal/model"
	"alsayed-store/internal/repository"

	"github.com/rs/zerolog"
)

type snapshot struct {
	products []model.Product
	byID     map[string]int
	bySlug   map[string]int
	loadedAt time.Time
}

func newSnapshot(products []model.Product) *snapshot {
	s := &snapshot{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
		loadedAt: time.Now(),
	}
	copy(s.products, products)
	for i, p := range s.products {
		s.byID[p.ID] = i
		s.bySlug[p.Slug] = i
	}
	return s
}

// Provider answers catalogue lookups. Every read sees one complete snapshot;
// a refresh swaps the snapshot in a single step.
//
// Returned products share their slices with the snapshot and must not be modified.
type Provider struct {
	repo    repository.ProductRepository
	current atomic.Pointer[snapshot]
	logger  zerolog.Logger
}

// NewProvider creates an empty provider backed by repo. Call Load before serving.
func NewProvider(repo repository.ProductRepository, logger zerolog.Logger) *Provider {
	p := &Provider{
		repo:   repo,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
	p.current.Store(newSnapshot(nil))
	return p
}

// Load reads every product from the store and replaces the snapshot.
// On failure the previous snapshot stays in place.
func (p *Provider) Load(ctx context.Context) error {
	products, err := p.repo.GetAll(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to load catalogue")
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	p.Replace(products)

	p.logger.Info().Int("products", len(products)).Msg("catalogue loaded")
	return nil
}

// Replace installs products as the new snapshot, keeping their order.
func (p *Provider) Replace(products []model.Product) {
	p.current.Store(newSnapshot(products))
}

// Run refreshes the snapshot every interval until ctx is cancelled.
// Refresh failures are logged and the old snapshot keeps serving.
func (p *Provider) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = p.Load(ctx)
		}
	}
}

// All returns every product, newest first.
func (p *Provider) All() []model.Product {
	s := p.current.Load()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks up a product by identifier.
func (p *Provider) ByID(id string) (model.Product, bool) {
	s := p.current.Load()
	i, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// BySlug looks up a product by its URL slug.
func (p *Provider) BySlug(slug string) (model.Product, bool) {
	s := p.current.Load()
	i, ok := s.bySlug[slug]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// Featured returns the featured products in catalogue order.
func (p *Provider) Featured() []model.Product {
	return p.filter(func(pr *model.Product) bool { return pr.Featured })
}

// ByCategory returns the products of one category in catalogue order.
func (p *Provider) ByCategory(c model.Category) []model.Product {
	return p.filter(func(pr *model.Product) bool { return pr.Category == c })
}

// Size looks up a size variant of a product.
func (p *Provider) Size(productID, label string) (model.Size, bool) {
	pr, ok := p.ByID(productID)
	if !ok {
		return model.Size{}, false
	}
	return pr.FindSize(label)
}

// Len returns the number of products in the current snapshot.
func (p *Provider) Len() int {
	return len(p.current.Load().products)
}

// LoadedAt returns when the current snapshot was built.
func (p *Provider) LoadedAt() time.Time {
	return p.current.Load().loadedAt
}

func (p *Provider) filter(keep func(*model.Product) bool) []model.Product {
	s := p.current.Load()
	out := []model.Product{}
	for i := range s.products {
		if keep(&s.products[i]) {
			out = append(out, s.products[i])
		}
	}
	return out
}
