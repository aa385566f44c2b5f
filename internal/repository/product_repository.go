package repository

import (
	"context"
	"errors"
	"fmt"

	"alsayed-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `
	id, slug, name_en, name_ar, category, description_en, description_ar,
	top_notes, heart_notes, base_notes, sizes, images, is_featured, created_at, updated_at
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves every product, newest first.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a single product by its slug.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *productRepository) getOne(ctx context.Context, column, value string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + column + ` = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str(column, value).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str(column, value).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Upsert inserts or replaces the given products keyed by ID.
func (r *productRepository) Upsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO products (
			id, slug, name_en, name_ar, category, description_en, description_ar,
			top_notes, heart_notes, base_notes, sizes, images, is_featured, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			slug = EXCLUDED.slug,
			name_en = EXCLUDED.name_en,
			name_ar = EXCLUDED.name_ar,
			category = EXCLUDED.category,
			description_en = EXCLUDED.description_en,
			description_ar = EXCLUDED.description_ar,
			top_notes = EXCLUDED.top_notes,
			heart_notes = EXCLUDED.heart_notes,
			base_notes = EXCLUDED.base_notes,
			sizes = EXCLUDED.sizes,
			images = EXCLUDED.images,
			is_featured = EXCLUDED.is_featured,
			updated_at = EXCLUDED.updated_at
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query,
			p.ID, p.Slug, p.NameEn, p.NameAr, string(p.Category), p.DescriptionEn, p.DescriptionAr,
			nonNil(p.TopNotes), nonNil(p.HeartNotes), nonNil(p.BaseNotes), p.Sizes, nonNil(p.Images),
			p.Featured, p.CreatedAt, p.UpdatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range products {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("product_id", products[i].ID).
				Msg("failed to upsert product")
			return fmt.Errorf("failed to upsert product %s: %w", products[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(products)).Msg("products upserted")

	return nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p        model.Product
		category string
	)
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.NameEn,
		&p.NameAr,
		&category,
		&p.DescriptionEn,
		&p.DescriptionAr,
		&p.TopNotes,
		&p.HeartNotes,
		&p.BaseNotes,
		&p.Sizes,
		&p.Images,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = model.Category(category)
	return &p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
