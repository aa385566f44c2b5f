package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"alsayed-store/internal/model"

	"github.com/rs/zerolog"
)

// FeedLoader reads a product feed: a gzipped JSON array of products.
type FeedLoader interface {
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// decodeFeed decompresses and decodes a feed, rejecting invalid products
// and duplicate ids or slugs.
func decodeFeed(ctx context.Context, r io.Reader) ([]model.Product, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	dec := json.NewDecoder(gz)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("feed must be a JSON array")
	}

	var (
		products = []model.Product{}
		ids      = map[string]struct{}{}
		slugs    = map[string]struct{}{}
	)
	for dec.More() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var p model.Product
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product %d: %w", len(products), err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if _, dup := slugs[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}

		products = append(products, p)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	return products, nil
}

// fileFeedLoader reads feeds from the local file system.
type fileFeedLoader struct {
	logger zerolog.Logger
}

// NewFileFeedLoader creates a feed loader for local files.
func NewFileFeedLoader(logger zerolog.Logger) FeedLoader {
	return &fileFeedLoader{
		logger: logger.With().Str("component", "feed-loader").Logger(),
	}
}

func (l *fileFeedLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue feed")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open feed file")
		return nil, fmt.Errorf("failed to open feed file %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeFeed(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("invalid catalogue feed")
		return nil, fmt.Errorf("feed %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalogue feed loaded")

	return products, nil
}
