// Command seed loads the catalogue feed into the product store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"alsayed-store/internal/catalog"
	"alsayed-store/internal/config"
	"alsayed-store/internal/database"
	"alsayed-store/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	feedPath := flag.String("feed", cfg.Catalog.FeedPath, "feed path, relative to the S3 prefix when S3 is enabled")
	flag.Parse()

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(cfg.Database.ConnectionString(), logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// S3 with local file system fallback
	var s3Loader catalog.FeedLoader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3FeedLoader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	}
	loader := catalog.NewFallbackFeedLoader(s3Loader, catalog.NewFileFeedLoader(logger), cfg.S3.Prefix, logger)

	products, err := loader.Load(ctx, *feedPath)
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	if err := repository.NewProductRepository(pool, logger).Upsert(ctx, products); err != nil {
		return fmt.Errorf("failed to store products: %w", err)
	}

	logger.Info().
		Str("feed", *feedPath).
		Int("products", len(products)).
		Msg("catalogue seeded")
	return nil
}
