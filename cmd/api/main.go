package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/cart"
	"alsayed-store/internal/catalog"
	"alsayed-store/internal/config"
	"alsayed-store/internal/database"
	"alsayed-store/internal/handler"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/metrics"
	"alsayed-store/internal/notify"
	"alsayed-store/internal/repository"
	"alsayed-store/internal/router"
	"alsayed-store/internal/service"
	"alsayed-store/internal/storage"
	"alsayed-store/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting alsayed storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(cfg.Database.ConnectionString(), logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Session store for carts and language choices
	sessions, closeSessions, err := newSessionStore(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	// Catalogue snapshot
	provider := catalog.NewProvider(productRepo, logger)
	if err := provider.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	go provider.Run(ctx, cfg.Catalog.RefreshInterval)

	carts := cart.NewRegistry(sessions, provider, logger)
	go carts.RunEviction(ctx, cfg.Cart.EvictInterval, cfg.Cart.MaxIdle)

	defaultLang, _ := i18n.Parse(cfg.Shop.DefaultLanguage)
	translator, err := i18n.NewTranslator(defaultLang)
	if err != nil {
		return fmt.Errorf("failed to build translations: %w", err)
	}
	languages := i18n.NewPreferences(sessions, defaultLang, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Order confirmations
	var notifier notify.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewFunctionClient(cfg.Notify.FunctionURL, cfg.Notify.APIKey, cfg.Notify.Timeout, logger)
	} else {
		logger.Info().Msg("order notifications disabled, confirmations will only be logged")
		notifier = notify.NewLogNotifier(logger)
	}
	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.Timeout, m, logger)

	// Initialize services
	shipping := service.ShippingPolicy{
		FreeShippingThreshold: cfg.Shop.FreeShippingThreshold,
		Fee:                   cfg.Shop.ShippingFee,
	}
	productService := service.NewProductService(provider, logger)
	checkoutService := service.NewCheckoutService(
		orderRepo,
		provider,
		validation.New(),
		service.NewOrderNumberGenerator(cfg.Shop.OrderPrefix),
		dispatcher,
		m,
		shipping,
		logger,
	)
	trackingService := service.NewTrackingService(orderRepo, translator, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(pool, provider, logger),
		Product:  handler.NewProductHandler(productService, translator, logger),
		Cart:     handler.NewCartHandler(carts, productService, shipping, translator, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, carts, translator, logger),
		Order:    handler.NewOrderHandler(trackingService, orderService, translator, logger),
		Language: handler.NewLanguageHandler(languages, translator, logger),
		Country:  handler.NewCountryHandler(translator, logger),
	}

	// Initialize router
	mux := router.New(handlers, router.Options{
		APIKey:          cfg.Auth.APIKey,
		Languages:       languages,
		DefaultLanguage: defaultLang,
		Verifier:        auth.NewVerifier(cfg.Auth.JWTSecret),
		Metrics:         m,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Let in-flight confirmations finish
		if err := dispatcher.Wait(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("order confirmations still pending at shutdown")
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSessionStore connects to Redis when configured, otherwise keeps
// sessions in memory.
func newSessionStore(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (storage.Store, func(), error) {
	if cfg.Addr == "" {
		logger.Warn().Msg("REDIS_ADDR not set, carts are kept in process memory")
		return storage.NewMemoryStore(), func() {}, nil
	}

	client, err := storage.Connect(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
	return storage.NewRedisStore(client, cfg.TTL, logger), closeFn, nil
}
