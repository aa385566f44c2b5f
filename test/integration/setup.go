package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"alsayed-store/internal/config"
	"alsayed-store/internal/database"
	"alsayed-store/internal/model"
	"alsayed-store/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the schema migrated.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	if err := database.Migrate(connStr, logger); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	pool, err := database.Open(ctx, connStr, config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// TestProducts is the catalogue used by the integration suite.
func TestProducts() []model.Product {
	now := time.Now().UTC()
	return []model.Product{
		{
			ID: "P001", Slug: "oud-royal", NameEn: "Oud Royal", NameAr: "عود ملكي", Category: model.CategoryMen,
			Sizes:     []model.Size{{Label: "50ml", Price: decimal.NewFromInt(180), Stock: 10}, {Label: "100ml", Price: decimal.NewFromInt(290), Stock: 5}},
			Featured:  true,
			CreatedAt: now.Add(-2 * time.Hour),
			UpdatedAt: now,
		},
		{
			ID: "P002", Slug: "rose-musk", NameEn: "Rose Musk", NameAr: "مسك الورد", Category: model.CategoryWomen,
			Sizes:     []model.Size{{Label: "50ml", Price: decimal.NewFromInt(99), Stock: 10}},
			CreatedAt: now.Add(-1 * time.Hour),
			UpdatedAt: now,
		},
	}
}

// SeedProducts inserts the test catalogue into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	repo := repository.NewProductRepository(pool, zerolog.Nop())
	if err := repo.Upsert(context.Background(), TestProducts()); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
