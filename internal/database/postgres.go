package database

import (
	"context"
	"fmt"
	"time"

	"nextflix/internal/config"
	"nextflix/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds the shared pgx connection pool. Callers own the pool and
// close it on shutdown.
func NewPool(ctx context.Context) (*pgxpool.Pool, error) {
	host, port, user, password, databaseName := config.DatabaseConfig()

	if host == "" || port == "" || user == "" || databaseName == "" {
		return nil, fmt.Errorf("missing required database configuration")
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, databaseName)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Get().Info("Database connection successful")
	return pool, nil
}
