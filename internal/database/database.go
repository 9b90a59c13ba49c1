package database

import (
	"context"
	"fmt"
	"time"

	"lotto-gate/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schema creates the tables used by the draw repository.
const schema = `
	CREATE TABLE IF NOT EXISTS draws (
		id UUID PRIMARY KEY,
		winning_numbers INTEGER[] NOT NULL CHECK (cardinality(winning_numbers) = 6),
		bonus_number INTEGER NOT NULL CHECK (bonus_number BETWEEN 1 AND 45),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS draws_created_at_idx ON draws (created_at DESC);
`

// NewPool creates a new PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "database").Logger()

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// EnsureSchema creates the draw tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply database schema")
		return fmt.Errorf("failed to apply database schema: %w", err)
	}

	logger.Debug().Msg("database schema applied")
	return nil
}
