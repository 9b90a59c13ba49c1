package repository

import (
	"context"
	"errors"
	"fmt"

	"lotto-gate/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// drawRepository implements the DrawRepository interface using PostgreSQL.
type drawRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDrawRepository creates a new PostgreSQL-backed draw repository.
func NewDrawRepository(pool *pgxpool.Pool, logger zerolog.Logger) DrawRepository {
	return &drawRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "draw").Logger(),
	}
}

// Create inserts a validated draw.
func (r *drawRepository) Create(ctx context.Context, draw *model.Draw) error {
	query := `
		INSERT INTO draws (id, winning_numbers, bonus_number, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, draw.ID, draw.WinningNumbers, draw.BonusNumber, draw.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("draw_id", draw.ID.String()).
			Msg("failed to create draw")
		return fmt.Errorf("failed to create draw: %w", err)
	}

	r.logger.Debug().
		Str("draw_id", draw.ID.String()).
		Msg("draw created successfully")

	return nil
}

// GetByID retrieves a draw by its ID.
func (r *drawRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Draw, error) {
	query := `
		SELECT id, winning_numbers, bonus_number, created_at
		FROM draws
		WHERE id = $1
	`

	var draw model.Draw
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&draw.ID,
		&draw.WinningNumbers,
		&draw.BonusNumber,
		&draw.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("draw_id", id.String()).Msg("draw not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("draw_id", id.String()).Msg("failed to query draw")
		return nil, fmt.Errorf("failed to query draw: %w", err)
	}

	return &draw, nil
}

// List retrieves draws newest first.
func (r *drawRepository) List(ctx context.Context, limit, offset int) ([]model.Draw, error) {
	query := `
		SELECT id, winning_numbers, bonus_number, created_at
		FROM draws
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query draws")
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	draws := make([]model.Draw, 0, limit)
	for rows.Next() {
		var draw model.Draw
		if err := rows.Scan(&draw.ID, &draw.WinningNumbers, &draw.BonusNumber, &draw.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan draw row")
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating draw rows")
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}

	return draws, nil
}
