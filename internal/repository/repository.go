package repository

import (
	"context"

	"lotto-gate/internal/model"

	"github.com/google/uuid"
)

// DrawRepository defines the interface for draw data access operations.
type DrawRepository interface {
	// Create inserts a validated draw.
	Create(ctx context.Context, draw *model.Draw) error

	// GetByID retrieves a draw by its ID.
	// Returns nil, nil when no draw has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Draw, error)

	// List retrieves draws newest first with pagination support.
	List(ctx context.Context, limit, offset int) ([]model.Draw, error)
}
