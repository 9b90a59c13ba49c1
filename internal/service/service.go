package service

import (
	"context"

	"lotto-gate/internal/model"

	"github.com/google/uuid"
)

// LottoService defines operations for lotto input validation and draw records.
type LottoService interface {
	// ValidatePrice validates a raw ticket price and returns its amount.
	ValidatePrice(ctx context.Context, input string) (int, error)

	// ValidateWinningNumbers validates raw winning numbers and returns them in input order.
	ValidateWinningNumbers(ctx context.Context, input string) ([]int, error)

	// ValidateBonus validates a raw bonus number against the winning numbers.
	ValidateBonus(ctx context.Context, input string, winningNumbers []int) (int, error)

	// CreateDraw validates both inputs of req and records the draw.
	CreateDraw(ctx context.Context, req *model.DrawRequest) (*model.Draw, error)

	// GetDraw retrieves a draw by ID. Returns nil, nil when it does not exist.
	GetDraw(ctx context.Context, id uuid.UUID) (*model.Draw, error)

	// ListDraws retrieves draws newest first with pagination.
	ListDraws(ctx context.Context, limit, offset int) ([]model.Draw, error)
}
