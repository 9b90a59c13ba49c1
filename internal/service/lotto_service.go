package service

import (
	"context"
	"fmt"
	"time"

	"lotto-gate/internal/lotto"
	"lotto-gate/internal/metrics"
	"lotto-gate/internal/model"
	"lotto-gate/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Pagination bounds for ListDraws.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// lottoService implements LottoService.
type lottoService struct {
	drawRepo  repository.DrawRepository
	validator lotto.Validator
	parser    lotto.Parser
	recorder  metrics.Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLottoService creates a new lotto service.
// A nil recorder disables metrics.
func NewLottoService(
	drawRepo repository.DrawRepository,
	parser lotto.Parser,
	recorder metrics.Recorder,
	logger zerolog.Logger,
) LottoService {
	if parser == nil {
		parser = lotto.NewParser()
	}
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}

	return &lottoService{
		drawRepo:  drawRepo,
		validator: lotto.NewValidator(parser),
		parser:    parser,
		recorder:  recorder,
		logger:    logger.With().Str("service", "lotto").Logger(),
		now:       time.Now,
	}
}

// ValidatePrice validates a raw ticket price and returns its amount.
func (s *lottoService) ValidatePrice(ctx context.Context, input string) (int, error) {
	err := s.validator.ValidatePrice(input)
	s.observe(metrics.OperationPrice, input, err)
	if err != nil {
		return 0, err
	}

	amount, err := s.parser.ParseInt(input)
	if err != nil {
		return 0, fmt.Errorf("failed to parse validated price: %w", err)
	}
	return amount, nil
}

// ValidateWinningNumbers validates raw winning numbers.
func (s *lottoService) ValidateWinningNumbers(ctx context.Context, input string) ([]int, error) {
	numbers, err := s.validator.ValidateWinningNumbers(input)
	s.observe(metrics.OperationWinningNumbers, input, err)
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// ValidateBonus validates a raw bonus number against the winning numbers.
// The winning numbers are checked first since callers may supply them
// without going through ValidateWinningNumbers.
func (s *lottoService) ValidateBonus(ctx context.Context, input string, winningNumbers []int) (int, error) {
	err := lotto.CheckWinningNumbers(winningNumbers)
	if err == nil {
		err = s.validator.ValidateBonus(input, winningNumbers)
	}
	s.observe(metrics.OperationBonus, input, err)
	if err != nil {
		return 0, err
	}

	bonus, err := s.parser.ParseInt(input)
	if err != nil {
		return 0, fmt.Errorf("failed to parse validated bonus number: %w", err)
	}
	return bonus, nil
}

// CreateDraw validates the winning numbers, then the bonus number against
// them, and records the draw. Nothing is stored when either input is rejected.
func (s *lottoService) CreateDraw(ctx context.Context, req *model.DrawRequest) (*model.Draw, error) {
	if req == nil {
		return nil, fmt.Errorf("draw request is nil")
	}

	numbers, err := s.ValidateWinningNumbers(ctx, req.WinningNumbers)
	if err != nil {
		return nil, err
	}

	bonus, err := s.ValidateBonus(ctx, req.BonusNumber, numbers)
	if err != nil {
		return nil, err
	}

	draw := &model.Draw{
		ID:             uuid.New(),
		WinningNumbers: numbers,
		BonusNumber:    bonus,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.drawRepo.Create(ctx, draw); err != nil {
		s.logger.Error().Err(err).Str("draw_id", draw.ID.String()).Msg("failed to record draw")
		return nil, fmt.Errorf("failed to record draw: %w", err)
	}

	s.logger.Info().
		Str("draw_id", draw.ID.String()).
		Ints("winning_numbers", draw.WinningNumbers).
		Int("bonus_number", draw.BonusNumber).
		Msg("draw recorded successfully")

	return draw, nil
}

// GetDraw retrieves a draw by ID.
func (s *lottoService) GetDraw(ctx context.Context, id uuid.UUID) (*model.Draw, error) {
	draw, err := s.drawRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("draw_id", id.String()).Msg("failed to get draw")
		return nil, fmt.Errorf("failed to get draw: %w", err)
	}

	if draw == nil {
		s.logger.Debug().Str("draw_id", id.String()).Msg("draw not found")
		return nil, nil
	}

	return draw, nil
}

// ListDraws retrieves draws newest first. Out of range pagination values are
// clamped rather than rejected.
func (s *lottoService) ListDraws(ctx context.Context, limit, offset int) ([]model.Draw, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	draws, err := s.drawRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("failed to list draws")
		return nil, fmt.Errorf("failed to list draws: %w", err)
	}

	return draws, nil
}

// observe records the outcome and logs rejections.
func (s *lottoService) observe(operation, input string, err error) {
	s.recorder.ObserveValidation(operation, err)

	if err == nil {
		s.logger.Debug().Str("operation", operation).Msg("input accepted")
		return
	}

	code, _ := model.CodeOf(err)
	s.logger.Warn().
		Str("operation", operation).
		Str("input", input).
		Str("code", code).
		Msg("input rejected")
}
