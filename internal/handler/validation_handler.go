package handler

import (
	"net/http"

	"lotto-gate/internal/model"
	"lotto-gate/internal/service"

	"github.com/rs/zerolog"
)

// ValidationHandler exposes the three input checks over HTTP.
type ValidationHandler struct {
	service service.LottoService
	logger  zerolog.Logger
}

// NewValidationHandler creates a new validation handler.
func NewValidationHandler(service service.LottoService, logger zerolog.Logger) *ValidationHandler {
	return &ValidationHandler{
		service: service,
		logger:  logger.With().Str("handler", "validation").Logger(),
	}
}

// Price handles POST /api/validate/price requests.
func (h *ValidationHandler) Price(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	var req model.ValidationRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	amount, err := h.service.ValidatePrice(r.Context(), req.Input)
	if err != nil {
		writeServiceError(w, err, "failed to validate price", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ValidationResponse{Valid: true, Amount: &amount}, h.logger)
}

// WinningNumbers handles POST /api/validate/winning-numbers requests.
func (h *ValidationHandler) WinningNumbers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	var req model.ValidationRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	numbers, err := h.service.ValidateWinningNumbers(r.Context(), req.Input)
	if err != nil {
		writeServiceError(w, err, "failed to validate winning numbers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ValidationResponse{Valid: true, Numbers: numbers}, h.logger)
}

// Bonus handles POST /api/validate/bonus requests.
func (h *ValidationHandler) Bonus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	var req model.BonusValidationRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	bonus, err := h.service.ValidateBonus(r.Context(), req.Input, req.WinningNumbers)
	if err != nil {
		writeServiceError(w, err, "failed to validate bonus number", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ValidationResponse{Valid: true, BonusNumber: &bonus}, h.logger)
}
