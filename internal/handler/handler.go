package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lotto-gate/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
// The status line is already sent when encoding fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: w.Header().Get("X-Request-ID"),
	}, logger)
}

// writeServiceError maps a service error to a response. Rejected input is a
// client error and is logged at debug level only.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) && model.IsValidationError(err) {
		logger.Debug().Str("code", de.Code).Msg("input rejected")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:         de.Code,
			Message:       de.Message,
			CorrelationID: w.Header().Get("X-Request-ID"),
		}, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
}

// decodeJSON decodes the request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}
