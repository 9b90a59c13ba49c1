package handler

import (
	"net/http"
	"strconv"
	"strings"

	"lotto-gate/internal/model"
	"lotto-gate/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const drawsPath = "/api/draws/"

// DrawHandler handles draw-related HTTP requests.
type DrawHandler struct {
	service service.LottoService
	logger  zerolog.Logger
}

// NewDrawHandler creates a new draw handler.
func NewDrawHandler(service service.LottoService, logger zerolog.Logger) *DrawHandler {
	return &DrawHandler{
		service: service,
		logger:  logger.With().Str("handler", "draw").Logger(),
	}
}

// Create handles POST /api/draws requests.
func (h *DrawHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	var req model.DrawRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	draw, err := h.service.CreateDraw(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to record draw", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, draw, h.logger)
}

// GetAll handles GET /api/draws requests.
func (h *DrawHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	limit, ok := h.queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := h.queryInt(w, r, "offset")
	if !ok {
		return
	}

	draws, err := h.service.ListDraws(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to list draws", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, draws, h.logger)
}

// GetByID handles GET /api/draws/{id} requests.
func (h *DrawHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, drawsPath)
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "draw ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid draw ID format", h.logger)
		return
	}

	draw, err := h.service.GetDraw(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve draw", h.logger)
		return
	}

	if draw == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeDrawNotFound, "draw not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, draw, h.logger)
}

// queryInt reads an optional non-negative integer query parameter.
// A missing parameter yields 0 and lets the service apply its default.
func (h *DrawHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuery, name+" must be a non-negative integer", h.logger)
		return 0, false
	}
	return n, true
}
