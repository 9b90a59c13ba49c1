package router

import (
	"net/http"

	"lotto-gate/internal/handler"
	"lotto-gate/internal/middleware"

	"github.com/rs/zerolog"
)

const healthPath = "/health"

// Options holds optional router settings.
type Options struct {
	// MetricsHandler serves Prometheus metrics when non-nil.
	MetricsHandler http.Handler

	// MetricsPath is where MetricsHandler is mounted. Default: /metrics
	MetricsPath string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	validationHandler *handler.ValidationHandler,
	drawHandler *handler.DrawHandler,
	apiKey string,
	logger zerolog.Logger,
	opts Options,
) http.Handler {
	mux := http.NewServeMux()
	publicPaths := []string{healthPath}

	// Health check endpoint (no authentication required)
	mux.HandleFunc(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if opts.MetricsHandler != nil {
		metricsPath := opts.MetricsPath
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		mux.Handle(metricsPath, opts.MetricsHandler)
		publicPaths = append(publicPaths, metricsPath)
	}

	mux.HandleFunc("/api/validate/price", validationHandler.Price)
	mux.HandleFunc("/api/validate/winning-numbers", validationHandler.WinningNumbers)
	mux.HandleFunc("/api/validate/bonus", validationHandler.Bonus)

	drawRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/draws" || r.URL.Path == "/api/draws/" {
			if r.Method == http.MethodPost {
				drawHandler.Create(w, r)
				return
			}
			drawHandler.GetAll(w, r)
			return
		}
		drawHandler.GetByID(w, r)
	}

	// Register draw routes (both with and without trailing slash)
	mux.HandleFunc("/api/draws", drawRouteHandler)
	mux.HandleFunc("/api/draws/", drawRouteHandler)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger, publicPaths...)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
