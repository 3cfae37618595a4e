package httpapi

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"flyergen/internal/flyer"
	"flyergen/internal/ratelimit"
)

const (
	defaultMaxBodyBytes     = 16 << 20
	defaultBatchMaxItems    = 20
	defaultBatchConcurrency = 4
)

type Options struct {
	Logger *slog.Logger
	// Limiter throttles /api requests per client IP. Nil disables limiting.
	Limiter          *ratelimit.Registry
	MaxBodyBytes     int64
	BatchMaxItems    int
	BatchConcurrency int
}

// Server exposes the prompt compiler over JSON.
type Server struct {
	logger           *slog.Logger
	limiter          *ratelimit.Registry
	catalog          flyer.Catalog
	maxBodyBytes     int64
	batchMaxItems    int
	batchConcurrency int
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	maxItems := opts.BatchMaxItems
	if maxItems <= 0 {
		maxItems = defaultBatchMaxItems
	}
	concurrency := opts.BatchConcurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	return &Server{
		logger:           logger,
		limiter:          opts.Limiter,
		catalog:          flyer.NewCatalog(),
		maxBodyBytes:     maxBody,
		batchMaxItems:    maxItems,
		batchConcurrency: concurrency,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, s.withLogging)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.withRateLimit)

		r.Get("/catalog", s.handleCatalog)
		r.Get("/negative", s.handleNegative)

		r.Post("/compile", s.handleCompile)
		r.Post("/compile/batch", s.handleCompileBatch)

		r.Post("/refine", s.handleRefine)
		r.Post("/refine/no-text", s.handleRefineNoText)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, apiError{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
	})

	return r
}
