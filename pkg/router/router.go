package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/appforge/webkit/pkg/requestid"
)

type config struct {
	logger      *slog.Logger
	metrics     func(http.Handler) http.Handler
	middlewares []func(http.Handler) http.Handler
}

// Option configures the router's standard middleware chain.
type Option func(*config)

// WithLogger enables request logging and panic-recovery logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics inserts a metrics middleware right after request-ID assignment,
// so recorded requests carry their final status codes.
func WithMetrics(mw func(http.Handler) http.Handler) Option {
	return func(c *config) {
		if mw != nil {
			c.metrics = mw
		}
	}
}

// WithMiddleware appends extra middlewares after the standard chain.
func WithMiddleware(mws ...func(http.Handler) http.Handler) Option {
	return func(c *config) {
		c.middlewares = append(c.middlewares, mws...)
	}
}

// New returns a chi router with the application's standard middleware chain:
// request IDs, real client IP, optional metrics, panic recovery, and request
// logging when a logger is supplied.
func New(opts ...Option) chi.Router {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	if cfg.metrics != nil {
		r.Use(cfg.metrics)
	}
	if cfg.logger != nil {
		r.Use(Recoverer(cfg.logger))
		r.Use(Logger(cfg.logger))
	} else {
		r.Use(middleware.Recoverer)
	}
	r.Use(cfg.middlewares...)

	return r
}
