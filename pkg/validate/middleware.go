package validate

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps how much of a request body the middleware reads before
// validation. Oversized bodies are rejected instead of buffered.
const maxBodyBytes = 4 << 20

type middlewareConfig struct {
	validator *Validator
	logger    *slog.Logger
}

// MiddlewareOption configures the validation middleware.
type MiddlewareOption func(*middlewareConfig)

// WithValidator supplies a configured Validator, e.g. one with lenient
// numbers enabled. The default is a strict Validator.
func WithValidator(v *Validator) MiddlewareOption {
	return func(c *middlewareConfig) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithLogger supplies a logger for rule errors. Nil keeps logging disabled.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware validates the request bucket selected by origin against the
// schema. On failure it responds with 422 Unprocessable Entity carrying the
// Result as JSON; on success the request passes through unchanged. A rule
// error yields a 500 response, since the engine never converts rule errors
// into validation failures.
func Middleware(origin Origin, schema Schema, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{validator: New()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := extractData(r, origin)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"message": "request body must be valid JSON",
				})
				return
			}

			result, err := cfg.validator.Validate(r.Context(), data, origin, schema)
			if err != nil {
				if cfg.logger != nil {
					cfg.logger.ErrorContext(r.Context(), "validation rule failed",
						slog.String("origin", string(origin)),
						slog.Any("error", err),
					)
				}
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"message": "internal server error",
				})
				return
			}

			if !result.Valid() {
				writeJSON(w, http.StatusUnprocessableEntity, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractData builds the key-value bucket for the given origin. Query and
// route parameters are string-valued; the body is decoded as JSON and
// restored so downstream handlers can read it again.
func extractData(r *http.Request, origin Origin) (map[string]any, error) {
	switch origin {
	case OriginQuery:
		query := r.URL.Query()
		data := make(map[string]any, len(query))
		for key, values := range query {
			if len(values) > 0 {
				data[key] = values[0]
			}
		}
		return data, nil

	case OriginParams:
		data := make(map[string]any)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				data[key] = rctx.URLParams.Values[i]
			}
		}
		return data, nil

	case OriginBody:
		if r.Body == nil {
			return map[string]any{}, nil
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return nil, err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		if len(bytes.TrimSpace(body)) == 0 {
			return map[string]any{}, nil
		}
		var data map[string]any
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		return data, nil
	}
	return map[string]any{}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
