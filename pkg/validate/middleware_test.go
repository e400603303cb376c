package validate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/webkit/pkg/validate"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func decodeResult(t *testing.T, body io.Reader) validate.Result {
	t.Helper()
	var result validate.Result
	require.NoError(t, json.NewDecoder(body).Decode(&result))
	return result
}

func TestMiddleware_Query(t *testing.T) {
	schema := validate.Schema{
		{Name: "page", Type: validate.TypeInt, Required: true},
		{Name: "active", Type: validate.TypeBool},
	}
	mw := validate.Middleware(validate.OriginQuery, schema)

	t.Run("valid request passes through", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest(http.MethodGet, "/?page=2&active=true", nil)
		rec := httptest.NewRecorder()

		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid request gets 422 with result body", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest(http.MethodGet, "/?active=maybe", nil)
		rec := httptest.NewRecorder()

		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		result := decodeResult(t, rec.Body)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "page", result.Errors[0].Field)
		assert.Equal(t, validate.OriginQuery, result.Errors[0].Origin)
		assert.Equal(t, "active", result.Errors[1].Field)
		assert.Contains(t, result.Message, "The field `page` is required")
	})
}

func TestMiddleware_Body(t *testing.T) {
	schema := validate.Schema{
		{Name: "name", Type: validate.TypeString, Required: true},
		{Name: "age", Type: validate.TypeInt},
	}
	mw := validate.Middleware(validate.OriginBody, schema)

	t.Run("valid body passes and stays readable downstream", func(t *testing.T) {
		var seen map[string]any
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&seen))
			w.WriteHeader(http.StatusOK)
		})
		body := `{"name":"alice","age":30}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mw(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", seen["name"])
	})

	t.Run("missing required field gets 422", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		result := decodeResult(t, rec.Body)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, []string{"The field `name` is required"}, result.Errors[0].Messages)
	})

	t.Run("empty body validates as empty data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		var called bool

		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed JSON gets 400", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		rec := httptest.NewRecorder()

		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMiddleware_Params(t *testing.T) {
	schema := validate.Schema{
		{Name: "id", Type: validate.TypeInt, Required: true},
	}

	r := chi.NewRouter()
	var called bool
	r.With(validate.Middleware(validate.OriginParams, schema)).
		Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

	t.Run("numeric param passes", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric param gets 422", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		result := decodeResult(t, rec.Body)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, validate.OriginParams, result.Errors[0].Origin)
	})
}

func TestMiddleware_RuleError(t *testing.T) {
	schema := validate.Schema{
		{Name: "v", Type: validate.TypeString, Required: true, Rules: []validate.Rule{
			{Check: func(_ context.Context, _ any, _ validate.Field, _ map[string]any) (bool, error) {
				return false, errors.New("rule exploded")
			}},
		}},
	}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	mw := validate.Middleware(validate.OriginQuery, schema, validate.WithLogger(logger))

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/?v=x", nil)
	rec := httptest.NewRecorder()

	mw(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logBuf.String(), "rule exploded")
}

func TestMiddleware_CustomValidator(t *testing.T) {
	schema := validate.Schema{
		{Name: "age", Type: validate.TypeInt},
	}
	mw := validate.Middleware(validate.OriginQuery, schema,
		validate.WithValidator(validate.New(validate.WithLenientNumbers())))

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/?age=abc", nil)
	rec := httptest.NewRecorder()

	mw(okHandler(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
