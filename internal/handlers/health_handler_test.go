// internal/handlers/health_handler_test.go
package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_study_scheduler/internal/handlers"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_GetHealth(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		h := handlers.NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), testLogger)
		rr := httptest.NewRecorder()
		h.GetHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("異常系: DBに接続できない", func(t *testing.T) {
		h := handlers.NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), testLogger)
		rr := httptest.NewRecorder()
		h.GetHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	})
}
