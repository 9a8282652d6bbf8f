// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_study_scheduler/internal/handlers"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testServer はモックサービスを注入したルーターをまとめます。
type testServer struct {
	router   *chi.Mux
	daily    *mocks.DailyService
	review   *mocks.ReviewService
	settings *mocks.SettingsService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		daily:    mocks.NewDailyService(t),
		review:   mocks.NewReviewService(t),
		settings: mocks.NewSettingsService(t),
	}
	s.router = chi.NewRouter()
	s.router.Use(middleware.LoggingMiddleware(testLogger))
	handlers.RegisterAPIRoutes(s.router,
		handlers.NewDailyHandler(s.daily, testLogger),
		handlers.NewReviewHandler(s.review, testLogger),
		handlers.NewSettingsHandler(s.settings, testLogger),
	)
	return s
}

// do はテスト用のHTTPリクエストを実行し、レスポンスレコーダーを返します。
// ownerID が指定されていれば X-User-ID ヘッダーを追加します。
func (s *testServer) do(t *testing.T, method, url string, body interface{}, ownerID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ownerID != nil {
		req.Header.Set(middleware.OwnerHeader, ownerID.String())
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを取り出します。
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func ptr[T any](v T) *T { return &v }
