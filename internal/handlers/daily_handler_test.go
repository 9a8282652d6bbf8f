// internal/handlers/daily_handler_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDailyHandler_PostDailyBundle(t *testing.T) {
	owner := uuid.New()
	day := model.MustParseDate("2024-01-30")
	bundle := &model.DailyBundleResponse{
		Day:       day,
		Listening: nil,
		Vocab:     []*model.VocabEntry{},
		Interests: []string{},
	}

	tests := []struct {
		name       string
		owner      *uuid.UUID
		body       interface{}
		setupMock  func(s *testServer)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:  "正常系: ボディなし",
			owner: &owner,
			body:  nil,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, &model.DailyBundleRequest{}).Return(bundle, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"day":"2024-01-30","listening":null,"vocab":[],"interests_snapshot":[]}`,
		},
		{
			name:  "正常系: 日付と単語数を指定",
			owner: &owner,
			body:  `{"day":"2024-01-30","vocab_limit":3}`,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, &model.DailyBundleRequest{Day: ptr(day), VocabLimit: 3}).Return(bundle, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"day":"2024-01-30","listening":null,"vocab":[],"interests_snapshot":[]}`,
		},
		{
			name:       "異常系: オーナーヘッダーなし",
			owner:      nil,
			setupMock:  func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_OWNER",
		},
		{
			name:  "正常系: 上限超過の単語数はサービスに渡して切り詰める",
			owner: &owner,
			body:  `{"vocab_limit":500}`,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, &model.DailyBundleRequest{VocabLimit: 500}).Return(bundle, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"day":"2024-01-30","listening":null,"vocab":[],"interests_snapshot":[]}`,
		},
		{
			name:  "正常系: 負の単語数は既定値扱い",
			owner: &owner,
			body:  `{"vocab_limit":-1}`,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, &model.DailyBundleRequest{VocabLimit: -1}).Return(bundle, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"day":"2024-01-30","listening":null,"vocab":[],"interests_snapshot":[]}`,
		},
		{
			name:       "異常系: 日付の形式不正",
			owner:      &owner,
			body:       `{"day":"30/01/2024"}`,
			setupMock:  func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:  "異常系: ストア障害は503",
			owner: &owner,
			body:  nil,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, mock.Anything).
					Return(nil, model.NewAppError("INFRASTRUCTURE_ERROR", "今日のバンドルの取得に失敗しました。", "", model.ErrInfrastructure)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "INFRASTRUCTURE_ERROR",
		},
		{
			name:  "異常系: 予期しないエラーは500で詳細を隠す",
			owner: &owner,
			body:  nil,
			setupMock: func(s *testServer) {
				s.daily.On("GetOrCreateDailyBundle", mock.Anything, owner, mock.Anything).
					Return(nil, errors.New("pq: relation does not exist")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMock(s)

			rr := s.do(t, http.MethodPost, "/api/v1/daily-bundle", tt.body, tt.owner)

			assert.Equal(t, tt.wantStatus, rr.Code, "body: %s", rr.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tt.wantCode, detail.Code)
				assert.NotContains(t, detail.Message, "pq:")
			}
		})
	}
}

func TestDailyHandler_InvalidOwnerHeader(t *testing.T) {
	s := newTestServer(t)
	nilOwner := uuid.Nil

	rr := s.do(t, http.MethodPost, "/api/v1/daily-bundle", nil, &nilOwner)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_OWNER", decodeError(t, rr).Code)
}
