// internal/handlers/settings_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_GetSettings(t *testing.T) {
	s := newTestServer(t)
	owner := uuid.New()
	s.settings.On("GetSettings", mock.Anything, owner).Return(&model.UserSettings{
		OwnerID:       owner,
		Interests:     []string{"tech"},
		WeakAreas:     []string{},
		NotifyChannel: model.NotifyEmail,
	}, nil).Once()

	rr := s.do(t, http.MethodGet, "/api/v1/settings", nil, &owner)

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.UserSettings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []string{"tech"}, got.Interests)
	assert.Equal(t, model.NotifyEmail, got.NotifyChannel)
}

func TestSettingsHandler_PutSettings(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(s *testServer)
		wantStatus int
		wantField  string
	}{
		{
			name: "正常系",
			body: model.UpdateSettingsRequest{Interests: []string{"Media", "tech"}, NotifyChannel: "push"},
			setupMock: func(s *testServer) {
				s.settings.On("UpdateSettings", mock.Anything, owner, &model.UpdateSettingsRequest{Interests: []string{"Media", "tech"}, NotifyChannel: "push"}).
					Return(&model.UserSettings{OwnerID: owner, Interests: []string{"media", "tech"}, WeakAreas: []string{}, NotifyChannel: "push"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: 通知チャネル不正",
			body:       model.UpdateSettingsRequest{NotifyChannel: "fax"},
			setupMock:  func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "notify_channel",
		},
		{
			name:       "異常系: 空の興味タグ",
			body:       model.UpdateSettingsRequest{Interests: []string{""}},
			setupMock:  func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "interests[0]",
		},
		{
			name:       "異常系: ボディなし",
			body:       nil,
			setupMock:  func(s *testServer) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMock(s)

			rr := s.do(t, http.MethodPut, "/api/v1/settings", tt.body, &owner)

			assert.Equal(t, tt.wantStatus, rr.Code, "body: %s", rr.Body.String())
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, decodeError(t, rr).Field)
			}
		})
	}
}
