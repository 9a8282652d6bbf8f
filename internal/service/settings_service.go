// internal/service/settings_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxInterests = 10

// InterestProvider supplies an owner's ranked interest tags. Absent settings
// yield an empty list, not an error.
type InterestProvider interface {
	Interests(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}

type SettingsService interface {
	InterestProvider
	GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.UserSettings, error)
	UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *model.UpdateSettingsRequest) (*model.UserSettings, error)
}

type settingsService struct {
	db           *gorm.DB
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(db *gorm.DB, settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{db: db, settingsRepo: settingsRepo}
}

func defaultSettings(ownerID uuid.UUID) *model.UserSettings {
	return &model.UserSettings{
		OwnerID:       ownerID,
		Interests:     []string{},
		WeakAreas:     []string{},
		NotifyChannel: model.NotifyEmail,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.UserSettings, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	settings, err := s.settingsRepo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return defaultSettings(ownerID), nil
		}
		middleware.GetLogger(ctx).Error("Failed to load settings", slog.Any("error", err))
		return nil, infraError("設定の取得に失敗しました。", err)
	}
	if settings.Interests == nil {
		settings.Interests = []string{}
	}
	if settings.WeakAreas == nil {
		settings.WeakAreas = []string{}
	}
	return settings, nil
}

func (s *settingsService) Interests(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	settings, err := s.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return model.NormalizeTags(settings.Interests), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *model.UpdateSettingsRequest) (*model.UserSettings, error) {
	logger := middleware.GetLogger(ctx)
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}

	interests := model.NormalizeTags(req.Interests)
	if len(interests) > maxInterests {
		return nil, model.NewAppError("VALIDATION_ERROR", "興味タグは10個までです。", "interests", model.ErrInvalidInput)
	}
	notify := req.NotifyChannel
	switch notify {
	case "":
		notify = model.NotifyEmail
	case model.NotifyEmail, model.NotifyPush, model.NotifyNone:
	default:
		return nil, model.NewAppError("VALIDATION_ERROR", "通知チャネルが正しくありません。", "notify_channel", model.ErrInvalidInput)
	}

	settings := &model.UserSettings{
		OwnerID:       ownerID,
		Interests:     interests,
		WeakAreas:     model.NormalizeTags(req.WeakAreas),
		NotifyChannel: notify,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.settingsRepo.Upsert(ctx, s.db, settings); err != nil {
		logger.Error("Failed to upsert settings", slog.Any("error", err))
		return nil, infraError("設定の保存に失敗しました。", err)
	}

	logger.Info("Settings updated", slog.Any("interests", settings.Interests), slog.String("notify_channel", notify))
	return settings, nil
}
