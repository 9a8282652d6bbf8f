//go:generate mockery --name SettingsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"log/slog"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (*model.UserSettings, error)
	Upsert(ctx context.Context, tx *gorm.DB, settings *model.UserSettings) error
}

type gormSettingsRepository struct{}

func NewGormSettingsRepository() SettingsRepository {
	return &gormSettingsRepository{}
}

func (r *gormSettingsRepository) FindByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (*model.UserSettings, error) {
	var settings model.UserSettings
	result := db.WithContext(ctx).Where("owner_id = ?", ownerID).Limit(1).Find(&settings)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding user settings in DB", slog.Any("error", result.Error))
		return nil, storeError("gormSettingsRepository.FindByOwner", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return &settings, nil
}

func (r *gormSettingsRepository) Upsert(ctx context.Context, tx *gorm.DB, settings *model.UserSettings) error {
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"interests", "weak_areas", "notify_channel", "updated_at"}),
		}).
		Create(settings)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting user settings in DB", slog.Any("error", result.Error))
		return storeError("gormSettingsRepository.Upsert", result.Error)
	}
	return nil
}
