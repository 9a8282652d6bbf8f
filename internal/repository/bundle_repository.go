//go:generate mockery --name BundleRepository --output ./mocks --outpkg mocks --case=underscore
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

// BundleRepository persists at most one DailyBundle per (owner, day).
type BundleRepository interface {
	FindByOwnerDay(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, day model.Date) (*model.DailyBundle, error)
	// CreateIfAbsent inserts bundle unless a row for (owner, day) already
	// exists. created is false when another writer got there first; the
	// caller must then re-read the stored row.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, bundle *model.DailyBundle) (created bool, err error)
}

type gormBundleRepository struct{}

func NewGormBundleRepository() BundleRepository {
	return &gormBundleRepository{}
}

func (r *gormBundleRepository) FindByOwnerDay(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, day model.Date) (*model.DailyBundle, error) {
	var bundle model.DailyBundle
	result := db.WithContext(ctx).Where("owner_id = ? AND day = ?", ownerID, day).Limit(1).Find(&bundle)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding daily bundle in DB",
			slog.Any("error", result.Error),
			slog.String("day", day.String()),
		)
		return nil, storeError("gormBundleRepository.FindByOwnerDay", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrNotFound
	}
	return &bundle, nil
}

func (r *gormBundleRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, bundle *model.DailyBundle) (bool, error) {
	logger := middleware.GetLogger(ctx)
	if bundle.VocabIDs == nil {
		bundle.VocabIDs = []uuid.UUID{}
	}
	if bundle.InterestsSnapshot == nil {
		bundle.InterestsSnapshot = []string{}
	}

	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		Create(bundle)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			logger.Info("Daily bundle insert lost a race (unique violation)", slog.String("day", bundle.Day.String()))
			return false, nil
		}
		logger.Error("Error creating daily bundle in DB",
			slog.Any("error", result.Error),
			slog.String("day", bundle.Day.String()),
		)
		return false, storeError("gormBundleRepository.CreateIfAbsent", result.Error)
	}
	return result.RowsAffected > 0, nil
}
