//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"log/slog"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	// CreateIgnoringConflicts inserts items, skipping any whose (owner, front)
	// already exists, and returns how many rows were inserted.
	CreateIgnoringConflicts(ctx context.Context, tx *gorm.DB, items []*model.ReviewItem) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, ownerID, itemID uuid.UUID) (*model.ReviewItem, error)
	// UpdateSchedule persists the scheduling fields of item if its stored
	// version still equals item.Version, then bumps item.Version.
	UpdateSchedule(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error
	FindDue(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, asOf model.Date, limit int) ([]*model.ReviewItem, error)
	CountDue(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, asOf model.Date) (int64, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) CreateIgnoringConflicts(ctx context.Context, tx *gorm.DB, items []*model.ReviewItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "front"}},
			DoNothing: true,
		}).
		Create(items)
	if result.Error != nil {
		logger.Error("Error creating review items in DB",
			slog.Any("error", result.Error),
			slog.Int("count", len(items)),
		)
		return 0, storeError("gormReviewRepository.CreateIgnoringConflicts", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormReviewRepository) FindByID(ctx context.Context, db *gorm.DB, ownerID, itemID uuid.UUID) (*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx)
	var item model.ReviewItem
	result := db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, itemID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review item by ID in DB",
			slog.Any("error", result.Error),
			slog.String("item_id", itemID.String()),
		)
		return nil, storeError("gormReviewRepository.FindByID", result.Error)
	}
	return &item, nil
}

func (r *gormReviewRepository) UpdateSchedule(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("id = ? AND owner_id = ? AND version = ?", item.ID, item.OwnerID, item.Version).
		Updates(map[string]interface{}{
			"ease_factor":   item.EaseFactor,
			"interval_days": item.IntervalDays,
			"repetitions":   item.Repetitions,
			"due_on":        item.DueOn,
			"last_grade":    item.LastGrade,
			"version":       item.Version + 1,
		})
	if result.Error != nil {
		logger.Error("Error updating review schedule in DB",
			slog.Any("error", result.Error),
			slog.String("item_id", item.ID.String()),
		)
		return storeError("gormReviewRepository.UpdateSchedule", result.Error)
	}
	if result.RowsAffected == 0 {
		// 他のリクエストが先に更新した
		return model.ErrConflict
	}
	item.Version++
	return nil
}

func (r *gormReviewRepository) FindDue(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, asOf model.Date, limit int) ([]*model.ReviewItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.ReviewItem
	result := db.WithContext(ctx).
		Where("owner_id = ? AND due_on <= ?", ownerID, asOf).
		Order("due_on ASC").
		Order("id ASC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		logger.Error("Error finding due review items in DB",
			slog.Any("error", result.Error),
			slog.String("as_of", asOf.String()),
		)
		return nil, storeError("gormReviewRepository.FindDue", result.Error)
	}
	return items, nil
}

func (r *gormReviewRepository) CountDue(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, asOf model.Date) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewItem{}).
		Where("owner_id = ? AND due_on <= ?", ownerID, asOf).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting due review items in DB", slog.Any("error", result.Error))
		return 0, storeError("gormReviewRepository.CountDue", result.Error)
	}
	return count, nil
}
