//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
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

// CatalogRepository は読み取り専用のコンテンツカタログ (単語とリスニング素材)
type CatalogRepository interface {
	ListListeningItems(ctx context.Context, db *gorm.DB) ([]model.ContentItem, error)
	ListVocabItems(ctx context.Context, db *gorm.DB) ([]model.ContentItem, error)
	FindListeningByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ListeningMaterial, error)
	// FindVocabByIDs returns the entries that exist, in no particular order.
	FindVocabByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]*model.VocabEntry, error)
	CreateVocab(ctx context.Context, tx *gorm.DB, entries []*model.VocabEntry) (int64, error)
	CreateListening(ctx context.Context, tx *gorm.DB, materials []*model.ListeningMaterial) (int64, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) ListListeningItems(ctx context.Context, db *gorm.DB) ([]model.ContentItem, error) {
	var rows []*model.ListeningMaterial
	if err := db.WithContext(ctx).Select("id", "tags").Order("id").Find(&rows).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing listening materials in DB", slog.Any("error", err))
		return nil, storeError("gormCatalogRepository.ListListeningItems", err)
	}
	items := make([]model.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = row.ContentItem()
	}
	return items, nil
}

func (r *gormCatalogRepository) ListVocabItems(ctx context.Context, db *gorm.DB) ([]model.ContentItem, error) {
	var rows []*model.VocabEntry
	if err := db.WithContext(ctx).Select("id", "tags").Order("id").Find(&rows).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing vocab entries in DB", slog.Any("error", err))
		return nil, storeError("gormCatalogRepository.ListVocabItems", err)
	}
	items := make([]model.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = row.ContentItem()
	}
	return items, nil
}

func (r *gormCatalogRepository) FindListeningByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ListeningMaterial, error) {
	var material model.ListeningMaterial
	result := db.WithContext(ctx).Where("id = ?", id).First(&material)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding listening material in DB",
			slog.Any("error", result.Error),
			slog.String("listening_id", id.String()),
		)
		return nil, storeError("gormCatalogRepository.FindListeningByID", result.Error)
	}
	return &material, nil
}

func (r *gormCatalogRepository) FindVocabByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]*model.VocabEntry, error) {
	if len(ids) == 0 {
		return []*model.VocabEntry{}, nil
	}
	var entries []*model.VocabEntry
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&entries).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding vocab entries in DB",
			slog.Any("error", err),
			slog.Int("requested", len(ids)),
		)
		return nil, storeError("gormCatalogRepository.FindVocabByIDs", err)
	}
	return entries, nil
}

func (r *gormCatalogRepository) CreateVocab(ctx context.Context, tx *gorm.DB, entries []*model.VocabEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "word"}}, DoNothing: true}).
		Create(entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating vocab entries in DB", slog.Any("error", result.Error))
		return 0, storeError("gormCatalogRepository.CreateVocab", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormCatalogRepository) CreateListening(ctx context.Context, tx *gorm.DB, materials []*model.ListeningMaterial) (int64, error) {
	if len(materials) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(materials)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating listening materials in DB", slog.Any("error", result.Error))
		return 0, storeError("gormCatalogRepository.CreateListening", result.Error)
	}
	return result.RowsAffected, nil
}
