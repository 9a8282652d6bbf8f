package service

import (
	"context"
	"log/slog"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	// SeedCatalog inserts the sample vocabulary and listening materials,
	// skipping entries whose word or title already exists.
	SeedCatalog(ctx context.Context) (*model.SeedResult, error)
}

type catalogService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{db: db, catalogRepo: catalogRepo}
}

func (s *catalogService) SeedCatalog(ctx context.Context) (*model.SeedResult, error) {
	logger := middleware.GetLogger(ctx)

	vocab := sampleVocab()
	for _, v := range vocab {
		v.ID = uuid.New()
		v.Tags = model.NormalizeTags(v.Tags)
	}
	listening := sampleListening()
	for _, l := range listening {
		l.ID = uuid.New()
		l.Tags = model.NormalizeTags(l.Tags)
	}

	var result model.SeedResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.catalogRepo.CreateVocab(ctx, tx, vocab)
		if err != nil {
			return err
		}
		result.Vocab = n

		n, err = s.catalogRepo.CreateListening(ctx, tx, listening)
		if err != nil {
			return err
		}
		result.Listening = n
		return nil
	})
	if err != nil {
		logger.Error("Catalog seeding failed", slog.Any("error", err))
		return nil, infraError("カタログの投入に失敗しました。", err)
	}

	logger.Info("Catalog seeded", slog.Int64("vocab", result.Vocab), slog.Int64("listening", result.Listening))
	return &result, nil
}
