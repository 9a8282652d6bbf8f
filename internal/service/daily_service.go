// internal/service/daily_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_4_study_scheduler/internal/cache"
	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/sampler"
	"go_4_study_scheduler/internal/timeutil"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DailyService answers "today's bundle for owner O". The first call for a
// given (owner, day) selects and persists the bundle; every later call,
// including concurrent ones, returns that same snapshot.
type DailyService interface {
	GetOrCreateDailyBundle(ctx context.Context, ownerID uuid.UUID, req *model.DailyBundleRequest) (*model.DailyBundleResponse, error)
}

type dailyService struct {
	db          *gorm.DB
	bundleRepo  repository.BundleRepository
	catalogRepo repository.CatalogRepository
	interests   InterestProvider
	sampler     *sampler.Sampler
	calendar    *timeutil.Calendar
	cache       cache.BundleCache
	cfg         config.AppConfig
}

// DailyOption customizes a DailyService.
type DailyOption func(*dailyService)

func WithSampler(s *sampler.Sampler) DailyOption {
	return func(d *dailyService) { d.sampler = s }
}

func WithCalendar(c *timeutil.Calendar) DailyOption {
	return func(d *dailyService) { d.calendar = c }
}

func WithBundleCache(c cache.BundleCache) DailyOption {
	return func(d *dailyService) { d.cache = c }
}

func NewDailyService(
	db *gorm.DB,
	bundleRepo repository.BundleRepository,
	catalogRepo repository.CatalogRepository,
	interests InterestProvider,
	cfg *config.Config,
	opts ...DailyOption,
) DailyService {
	s := &dailyService{
		db:          db,
		bundleRepo:  bundleRepo,
		catalogRepo: catalogRepo,
		interests:   interests,
		sampler:     sampler.New(),
		calendar:    timeutil.NewCalendar(nil, nil),
		cache:       cache.NopBundleCache{},
		cfg:         cfg.App,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolveVocabLimit: <=0 means default, larger than the configured max is capped.
func (s *dailyService) resolveVocabLimit(requested int) int {
	maxLimit := s.cfg.VocabLimitMax
	if maxLimit <= 0 {
		maxLimit = config.DefaultVocabLimitMax
	}
	limit := requested
	if limit <= 0 {
		limit = s.cfg.VocabLimitDefault
		if limit <= 0 {
			limit = config.DefaultVocabLimit
		}
	}
	return min(limit, maxLimit)
}

func (s *dailyService) GetOrCreateDailyBundle(ctx context.Context, ownerID uuid.UUID, req *model.DailyBundleRequest) (*model.DailyBundleResponse, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	if req == nil {
		req = &model.DailyBundleRequest{}
	}

	day := s.calendar.Today()
	if req.Day != nil && !req.Day.IsZero() {
		day = *req.Day
	}
	vocabLimit := s.resolveVocabLimit(req.VocabLimit)
	logger := middleware.GetLogger(ctx).With(slog.String("day", day.String()))

	if cached, err := s.cache.Get(ctx, ownerID, day); err == nil {
		logger.Debug("Daily bundle served from cache")
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("Bundle cache read failed, falling back to store", slog.Any("error", err))
	}

	bundle, err := s.bundleRepo.FindByOwnerDay(ctx, s.db, ownerID, day)
	switch {
	case err == nil:
		logger.Debug("Existing daily bundle found")
	case errors.Is(err, model.ErrNotFound):
		bundle, err = s.createBundle(ctx, logger, ownerID, day, vocabLimit)
		if err != nil {
			return nil, err
		}
	default:
		logger.Error("Failed to read daily bundle", slog.Any("error", err))
		return nil, infraError("今日のバンドルの取得に失敗しました。", err)
	}

	resp, err := s.materialize(ctx, bundle)
	if err != nil {
		logger.Error("Failed to materialize daily bundle", slog.Any("error", err))
		return nil, infraError("今日のバンドルの取得に失敗しました。", err)
	}

	if err := s.cache.Set(ctx, ownerID, day, resp); err != nil {
		logger.Warn("Bundle cache write failed", slog.Any("error", err))
	}
	return resp, nil
}

// createBundle selects content and persists it with a conditional insert.
// When another request wins the race the stored row is returned instead of
// the local selection.
func (s *dailyService) createBundle(ctx context.Context, logger *slog.Logger, ownerID uuid.UUID, day model.Date, vocabLimit int) (*model.DailyBundle, error) {
	tags, err := s.interests.Interests(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to read interests", slog.Any("error", err))
		return nil, infraError("興味タグの取得に失敗しました。", err)
	}

	var listeningPool, vocabPool []model.ContentItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listeningPool, err = s.catalogRepo.ListListeningItems(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		vocabPool, err = s.catalogRepo.ListVocabItems(gctx, s.db)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to read content catalog", slog.Any("error", err))
		return nil, infraError("コンテンツカタログの取得に失敗しました。", err)
	}

	bundle := &model.DailyBundle{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Day:               day,
		VocabIDs:          sampler.IDs(s.sampler.Sample(vocabPool, tags, vocabLimit)),
		InterestsSnapshot: tags,
	}
	if listening, ok := s.sampler.SampleOne(listeningPool, tags); ok {
		bundle.ListeningID = &listening.ID
	}

	created, err := s.bundleRepo.CreateIfAbsent(ctx, s.db, bundle)
	if err != nil {
		logger.Error("Failed to persist daily bundle", slog.Any("error", err))
		return nil, infraError("今日のバンドルの保存に失敗しました。", err)
	}
	if created {
		logger.Info("Daily bundle created",
			slog.Int("vocab", len(bundle.VocabIDs)),
			slog.Bool("has_listening", bundle.ListeningID != nil),
		)
		return bundle, nil
	}

	logger.Info("Daily bundle already created concurrently, re-reading stored row")
	stored, err := s.bundleRepo.FindByOwnerDay(ctx, s.db, ownerID, day)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CONFLICT", "今日のバンドルを確定できませんでした。再試行してください。", "", model.ErrConflict)
		}
		return nil, infraError("今日のバンドルの取得に失敗しました。", err)
	}
	return stored, nil
}

// materialize loads the referenced content, keeping the stored vocab order
// and skipping ids that no longer exist in the catalog.
func (s *dailyService) materialize(ctx context.Context, bundle *model.DailyBundle) (*model.DailyBundleResponse, error) {
	resp := &model.DailyBundleResponse{
		Day:       bundle.Day,
		Vocab:     []*model.VocabEntry{},
		Interests: bundle.InterestsSnapshot,
	}
	if resp.Interests == nil {
		resp.Interests = []string{}
	}

	if bundle.ListeningID != nil {
		listening, err := s.catalogRepo.FindListeningByID(ctx, s.db, *bundle.ListeningID)
		switch {
		case err == nil:
			resp.Listening = listening
		case errors.Is(err, model.ErrNotFound):
			middleware.GetLogger(ctx).Warn("Listening material referenced by bundle no longer exists",
				slog.String("listening_id", bundle.ListeningID.String()))
		default:
			return nil, err
		}
	}

	if len(bundle.VocabIDs) > 0 {
		entries, err := s.catalogRepo.FindVocabByIDs(ctx, s.db, bundle.VocabIDs)
		if err != nil {
			return nil, err
		}
		byID := make(map[uuid.UUID]*model.VocabEntry, len(entries))
		for _, e := range entries {
			byID[e.ID] = e
		}
		for _, id := range bundle.VocabIDs {
			if e, ok := byID[id]; ok {
				resp.Vocab = append(resp.Vocab, e)
			}
		}
	}
	return resp, nil
}
