package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/srs"
	"go_4_study_scheduler/internal/timeutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	ApplyGrade(ctx context.Context, ownerID, itemID uuid.UUID, grade model.Grade) (*model.GradeResult, error)
	// ListDueReviews returns items due on or before asOf (today when nil),
	// ordered by due day then id.
	ListDueReviews(ctx context.Context, ownerID uuid.UUID, asOf *model.Date, limit int) ([]*model.ReviewItemResponse, error)
	CountDueReviews(ctx context.Context, ownerID uuid.UUID, asOf *model.Date) (*model.DueCountResponse, error)
	EnrollVocabulary(ctx context.Context, ownerID uuid.UUID, req *model.EnrollVocabRequest) (*model.EnrollResult, error)
	EnrollListening(ctx context.Context, ownerID uuid.UUID, req *model.EnrollListeningRequest) (*model.EnrollResult, error)
	SeedStarterDeck(ctx context.Context, ownerID uuid.UUID) (*model.EnrollResult, error)
}

type reviewService struct {
	db          *gorm.DB
	reviewRepo  repository.ReviewRepository
	catalogRepo repository.CatalogRepository
	params      *srs.Params
	calendar    *timeutil.Calendar
	cfg         *config.Config
}

func NewReviewService(db *gorm.DB, reviewRepo repository.ReviewRepository, catalogRepo repository.CatalogRepository, calendar *timeutil.Calendar, cfg *config.Config) ReviewService {
	if calendar == nil {
		calendar = timeutil.NewCalendar(nil, nil)
	}
	return &reviewService{
		db:          db,
		reviewRepo:  reviewRepo,
		catalogRepo: catalogRepo,
		params:      srs.NewParams(cfg.SRS.EasyBonus),
		calendar:    calendar,
		cfg:         cfg,
	}
}

func (s *reviewService) ApplyGrade(ctx context.Context, ownerID, itemID uuid.UUID, grade model.Grade) (*model.GradeResult, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	logger := middleware.GetLogger(ctx).With(slog.String("item_id", itemID.String()))

	// 状態を変更する前に評価値を検証する
	parsed, err := model.ParseGrade(string(grade))
	if err != nil {
		logger.Warn("Invalid grade", slog.String("grade", string(grade)))
		return nil, model.NewAppError("INVALID_GRADE", "gradeはagain/hard/good/easyのいずれかです。", "grade", model.ErrInvalidGrade)
	}

	today := s.calendar.Today()
	var result *model.GradeResult

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.reviewRepo.FindByID(ctx, tx, ownerID, itemID)
		if err != nil {
			return err
		}

		cur := srs.State{EaseFactor: item.EaseFactor, IntervalDays: item.IntervalDays, Repetitions: item.Repetitions}
		next, due, err := s.params.Schedule(cur, parsed, today)
		if err != nil {
			return err
		}

		item.EaseFactor = next.EaseFactor
		item.IntervalDays = next.IntervalDays
		item.Repetitions = next.Repetitions
		item.DueOn = due
		item.LastGrade = &parsed
		if err := s.reviewRepo.UpdateSchedule(ctx, tx, item); err != nil {
			return err
		}

		result = &model.GradeResult{
			ItemID:       item.ID,
			DueOn:        item.DueOn,
			EaseFactor:   item.EaseFactor,
			IntervalDays: item.IntervalDays,
			Repetitions:  item.Repetitions,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, model.NewAppError("NOT_FOUND", "復習アイテムが見つかりません。", "item_id", model.ErrNotFound)
		case errors.Is(err, model.ErrConflict):
			logger.Warn("Concurrent grade detected")
			return nil, model.NewAppError("CONFLICT", "同時に更新されました。再試行してください。", "", model.ErrConflict)
		case errors.Is(err, model.ErrInvalidGrade):
			return nil, model.NewAppError("INVALID_GRADE", "gradeはagain/hard/good/easyのいずれかです。", "grade", model.ErrInvalidGrade)
		}
		logger.Error("Failed to apply grade", slog.Any("error", err))
		return nil, infraError("採点結果の保存に失敗しました。", err)
	}

	logger.Info("Grade applied",
		slog.String("grade", string(parsed)),
		slog.String("due_on", result.DueOn.String()),
		slog.Int("interval_days", result.IntervalDays),
	)
	return result, nil
}

func (s *reviewService) resolveReviewLimit(requested int) int {
	maxLimit := s.cfg.App.ReviewLimit
	if maxLimit <= 0 || maxLimit > config.MaxReviewLimit {
		maxLimit = config.MaxReviewLimit
	}
	if requested <= 0 {
		return maxLimit
	}
	return min(requested, maxLimit)
}

func (s *reviewService) asOfOrToday(asOf *model.Date) model.Date {
	if asOf != nil && !asOf.IsZero() {
		return *asOf
	}
	return s.calendar.Today()
}

func (s *reviewService) ListDueReviews(ctx context.Context, ownerID uuid.UUID, asOf *model.Date, limit int) ([]*model.ReviewItemResponse, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	day := s.asOfOrToday(asOf)
	logger := middleware.GetLogger(ctx).With(slog.String("as_of", day.String()))

	items, err := s.reviewRepo.FindDue(ctx, s.db, ownerID, day, s.resolveReviewLimit(limit))
	if err != nil {
		logger.Error("Failed to find due review items", slog.Any("error", err))
		return nil, infraError("復習アイテムの取得に失敗しました。", err)
	}

	responses := make([]*model.ReviewItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, model.NewReviewItemResponse(item))
	}
	logger.Info("Successfully retrieved due review items", slog.Int("count", len(responses)))
	return responses, nil
}

func (s *reviewService) CountDueReviews(ctx context.Context, ownerID uuid.UUID, asOf *model.Date) (*model.DueCountResponse, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	day := s.asOfOrToday(asOf)
	count, err := s.reviewRepo.CountDue(ctx, s.db, ownerID, day)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to count due review items", slog.Any("error", err))
		return nil, infraError("復習アイテム数の取得に失敗しました。", err)
	}
	return &model.DueCountResponse{AsOf: day, Count: count}, nil
}

func (s *reviewService) newItem(ownerID uuid.UUID, front, back string, today model.Date, now time.Time) *model.ReviewItem {
	initial := srs.InitialState()
	if s.cfg.SRS.InitialEase >= srs.MinEaseFactor {
		initial.EaseFactor = s.cfg.SRS.InitialEase
	}
	return &model.ReviewItem{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Front:        front,
		Back:         back,
		EaseFactor:   initial.EaseFactor,
		IntervalDays: initial.IntervalDays,
		Repetitions:  initial.Repetitions,
		DueOn:        today,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EnrollVocabulary turns catalog vocabulary into review items. Unknown ids
// fail the whole request before anything is written; vocabulary whose word
// the owner already studies is skipped.
func (s *reviewService) EnrollVocabulary(ctx context.Context, ownerID uuid.UUID, req *model.EnrollVocabRequest) (*model.EnrollResult, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	logger := middleware.GetLogger(ctx)

	ids := make([]uuid.UUID, 0, len(req.VocabIDs))
	seen := make(map[uuid.UUID]struct{}, len(req.VocabIDs))
	for _, id := range req.VocabIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "vocab_idsは必須項目です。", "vocab_ids", model.ErrInvalidInput)
	}

	entries, err := s.catalogRepo.FindVocabByIDs(ctx, s.db, ids)
	if err != nil {
		logger.Error("Failed to load vocabulary for enrollment", slog.Any("error", err))
		return nil, infraError("単語の取得に失敗しました。", err)
	}
	if len(entries) != len(ids) {
		logger.Warn("Enrollment references unknown vocabulary", slog.Int("requested", len(ids)), slog.Int("found", len(entries)))
		return nil, model.NewAppError("NOT_FOUND", "存在しない単語IDが含まれています。", "vocab_ids", model.ErrNotFound)
	}

	byID := make(map[uuid.UUID]*model.VocabEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	today := s.calendar.Today()
	now := time.Now().UTC()
	items := make([]*model.ReviewItem, 0, len(ids))
	for _, id := range ids {
		e := byID[id]
		item := s.newItem(ownerID, e.Word, e.Meaning, today, now)
		sourceID := e.ID
		item.SourceVocabID = &sourceID
		items = append(items, item)
	}

	return s.insertItems(ctx, logger, items, "単語の登録に失敗しました。")
}

// EnrollListening turns a listening material into a review item whose front
// is the title and back the script. A title the owner already studies is
// skipped.
func (s *reviewService) EnrollListening(ctx context.Context, ownerID uuid.UUID, req *model.EnrollListeningRequest) (*model.EnrollResult, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	if req.ListeningID == uuid.Nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "listening_idは必須項目です。", "listening_id", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With(slog.String("listening_id", req.ListeningID.String()))

	material, err := s.catalogRepo.FindListeningByID(ctx, s.db, req.ListeningID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Enrollment references unknown listening material")
			return nil, model.NewAppError("NOT_FOUND", "リスニング教材が見つかりません。", "listening_id", model.ErrNotFound)
		}
		logger.Error("Failed to load listening material for enrollment", slog.Any("error", err))
		return nil, infraError("リスニング教材の取得に失敗しました。", err)
	}

	item := s.newItem(ownerID, material.Title, material.Script, s.calendar.Today(), time.Now().UTC())
	sourceID := material.ID
	item.SourceListeningID = &sourceID

	return s.insertItems(ctx, logger, []*model.ReviewItem{item}, "リスニング教材の登録に失敗しました。")
}

func (s *reviewService) SeedStarterDeck(ctx context.Context, ownerID uuid.UUID) (*model.EnrollResult, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	today := s.calendar.Today()
	now := time.Now().UTC()
	items := make([]*model.ReviewItem, 0, len(starterDeck))
	for _, card := range starterDeck {
		items = append(items, s.newItem(ownerID, card[0], card[1], today, now))
	}
	return s.insertItems(ctx, middleware.GetLogger(ctx), items, "スターターデッキの作成に失敗しました。")
}

func (s *reviewService) insertItems(ctx context.Context, logger *slog.Logger, items []*model.ReviewItem, failMsg string) (*model.EnrollResult, error) {
	var inserted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.reviewRepo.CreateIgnoringConflicts(ctx, tx, items)
		inserted = n
		return err
	})
	if err != nil {
		logger.Error("Failed to insert review items", slog.Any("error", err))
		return nil, infraError(failMsg, err)
	}

	result := &model.EnrollResult{Enrolled: inserted, Skipped: int64(len(items)) - inserted}
	logger.Info("Review items inserted", slog.Int64("enrolled", result.Enrolled), slog.Int64("skipped", result.Skipped))
	return result, nil
}
