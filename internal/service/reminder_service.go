package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/timeutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderService tells an owner how many reviews are waiting, over the
// channel chosen in their settings. Only email is delivered here; push
// belongs to the client app.
type ReminderService interface {
	SendDueReminder(ctx context.Context, ownerID uuid.UUID, to string) (*model.ReminderResult, error)
}

type reminderService struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	settings   SettingsService
	mailer     Mailer
	calendar   *timeutil.Calendar
}

func NewReminderService(db *gorm.DB, reviewRepo repository.ReviewRepository, settings SettingsService, mailer Mailer, calendar *timeutil.Calendar) ReminderService {
	if calendar == nil {
		calendar = timeutil.NewCalendar(nil, nil)
	}
	return &reminderService{
		db:         db,
		reviewRepo: reviewRepo,
		settings:   settings,
		mailer:     mailer,
		calendar:   calendar,
	}
}

func (s *reminderService) SendDueReminder(ctx context.Context, ownerID uuid.UUID, to string) (*model.ReminderResult, error) {
	if ownerID == uuid.Nil {
		return nil, missingOwnerError()
	}
	if _, err := mail.ParseAddress(to); err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "宛先メールアドレスの形式が正しくありません。", "to", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx)

	settings, err := s.settings.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	today := s.calendar.Today()
	result := &model.ReminderResult{AsOf: today, Channel: settings.NotifyChannel}

	switch settings.NotifyChannel {
	case model.NotifyEmail:
	case model.NotifyNone:
		result.Reason = model.ReminderSkippedOptedOut
		return result, nil
	default:
		result.Reason = model.ReminderSkippedNoChannel
		return result, nil
	}

	count, err := s.reviewRepo.CountDue(ctx, s.db, ownerID, today)
	if err != nil {
		logger.Error("Failed to count due review items", slog.Any("error", err))
		return nil, infraError("復習アイテム数の取得に失敗しました。", err)
	}
	result.DueCount = count
	if count == 0 {
		result.Reason = model.ReminderSkippedNothingDue
		return result, nil
	}

	subject := fmt.Sprintf("[%s] 復習が%d件あります", today, count)
	body := fmt.Sprintf("今日(%s)までに復習期限が来たカードが%d件あります。\n少しずつ進めましょう。", today, count)
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		logger.Error("Failed to send reminder", slog.Any("error", err))
		return nil, infraError("リマインダーの送信に失敗しました。", err)
	}

	result.Sent = true
	logger.Info("Due reminder sent", slog.Int64("due_count", count))
	return result, nil
}
