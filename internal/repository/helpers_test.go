package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// --- ヘルパー: テストごとに独立したインメモリSQLite ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newReviewItem(owner uuid.UUID, front string, due model.Date) *model.ReviewItem {
	return &model.ReviewItem{
		ID:           uuid.New(),
		OwnerID:      owner,
		Front:        front,
		Back:         front + " (back)",
		EaseFactor:   2.5,
		IntervalDays: 1,
		DueOn:        due,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func ctx() context.Context { return context.Background() }
