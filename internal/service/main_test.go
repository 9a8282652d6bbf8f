package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/timeutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testDay    = model.MustParseDate("2024-01-30")
)

func testCtx() context.Context {
	return middleware.WithLogger(context.Background(), testLogger)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			ReviewLimit:       config.MaxReviewLimit,
			VocabLimitDefault: config.DefaultVocabLimit,
			VocabLimitMax:     config.DefaultVocabLimitMax,
		},
		SRS: config.SRSConfig{InitialEase: 2.5, EasyBonus: 0.10},
	}
}

func testCalendar() *timeutil.Calendar {
	return timeutil.FixedCalendar(testDay)
}

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	_, err := NewCatalogService(db, repository.NewGormCatalogRepository()).SeedCatalog(testCtx())
	require.NoError(t, err)
}

func vocabIDByWord(t *testing.T, db *gorm.DB, word string) uuid.UUID {
	t.Helper()
	var entry model.VocabEntry
	require.NoError(t, db.Where("word = ?", word).First(&entry).Error)
	return entry.ID
}

func listeningIDByTitle(t *testing.T, db *gorm.DB, title string) uuid.UUID {
	t.Helper()
	var material model.ListeningMaterial
	require.NoError(t, db.Where("title = ?", title).First(&material).Error)
	return material.ID
}
