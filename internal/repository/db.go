package repository

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" database/sql driver
)

// NewDB opens the configured store (PostgreSQL or SQLite) and verifies the
// connection.
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	// === slog を利用する GORM Logger の設定 ===
	gormLogLevel := gormlogger.Warn
	if cfg.LogSQL {
		gormLogLevel = gormlogger.Info
	}
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         slogGormLogger,
		TranslateError: true, // postgres unique violations surface as gorm.ErrDuplicatedKey
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("driver", cfg.Driver))
		return nil, fmt.Errorf("%w: %w", model.ErrInfrastructure, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", model.ErrInfrastructure, err)
	}

	if isMemorySQLite(cfg) {
		// every connection to :memory: would otherwise be a separate database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 100))
		sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 10))
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		} else {
			sqlDB.SetConnMaxLifetime(time.Hour)
		}
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", cfg.Driver))
	return db, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		if cfg.URL == "" {
			return nil, fmt.Errorf("%w: database.url is empty", model.ErrInvalidInput)
		}
		return postgres.Open(cfg.URL), nil
	case config.DriverSQLite:
		dsn := cfg.URL
		if dsn == "" {
			dsn = config.DefaultSQLiteDSN
		}
		return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", model.ErrInvalidInput, cfg.Driver)
	}
}

func isMemorySQLite(cfg config.DatabaseConfig) bool {
	return cfg.Driver == config.DriverSQLite &&
		(cfg.URL == "" || strings.Contains(cfg.URL, ":memory:") || strings.Contains(cfg.URL, "mode=memory"))
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.VocabEntry{},
		&model.ListeningMaterial{},
		&model.UserSettings{},
		&model.DailyBundle{},
		&model.ReviewItem{},
	)
}
