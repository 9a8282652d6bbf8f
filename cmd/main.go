// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/spf13/pflag"

	"go_4_study_scheduler/internal/cache"
	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/handlers"
	"go_4_study_scheduler/internal/logging"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/service"
	"go_4_study_scheduler/internal/timeutil"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	fs := pflag.NewFlagSet("study-scheduler", pflag.ExitOnError)
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.LoadConfig("configs", fs)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	appEnv := cfg.Env
	if appEnv == "" {
		appEnv = os.Getenv("APP_ENV")
	}
	logger := logging.New(os.Stderr, cfg.Log.Level, appEnv)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("env", appEnv))

	// 1. Initialize Database Connection (GORM)
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// インメモリSQLiteは起動のたびに空になるのでスキーマを作成する
	if cfg.Database.Driver == config.DriverSQLite {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 2. Optional bundle cache
	var bundleCache cache.BundleCache = cache.NopBundleCache{}
	if cfg.Redis.Enabled {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		client, err := cache.NewRedisClient(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable, daily bundles will not be cached", slog.Any("error", err))
		} else {
			defer client.Close()
			bundleCache = cache.NewRedisBundleCache(client, cfg.Redis.TTL)
			slog.Info("Bundle cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	calendar := timeutil.NewCalendar(timeutil.LoadZone(cfg.App.Timezone, cfg.App.TimezoneOffsetHours), nil)

	// 3. Dependency Injection
	reviewRepo := repository.NewGormReviewRepository()
	bundleRepo := repository.NewGormBundleRepository()
	catalogRepo := repository.NewGormCatalogRepository()
	settingsRepo := repository.NewGormSettingsRepository()

	settingsService := service.NewSettingsService(db, settingsRepo)
	dailyService := service.NewDailyService(db, bundleRepo, catalogRepo, settingsService, cfg,
		service.WithCalendar(calendar),
		service.WithBundleCache(bundleCache),
	)
	reviewService := service.NewReviewService(db, reviewRepo, catalogRepo, calendar, cfg)

	dailyHandler := handlers.NewDailyHandler(dailyService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	healthHandler := handlers.NewHealthHandler(sqlDB, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	handlers.RegisterAPIRoutes(r, dailyHandler, reviewHandler, settingsHandler)
	r.Get("/health", healthHandler.GetHealth)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
