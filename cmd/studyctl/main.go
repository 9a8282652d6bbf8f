// Command studyctl runs maintenance tasks against the study-scheduler database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/logging"
	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/repository"
	"go_4_study_scheduler/internal/service"
	"go_4_study_scheduler/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:           "studyctl",
	Short:         "Maintenance commands for the study scheduler",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample data",
	Long: `Insert sample data into the database.

Available subcommands:
  catalog - sample vocabulary and listening materials
  deck    - the starter review deck for one owner`,
}

var seedCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Insert the sample vocabulary and listening catalog",
	RunE:  runSeedCatalog,
}

var seedDeckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Insert the starter review deck for an owner",
	RunE:  runSeedDeck,
}

// remindCmd emails an owner how many reviews are due today
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a due-review reminder to one owner",
	Long: `Count the owner's due review items and email a reminder.

Nothing is sent when the owner's notify channel is not "email"
or when no review is due.`,
	RunE: runRemind,
}

func init() {
	config.Flags(rootCmd.PersistentFlags())
	seedDeckCmd.Flags().String("owner", "", "owner id (uuid)")
	seedDeckCmd.MarkFlagRequired("owner")
	remindCmd.Flags().String("owner", "", "owner id (uuid)")
	remindCmd.Flags().String("to", "", "recipient email address")
	remindCmd.MarkFlagRequired("owner")
	remindCmd.MarkFlagRequired("to")

	seedCmd.AddCommand(seedCatalogCmd, seedDeckCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd, remindCmd)
}

func ownerFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("owner")
	ownerID, err := uuid.Parse(raw)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid --owner %q", raw)
	}
	return ownerID, nil
}

func calendarFor(cfg *config.Config) *timeutil.Calendar {
	return timeutil.NewCalendar(timeutil.LoadZone(cfg.App.Timezone, cfg.App.TimezoneOffsetHours), nil)
}

// env はコマンド実行に必要な依存関係をまとめます
type env struct {
	cfg *config.Config
	db  *gorm.DB
	ctx context.Context
}

func setup(cmd *cobra.Command) (*env, func(), error) {
	cfg, err := config.LoadConfig("configs", cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Env)
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	// インメモリSQLiteではコマンドごとにスキーマが必要
	if cfg.Database.Driver == config.DriverSQLite {
		if err := repository.AutoMigrate(db); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	ctx := middleware.WithLogger(cmd.Context(), logger)
	return &env{cfg: cfg, db: db, ctx: ctx}, closeDB, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := repository.AutoMigrate(e.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	return nil
}

func runSeedCatalog(cmd *cobra.Command, _ []string) error {
	e, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.NewCatalogService(e.db, repository.NewGormCatalogRepository()).SeedCatalog(e.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "inserted %d vocab, %d listening\n", result.Vocab, result.Listening)
	return nil
}

func runSeedDeck(cmd *cobra.Command, _ []string) error {
	ownerID, err := ownerFlag(cmd)
	if err != nil {
		return err
	}

	e, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := service.NewReviewService(e.db, repository.NewGormReviewRepository(), repository.NewGormCatalogRepository(), calendarFor(e.cfg), e.cfg)
	result, err := svc.SeedStarterDeck(e.ctx, ownerID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "enrolled %d, skipped %d\n", result.Enrolled, result.Skipped)
	return nil
}

func runRemind(cmd *cobra.Command, _ []string) error {
	ownerID, err := ownerFlag(cmd)
	if err != nil {
		return err
	}
	to, _ := cmd.Flags().GetString("to")

	e, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := service.NewReminderService(
		e.db,
		repository.NewGormReviewRepository(),
		service.NewSettingsService(e.db, repository.NewGormSettingsRepository()),
		service.NewMailer(e.cfg),
		calendarFor(e.cfg),
	)
	result, err := svc.SendDueReminder(e.ctx, ownerID, to)
	if err != nil {
		return err
	}
	if result.Sent {
		fmt.Fprintf(cmd.OutOrStdout(), "sent: %d due as of %s\n", result.DueCount, result.AsOf)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped: %s\n", result.Reason)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
