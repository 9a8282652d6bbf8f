// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/webutil"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		appErr := model.NewAppError("DB_UNAVAILABLE", "データベースに接続できません。", "", model.ErrInfrastructure)
		webutil.HandleError(w, h.logger, appErr)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
