// internal/handlers/daily_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/service"
	"go_4_study_scheduler/internal/webutil"
)

type DailyHandler struct {
	service service.DailyService
	logger  *slog.Logger
}

func NewDailyHandler(s service.DailyService, logger *slog.Logger) *DailyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyHandler{
		service: s,
		logger:  logger,
	}
}

// PostDailyBundle は今日のバンドルを取得（初回は作成）するハンドラ
func (h *DailyHandler) PostDailyBundle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDailyBundle"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	var req model.DailyBundleRequest
	if err := webutil.DecodeOptionalJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	bundle, err := h.service.GetOrCreateDailyBundle(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error getting daily bundle in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Daily bundle returned",
		slog.String("day", bundle.Day.String()),
		slog.Int("vocab", len(bundle.Vocab)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, bundle, logger)
}
