// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/service"
	"go_4_study_scheduler/internal/webutil"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{
		service: s,
		logger:  logger,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	settings, err := h.service.GetSettings(r.Context(), ownerID)
	if err != nil {
		logger.Error("Error getting settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

func (h *SettingsHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutSettings"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateSettingsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
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

	settings, err := h.service.UpdateSettings(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error updating settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Settings updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}
