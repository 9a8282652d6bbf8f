// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/service"
	"go_4_study_scheduler/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// parseAsOf は as_of クエリパラメータを解釈します。未指定なら nil を返します。
func parseAsOf(r *http.Request) (*model.Date, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", "as_ofはYYYY-MM-DD形式で指定してください。", "as_of", model.ErrInvalidInput)
	}
	return &d, nil
}

// GetDueReviews は復習期限が来たアイテムの一覧を取得するハンドラ
func (h *ReviewHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueReviews"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		logger.Warn("Invalid as_of", slog.String("as_of", r.URL.Query().Get("as_of")))
		webutil.HandleError(w, logger, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			logger.Warn("Invalid limit", slog.String("limit", raw))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitは0以上の整数で指定してください。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	items, err := h.service.ListDueReviews(r.Context(), ownerID, asOf, limit)
	if err != nil {
		logger.Error("Error listing due reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.ReviewItemResponse{}
	}
	logger.Info("Due reviews listed successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetDueCount は復習期限が来たアイテム数を返すハンドラ
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueCount"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.service.CountDueReviews(r.Context(), ownerID, asOf)
	if err != nil {
		logger.Error("Error counting due reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, count, logger)
}

// PostGrade は復習アイテムに採点結果を適用するハンドラ
func (h *ReviewHandler) PostGrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGrade"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	itemIDStr := chi.URLParam(r, "item_id")
	itemID, err := uuid.Parse(itemIDStr)
	if err != nil {
		logger.Warn("Invalid item ID format in URL", slog.String("item_id_str", itemIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "item_idの形式が正しくありません。", "item_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("item_id", itemID.String()))

	var req model.ApplyGradeRequest
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

	result, err := h.service.ApplyGrade(r.Context(), ownerID, itemID, req.Grade)
	if err != nil {
		logger.Error("Error applying grade in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grade applied successfully", slog.String("due_on", result.DueOn.String()))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// PostEnroll は単語カタログから復習アイテムを作成するハンドラ
func (h *ReviewHandler) PostEnroll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEnroll"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	var req model.EnrollVocabRequest
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

	result, err := h.service.EnrollVocabulary(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error enrolling vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// PostEnrollListening はリスニング教材から復習アイテムを作成するハンドラ
func (h *ReviewHandler) PostEnrollListening(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEnrollListening"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	var req model.EnrollListeningRequest
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

	result, err := h.service.EnrollListening(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error enrolling listening material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// PostSeedDeck はスターターデッキを投入するハンドラ
func (h *ReviewHandler) PostSeedDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSeedDeck"))

	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	result, err := h.service.SeedStarterDeck(r.Context(), ownerID)
	if err != nil {
		logger.Error("Error seeding starter deck in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
