// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_4_study_scheduler/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: fallbackDetail(err)}
	}

	if statusCode == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	RespondWithJSON(w, statusCode, errResp, logger)
}

// fallbackDetail builds a client-safe body for errors that never went
// through model.NewAppError.
func fallbackDetail(err error) model.ErrorDetail {
	switch {
	case errors.Is(err, model.ErrInvalidGrade):
		return model.ErrorDetail{Code: "INVALID_GRADE", Message: "gradeはagain/hard/good/easyのいずれかです。", Field: "grade"}
	case errors.Is(err, model.ErrMissingOwner):
		return model.ErrorDetail{Code: "MISSING_OWNER", Message: "X-User-IDヘッダーが必要です。"}
	case errors.Is(err, model.ErrInvalidInput):
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "入力値が正しくありません。"}
	case errors.Is(err, model.ErrNotFound):
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "リソースが見つかりません。"}
	case model.IsRetryable(err):
		return model.ErrorDetail{Code: "SERVICE_UNAVAILABLE", Message: "一時的に処理できません。再試行してください。"}
	}
	return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "サーバー内部でエラーが発生しました。"}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidGrade),
		errors.Is(err, model.ErrMissingOwner):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case model.IsRetryable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger != nil {
			logger.Error("Error marshaling JSON response", slog.Any("error", err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
