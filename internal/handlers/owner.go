// internal/handlers/owner.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_study_scheduler/internal/middleware"
	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/webutil"

	"github.com/google/uuid"
)

// requireOwner はコンテキストからオーナーIDを取り出します。
// 取得できない場合はエラーレスポンスを書き込み false を返します。
func requireOwner(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	ownerID, err := middleware.GetOwnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Owner missing from context", slog.String("error", err.Error()))
		appErr := model.NewAppError("MISSING_OWNER", "X-User-IDヘッダーが必要です。", "", model.ErrMissingOwner)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, logger, false
	}
	return ownerID, logger.With(slog.String("owner_id", ownerID.String())), true
}
