// internal/middleware/owner.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/webutil"

	"github.com/google/uuid"
)

// OwnerHeader carries the authenticated user id set by the upstream gateway.
const OwnerHeader = "X-User-ID"

// OwnerContextMiddleware は X-User-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// 認証は上流のゲートウェイで済んでいる前提で、ここでは形式のみ検証します。
func OwnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(OwnerHeader)
		if raw == "" {
			logger.Warn("Owner header missing")
			webutil.HandleError(w, logger, model.NewAppError("MISSING_OWNER", "X-User-IDヘッダーが必要です。", "", model.ErrMissingOwner))
			return
		}

		ownerID, err := uuid.Parse(raw)
		if err != nil || ownerID == uuid.Nil {
			logger.Warn("Invalid owner header", slog.String("value", raw))
			webutil.HandleError(w, logger, model.NewAppError("INVALID_OWNER", "X-User-IDの形式が正しくありません。", "", model.ErrMissingOwner))
			return
		}

		ctx := context.WithValue(r.Context(), model.OwnerIDKey, ownerID)
		ctx = WithLogger(ctx, logger.With(slog.String("owner_id", ownerID.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOwnerIDFromContext はコンテキストからオーナーIDを取得します。
func GetOwnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctx.Value(model.OwnerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, model.ErrMissingOwner
	}
	return ownerID, nil
}
