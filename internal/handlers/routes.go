// internal/handlers/routes.go
package handlers

import (
	"go_4_study_scheduler/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes は /api/v1 配下のルートを登録します。
// すべてのルートで X-User-ID ヘッダーが必要です。
func RegisterAPIRoutes(r chi.Router, daily *DailyHandler, review *ReviewHandler, settings *SettingsHandler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.OwnerContextMiddleware)

		r.Post("/daily-bundle", daily.PostDailyBundle)

		// Review routes
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", review.GetDueReviews)
			r.Get("/count", review.GetDueCount)
			r.Post("/enroll", review.PostEnroll)
			r.Post("/enroll-listening", review.PostEnrollListening)
			r.Post("/seed", review.PostSeedDeck)
			r.Post("/{item_id}/grade", review.PostGrade)
		})

		r.Get("/settings", settings.GetSettings)
		r.Put("/settings", settings.PutSettings)
	})
}
