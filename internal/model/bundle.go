// internal/model/bundle.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyBundle is the persisted snapshot of one owner's picks for one day.
// At most one row exists per (owner, day) and it is never updated.
type DailyBundle struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_bundle_owner_day,priority:1"`
	Day               Date        `gorm:"type:date;not null;uniqueIndex:uq_bundle_owner_day,priority:2"`
	ListeningID       *uuid.UUID  `gorm:"type:uuid"`
	VocabIDs          []uuid.UUID `gorm:"type:text;serializer:json;not null"`
	InterestsSnapshot []string    `gorm:"type:text;serializer:json;not null"`
	CreatedAt         time.Time
}

func (DailyBundle) TableName() string {
	return "daily_bundles"
}

// DailyBundleResponse is the materialized bundle handed to clients.
type DailyBundleResponse struct {
	Day       Date               `json:"day"`
	Listening *ListeningMaterial `json:"listening"`
	Vocab     []*VocabEntry      `json:"vocab"`
	Interests []string           `json:"interests_snapshot"`
}

// DailyBundleRequest は今日のバンドル取得リクエストのDTO
type DailyBundleRequest struct {
	Day *Date `json:"day,omitempty"`
	// VocabLimit が0以下なら既定値、上限は app.vocab_limit_max で切り詰める
	VocabLimit int `json:"vocab_limit,omitempty"`
}
