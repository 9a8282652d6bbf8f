// internal/model/settings.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotifyEmail = "email"
	NotifyPush  = "push"
	NotifyNone  = "none"
)

// UserSettings holds an owner's ranked interests; the first interest drives
// daily content selection.
type UserSettings struct {
	OwnerID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"owner_id"`
	Interests     []string  `gorm:"type:text;serializer:json;not null" json:"interests"`
	WeakAreas     []string  `gorm:"type:text;serializer:json;not null" json:"weak_areas"`
	NotifyChannel string    `gorm:"type:varchar(16);not null" json:"notify_channel"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// UpdateSettingsRequest は設定更新リクエストのDTO
type UpdateSettingsRequest struct {
	Interests     []string `json:"interests" validate:"max=10,dive,required,max=50"`
	WeakAreas     []string `json:"weak_areas" validate:"max=10,dive,required,max=50"`
	NotifyChannel string   `json:"notify_channel" validate:"omitempty,oneof=email push none"`
}

// ReminderResult reports what a due-review reminder run did for one owner.
type ReminderResult struct {
	AsOf     Date   `json:"as_of"`
	DueCount int64  `json:"due_count"`
	Channel  string `json:"channel"`
	Sent     bool   `json:"sent"`
	// Reason is set when nothing was sent.
	Reason string `json:"reason,omitempty"`
}

const (
	ReminderSkippedNothingDue = "nothing_due"
	ReminderSkippedOptedOut   = "opted_out"
	ReminderSkippedNoChannel  = "channel_unsupported"
)
