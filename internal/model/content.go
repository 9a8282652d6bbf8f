// internal/model/content.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentItem is the minimal projection of a catalog entry the sampler needs.
type ContentItem struct {
	ID   uuid.UUID
	Tags []string
}

// HasTag reports whether the item carries tag, ignoring case.
func (c ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// VocabEntry は日替わり単語カタログの1語を表します
type VocabEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Word      string    `gorm:"not null;uniqueIndex" json:"word"`
	Meaning   string    `gorm:"not null" json:"meaning"`
	Example   string    `json:"example"`
	Tags      []string  `gorm:"type:text;serializer:json;not null" json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func (VocabEntry) TableName() string {
	return "vocab_entries"
}

func (v VocabEntry) ContentItem() ContentItem {
	return ContentItem{ID: v.ID, Tags: v.Tags}
}

// ListeningMaterial is an audio clip with its script.
type ListeningMaterial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null;uniqueIndex" json:"title"`
	AudioURL  string    `gorm:"not null" json:"audio_url"`
	Script    string    `json:"script"`
	Tags      []string  `gorm:"type:text;serializer:json;not null" json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListeningMaterial) TableName() string {
	return "listening_materials"
}

func (l ListeningMaterial) ContentItem() ContentItem {
	return ContentItem{ID: l.ID, Tags: l.Tags}
}

// NormalizeTags lowercases, trims and de-duplicates tags, keeping the first
// occurrence so that rank order survives.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SeedResult reports how many catalog rows a seeding run inserted.
type SeedResult struct {
	Vocab     int64 `json:"vocab"`
	Listening int64 `json:"listening"`
}
