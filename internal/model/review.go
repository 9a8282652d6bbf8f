// internal/model/review.go
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Grade is the learner's self-assessment after recalling a review item.
type Grade string

const (
	GradeAgain Grade = "again"
	GradeHard  Grade = "hard"
	GradeGood  Grade = "good"
	GradeEasy  Grade = "easy"
)

// numeric aliases used by older clients: 1=again .. 4=easy
var gradeAliases = map[string]Grade{
	"1": GradeAgain,
	"2": GradeHard,
	"3": GradeGood,
	"4": GradeEasy,
}

// ParseGrade normalizes a label (case-insensitive) or numeric alias.
func ParseGrade(s string) (Grade, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if g, ok := gradeAliases[s]; ok {
		return g, nil
	}
	g := Grade(s)
	if !g.Valid() {
		return "", ErrInvalidGrade
	}
	return g, nil
}

func (g Grade) Valid() bool {
	switch g {
	case GradeAgain, GradeHard, GradeGood, GradeEasy:
		return true
	}
	return false
}

// UnmarshalJSON accepts both "good" and 3. The value is kept verbatim so
// that an unknown grade surfaces as ErrInvalidGrade from the service rather
// than as a decoding failure.
func (g *Grade) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*g = Grade(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*g = Grade(n.String())
	return nil
}

// ReviewItem is one flashcard in an owner's spaced-repetition deck.
type ReviewItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_review_owner_due,priority:1;uniqueIndex:uq_review_owner_front,priority:1" json:"owner_id"`
	Front             string     `gorm:"not null;uniqueIndex:uq_review_owner_front,priority:2" json:"front"`
	Back              string     `gorm:"not null" json:"back"`
	EaseFactor        float64    `gorm:"not null" json:"ease_factor"`
	IntervalDays      int        `gorm:"not null" json:"interval_days"`
	Repetitions       int        `gorm:"not null" json:"repetitions"`
	DueOn             Date       `gorm:"type:date;not null;index:idx_review_owner_due,priority:2" json:"due_on"`
	LastGrade         *Grade     `gorm:"type:varchar(10)" json:"last_grade"`
	SourceVocabID     *uuid.UUID `gorm:"type:uuid" json:"source_vocab_id,omitempty"`
	SourceListeningID *uuid.UUID `gorm:"type:uuid" json:"source_listening_id,omitempty"`
	Version           int        `gorm:"not null" json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (ReviewItem) TableName() string {
	return "review_items"
}

// ReviewItemResponse は復習カードのレスポンスDTO
type ReviewItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	DueOn        Date      `json:"due_on"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	LastGrade    *Grade    `json:"last_grade"`
}

func NewReviewItemResponse(item *ReviewItem) *ReviewItemResponse {
	return &ReviewItemResponse{
		ID:           item.ID,
		Front:        item.Front,
		Back:         item.Back,
		DueOn:        item.DueOn,
		EaseFactor:   item.EaseFactor,
		IntervalDays: item.IntervalDays,
		Repetitions:  item.Repetitions,
		LastGrade:    item.LastGrade,
	}
}

// GradeResult is returned after a grade has been applied.
type GradeResult struct {
	ItemID       uuid.UUID `json:"item_id"`
	DueOn        Date      `json:"due_on"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
}

// ApplyGradeRequest は採点リクエストのDTO
type ApplyGradeRequest struct {
	Grade Grade `json:"grade" validate:"required"`
}

// EnrollVocabRequest turns catalog vocabulary into review items.
type EnrollVocabRequest struct {
	VocabIDs []uuid.UUID `json:"vocab_ids" validate:"required,min=1,max=50"`
}

// EnrollListeningRequest turns one listening material into a review item.
type EnrollListeningRequest struct {
	ListeningID uuid.UUID `json:"listening_id" validate:"required"`
}

type EnrollResult struct {
	Enrolled int64 `json:"enrolled"`
	Skipped  int64 `json:"skipped"`
}

type DueCountResponse struct {
	AsOf  Date  `json:"as_of"`
	Count int64 `json:"count"`
}
