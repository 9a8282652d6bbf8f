// Package srs implements the SM-2 variant used to reschedule review items.
// Everything here is pure: no clock, no storage.
package srs

import (
	"math"

	"go_4_study_scheduler/internal/model"
)

const (
	MinEaseFactor       = 1.3
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 1
	DefaultEasyBonus    = 0.10
	MaxEasyBonus        = 0.15

	againPenalty = 0.20
	hardPenalty  = 0.15
	hardGrowth   = 1.2
	easyBoost    = 0.15
)

// State is the scheduling part of a review item.
type State struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
}

// InitialState is the state of a freshly created item.
func InitialState() State {
	return State{EaseFactor: DefaultEaseFactor, IntervalDays: DefaultIntervalDays}
}

// Params tunes the algorithm.
type Params struct {
	// EasyBonus is added to the ease factor on an "easy" grade.
	EasyBonus float64
}

func DefaultParams() *Params {
	return &Params{EasyBonus: DefaultEasyBonus}
}

// NewParams clamps easyBonus into [DefaultEasyBonus, MaxEasyBonus].
func NewParams(easyBonus float64) *Params {
	switch {
	case easyBonus < DefaultEasyBonus:
		easyBonus = DefaultEasyBonus
	case easyBonus > MaxEasyBonus:
		easyBonus = MaxEasyBonus
	}
	return &Params{EasyBonus: easyBonus}
}

// Next applies grade to cur.
//
//	again: E' = max(1.3, E-0.20)  I' = 1                          R' = 0
//	hard:  E' = max(1.3, E-0.15)  I' = max(1, round(I*1.2))       R' = R
//	good:  E' = E                 I' = max(1, round(I*E))         R' = R+1
//	easy:  E' = E+bonus           I' = max(1, round(I*(E'+0.15))) R' = R+1
func (p *Params) Next(cur State, grade model.Grade) (State, error) {
	cur = normalize(cur)
	e, i, r := cur.EaseFactor, cur.IntervalDays, cur.Repetitions

	switch grade {
	case model.GradeAgain:
		e = math.Max(MinEaseFactor, e-againPenalty)
		i = 1
		r = 0
	case model.GradeHard:
		e = math.Max(MinEaseFactor, e-hardPenalty)
		i = roundDays(float64(i) * hardGrowth)
	case model.GradeGood:
		i = roundDays(float64(i) * e)
		r++
	case model.GradeEasy:
		e += p.EasyBonus
		i = roundDays(float64(i) * (e + easyBoost))
		r++
	default:
		return State{}, model.ErrInvalidGrade
	}

	return State{EaseFactor: roundEase(e), IntervalDays: i, Repetitions: r}, nil
}

// Schedule applies grade and returns the new state with its due day.
func (p *Params) Schedule(cur State, grade model.Grade, today model.Date) (State, model.Date, error) {
	next, err := p.Next(cur, grade)
	if err != nil {
		return State{}, model.Date{}, err
	}
	return next, today.AddDays(next.IntervalDays), nil
}

// normalize repairs stored values that violate the floors. A zero ease
// means the value was never set.
func normalize(s State) State {
	switch {
	case s.EaseFactor <= 0:
		s.EaseFactor = DefaultEaseFactor
	case s.EaseFactor < MinEaseFactor:
		s.EaseFactor = MinEaseFactor
	}
	if s.IntervalDays < 1 {
		s.IntervalDays = DefaultIntervalDays
	}
	if s.Repetitions < 0 {
		s.Repetitions = 0
	}
	return s
}

func roundDays(v float64) int {
	d := int(math.Round(v))
	if d < 1 {
		return 1
	}
	return d
}

// roundEase strips float noise (2.5-0.15 = 2.3499999...) from stored values.
func roundEase(e float64) float64 {
	return math.Round(e*10000) / 10000
}
