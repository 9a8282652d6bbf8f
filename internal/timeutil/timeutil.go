// Package timeutil pins every calendar-day computation to one reference zone
// so that "today" means the same thing for every user regardless of where the
// request came from.
package timeutil

import (
	"time"

	"go_4_study_scheduler/internal/model"
)

const (
	DefaultZoneName    = "Asia/Seoul"
	DefaultOffsetHours = 9
)

// SeoulTZ is the default reference zone (UTC+9, no DST).
var SeoulTZ = time.FixedZone(DefaultZoneName, DefaultOffsetHours*60*60)

// LoadZone resolves name from the tz database and falls back to a fixed
// offset when the database is unavailable (e.g. scratch containers).
func LoadZone(name string, offsetHours int) *time.Location {
	if name == "" {
		name = DefaultZoneName
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone(name, offsetHours*60*60)
}

// Calendar answers "what day is it" in the reference zone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = SeoulTZ
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

// FixedCalendar always reports the given day; used by tests and the CLI.
func FixedCalendar(day model.Date) *Calendar {
	noon := day.StartIn(SeoulTZ).Add(12 * time.Hour)
	return NewCalendar(SeoulTZ, func() time.Time { return noon })
}

func (c *Calendar) Location() *time.Location { return c.loc }

func (c *Calendar) Now() time.Time { return c.now().In(c.loc) }

func (c *Calendar) Today() model.Date {
	return model.DateOf(c.now(), c.loc)
}

// DayOf converts an arbitrary instant to its reference-zone day.
func (c *Calendar) DayOf(t time.Time) model.Date {
	return model.DateOf(t, c.loc)
}
