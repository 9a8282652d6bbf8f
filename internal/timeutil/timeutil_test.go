package timeutil

import (
	"testing"
	"time"

	"go_4_study_scheduler/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCalendar_Today_UsesReferenceZone(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "UTC前日15:00はソウルでは翌日0時",
			now:  time.Date(2024, 1, 29, 15, 0, 0, 0, time.UTC),
			want: "2024-01-30",
		},
		{
			name: "UTC14:59はまだ同じ日",
			now:  time.Date(2024, 1, 29, 14, 59, 59, 0, time.UTC),
			want: "2024-01-29",
		},
		{
			name: "別ゾーンの時刻も基準ゾーンで判定",
			now:  time.Date(2024, 1, 29, 23, 30, 0, 0, time.FixedZone("PST", -8*60*60)),
			want: "2024-01-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewCalendar(SeoulTZ, func() time.Time { return tt.now })
			assert.Equal(t, tt.want, cal.Today().String())
		})
	}
}

func TestCalendar_Defaults(t *testing.T) {
	cal := NewCalendar(nil, nil)
	assert.Equal(t, SeoulTZ, cal.Location())
	assert.False(t, cal.Today().IsZero())
}

func TestFixedCalendar(t *testing.T) {
	day := model.MustParseDate("2024-03-01")
	cal := FixedCalendar(day)

	assert.True(t, cal.Today().Equal(day))
	assert.Equal(t, 12, cal.Now().Hour())
	assert.True(t, cal.DayOf(cal.Now().Add(13*time.Hour)).Equal(day.AddDays(1)))
}

func TestLoadZone_FallsBackToFixedOffset(t *testing.T) {
	loc := LoadZone("Nowhere/Imaginary", 9)
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 9*60*60, offset)

	def := LoadZone("", DefaultOffsetHours)
	_, offset = time.Date(2024, 7, 1, 0, 0, 0, 0, def).Zone()
	assert.Equal(t, 9*60*60, offset)
}
