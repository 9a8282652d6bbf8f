package srs

import (
	"testing"

	"go_4_study_scheduler/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Next(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name  string
		cur   State
		grade model.Grade
		want  State
	}{
		{
			name:  "正常系: good は ease 倍で間隔を伸ばす",
			cur:   State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2},
			grade: model.GradeGood,
			want:  State{EaseFactor: 2.5, IntervalDays: 15, Repetitions: 3},
		},
		{
			name:  "正常系: again は間隔と回数をリセット",
			cur:   State{EaseFactor: 2.5, IntervalDays: 40, Repetitions: 7},
			grade: model.GradeAgain,
			want:  State{EaseFactor: 2.3, IntervalDays: 1, Repetitions: 0},
		},
		{
			name:  "正常系: hard は 1.2 倍で回数は維持",
			cur:   State{EaseFactor: 2.5, IntervalDays: 10, Repetitions: 4},
			grade: model.GradeHard,
			want:  State{EaseFactor: 2.35, IntervalDays: 12, Repetitions: 4},
		},
		{
			name:  "正常系: hard でも間隔は最低1日",
			cur:   State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0},
			grade: model.GradeHard,
			want:  State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0},
		},
		{
			name:  "正常系: easy は ease を上げてから倍率を掛ける",
			cur:   State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2},
			grade: model.GradeEasy,
			// E' = 2.6, I' = round(6 * 2.75) = round(16.5) = 17
			want: State{EaseFactor: 2.6, IntervalDays: 17, Repetitions: 3},
		},
		{
			name:  "正常系: 新規カードの good",
			cur:   InitialState(),
			grade: model.GradeGood,
			// round(1 * 2.5) = 3 (half away from zero)
			want: State{EaseFactor: 2.5, IntervalDays: 3, Repetitions: 1},
		},
		{
			name:  "正常系: 床を下回る保存値は正規化される",
			cur:   State{EaseFactor: 0.9, IntervalDays: 0, Repetitions: -3},
			grade: model.GradeGood,
			want:  State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 1},
		},
		{
			name:  "正常系: ease 未設定(0)は既定値として扱う",
			cur:   State{EaseFactor: 0, IntervalDays: 2, Repetitions: 1},
			grade: model.GradeGood,
			want:  State{EaseFactor: 2.5, IntervalDays: 5, Repetitions: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Next(tt.cur, tt.grade)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.EaseFactor, got.EaseFactor, 1e-9)
			assert.Equal(t, tt.want.IntervalDays, got.IntervalDays)
			assert.Equal(t, tt.want.Repetitions, got.Repetitions)
		})
	}
}

func TestParams_Next_AgainIgnoresPriorInterval(t *testing.T) {
	p := DefaultParams()
	for _, interval := range []int{1, 2, 6, 15, 90, 365} {
		for _, ease := range []float64{1.3, 1.4, 1.5, 2.1, 2.5, 3.2} {
			got, err := p.Next(State{EaseFactor: ease, IntervalDays: interval, Repetitions: 5}, model.GradeAgain)
			require.NoError(t, err)
			assert.Equal(t, 1, got.IntervalDays)
			assert.Equal(t, 0, got.Repetitions)
			want := ease - 0.2
			if want < MinEaseFactor {
				want = MinEaseFactor
			}
			assert.InDelta(t, want, got.EaseFactor, 1e-9, "ease=%v interval=%d", ease, interval)
		}
	}
}

func TestParams_Next_EaseFloor(t *testing.T) {
	p := DefaultParams()
	state := InitialState()
	for i := 0; i < 50; i++ {
		var err error
		grade := model.GradeAgain
		if i%2 == 1 {
			grade = model.GradeHard
		}
		state, err = p.Next(state, grade)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.EaseFactor, MinEaseFactor)
	}
	assert.InDelta(t, MinEaseFactor, state.EaseFactor, 1e-9)
}

func TestParams_Next_InvalidGrade(t *testing.T) {
	p := DefaultParams()
	for _, g := range []model.Grade{"", "perfect", "5", "GOOD"} {
		_, err := p.Next(InitialState(), g)
		assert.ErrorIs(t, err, model.ErrInvalidGrade, "grade %q", g)
	}
}

func TestParams_Schedule(t *testing.T) {
	p := DefaultParams()
	today := model.MustParseDate("2024-01-30")

	next, due, err := p.Schedule(State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2}, model.GradeGood, today)
	require.NoError(t, err)
	assert.Equal(t, 15, next.IntervalDays)
	assert.Equal(t, "2024-02-14", due.String())

	_, _, err = p.Schedule(InitialState(), "nope", today)
	assert.ErrorIs(t, err, model.ErrInvalidGrade)
}

func TestNewParams_ClampsEasyBonus(t *testing.T) {
	assert.InDelta(t, DefaultEasyBonus, NewParams(0).EasyBonus, 1e-9)
	assert.InDelta(t, 0.12, NewParams(0.12).EasyBonus, 1e-9)
	assert.InDelta(t, MaxEasyBonus, NewParams(1).EasyBonus, 1e-9)

	got, err := NewParams(0.15).Next(State{EaseFactor: 2.5, IntervalDays: 4}, model.GradeEasy)
	require.NoError(t, err)
	assert.InDelta(t, 2.65, got.EaseFactor, 1e-9)
	assert.Equal(t, 11, got.IntervalDays) // round(4 * 2.8)
}
