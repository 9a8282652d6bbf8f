package repository_test

import (
	"testing"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_CreateIgnoringConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormReviewRepository()
	owner := uuid.New()
	today := model.MustParseDate("2024-01-30")

	n, err := repo.CreateIgnoringConflicts(ctx(), db, []*model.ReviewItem{
		newReviewItem(owner, "apple", today),
		newReviewItem(owner, "banana", today),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// 同じ front は別IDでもスキップされる
	n, err = repo.CreateIgnoringConflicts(ctx(), db, []*model.ReviewItem{
		newReviewItem(owner, "apple", today),
		newReviewItem(owner, "cherry", today),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// 別オーナーなら同じ front も作成できる
	n, err = repo.CreateIgnoringConflicts(ctx(), db, []*model.ReviewItem{newReviewItem(uuid.New(), "apple", today)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CreateIgnoringConflicts(ctx(), db, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReviewRepository_FindByID_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormReviewRepository()
	owner := uuid.New()
	item := newReviewItem(owner, "apple", model.MustParseDate("2024-01-30"))
	_, err := repo.CreateIgnoringConflicts(ctx(), db, []*model.ReviewItem{item})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx(), db, owner, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "apple", got.Front)
	assert.Equal(t, "2024-01-30", got.DueOn.String())
	assert.Nil(t, got.LastGrade)

	_, err = repo.FindByID(ctx(), db, uuid.New(), item.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.FindByID(ctx(), db, owner, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReviewRepository_UpdateSchedule_VersionGuard(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormReviewRepository()
	owner := uuid.New()
	item := newReviewItem(owner, "apple", model.MustParseDate("2024-01-30"))
	_, err := repo.CreateIgnoringConflicts(ctx(), db, []*model.ReviewItem{item})
	require.NoError(t, err)

	first, err := repo.FindByID(ctx(), db, owner, item.ID)
	require.NoError(t, err)
	stale, err := repo.FindByID(ctx(), db, owner, item.ID)
	require.NoError(t, err)

	good := model.GradeGood
	first.IntervalDays = 3
	first.Repetitions = 1
	first.DueOn = model.MustParseDate("2024-02-02")
	first.LastGrade = &good
	require.NoError(t, repo.UpdateSchedule(ctx(), db, first))
	assert.Equal(t, 1, first.Version)

	stale.IntervalDays = 1
	err = repo.UpdateSchedule(ctx(), db, stale)
	assert.ErrorIs(t, err, model.ErrConflict)
	assert.True(t, model.IsRetryable(err))

	stored, err := repo.FindByID(ctx(), db, owner, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.IntervalDays)
	assert.Equal(t, "2024-02-02", stored.DueOn.String())
	require.NotNil(t, stored.LastGrade)
	assert.Equal(t, model.GradeGood, *stored.LastGrade)
}

func TestReviewRepository_FindDue_OrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormReviewRepository()
	owner := uuid.New()

	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	items := []*model.ReviewItem{
		newReviewItem(owner, "c", model.MustParseDate("2024-01-29")),
		newReviewItem(owner, "b", model.MustParseDate("2024-01-30")),
		newReviewItem(owner, "a", model.MustParseDate("2024-01-30")),
		newReviewItem(owner, "future", model.MustParseDate("2024-01-31")),
		newReviewItem(uuid.New(), "other-owner", model.MustParseDate("2024-01-01")),
	}
	items[0].ID, items[1].ID, items[2].ID = idC, idB, idA
	_, err := repo.CreateIgnoringConflicts(ctx(), db, items)
	require.NoError(t, err)

	asOf := model.MustParseDate("2024-01-30")
	due, err := repo.FindDue(ctx(), db, owner, asOf, 30)
	require.NoError(t, err)

	got := make([]uuid.UUID, len(due))
	for i, item := range due {
		got[i] = item.ID
	}
	if diff := cmp.Diff([]uuid.UUID{idC, idA, idB}, got); diff != "" {
		t.Errorf("due order mismatch (-want +got):\n%s", diff)
	}

	limited, err := repo.FindDue(ctx(), db, owner, asOf, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	count, err := repo.CountDue(ctx(), db, owner, asOf)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
