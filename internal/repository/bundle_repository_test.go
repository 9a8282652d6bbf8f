package repository_test

import (
	"testing"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleRepository_CreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormBundleRepository()
	owner := uuid.New()
	day := model.MustParseDate("2024-01-30")

	_, err := repo.FindByOwnerDay(ctx(), db, owner, day)
	assert.ErrorIs(t, err, model.ErrNotFound)

	listening := uuid.New()
	first := &model.DailyBundle{
		ID:                uuid.New(),
		OwnerID:           owner,
		Day:               day,
		ListeningID:       &listening,
		VocabIDs:          []uuid.UUID{uuid.New(), uuid.New()},
		InterestsSnapshot: []string{"tech"},
	}
	created, err := repo.CreateIfAbsent(ctx(), db, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &model.DailyBundle{ID: uuid.New(), OwnerID: owner, Day: day}
	created, err = repo.CreateIfAbsent(ctx(), db, second)
	require.NoError(t, err)
	assert.False(t, created, "second insert for the same (owner, day) must be a no-op")

	stored, err := repo.FindByOwnerDay(ctx(), db, owner, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, first.VocabIDs, stored.VocabIDs)
	require.NotNil(t, stored.ListeningID)
	assert.Equal(t, listening, *stored.ListeningID)
	assert.Equal(t, []string{"tech"}, stored.InterestsSnapshot)

	// 翌日は別の行
	created, err = repo.CreateIfAbsent(ctx(), db, &model.DailyBundle{ID: uuid.New(), OwnerID: owner, Day: day.AddDays(1)})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestBundleRepository_EmptySelectionRoundTrips(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormBundleRepository()
	owner := uuid.New()
	day := model.MustParseDate("2024-01-30")

	created, err := repo.CreateIfAbsent(ctx(), db, &model.DailyBundle{ID: uuid.New(), OwnerID: owner, Day: day})
	require.NoError(t, err)
	require.True(t, created)

	stored, err := repo.FindByOwnerDay(ctx(), db, owner, day)
	require.NoError(t, err)
	assert.Nil(t, stored.ListeningID)
	assert.Empty(t, stored.VocabIDs)
}
