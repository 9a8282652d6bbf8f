package repository_test

import (
	"fmt"
	"testing"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormCatalogRepository()

	vocab := []*model.VocabEntry{
		{ID: uuid.New(), Word: "deploy", Meaning: "배포하다", Tags: []string{"tech"}},
		{ID: uuid.New(), Word: "itinerary", Meaning: "여행 일정", Tags: []string{"travel"}},
	}
	n, err := repo.CreateVocab(ctx(), db, vocab)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// 同じ単語は再投入してもスキップ
	n, err = repo.CreateVocab(ctx(), db, []*model.VocabEntry{{ID: uuid.New(), Word: "deploy", Meaning: "x", Tags: []string{}}})
	require.NoError(t, err)
	assert.Zero(t, n)

	listening := &model.ListeningMaterial{ID: uuid.New(), Title: "Standup", AudioURL: "https://cdn.example/standup.mp3", Tags: []string{"business"}}
	n, err = repo.CreateListening(ctx(), db, []*model.ListeningMaterial{listening})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items, err := repo.ListVocabItems(ctx(), db)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEmpty(t, item.Tags)
	}

	litems, err := repo.ListListeningItems(ctx(), db)
	require.NoError(t, err)
	require.Len(t, litems, 1)
	assert.True(t, litems[0].HasTag("business"))

	got, err := repo.FindListeningByID(ctx(), db, listening.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)

	_, err = repo.FindListeningByID(ctx(), db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	entries, err := repo.FindVocabByIDs(ctx(), db, []uuid.UUID{vocab[1].ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "itinerary", entries[0].Word)

	entries, err = repo.FindVocabByIDs(ctx(), db, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormSettingsRepository()
	owner := uuid.New()

	_, err := repo.FindByOwner(ctx(), db, owner)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.Upsert(ctx(), db, &model.UserSettings{
		OwnerID: owner, Interests: []string{"tech", "travel"}, WeakAreas: []string{}, NotifyChannel: model.NotifyEmail,
	}))
	require.NoError(t, repo.Upsert(ctx(), db, &model.UserSettings{
		OwnerID: owner, Interests: []string{"media"}, WeakAreas: []string{"listening"}, NotifyChannel: model.NotifyPush,
	}))

	got, err := repo.FindByOwner(ctx(), db, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"media"}, got.Interests)
	assert.Equal(t, []string{"listening"}, got.WeakAreas)
	assert.Equal(t, model.NotifyPush, got.NotifyChannel)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "NotFound", err: model.ErrNotFound, want: false},
		{name: "gorm ErrDuplicatedKey", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "PostgreSQL 23505", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: true},
		{name: "PostgreSQL その他のエラー", err: &pgconn.PgError{Code: "23503"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation_SQLiteDuplicate(t *testing.T) {
	db := newTestDB(t)
	entry := &model.VocabEntry{ID: uuid.New(), Word: "deploy", Meaning: "배포하다", Tags: []string{"tech"}}
	require.NoError(t, db.Create(entry).Error)

	err := db.Create(&model.VocabEntry{ID: uuid.New(), Word: "deploy", Meaning: "배포", Tags: []string{}}).Error
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err), "unique index on word: %v", err)

	err = db.Create(&model.VocabEntry{ID: entry.ID, Word: "release", Meaning: "출시", Tags: []string{}}).Error
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err), "primary key: %v", err)
}
