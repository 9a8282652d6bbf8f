package service

import (
	"errors"
	"testing"

	"go_4_study_scheduler/internal/model"
	"go_4_study_scheduler/internal/repository"
	repomocks "go_4_study_scheduler/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_catalogService_SeedCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, repository.NewGormCatalogRepository())

	got, err := svc.SeedCatalog(testCtx())
	require.NoError(t, err)
	assert.Equal(t, &model.SeedResult{Vocab: 5, Listening: 2}, got)

	// 2回目は既存の単語・タイトルをスキップする
	got, err = svc.SeedCatalog(testCtx())
	require.NoError(t, err)
	assert.Equal(t, &model.SeedResult{Vocab: 0, Listening: 0}, got)

	var vocab []model.VocabEntry
	require.NoError(t, db.Find(&vocab).Error)
	assert.Len(t, vocab, 5)
}

func Test_catalogService_SeedCatalog_StoreFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := repomocks.NewCatalogRepository(t)
	repo.On("CreateVocab", mock.Anything, mock.Anything, mock.Anything).Return(int64(5), nil).Once()
	repo.On("CreateListening", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.Join(model.ErrInfrastructure, errors.New("disk full"))).Once()

	_, err := NewCatalogService(db, repo).SeedCatalog(testCtx())
	assert.ErrorIs(t, err, model.ErrInfrastructure)
}
