package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/enrichment"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
	"vocab_trainer/internal/repository/mocks"
)

func TestEnrichmentService_Refresh_StoresFreshValue(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	user := seedUser(t, db, "alice")
	due := t0.Add(72 * time.Hour)
	word := seedWord(t, db, user.UserID, "apple", &due)

	fetcher := &stubFetcher{answers: map[model.EnrichmentKind]string{model.KindDefinition: "a round fruit"}}
	svc := NewEnrichmentService(db, repository.NewGormWordRepository(), fetcher).(*enrichmentService)
	svc.now = fixedClock(t0)

	resp, err := svc.Refresh(ctx, user.UserID, word.WordID, model.KindDefinition)
	require.NoError(t, err)
	assert.Equal(t, "a round fruit", resp.Value)
	assert.False(t, resp.Stale)

	stored, err := repository.NewGormWordRepository().FindByID(ctx, db, user.UserID, word.WordID)
	require.NoError(t, err)
	assert.Equal(t, "a round fruit", stored.Enrichment.Data().Definition)
	assert.True(t, stored.Enrichment.Data().FetchedAt[model.KindDefinition].Equal(t0))
	assert.Equal(t, model.StageNotStarted, stored.Stage)
	require.NotNil(t, stored.NextDueAt)
	assert.True(t, stored.NextDueAt.Equal(due), "refresh never reschedules")
}

func TestEnrichmentService_Refresh_UpstreamFailure(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	user := seedUser(t, db, "alice")
	repo := repository.NewGormWordRepository()

	cachedWord := seedWord(t, db, user.UserID, "apple", nil)
	cachedWord.Enrichment = model.NewEnrichmentJSON(model.Enrichment{}.With(model.KindDefinition, "old definition", t0))
	require.NoError(t, repo.Update(ctx, db, cachedWord))
	emptyWord := seedWord(t, db, user.UserID, "pear", nil)

	tests := []struct {
		name    string
		fetcher enrichment.Fetcher
		wordID  uuid.UUID
		want    string
	}{
		{"cached value served", &stubFetcher{}, cachedWord.WordID, "old definition"},
		{"sentinel when nothing cached", &stubFetcher{}, emptyWord.WordID, enrichment.SentinelUnavailable},
		{"no fetcher configured", nil, emptyWord.WordID, enrichment.SentinelUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEnrichmentService(db, repo, tt.fetcher)
			resp, err := svc.Refresh(ctx, user.UserID, tt.wordID, model.KindDefinition)
			require.NoError(t, err)
			assert.True(t, resp.Stale)
			assert.Equal(t, tt.want, resp.Value)
		})
	}

	stored, err := repo.FindByID(ctx, db, user.UserID, emptyWord.WordID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Version, "a failed refresh writes nothing")
}

func TestEnrichmentService_Refresh_Errors(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	user := seedUser(t, db, "alice")
	word := seedWord(t, db, user.UserID, "apple", nil)
	svc := NewEnrichmentService(db, repository.NewGormWordRepository(), &stubFetcher{})

	_, err := svc.Refresh(ctx, user.UserID, word.WordID, model.EnrichmentKind("etymology"))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = svc.Refresh(ctx, user.UserID, uuid.New(), model.KindDefinition)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEnrichmentService_Refresh_RetriesConcurrentUpdateOnce(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	userID, wordID := uuid.New(), uuid.New()
	word := func() *model.Word {
		return &model.Word{WordID: wordID, UserID: userID, Term: "apple", Version: 1}
	}

	wordRepo := mocks.NewWordRepository(t)
	wordRepo.On("FindByID", mock.Anything, mock.Anything, userID, wordID).Return(word(), nil).Once()
	wordRepo.On("FindByID", mock.Anything, mock.Anything, userID, wordID).Return(word(), nil).Once()
	wordRepo.On("FindByID", mock.Anything, mock.Anything, userID, wordID).Return(word(), nil).Once()
	wordRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Word")).Return(model.ErrConcurrentUpdate).Once()
	wordRepo.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(w *model.Word) bool {
		return w.Enrichment.Data().Synonyms == "fruit, pome"
	})).Return(nil).Once()

	fetcher := &stubFetcher{answers: map[model.EnrichmentKind]string{model.KindSynonyms: "fruit, pome"}}
	svc := NewEnrichmentService(db, wordRepo, fetcher)

	resp, err := svc.Refresh(ctx, userID, wordID, model.KindSynonyms)
	require.NoError(t, err)
	assert.Equal(t, "fruit, pome", resp.Value)
	assert.Equal(t, 1, fetcher.calls, "the upstream is asked only once")
}
