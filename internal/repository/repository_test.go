package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/model"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := NewDB(cfg, false, logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlxDB, err := NewSQLX(db, cfg.Driver)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db, sqlxDB
}

func createUser(t *testing.T, db *gorm.DB, name string, reminders bool) *model.User {
	t.Helper()
	u := &model.User{
		UserID:           uuid.New(),
		Name:             name,
		Email:            name + "@example.com",
		PasswordHash:     "hash",
		RemindersEnabled: reminders,
	}
	require.NoError(t, NewGormUserRepository().Create(context.Background(), db, u))
	return u
}

func createWord(t *testing.T, db *gorm.DB, userID uuid.UUID, term string, due *time.Time) *model.Word {
	t.Helper()
	w := &model.Word{
		WordID:    uuid.New(),
		UserID:    userID,
		Term:      term,
		NextDueAt: due,
	}
	require.NoError(t, NewGormWordRepository().Create(context.Background(), db, w))
	return w
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	repo := NewGormUserRepository()

	alice := createUser(t, db, "alice", true)

	got, err := repo.FindByEmail(ctx, db, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.UserID)
	assert.True(t, got.RemindersEnabled)

	got, err = repo.FindByID(ctx, db, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	_, err = repo.FindByName(ctx, db, "bob")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.UpdateReminders(ctx, db, alice.UserID, false))
	got, err = repo.FindByID(ctx, db, alice.UserID)
	require.NoError(t, err)
	assert.False(t, got.RemindersEnabled)
	assert.ErrorIs(t, repo.UpdateReminders(ctx, db, uuid.New(), true), model.ErrNotFound)

	dup := &model.User{UserID: uuid.New(), Name: "alice2", Email: "alice@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)
}

func TestWordRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	repo := NewGormWordRepository()
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	w := createWord(t, db, alice.UserID, "serendipity", nil)
	createWord(t, db, bob.UserID, "ephemeral", nil)

	got, err := repo.FindByID(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)
	assert.Equal(t, "serendipity", got.Term)
	assert.Equal(t, model.StageNotStarted, got.Stage)
	assert.Equal(t, 1, got.Version)
	assert.Nil(t, got.NextDueAt)

	_, err = repo.FindByID(ctx, db, bob.UserID, w.WordID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	words, err := repo.FindByUser(ctx, db, alice.UserID)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, w.WordID, words[0].WordID)

	exists, err := repo.CheckTermExists(ctx, db, alice.UserID, "Serendipity")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.CheckTermExists(ctx, db, bob.UserID, "serendipity")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWordRepository_UpdateCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	repo := NewGormWordRepository()
	alice := createUser(t, db, "alice", false)
	w := createWord(t, db, alice.UserID, "serendipity", nil)

	first, err := repo.FindByID(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)

	due := t0.Add(24 * time.Hour)
	first.Stage = model.StageInitial
	first.RepetitionCount = 1
	first.LastOutcome = model.OutcomeSuccess
	first.LastReviewedAt = &t0
	first.NextDueAt = &due
	first.Enrichment = model.NewEnrichmentJSON(model.Enrichment{Examples: []string{"1. A happy accident."}})
	require.NoError(t, repo.Update(ctx, db, first))
	assert.Equal(t, 2, first.Version)

	second.Stage = model.StageInitial
	assert.ErrorIs(t, repo.Update(ctx, db, second), model.ErrConcurrentUpdate)

	stored, err := repo.FindByID(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)
	assert.Equal(t, model.StageInitial, stored.Stage)
	assert.Equal(t, 1, stored.RepetitionCount)
	assert.Equal(t, model.OutcomeSuccess, stored.LastOutcome)
	assert.Equal(t, 2, stored.Version)
	require.NotNil(t, stored.NextDueAt)
	assert.True(t, due.Equal(*stored.NextDueAt))
	assert.Equal(t, []string{"1. A happy accident."}, stored.Enrichment.Data().Examples)

	ghost := *stored
	ghost.WordID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, db, &ghost), model.ErrNotFound)
}

func TestWordRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	repo := NewGormWordRepository()
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	w := createWord(t, db, alice.UserID, "serendipity", nil)

	assert.ErrorIs(t, repo.Delete(ctx, db, bob.UserID, w.WordID), model.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, db, alice.UserID, w.WordID))
	assert.ErrorIs(t, repo.Delete(ctx, db, alice.UserID, w.WordID), model.ErrNotFound)
}

func TestReviewLogRepository(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)
	repo := NewGormReviewLogRepository()
	alice := createUser(t, db, "alice", false)
	w := createWord(t, db, alice.UserID, "serendipity", nil)

	for i, outcome := range []model.Outcome{model.OutcomeSuccess, model.OutcomeFail} {
		log := &model.ReviewLog{
			WordID:      w.WordID,
			UserID:      alice.UserID,
			Outcome:     outcome,
			StageBefore: model.StageNotStarted,
			StageAfter:  model.StageInitial,
			ReviewedAt:  t0.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, db, log))
		assert.NotEqual(t, uuid.Nil, log.ReviewLogID)
	}

	logs, err := repo.FindByWord(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, model.OutcomeFail, logs[0].Outcome)
	assert.Equal(t, model.OutcomeSuccess, logs[1].Outcome)
	assert.True(t, logs[0].ReviewedAt.After(logs[1].ReviewedAt))

	require.NoError(t, NewGormWordRepository().Delete(ctx, db, alice.UserID, w.WordID))
	logs, err = repo.FindByWord(ctx, db, alice.UserID, w.WordID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	db, sqlxDB := setupTestDB(t)
	stats := NewSQLXStatsRepository(sqlxDB)
	words := NewGormWordRepository()

	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", false)
	carol := createUser(t, db, "carol", true)

	past := t0.Add(-time.Hour)
	future := t0.Add(48 * time.Hour)
	createWord(t, db, alice.UserID, "a", nil)
	createWord(t, db, alice.UserID, "b", &past)
	reviewed := createWord(t, db, alice.UserID, "c", &future)
	createWord(t, db, bob.UserID, "d", nil)
	createWord(t, db, carol.UserID, "e", &future)

	reviewed.Stage = model.StageReview2
	reviewed.RepetitionCount = 3
	require.NoError(t, words.Update(ctx, db, reviewed))

	byStage, err := stats.CountByStage(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, map[model.Stage]int{model.StageNotStarted: 2, model.StageReview2: 1}, byStage)

	due, err := stats.CountDue(ctx, alice.UserID, t0)
	require.NoError(t, err)
	assert.Equal(t, 2, due)

	recipients, err := stats.FindReminderRecipients(ctx, t0)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, alice.UserID, recipients[0].UserID)
	assert.Equal(t, "alice@example.com", recipients[0].Email)
	assert.Equal(t, 2, recipients[0].DueCount)
}
