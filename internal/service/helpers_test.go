package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/enrichment"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "vocab_trainer"
	cfg.App.ReviewLimit = 20
	cfg.App.AllowDuplicateTerms = true
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = time.Hour
	cfg.Review.RelearnInterval = 24 * time.Hour
	cfg.Reminder.Enabled = true
	cfg.Reminder.Interval = time.Hour
	return cfg
}

func setupTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := repository.NewDB(cfg, false, discardLogger())
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	sqlxDB, err := repository.NewSQLX(db, cfg.Driver)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db, sqlxDB
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{
		UserID:           uuid.New(),
		Name:             name,
		Email:            name + "@example.com",
		PasswordHash:     "hash",
		RemindersEnabled: true,
	}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, u))
	return u
}

func seedWord(t *testing.T, db *gorm.DB, userID uuid.UUID, term string, due *time.Time) *model.Word {
	t.Helper()
	w := &model.Word{
		WordID:    uuid.New(),
		UserID:    userID,
		Term:      term,
		NextDueAt: due,
		CreatedAt: t0,
	}
	require.NoError(t, repository.NewGormWordRepository().Create(context.Background(), db, w))
	return w
}

// stubFetcher answers from a map and counts calls. Kinds without an answer fail.
type stubFetcher struct {
	mu      sync.Mutex
	answers map[model.EnrichmentKind]string
	calls   int
}

func (f *stubFetcher) Fetch(_ context.Context, kind model.EnrichmentKind, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if v, ok := f.answers[kind]; ok {
		return v, nil
	}
	return "", enrichment.ErrUpstreamUnavailable
}

// recordingMailer keeps every mail it is asked to send.
type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	fails map[string]bool
}

func (m *recordingMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails[to] {
		return io.ErrClosedPipe
	}
	m.sent = append(m.sent, to)
	return nil
}
