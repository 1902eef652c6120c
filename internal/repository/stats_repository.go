//go:generate mockery --name StatsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
)

// ReminderRecipient is a user with reminders enabled and at least one due word.
type ReminderRecipient struct {
	UserID   uuid.UUID `db:"user_id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	DueCount int       `db:"due_count"`
}

// StatsRepository answers aggregate questions with plain SQL.
type StatsRepository interface {
	CountByStage(ctx context.Context, userID uuid.UUID) (map[model.Stage]int, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	FindReminderRecipients(ctx context.Context, now time.Time) ([]ReminderRecipient, error)
}

type sqlxStatsRepository struct {
	db *sqlx.DB
}

func NewSQLXStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqlxStatsRepository{db: db}
}

const (
	countByStageQuery = `SELECT stage, COUNT(*) AS count FROM words WHERE user_id = ? GROUP BY stage`
	countDueQuery     = `SELECT COUNT(*) FROM words WHERE user_id = ? AND (next_due_at IS NULL OR next_due_at <= ?)`
	recipientsQuery   = `
SELECT u.user_id, u.name, u.email, COUNT(w.word_id) AS due_count
FROM users u
JOIN words w ON w.user_id = u.user_id
WHERE u.reminders_enabled = ? AND (w.next_due_at IS NULL OR w.next_due_at <= ?)
GROUP BY u.user_id, u.name, u.email
ORDER BY u.email`
)

func (r *sqlxStatsRepository) CountByStage(ctx context.Context, userID uuid.UUID) (map[model.Stage]int, error) {
	var rows []struct {
		Stage int `db:"stage"`
		Count int `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(countByStageQuery), userID); err != nil {
		middleware.GetLogger(ctx).Error("Error counting words by stage", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("sqlxStatsRepository.CountByStage: %w", err)
	}
	counts := make(map[model.Stage]int, len(rows))
	for _, row := range rows {
		counts[model.Stage(row.Stage)] = row.Count
	}
	return counts, nil
}

func (r *sqlxStatsRepository) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(countDueQuery), userID, now); err != nil {
		middleware.GetLogger(ctx).Error("Error counting due words", "error", err, "user_id", userID.String())
		return 0, fmt.Errorf("sqlxStatsRepository.CountDue: %w", err)
	}
	return count, nil
}

func (r *sqlxStatsRepository) FindReminderRecipients(ctx context.Context, now time.Time) ([]ReminderRecipient, error) {
	var recipients []ReminderRecipient
	if err := r.db.SelectContext(ctx, &recipients, r.db.Rebind(recipientsQuery), true, now); err != nil {
		middleware.GetLogger(ctx).Error("Error finding reminder recipients", "error", err)
		return nil, fmt.Errorf("sqlxStatsRepository.FindReminderRecipients: %w", err)
	}
	return recipients, nil
}
