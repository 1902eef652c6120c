package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/repository"
)

// ReminderService periodically e-mails users who have words waiting for review.
type ReminderService struct {
	scheduler *gocron.Scheduler
	stats     repository.StatsRepository
	mailer    Mailer
	cfg       config.ReminderConfig
	appName   string
	logger    *slog.Logger
	now       func() time.Time
}

func NewReminderService(stats repository.StatsRepository, mailer Mailer, cfg *config.Config, logger *slog.Logger) *ReminderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderService{
		scheduler: gocron.NewScheduler(time.UTC),
		stats:     stats,
		mailer:    mailer,
		cfg:       cfg.Reminder,
		appName:   cfg.App.Name,
		logger:    logger.With("component", "reminder"),
		now:       time.Now,
	}
}

// Start schedules the digest every reminder.interval. It does nothing when
// reminders are disabled.
func (s *ReminderService) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("Reminders disabled")
		return nil
	}
	s.scheduler.SingletonModeAll()
	_, err := s.scheduler.Every(s.cfg.Interval).WaitForSchedule().Do(func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("Reminder run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started", "interval", s.cfg.Interval)
	return nil
}

func (s *ReminderService) Stop() {
	s.scheduler.Stop()
}

// RunOnce sends one digest to every user with reminders on and something due.
// A failed mail is logged and does not stop the others. It returns the number of
// mails sent.
func (s *ReminderService) RunOnce(ctx context.Context) (int, error) {
	recipients, err := s.stats.FindReminderRecipients(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("find reminder recipients: %w", err)
	}

	sent := 0
	for _, r := range recipients {
		subject := fmt.Sprintf("[%s] %d words are waiting for review", s.appName, r.DueCount)
		if r.DueCount == 1 {
			subject = fmt.Sprintf("[%s] 1 word is waiting for review", s.appName)
		}
		body := fmt.Sprintf("Hi %s,\n\nYou have %d word(s) due for review. A few minutes of practice now keeps them fresh.\n", r.Name, r.DueCount)
		if err := s.mailer.Send(ctx, r.Email, subject, body); err != nil {
			s.logger.Warn("Failed to send reminder", "user_id", r.UserID, "error", err)
			continue
		}
		sent++
	}
	s.logger.Info("Reminder run finished", "recipients", len(recipients), "sent", sent)
	return sent, nil
}
