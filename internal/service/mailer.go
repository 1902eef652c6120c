package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes mails to the log instead of sending them.
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	middleware.GetLogger(ctx).Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

type SMTPMailer struct {
	cfg  config.SMTPConfig
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg config.SMTPConfig, from string) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, from: from, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	if err := m.send(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		logger.Error("Failed to send email via SMTP", "error", err, "addr", addr, "to", to)
		return fmt.Errorf("smtp send: %w", err)
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// NewMailer builds the mailer selected by mailer.driver.
func NewMailer(ctx context.Context, cfg *config.Config) (Mailer, error) {
	logger := slog.Default()
	switch cfg.Mailer.Driver {
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return NewSMTPMailer(cfg.Mailer.SMTP, cfg.Mailer.From), nil
	case "ses":
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(ctx, cfg.Mailer.SES, cfg.Mailer.From)
	case "log", "":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}, nil
	default:
		logger.Warn("Unknown mailer driver, defaulting to LogMailer", "driver", cfg.Mailer.Driver)
		return &LogMailer{}, nil
	}
}
