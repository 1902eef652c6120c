// Package app assembles the repositories, services and HTTP router from a Config.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/enrichment"
	"vocab_trainer/internal/handlers"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/repository"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/srs"
)

type App struct {
	DB        *gorm.DB
	Router    http.Handler
	Auth      service.AuthService
	Words     service.WordService
	Reminders *service.ReminderService
	logger    *slog.Logger
}

// New connects to the database and builds every component. The caller owns Close.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.NewDB(cfg.Database, cfg.IsDev(), logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a, err := build(ctx, cfg, logger, db)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return a, nil
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*App, error) {
	sqlxDB, err := repository.NewSQLX(db, cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	scheduler, err := srs.NewScheduler(srs.SchedulerConfig{RelearnInterval: cfg.Review.RelearnInterval})
	if err != nil {
		return nil, err
	}

	mailer, err := service.NewMailer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init mailer: %w", err)
	}

	userRepo := repository.NewGormUserRepository()
	wordRepo := repository.NewGormWordRepository()
	logRepo := repository.NewGormReviewLogRepository()
	statsRepo := repository.NewSQLXStatsRepository(sqlxDB)

	fetcher := NewFetcher(cfg, logger)

	authService := service.NewAuthService(db, userRepo, cfg)
	wordService := service.NewWordService(db, wordRepo, logRepo, fetcher, cfg)
	reviewService := service.NewReviewService(db, wordRepo, logRepo, scheduler, cfg)
	enrichmentService := service.NewEnrichmentService(db, wordRepo, fetcher)
	statsService := service.NewStatsService(statsRepo)
	reminderService := service.NewReminderService(statsRepo, mailer, cfg, logger)

	authMiddleware := middleware.JWTAuthMiddleware(cfg.JWT.SecretKey)
	if !cfg.Auth.Enabled {
		logger.Warn("Authentication is DISABLED. Requests are identified by the X-User-ID header.")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:         logger,
		Auth:           authMiddleware,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		HealthCheck: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}, handlers.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Words:      handlers.NewWordHandler(wordService),
		Reviews:    handlers.NewReviewHandler(reviewService),
		Enrichment: handlers.NewEnrichmentHandler(enrichmentService),
		Stats:      handlers.NewStatsHandler(statsService),
	})

	return &App{
		DB:        db,
		Router:    router,
		Auth:      authService,
		Words:     wordService,
		Reminders: reminderService,
		logger:    logger,
	}, nil
}

// NewFetcher chains the configured content sources: OpenAI first, then the
// Merriam-Webster dictionary. It returns nil when neither has a key.
func NewFetcher(cfg *config.Config, logger *slog.Logger) enrichment.Fetcher {
	var chain enrichment.Chain
	if cfg.OpenAI.APIKey != "" {
		chain = append(chain, enrichment.NewOpenAIFetcher(enrichment.OpenAIConfig{
			APIKey:         cfg.OpenAI.APIKey,
			BaseURL:        cfg.OpenAI.BaseURL,
			Model:          cfg.OpenAI.Model,
			TargetLanguage: cfg.OpenAI.TargetLanguage,
			Timeout:        cfg.OpenAI.Timeout,
		}))
	}
	if cfg.Dictionary.DictionaryKey != "" || cfg.Dictionary.ThesaurusKey != "" {
		chain = append(chain, enrichment.NewDictionaryFetcher(enrichment.DictionaryConfig{
			DictionaryKey: cfg.Dictionary.DictionaryKey,
			ThesaurusKey:  cfg.Dictionary.ThesaurusKey,
			Timeout:       cfg.Dictionary.Timeout,
		}))
	}
	if len(chain) == 0 {
		logger.Warn("No enrichment source configured; content will show as unavailable")
		return nil
	}
	return chain
}

// Close stops background jobs and releases the database.
func (a *App) Close() error {
	a.Reminders.Stop()
	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
