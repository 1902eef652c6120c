//go:generate mockery --name EnrichmentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vocab_trainer/internal/enrichment"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
)

type EnrichmentService interface {
	Refresh(ctx context.Context, userID, wordID uuid.UUID, kind model.EnrichmentKind) (*model.EnrichmentResponse, error)
}

type enrichmentService struct {
	db      *gorm.DB
	repo    repository.WordRepository
	fetcher enrichment.Fetcher
	now     func() time.Time
}

// NewEnrichmentService builds the service. A nil fetcher behaves like an upstream
// that is always down.
func NewEnrichmentService(db *gorm.DB, repo repository.WordRepository, fetcher enrichment.Fetcher) EnrichmentService {
	return &enrichmentService{
		db:      db,
		repo:    repo,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Refresh fetches a fresh value of kind for the word and stores it. When the
// upstream fails the cached value, or a placeholder when nothing is cached, is
// returned with Stale set and no error. The schedule is never touched.
func (s *enrichmentService) Refresh(ctx context.Context, userID, wordID uuid.UUID, kind model.EnrichmentKind) (*model.EnrichmentResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID, "kind", kind)
	if !kind.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "Unknown enrichment kind.", "kind", model.ErrInvalidInput)
	}

	word, err := s.repo.FindByID(ctx, s.db, userID, wordID)
	if err != nil {
		return nil, wordLookupError(err)
	}

	value, err := s.fetch(ctx, kind, word.Term)
	if err != nil {
		logger.Warn("Enrichment upstream unavailable, serving cached content", "error", err)
		cached, ok := word.Enrichment.Data().Cached(kind)
		if !ok {
			cached = enrichment.SentinelUnavailable
		}
		return &model.EnrichmentResponse{WordID: wordID, Kind: kind, Value: cached, Stale: true}, nil
	}

	err = s.store(ctx, userID, wordID, kind, value)
	if errors.Is(err, model.ErrConcurrentUpdate) {
		logger.Warn("Concurrent update while storing enrichment, retrying once")
		err = s.store(ctx, userID, wordID, kind, value)
	}
	if err != nil {
		switch {
		case errors.Is(err, model.ErrConcurrentUpdate):
			return nil, model.NewAppError("CONCURRENT_UPDATE", "The word was changed by another request. Please try again.", "", err)
		case errors.Is(err, model.ErrNotFound):
			return nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", err)
		}
		logger.Error("Failed to store enrichment", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to store the content.", "", err)
	}

	logger.Info("Enrichment refreshed")
	return &model.EnrichmentResponse{WordID: wordID, Kind: kind, Value: value}, nil
}

func (s *enrichmentService) fetch(ctx context.Context, kind model.EnrichmentKind, term string) (string, error) {
	if s.fetcher == nil {
		return "", enrichment.ErrUpstreamUnavailable
	}
	return s.fetcher.Fetch(ctx, kind, term)
}

func (s *enrichmentService) store(ctx context.Context, userID, wordID uuid.UUID, kind model.EnrichmentKind, value string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.repo.FindByID(ctx, tx, userID, wordID)
		if err != nil {
			return err
		}
		word.Enrichment = model.NewEnrichmentJSON(word.Enrichment.Data().With(kind, value, s.now().UTC()))
		return s.repo.Update(ctx, tx, word)
	})
}
