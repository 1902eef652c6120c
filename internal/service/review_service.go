//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
	"vocab_trainer/internal/srs"
)

type ReviewService interface {
	ListDue(ctx context.Context, userID uuid.UUID) ([]*model.ReviewWordResponse, error)
	NextDue(ctx context.Context, userID uuid.UUID) (*model.NextDueResponse, error)
	SubmitReview(ctx context.Context, userID, wordID uuid.UUID, outcome model.Outcome) (*model.Word, error)
}

type reviewService struct {
	db        *gorm.DB
	repo      repository.WordRepository
	logRepo   repository.ReviewLogRepository
	scheduler *srs.Scheduler
	cfg       *config.Config
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewReviewService(db *gorm.DB, repo repository.WordRepository, logRepo repository.ReviewLogRepository, scheduler *srs.Scheduler, cfg *config.Config) ReviewService {
	return &reviewService{
		db:        db,
		repo:      repo,
		logRepo:   logRepo,
		scheduler: scheduler,
		cfg:       cfg,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *reviewService) dueWords(ctx context.Context, userID uuid.UUID) ([]model.Word, error) {
	words, err := s.repo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load words for review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load review words.", "", err)
	}
	return srs.SelectDue(words, s.now().UTC()), nil
}

// ListDue returns the due words in review order, at most app.review_limit of them.
func (s *reviewService) ListDue(ctx context.Context, userID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx)
	due, err := s.dueWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit := s.cfg.App.ReviewLimit; limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	responses := lo.Map(due, func(w model.Word, _ int) *model.ReviewWordResponse {
		return model.NewReviewWordResponse(&w)
	})
	logger.Info("Successfully retrieved review words", "count", len(responses))
	return responses, nil
}

// NextDue picks one due word at random. An empty due set is not an error.
func (s *reviewService) NextDue(ctx context.Context, userID uuid.UUID) (*model.NextDueResponse, error) {
	due, err := s.dueWords(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	word, ok := srs.Pick(due, s.rng)
	s.mu.Unlock()

	if !ok {
		return &model.NextDueResponse{NothingDue: true}, nil
	}
	return &model.NextDueResponse{
		DueCount: len(due),
		Word:     model.NewReviewWordResponse(&word),
	}, nil
}

// SubmitReview records a review and reschedules the word. A concurrent update is
// retried once against a fresh read before it is reported.
func (s *reviewService) SubmitReview(ctx context.Context, userID, wordID uuid.UUID, outcome model.Outcome) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)
	if !outcome.IsReview() {
		return nil, model.NewAppError("VALIDATION_ERROR", "outcome must be success or fail.", "outcome", model.ErrInvalidInput)
	}

	word, err := s.applyReview(ctx, userID, wordID, outcome)
	if errors.Is(err, model.ErrConcurrentUpdate) {
		logger.Warn("Concurrent review detected, retrying once")
		word, err = s.applyReview(ctx, userID, wordID, outcome)
	}
	if err != nil {
		switch {
		case errors.Is(err, model.ErrConcurrentUpdate):
			return nil, model.NewAppError("CONCURRENT_UPDATE", "The word was changed by another request. Please try again.", "", err)
		case errors.Is(err, model.ErrNotFound):
			return nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", err)
		}
		logger.Error("Failed to record review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the review.", "", err)
	}

	logger.Info("Review recorded", "outcome", outcome, "stage", word.Stage, "next_due_at", word.NextDueAt)
	return word, nil
}

func (s *reviewService) applyReview(ctx context.Context, userID, wordID uuid.UUID, outcome model.Outcome) (*model.Word, error) {
	var updated model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.repo.FindByID(ctx, tx, userID, wordID)
		if err != nil {
			return err
		}
		next, entry, err := s.scheduler.Advance(*word, outcome, s.now().UTC())
		if err != nil {
			return err
		}
		if err := s.repo.Update(ctx, tx, &next); err != nil {
			return err
		}
		if err := s.logRepo.Create(ctx, tx, &entry); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
