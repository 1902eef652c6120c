//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vocab_trainer/internal/config"
	"vocab_trainer/internal/enrichment"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
)

type WordService interface {
	CreateWord(ctx context.Context, userID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	ImportWords(ctx context.Context, userID uuid.UUID, terms []string) (int, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, userID uuid.UUID) ([]model.Word, error)
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
	GetHistory(ctx context.Context, userID, wordID uuid.UUID) ([]model.ReviewLog, error)
}

type wordService struct {
	db      *gorm.DB
	repo    repository.WordRepository
	logRepo repository.ReviewLogRepository
	fetcher enrichment.Fetcher
	cfg     *config.Config
	now     func() time.Time
}

// NewWordService builds the word service. fetcher may be nil, in which case new
// words start without examples.
func NewWordService(db *gorm.DB, repo repository.WordRepository, logRepo repository.ReviewLogRepository, fetcher enrichment.Fetcher, cfg *config.Config) WordService {
	return &wordService{
		db:      db,
		repo:    repo,
		logRepo: logRepo,
		fetcher: fetcher,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *wordService) newWord(userID uuid.UUID, term string, e model.Enrichment) *model.Word {
	return &model.Word{
		WordID:     uuid.New(),
		UserID:     userID,
		Term:       term,
		Enrichment: model.NewEnrichmentJSON(e),
		Stage:      model.StageNotStarted,
		Version:    1,
	}
}

// CreateWord adds a term to the user's collection. The word is due immediately.
// Example sentences are fetched before the transaction opens; a failed fetch only
// leaves them empty.
func (s *wordService) CreateWord(ctx context.Context, userID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "term must not be empty.", "term", model.ErrInvalidInput)
	}

	if !s.cfg.App.AllowDuplicateTerms {
		exists, err := s.repo.CheckTermExists(ctx, s.db, userID, term)
		if err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check the term.", "", err)
		}
		if exists {
			logger.Warn("Duplicate term rejected", "term", term)
			return nil, model.NewAppError("DUPLICATE_TERM", "This word is already in your collection.", "term", model.ErrConflict)
		}
	}

	var content model.Enrichment
	if s.fetcher != nil {
		examples, err := s.fetcher.Fetch(ctx, model.KindExamples, term)
		if err != nil {
			logger.Warn("Could not fetch examples for new word", "term", term, "error", err)
		} else {
			content = content.With(model.KindExamples, examples, s.now().UTC())
		}
	}

	word := s.newWord(userID, term, content)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !s.cfg.App.AllowDuplicateTerms {
			exists, err := s.repo.CheckTermExists(ctx, tx, userID, term)
			if err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check the term.", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_TERM", "This word is already in your collection.", "term", model.ErrConflict)
			}
		}
		if err := s.repo.Create(ctx, tx, word); err != nil {
			logger.Error("Error creating word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save the word.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", word.WordID, "term", word.Term)
	return word, nil
}

// ImportWords adds terms in one transaction without enrichment. Blank and overlong
// terms are skipped, as are duplicates when the collection does not allow them. It returns
// the number of words created.
func (s *wordService) ImportWords(ctx context.Context, userID uuid.UUID, terms []string) (int, error) {
	logger := middleware.GetLogger(ctx)
	created := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created = 0
		for _, raw := range terms {
			term := strings.TrimSpace(raw)
			if term == "" {
				continue
			}
			if utf8.RuneCountInString(term) > model.MaxTermLength {
				logger.Warn("Skipping overlong term", "length", utf8.RuneCountInString(term))
				continue
			}
			if !s.cfg.App.AllowDuplicateTerms {
				exists, err := s.repo.CheckTermExists(ctx, tx, userID, term)
				if err != nil {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check the term.", "", err)
				}
				if exists {
					logger.Debug("Skipping duplicate term", "term", term)
					continue
				}
			}
			if err := s.repo.Create(ctx, tx, s.newWord(userID, term, model.Enrichment{})); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save the word.", "", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("Words imported", "user_id", userID, "created", created, "rows", len(terms))
	return created, nil
}

func (s *wordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.repo.FindByID(ctx, s.db, userID, wordID)
	if err != nil {
		return nil, wordLookupError(err)
	}
	return word, nil
}

func (s *wordService) ListWords(ctx context.Context, userID uuid.UUID) ([]model.Word, error) {
	words, err := s.repo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list words.", "", err)
	}
	return words, nil
}

// DeleteWord removes the word. Review history is kept.
func (s *wordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, userID, wordID)
	})
	if err != nil {
		return wordLookupError(err)
	}
	logger.Info("Word deleted", "word_id", wordID)
	return nil
}

func (s *wordService) GetHistory(ctx context.Context, userID, wordID uuid.UUID) ([]model.ReviewLog, error) {
	if _, err := s.repo.FindByID(ctx, s.db, userID, wordID); err != nil {
		return nil, wordLookupError(err)
	}
	logs, err := s.logRepo.FindByWord(ctx, s.db, userID, wordID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error loading review history", "error", err, "word_id", wordID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the review history.", "", err)
	}
	return logs, nil
}

func wordLookupError(err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal error occurred.", "", err)
}
