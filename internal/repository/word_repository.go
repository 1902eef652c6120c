//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, word *model.Word) error
	Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, term string) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	if word.Version == 0 {
		word.Version = 1
	}
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"user_id", word.UserID.String(),
			"term", word.Term,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []model.Word
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByUser: %w", result.Error)
	}
	return words, nil
}

// Update replaces the mutable fields of word if its version still matches the stored
// row, and increments word.Version on success.
func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"enrichment":       word.Enrichment,
		"repetition_count": word.RepetitionCount,
		"stage":            word.Stage,
		"lapses":           word.Lapses,
		"last_outcome":     word.LastOutcome,
		"next_due_at":      word.NextDueAt,
		"last_reviewed_at": word.LastReviewedAt,
		"version":          word.Version + 1,
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).
		Where("word_id = ? AND user_id = ? AND version = ?", word.WordID, word.UserID, word.Version).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"user_id", word.UserID.String(),
			"word_id", word.WordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.WithContext(ctx).Model(&model.Word{}).
			Where("word_id = ? AND user_id = ?", word.WordID, word.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("gormWordRepository.Update: %w", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		logger.Warn("Stale word version on update",
			"word_id", word.WordID.String(),
			"version", word.Version,
		)
		return model.ErrConcurrentUpdate
	}
	word.Version++
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, term string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("user_id = ? AND LOWER(term) = LOWER(?)", userID, term).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"term", term,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}
