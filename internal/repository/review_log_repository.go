//go:generate mockery --name ReviewLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
)

type ReviewLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.ReviewLog) error
	FindByWord(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) ([]model.ReviewLog, error)
}

type gormReviewLogRepository struct{}

func NewGormReviewLogRepository() ReviewLogRepository {
	return &gormReviewLogRepository{}
}

func (r *gormReviewLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.ReviewLog) error {
	if log.ReviewLogID == uuid.Nil {
		log.ReviewLogID = uuid.New()
	}
	if err := tx.WithContext(ctx).Create(log).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating review log in DB",
			"error", err,
			"word_id", log.WordID.String(),
		)
		return fmt.Errorf("gormReviewLogRepository.Create: %w", err)
	}
	return nil
}

// FindByWord returns the history of a word, newest first.
func (r *gormReviewLogRepository) FindByWord(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) ([]model.ReviewLog, error) {
	var logs []model.ReviewLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		Order("reviewed_at DESC").
		Find(&logs).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error finding review logs in DB",
			"error", err,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormReviewLogRepository.FindByWord: %w", err)
	}
	return logs, nil
}
