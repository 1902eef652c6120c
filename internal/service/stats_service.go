//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/repository"
)

type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error)
}

type statsService struct {
	repo repository.StatsRepository
	now  func() time.Time
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

var allStages = []model.Stage{
	model.StageNotStarted,
	model.StageInitial,
	model.StageReview1,
	model.StageReview2,
	model.StageReview3,
	model.StageReview4,
	model.StageReview5,
	model.StageMature,
}

// GetStats counts the user's words per stage (every stage present, zero if empty)
// and how many are due now.
func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.repo.CountByStage(ctx, userID)
	if err != nil {
		logger.Error("Failed to count words by stage", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}
	due, err := s.repo.CountDue(ctx, userID, s.now().UTC())
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load statistics.", "", err)
	}

	byStage := lo.SliceToMap(allStages, func(st model.Stage) (string, int) {
		return st.String(), counts[st]
	})
	return &model.StatsResponse{
		Total:   lo.Sum(lo.Values(counts)),
		DueNow:  due,
		ByStage: byStage,
	}, nil
}
