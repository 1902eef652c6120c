// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog is one entry of a word's review history.
type ReviewLog struct {
	ReviewLogID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"review_log_id"`
	WordID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"word_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Outcome     Outcome    `gorm:"not null" json:"outcome"`
	StageBefore Stage      `gorm:"not null" json:"stage_before"`
	StageAfter  Stage      `gorm:"not null" json:"stage_after"`
	ReviewedAt  time.Time  `gorm:"not null" json:"reviewed_at"`
	NextDueAt   *time.Time `json:"next_due_at"`
	// Early is set when the word was reviewed before it was due.
	Early bool `gorm:"not null;default:false" json:"early"`
}

func (ReviewLog) TableName() string {
	return "review_logs"
}

// ReviewWordResponse is a word as presented for practice.
type ReviewWordResponse struct {
	WordID          uuid.UUID  `json:"word_id"`
	Term            string     `json:"term"`
	Stage           Stage      `json:"stage"`
	RepetitionCount int        `json:"repetition_count"`
	NextDueAt       *time.Time `json:"next_due_at"`
	Examples        []string   `json:"examples"`
	// Highlights holds the term's positions in each example, index for index.
	Highlights      [][]Span   `json:"highlights"`
}

func NewReviewWordResponse(w *Word) *ReviewWordResponse {
	examples := w.Enrichment.Data().Examples
	if examples == nil {
		examples = []string{}
	}
	highlights := make([][]Span, 0, len(examples))
	for _, ex := range examples {
		highlights = append(highlights, HighlightSpans(ex, w.Term))
	}
	return &ReviewWordResponse{
		WordID:          w.WordID,
		Term:            w.Term,
		Stage:           w.Stage,
		RepetitionCount: w.RepetitionCount,
		NextDueAt:       w.NextDueAt,
		Examples:        examples,
		Highlights:      highlights,
	}
}

// NextDueResponse is the answer to "what should I practice now". NothingDue is set
// instead of an error when no word is due.
type NextDueResponse struct {
	NothingDue bool                `json:"nothing_due"`
	DueCount   int                 `json:"due_count"`
	Word       *ReviewWordResponse `json:"word,omitempty"`
}

// SubmitReviewRequest is the body of the review result API.
type SubmitReviewRequest struct {
	Outcome Outcome `json:"outcome" validate:"required"`
}

// StatsResponse summarizes a user's collection.
type StatsResponse struct {
	Total   int            `json:"total"`
	DueNow  int            `json:"due_now"`
	ByStage map[string]int `json:"by_stage"`
}

// EnrichmentResponse is the result of an enrichment refresh. Stale is set when the
// upstream call failed and the cached or placeholder value was returned instead.
type EnrichmentResponse struct {
	WordID uuid.UUID      `json:"word_id"`
	Kind   EnrichmentKind `json:"kind"`
	Value  string         `json:"value"`
	Stale  bool           `json:"stale"`
}
