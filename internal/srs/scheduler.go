// Package srs holds the spaced-repetition schedule and due-word selection.
// Everything here is pure: callers pass the current time and the random source.
package srs

import (
	"fmt"
	"time"

	"vocab_trainer/internal/model"
)

const day = 24 * time.Hour

// intervals is how long a word rests in a stage before its next review.
var intervals = [...]time.Duration{
	model.StageNotStarted: 0,
	model.StageInitial:    1 * day,
	model.StageReview1:    3 * day,
	model.StageReview2:    7 * day,
	model.StageReview3:    14 * day,
	model.StageReview4:    30 * day,
	model.StageReview5:    30 * day,
	model.StageMature:     30 * day,
}

// SchedulerConfig configures a Scheduler. Zero values produce defaults.
type SchedulerConfig struct {
	RelearnInterval time.Duration // zero → 1 day
}

// Scheduler computes the next schedule state of a word from a review outcome.
type Scheduler struct {
	relearnInterval time.Duration
}

// NewScheduler creates a Scheduler from cfg.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	ri := cfg.RelearnInterval
	if ri == 0 {
		ri = day
	}
	if ri < 0 {
		return nil, fmt.Errorf("srs: relearn interval %s must be positive", ri)
	}
	return &Scheduler{relearnInterval: ri}, nil
}

// Interval returns the rest period of stage. Unknown stages rest as long as Mature.
func Interval(stage model.Stage) time.Duration {
	if !stage.IsValid() {
		return intervals[model.StageMature]
	}
	return intervals[stage]
}

// Advance applies one review to w and returns the updated word and its log entry.
// The input is not mutated. A failed review keeps the stage and count, records a
// lapse and brings the word back after the relearn interval.
func (s *Scheduler) Advance(w model.Word, outcome model.Outcome, now time.Time) (model.Word, model.ReviewLog, error) {
	if !outcome.IsReview() {
		return w, model.ReviewLog{}, fmt.Errorf("srs: %w: outcome %s", model.ErrInvalidInput, outcome)
	}

	next := w
	reviewed := now
	next.LastReviewedAt = &reviewed
	next.LastOutcome = outcome

	switch outcome {
	case model.OutcomeSuccess:
		next.RepetitionCount = w.RepetitionCount + 1
		next.Stage = model.StageForCount(next.RepetitionCount)
	case model.OutcomeFail:
		next.Lapses = w.Lapses + 1
	}
	next.NextDueAt = s.NextDue(next)

	log := model.ReviewLog{
		WordID:      w.WordID,
		UserID:      w.UserID,
		Outcome:     outcome,
		StageBefore: w.Stage,
		StageAfter:  next.Stage,
		ReviewedAt:  now,
		NextDueAt:   next.NextDueAt,
		Early:       !w.IsDue(now),
	}
	return next, log, nil
}

// NextDue derives the due time of w from its stored stage, last outcome and last
// review time. A word never reviewed has no due time and is due immediately.
func (s *Scheduler) NextDue(w model.Word) *time.Time {
	if w.LastReviewedAt == nil {
		return nil
	}
	var due time.Time
	if w.LastOutcome == model.OutcomeFail {
		due = w.LastReviewedAt.Add(s.relearnInterval)
	} else {
		due = w.LastReviewedAt.Add(Interval(w.Stage))
	}
	return &due
}
