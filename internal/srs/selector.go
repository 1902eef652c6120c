package srs

import (
	"bytes"
	"math/rand"
	"slices"
	"time"

	"github.com/samber/lo"

	"vocab_trainer/internal/model"
)

// SelectDue returns the words due at now: never scheduled ones first, then by
// earliest due time, creation time and id. The input slice is left untouched.
func SelectDue(words []model.Word, now time.Time) []model.Word {
	due := lo.Filter(words, func(w model.Word, _ int) bool {
		return w.IsDue(now)
	})
	slices.SortStableFunc(due, compareDue)
	return due
}

func compareDue(a, b model.Word) int {
	switch {
	case a.NextDueAt == nil && b.NextDueAt != nil:
		return -1
	case a.NextDueAt != nil && b.NextDueAt == nil:
		return 1
	case a.NextDueAt != nil && b.NextDueAt != nil && !a.NextDueAt.Equal(*b.NextDueAt):
		return a.NextDueAt.Compare(*b.NextDueAt)
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.WordID[:], b.WordID[:])
}

// Pick returns one word of due chosen uniformly at random. ok is false when due is empty.
func Pick(due []model.Word, rng *rand.Rand) (model.Word, bool) {
	if len(due) == 0 {
		return model.Word{}, false
	}
	return due[rng.Intn(len(due))], true
}
