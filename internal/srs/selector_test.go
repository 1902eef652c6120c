package srs

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/model"
)

func wordDueAt(due *time.Time, created time.Time) model.Word {
	w := newWord()
	w.NextDueAt = due
	w.CreatedAt = created
	return w
}

func at(t time.Time) *time.Time { return &t }

func TestSelectDue_Empty(t *testing.T) {
	assert.Empty(t, SelectDue(nil, t0))
	assert.Empty(t, SelectDue([]model.Word{}, t0))
}

func TestSelectDue_FiltersAndOrders(t *testing.T) {
	unset := wordDueAt(nil, t0.Add(time.Hour))
	early := wordDueAt(at(t0.Add(-2*day)), t0)
	late := wordDueAt(at(t0.Add(-day)), t0)
	exact := wordDueAt(at(t0), t0)
	future := wordDueAt(at(t0.Add(time.Minute)), t0)

	got := SelectDue([]model.Word{future, exact, late, unset, early}, t0)

	ids := make([]uuid.UUID, len(got))
	for i, w := range got {
		ids[i] = w.WordID
	}
	assert.Equal(t, []uuid.UUID{unset.WordID, early.WordID, late.WordID, exact.WordID}, ids)
}

func TestSelectDue_TieBreakers(t *testing.T) {
	due := at(t0.Add(-day))
	older := wordDueAt(due, t0.Add(-time.Hour))
	newer := wordDueAt(due, t0)

	got := SelectDue([]model.Word{newer, older}, t0)
	require.Len(t, got, 2)
	assert.Equal(t, older.WordID, got[0].WordID)

	a := wordDueAt(due, t0)
	b := wordDueAt(due, t0)
	a.WordID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b.WordID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	got = SelectDue([]model.Word{b, a}, t0)
	assert.Equal(t, a.WordID, got[0].WordID)
}

func TestSelectDue_IdempotentAndReadOnly(t *testing.T) {
	words := []model.Word{
		wordDueAt(at(t0.Add(day)), t0),
		wordDueAt(nil, t0),
		wordDueAt(at(t0.Add(-day)), t0),
	}
	before := append([]model.Word(nil), words...)

	first := SelectDue(words, t0)
	second := SelectDue(words, t0)

	assert.Equal(t, first, second)
	assert.Equal(t, before, words)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, ok := Pick(nil, rng)
	assert.False(t, ok)

	due := []model.Word{wordDueAt(nil, t0), wordDueAt(nil, t0), wordDueAt(nil, t0)}
	seen := map[uuid.UUID]int{}
	for i := 0; i < 300; i++ {
		w, ok := Pick(due, rng)
		require.True(t, ok)
		seen[w.WordID]++
	}
	assert.Len(t, seen, 3)
	for _, w := range due {
		assert.Greater(t, seen[w.WordID], 50)
	}
}

func TestPick_SameSeedSameChoice(t *testing.T) {
	due := []model.Word{wordDueAt(nil, t0), wordDueAt(nil, t0), wordDueAt(nil, t0), wordDueAt(nil, t0)}
	a, _ := Pick(due, rand.New(rand.NewSource(7)))
	b, _ := Pick(due, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.WordID, b.WordID)
}
