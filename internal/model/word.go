// internal/model/word.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EnrichmentKind names one piece of generated content attached to a word.
type EnrichmentKind string

const (
	KindExamples    EnrichmentKind = "examples"
	KindDefinition  EnrichmentKind = "definition"
	KindSynonyms    EnrichmentKind = "synonyms"
	KindTranslation EnrichmentKind = "translation"
)

// EnrichmentKinds lists every supported kind in display order.
var EnrichmentKinds = []EnrichmentKind{KindExamples, KindDefinition, KindSynonyms, KindTranslation}

func (k EnrichmentKind) IsValid() bool {
	switch k {
	case KindExamples, KindDefinition, KindSynonyms, KindTranslation:
		return true
	}
	return false
}

// Enrichment is the cached generated content of a word. It has no effect on scheduling.
type Enrichment struct {
	Examples    []string                     `json:"examples,omitempty"`
	Definition  string                       `json:"definition,omitempty"`
	Synonyms    string                       `json:"synonyms,omitempty"`
	Translation string                       `json:"translation,omitempty"`
	FetchedAt   map[EnrichmentKind]time.Time `json:"fetched_at,omitempty"`
}

// Cached returns the stored content for kind and whether anything was stored.
func (e Enrichment) Cached(kind EnrichmentKind) (string, bool) {
	var v string
	switch kind {
	case KindExamples:
		v = strings.Join(e.Examples, "\n")
	case KindDefinition:
		v = e.Definition
	case KindSynonyms:
		v = e.Synonyms
	case KindTranslation:
		v = e.Translation
	}
	return v, v != ""
}

// With returns a copy of e holding value for kind. Examples are stored one per line.
func (e Enrichment) With(kind EnrichmentKind, value string, fetchedAt time.Time) Enrichment {
	out := e
	out.FetchedAt = make(map[EnrichmentKind]time.Time, len(e.FetchedAt)+1)
	for k, t := range e.FetchedAt {
		out.FetchedAt[k] = t
	}
	switch kind {
	case KindExamples:
		out.Examples = splitLines(value)
	case KindDefinition:
		out.Definition = value
	case KindSynonyms:
		out.Synonyms = value
	case KindTranslation:
		out.Translation = value
	default:
		return e
	}
	out.FetchedAt[kind] = fetchedAt.UTC()
	return out
}

// NewEnrichmentJSON wraps e for storage in a JSON column.
func NewEnrichmentJSON(e Enrichment) datatypes.JSONType[Enrichment] {
	return datatypes.NewJSONType(e)
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Word is a term collected by a user together with its review schedule state.
type Word struct {
	WordID          uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"word_id"`
	UserID          uuid.UUID                      `gorm:"type:uuid;not null;index" json:"-"`
	Term            string                         `gorm:"type:varchar(100);not null" json:"term"`
	Enrichment      datatypes.JSONType[Enrichment] `json:"enrichment"`
	RepetitionCount int                            `gorm:"not null" json:"repetition_count"`
	Stage           Stage                          `gorm:"not null" json:"stage"`
	Lapses          int                            `gorm:"not null" json:"lapses"`
	LastOutcome     Outcome                        `gorm:"not null" json:"last_outcome"`
	NextDueAt       *time.Time                     `gorm:"index" json:"next_due_at"`
	LastReviewedAt  *time.Time                     `json:"last_reviewed_at"`
	Version         int                            `gorm:"not null" json:"-"`
	CreatedAt       time.Time                      `json:"created_at"`
	UpdatedAt       time.Time                      `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// IsDue reports whether the word should be practiced at now. An unset due time means due immediately.
func (w *Word) IsDue(now time.Time) bool {
	return w.NextDueAt == nil || !w.NextDueAt.After(now)
}

// MaxTermLength is the size of the term column, in characters.
const MaxTermLength = 100

// PostWordRequest is the body of the add-word API.
type PostWordRequest struct {
	Term string `json:"term" validate:"required,max=100"`
}
