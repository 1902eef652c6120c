package model

import (
	"regexp"
	"strings"
)

// Span is a byte range [Start, End) inside an example sentence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HighlightSpans locates term and its inflected forms ("apple" also matches
// "apples") in example, ignoring case.
func HighlightSpans(example, term string) []Span {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Span{}
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term) + `\w*`)
	matches := re.FindAllStringIndex(example, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Start: m[0], End: m[1]})
	}
	return spans
}
