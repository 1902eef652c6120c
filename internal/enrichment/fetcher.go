// Package enrichment fetches generated content for a word: example sentences,
// a definition, synonyms and a translation.
package enrichment

import (
	"context"
	"errors"
	"fmt"

	"vocab_trainer/internal/model"
)

// SentinelUnavailable is shown when content could not be fetched and nothing is cached.
const SentinelUnavailable = "Not available"

var (
	// ErrUpstreamUnavailable covers every failure of the external service, timeouts included.
	ErrUpstreamUnavailable = errors.New("enrichment upstream unavailable")
	// ErrUnsupportedKind is returned by a fetcher that cannot produce the requested kind.
	ErrUnsupportedKind = errors.New("enrichment kind not supported")
)

// Fetcher produces one kind of content for a term. Examples are returned one per line.
type Fetcher interface {
	Fetch(ctx context.Context, kind model.EnrichmentKind, term string) (string, error)
}

// Chain asks each fetcher in turn and returns the first answer.
type Chain []Fetcher

func (c Chain) Fetch(ctx context.Context, kind model.EnrichmentKind, term string) (string, error) {
	var lastErr error
	for _, f := range c {
		v, err := f.Fetch(ctx, kind, term)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, ErrUnsupportedKind) {
			continue
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return "", lastErr
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
