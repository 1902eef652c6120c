package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vocab_trainer/internal/model"
)

// DictionaryConfig configures a DictionaryFetcher for the Merriam-Webster API.
type DictionaryConfig struct {
	DictionaryKey string
	ThesaurusKey  string
	BaseURL       string        // empty → https://dictionaryapi.com/api/v3/references
	Timeout       time.Duration // zero → 10s
}

// DictionaryFetcher looks up definitions and synonyms in Merriam-Webster.
type DictionaryFetcher struct {
	client  *http.Client
	cfg     DictionaryConfig
	baseURL string
}

func NewDictionaryFetcher(cfg DictionaryConfig) *DictionaryFetcher {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://dictionaryapi.com/api/v3/references"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &DictionaryFetcher{
		client:  &http.Client{Timeout: timeout},
		cfg:     cfg,
		baseURL: base,
	}
}

type mwEntry struct {
	Meta struct {
		Syns [][]string `json:"syns"`
	} `json:"meta"`
	Shortdef []string `json:"shortdef"`
}

func (f *DictionaryFetcher) Fetch(ctx context.Context, kind model.EnrichmentKind, term string) (string, error) {
	switch kind {
	case model.KindDefinition:
		entry, err := f.lookup(ctx, "collegiate", f.cfg.DictionaryKey, term)
		if err != nil {
			return "", err
		}
		if len(entry.Shortdef) == 0 {
			return "", unavailable(fmt.Errorf("dictionary: no definition for %q", term))
		}
		return strings.Join(entry.Shortdef, "; "), nil
	case model.KindSynonyms:
		entry, err := f.lookup(ctx, "thesaurus", f.cfg.ThesaurusKey, term)
		if err != nil {
			return "", err
		}
		if len(entry.Meta.Syns) == 0 || len(entry.Meta.Syns[0]) == 0 {
			return "", unavailable(fmt.Errorf("dictionary: no synonyms for %q", term))
		}
		syns := entry.Meta.Syns[0]
		if len(syns) > 3 {
			syns = syns[:3]
		}
		return strings.Join(syns, ", "), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// lookup returns the first entry for term. An unknown word yields a list of
// spelling suggestions instead of entries.
func (f *DictionaryFetcher) lookup(ctx context.Context, reference, key, term string) (*mwEntry, error) {
	endpoint := fmt.Sprintf("%s/%s/json/%s?key=%s", f.baseURL, reference, url.PathEscape(term), url.QueryEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, unavailable(fmt.Errorf("dictionary: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(fmt.Errorf("dictionary: unexpected status %d", resp.StatusCode))
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, unavailable(fmt.Errorf("dictionary: decode response: %w", err))
	}
	if len(raw) == 0 {
		return nil, unavailable(fmt.Errorf("dictionary: no entry for %q", term))
	}

	var entry mwEntry
	if err := json.Unmarshal(raw[0], &entry); err != nil {
		var suggestion string
		if json.Unmarshal(raw[0], &suggestion) == nil {
			return nil, unavailable(fmt.Errorf("dictionary: unknown word %q", term))
		}
		return nil, unavailable(errors.New("dictionary: malformed entry"))
	}
	return &entry, nil
}
