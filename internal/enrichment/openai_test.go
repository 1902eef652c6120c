package enrichment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/model"
)

func chatServer(t *testing.T, content string, gotPrompt *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if gotPrompt != nil && len(body.Messages) > 0 {
			*gotPrompt = body.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-1",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIFetcher_Examples(t *testing.T) {
	answer := "1. I ran.\n2. She runs.\n3. We are running.\n4. They had run.\n5. He will run."
	srv := chatServer(t, answer, nil)
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	v, err := f.Fetch(context.Background(), model.KindExamples, "run")
	require.NoError(t, err)
	assert.Len(t, strings.Split(v, "\n"), 5)
	assert.True(t, strings.HasPrefix(v, "1. I ran."))
}

func TestOpenAIFetcher_TranslationUsesTargetLanguage(t *testing.T) {
	var prompt string
	srv := chatServer(t, "  Hola  ", &prompt)
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1", TargetLanguage: "Spanish"})

	v, err := f.Fetch(context.Background(), model.KindTranslation, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hola", v)
	assert.Contains(t, prompt, "'hello'")
	assert.Contains(t, prompt, "Spanish")
}

func TestOpenAIFetcher_ExamplesWithoutList(t *testing.T) {
	srv := chatServer(t, "I cannot help with that.", nil)
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	_, err := f.Fetch(context.Background(), model.KindExamples, "run")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestOpenAIFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	_, err := f.Fetch(context.Background(), model.KindDefinition, "run")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestOpenAIFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1", Timeout: 50 * time.Millisecond})

	_, err := f.Fetch(context.Background(), model.KindDefinition, "run")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestOpenAIFetcher_UnsupportedKind(t *testing.T) {
	f := NewOpenAIFetcher(OpenAIConfig{APIKey: "test-key"})
	_, err := f.Fetch(context.Background(), model.EnrichmentKind("idioms"), "run")
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}
