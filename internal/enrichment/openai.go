package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"vocab_trainer/internal/model"
)

// OpenAIConfig configures an OpenAIFetcher. Zero values produce defaults.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string        // empty → api.openai.com
	Model          string        // empty → gpt-4o
	TargetLanguage string        // empty → Russian
	Timeout        time.Duration // zero → 15s
}

// OpenAIFetcher generates every kind of content with a chat-completion model.
type OpenAIFetcher struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
}

func NewOpenAIFetcher(cfg OpenAIConfig) *OpenAIFetcher {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	f := &OpenAIFetcher{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		language: cfg.TargetLanguage,
		timeout:  cfg.Timeout,
	}
	if f.model == "" {
		f.model = openai.GPT4o
	}
	if f.language == "" {
		f.language = "Russian"
	}
	if f.timeout == 0 {
		f.timeout = 15 * time.Second
	}
	return f
}

func (f *OpenAIFetcher) prompt(kind model.EnrichmentKind, term string) (string, int, error) {
	switch kind {
	case model.KindExamples:
		return fmt.Sprintf("Provide an answer with only five sentences using different forms and tenses "+
			"of the word '%s' in different contexts. Answer as a numbered list:\n\n1.\n2.\n3.\n4.\n5.", term), 150, nil
	case model.KindDefinition:
		return fmt.Sprintf("Define the word '%s':", term), 30, nil
	case model.KindSynonyms:
		return fmt.Sprintf("Provide 1-3 synonyms of the word '%s':", term), 30, nil
	case model.KindTranslation:
		return fmt.Sprintf("Translate the word '%s' to %s:", term, f.language), 30, nil
	}
	return "", 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

func (f *OpenAIFetcher) Fetch(ctx context.Context, kind model.EnrichmentKind, term string) (string, error) {
	prompt, maxTokens, err := f.prompt(kind, term)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", unavailable(fmt.Errorf("openai: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", unavailable(errors.New("openai: no choices returned"))
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if kind == model.KindExamples {
		examples := ParseNumbered(answer)
		if len(examples) == 0 {
			return "", unavailable(errors.New("openai: answer has no numbered examples"))
		}
		return strings.Join(examples, "\n"), nil
	}
	if answer == "" {
		return "", unavailable(errors.New("openai: empty answer"))
	}
	return answer, nil
}
