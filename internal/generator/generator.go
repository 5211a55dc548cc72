package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"article-generator/internal/config"
)

// Generator produces an article for a topic. Implementations wrap a hosted
// chat-completions API, a local inference server, or a mock for offline use.
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// ErrEmptyArticle signals that the model call succeeded but returned nothing
// usable.
var ErrEmptyArticle = errors.New("model returned an empty article")

// FromConfig builds the process-wide generator from the llm config section.
// The returned generator is created once at startup and shared read-only
// across requests.
func FromConfig(cfg *config.Config) (Generator, error) {
	settings := cfg.LLM
	switch settings.Provider {
	case "openai":
		key, err := settings.ResolveAPIKey()
		if err != nil {
			return nil, err
		}
		return NewOpenAIGenerator(settings.Model, key, settings.BaseURL, settings.Temperature, settings.MaxTokens)
	case "local":
		timeout := time.Duration(settings.TimeoutSeconds) * time.Second
		return NewLocalGenerator(settings.BaseURL, settings.Model, timeout, settings.Temperature, settings.MaxTokens)
	case "mock":
		return MockGenerator{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", settings.Provider)
	}
}
