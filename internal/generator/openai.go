package generator

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator calls a hosted chat-completions API through the official
// openai-go SDK. A base URL override makes OpenAI-compatible vendors work
// with the same client.
type OpenAIGenerator struct {
	model       string
	opts        []option.RequestOption
	temperature float64
	maxTokens   int
}

func NewOpenAIGenerator(model, apiKey, baseURL string, temperature float64, maxTokens int) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing; set llm.api_key or llm.api_key_env")
	}
	if model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIGenerator{
		model:       model,
		opts:        opts,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, topic string) (string, error) {
	client := openai.NewClient(g.opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(topic)),
		},
	}
	if g.temperature > 0 {
		params.Temperature = openai.Float(g.temperature)
	}
	if g.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(g.maxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	article := strings.TrimSpace(resp.Choices[0].Message.Content)
	if article == "" {
		return "", ErrEmptyArticle
	}
	return article, nil
}
