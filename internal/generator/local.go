package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultLocalTimeout = 120 * time.Second

// LocalGenerator talks to a local OpenAI-compatible inference server (for
// example llama.cpp's server) over plain HTTP. The model is loaded once by
// that server process; this client holds no model state of its own.
type LocalGenerator struct {
	baseURL     string
	model       string
	client      *http.Client
	temperature float64
	maxTokens   int
}

func NewLocalGenerator(baseURL, model string, timeout time.Duration, temperature float64, maxTokens int) (*LocalGenerator, error) {
	if baseURL == "" {
		return nil, errors.New("llm provider local requires base_url")
	}
	if timeout <= 0 {
		timeout = defaultLocalTimeout
	}
	return &LocalGenerator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		client:      &http.Client{Timeout: timeout},
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

func (g *LocalGenerator) Generate(ctx context.Context, topic string) (string, error) {
	payload := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildPrompt(topic)},
		},
		"stream": false,
	}
	if g.temperature > 0 {
		payload["temperature"] = g.temperature
	}
	if g.maxTokens > 0 {
		payload["max_tokens"] = g.maxTokens
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode > 299 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("llm returned status %d: %s", res.StatusCode, strings.TrimSpace(string(b)))
	}

	var respStruct struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&respStruct); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(respStruct.Choices) == 0 {
		return "", errors.New("llm response had no choices")
	}
	article := strings.TrimSpace(respStruct.Choices[0].Message.Content)
	if article == "" {
		return "", ErrEmptyArticle
	}
	return article, nil
}
