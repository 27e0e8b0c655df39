// Package llm talks to an external text-generation backend and wraps it in a
// delegate that keeps a bounded turn history and screens out echo replies.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Turn is one side of a prior exchange handed to the backend as context.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationRequest carries everything a backend needs for one completion.
type GenerationRequest struct {
	UserInput      string
	ContextSummary string
	RecentTurns    []Turn
}

type Provider interface {
	Name() string
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

type Config struct {
	Provider         string
	Model            string
	OpenAIBaseURL    string
	OpenAIAPIKey     string
	AnthropicBaseURL string
	AnthropicAPIKey  string
	OllamaBaseURL    string
	Timeout          time.Duration
}

// systemPrompt frames every backend call. Replies are kept short because they
// are spoken back verbatim in a chat exchange.
const systemPrompt = "You are a helpful conversational assistant. " +
	"Answer naturally and concisely, in a few sentences at most. " +
	"Use the provided conversation context when it is relevant."

func NewProvider(cfg Config) (Provider, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(client, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.Model), nil
	case "claude":
		return NewClaudeProvider(client, cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.Model), nil
	case "ollama":
		return NewOllamaProvider(client, cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
