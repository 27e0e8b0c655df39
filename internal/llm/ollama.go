package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOllamaModel = "llama2"

// OllamaProvider targets a local Ollama daemon, useful for running without
// any hosted API key.
type OllamaProvider struct {
	client  *http.Client
	baseURL string
	model   string
}

func NewOllamaProvider(client *http.Client, baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaProvider{client: client, baseURL: strings.TrimRight(baseURL, "/"), model: model}
}

func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

func (p *OllamaProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	var prompt strings.Builder
	if req.ContextSummary != "" {
		prompt.WriteString("Conversation context: ")
		prompt.WriteString(req.ContextSummary)
		prompt.WriteString("\n\n")
	}
	turns := req.RecentTurns
	if len(turns) > maxContextTurns {
		turns = turns[len(turns)-maxContextTurns:]
	}
	for _, t := range turns {
		prompt.WriteString(t.Role)
		prompt.WriteString(": ")
		prompt.WriteString(t.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("user: ")
	prompt.WriteString(req.UserInput)
	prompt.WriteString("\nassistant:")

	payload := ollamaRequest{
		Model:  p.model,
		Prompt: prompt.String(),
		System: systemPrompt,
		Stream: false,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, string(body))
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama error: %s", parsed.Error)
	}
	return parsed.Response, nil
}
