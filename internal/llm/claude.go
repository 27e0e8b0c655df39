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

const defaultClaudeModel = "claude-3-sonnet-20240229"

type ClaudeProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClaudeProvider(client *http.Client, baseURL, apiKey, model string) *ClaudeProvider {
	if model == "" {
		model = defaultClaudeModel
	}
	return &ClaudeProvider{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, model: model}
}

func (p *ClaudeProvider) Name() string { return "claude" }

type claudeRequest struct {
	Model     string          `json:"model"`
	System    string          `json:"system,omitempty"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *ClaudeProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	system := systemPrompt
	if req.ContextSummary != "" {
		system += "\n\nConversation context: " + req.ContextSummary
	}

	payload := claudeRequest{
		Model:     p.model,
		System:    system,
		MaxTokens: 300,
	}
	turns := req.RecentTurns
	if len(turns) > maxContextTurns {
		turns = turns[len(turns)-maxContextTurns:]
	}
	for _, t := range turns {
		payload.Messages = append(payload.Messages, claudeMessage{Role: t.Role, Content: t.Content})
	}
	payload.Messages = append(payload.Messages, claudeMessage{Role: "user", Content: req.UserInput})

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	httpReq.Header.Set("content-type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("claude status %d: %s", resp.StatusCode, string(body))
	}

	var parsed claudeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("claude error: %s", parsed.Error.Message)
	}

	var out string
	for _, block := range parsed.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}
		if out == "" {
			out = block.Text
		} else {
			out += "\n" + block.Text
		}
	}
	if out == "" {
		return "", fmt.Errorf("claude: empty completion")
	}
	return out, nil
}
