package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIGenerate(t *testing.T) {
	var gotReq openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(openAIResponse{Choices: []struct {
			Message openAIMessage `json:"message"`
		}{{Message: openAIMessage{Role: "assistant", Content: "Paris."}}}})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.Client(), srv.URL, "test-key", "")
	got, err := p.Generate(context.Background(), GenerationRequest{
		UserInput:      "capital of france?",
		ContextSummary: "Current topic: none",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Paris." {
		t.Fatalf("reply = %q, want %q", got, "Paris.")
	}

	if gotReq.Model != defaultOpenAIModel {
		t.Fatalf("model = %q, want default", gotReq.Model)
	}
	last := gotReq.Messages[len(gotReq.Messages)-1]
	if last.Role != "user" || last.Content != "capital of france?" {
		t.Fatalf("last message = %+v", last)
	}
}

func TestOpenAIGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.Client(), srv.URL, "test-key", "")
	if _, err := p.Generate(context.Background(), GenerationRequest{UserInput: "hi"}); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "parrot"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
