package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubProvider struct {
	reply string
	err   error
	last  GenerationRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, req GenerationRequest) (string, error) {
	s.last = req
	return s.reply, s.err
}

func TestDelegateRecordsTurns(t *testing.T) {
	stub := &stubProvider{reply: "The capital of France is Paris."}
	d := NewDelegate(stub, 10)

	got, err := d.Generate(context.Background(), "what is the capital of france", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != stub.reply {
		t.Fatalf("reply = %q, want %q", got, stub.reply)
	}

	turns := d.Turns()
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != "user" || turns[1].Role != "assistant" {
		t.Fatalf("unexpected roles: %v", turns)
	}
	if len(stub.last.RecentTurns) != 0 {
		t.Fatalf("first call should carry no prior turns, got %v", stub.last.RecentTurns)
	}
}

func TestDelegatePassesContextSummary(t *testing.T) {
	stub := &stubProvider{reply: "Sure."}
	d := NewDelegate(stub, 10)

	summary := "Current topic: weather | Previous intent: weather"
	if _, err := d.Generate(context.Background(), "and tomorrow?", summary); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if stub.last.ContextSummary != summary {
		t.Fatalf("ContextSummary = %q, want %q", stub.last.ContextSummary, summary)
	}
}

func TestDelegateWindowCap(t *testing.T) {
	stub := &stubProvider{reply: "ok"}
	d := NewDelegate(stub, 2)

	for i := 0; i < 5; i++ {
		if _, err := d.Generate(context.Background(), fmt.Sprintf("question %d", i), ""); err != nil {
			t.Fatalf("Generate %d: %v", i, err)
		}
	}

	turns := d.Turns()
	if len(turns) != 4 {
		t.Fatalf("turns = %d, want 4 (2 exchanges)", len(turns))
	}
	if turns[0].Content != "question 3" {
		t.Fatalf("oldest retained turn = %q, want %q", turns[0].Content, "question 3")
	}
}

func TestDelegateRejectsEcho(t *testing.T) {
	for _, reply := range []string{
		"I understand you said: hello",
		"Thanks for your message: hello",
		"I received: hello",
		"Your message: hello was noted",
	} {
		stub := &stubProvider{reply: reply}
		d := NewDelegate(stub, 10)

		_, err := d.Generate(context.Background(), "hello", "")
		if !errors.Is(err, ErrFallbackEcho) {
			t.Fatalf("reply %q: err = %v, want ErrFallbackEcho", reply, err)
		}

		turns := d.Turns()
		if len(turns) != 1 || turns[0].Role != "user" {
			t.Fatalf("echo reply must not be recorded, turns = %v", turns)
		}
	}
}

func TestDelegateRejectsEmptyReply(t *testing.T) {
	stub := &stubProvider{reply: "   \n"}
	d := NewDelegate(stub, 10)

	if _, err := d.Generate(context.Background(), "hello", ""); err == nil {
		t.Fatal("expected error for blank reply")
	}
}

func TestDelegatePropagatesProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	stub := &stubProvider{err: wantErr}
	d := NewDelegate(stub, 10)

	_, err := d.Generate(context.Background(), "hello", "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
	if turns := d.Turns(); len(turns) != 1 {
		t.Fatalf("turns = %v, want only the user turn", turns)
	}
}
