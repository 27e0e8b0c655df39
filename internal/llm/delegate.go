package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrFallbackEcho marks a reply the backend produced by echoing the input
// back instead of answering it. Callers treat it like any other generation
// failure and fall through to a deterministic reply.
var ErrFallbackEcho = errors.New("llm: backend echoed the input")

// fallbackMarkers are the known prefixes of echo replies. A completion that
// contains any of them is rejected outright.
var fallbackMarkers = []string{
	"I understand you said:",
	"Thanks for your message:",
	"I received:",
	"Your message:",
}

const defaultHistoryLimit = 10

// Delegate wraps a Provider with a rolling window of prior exchanges. The
// window is owned here, not by the backend, so a restarted or swapped backend
// keeps the same conversational memory. Safe for concurrent use.
type Delegate struct {
	provider Provider

	mu       sync.Mutex
	turns    []Turn
	maxTurns int
}

// NewDelegate keeps at most historyLimit exchanges, i.e. twice that many
// turns.
func NewDelegate(p Provider, historyLimit int) *Delegate {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Delegate{provider: p, maxTurns: historyLimit * 2}
}

// Generate asks the backend for a reply to userInput, passing along the
// caller's context summary and the delegate's own recent turns. The user turn
// is recorded even when generation fails; the assistant turn only on success,
// so a rejected echo never pollutes the history.
func (d *Delegate) Generate(ctx context.Context, userInput, contextSummary string) (string, error) {
	d.mu.Lock()
	d.appendLocked(Turn{Role: "user", Content: userInput})
	recent := make([]Turn, len(d.turns))
	copy(recent, d.turns)
	d.mu.Unlock()

	reply, err := d.provider.Generate(ctx, GenerationRequest{
		UserInput:      userInput,
		ContextSummary: contextSummary,
		RecentTurns:    recent[:len(recent)-1],
	})
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", d.provider.Name(), err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("%s generate: empty reply", d.provider.Name())
	}
	for _, marker := range fallbackMarkers {
		if strings.Contains(reply, marker) {
			return "", ErrFallbackEcho
		}
	}

	d.mu.Lock()
	d.appendLocked(Turn{Role: "assistant", Content: reply})
	d.mu.Unlock()
	return reply, nil
}

// appendLocked trims the window oldest-first. Callers hold mu.
func (d *Delegate) appendLocked(t Turn) {
	d.turns = append(d.turns, t)
	if len(d.turns) > d.maxTurns {
		d.turns = d.turns[len(d.turns)-d.maxTurns:]
	}
}

// Turns returns a copy of the current window, oldest first.
func (d *Delegate) Turns() []Turn {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Turn, len(d.turns))
	copy(out, d.turns)
	return out
}
