package nlp

import (
	"testing"

	"parley/internal/domain"
)

func TestClassifyScenarios(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{name: "greeting", text: "hi there", want: domain.IntentGreeting},
		{name: "time question", text: "what time is it", want: domain.IntentTime},
		{name: "weather question", text: "what's the weather in london", want: domain.IntentWeather},
		{name: "joke request", text: "tell me a joke", want: domain.IntentJoke},
		{name: "bare number", text: "25", want: domain.IntentUnclear},
		{name: "very short", text: "ok", want: domain.IntentUnclear},
		{name: "filler", text: "hmm", want: domain.IntentUnclear},
		{name: "empty", text: "", want: domain.IntentUnclear},
		{name: "whitespace only", text: "   ", want: domain.IntentUnclear},
		{name: "advanced question", text: "explain quantum computing to me please", want: domain.IntentAdvancedQuestion},
		{name: "no pattern matches", text: "purple elephants wander quietly", want: domain.IntentGeneral},
		{name: "mixed case", text: "HELLO there friend", want: domain.IntentGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := c.Classify(tt.text)
			if got != tt.want {
				t.Fatalf("Classify(%q) = %s (score %.1f), want %s", tt.text, got, score, tt.want)
			}
			if score < 0 {
				t.Fatalf("Classify(%q) score = %.1f, want >= 0", tt.text, score)
			}
		})
	}
}

func TestClassifyGeneralFallbackScoresZero(t *testing.T) {
	c := NewClassifier()
	intent, score := c.Classify("purple elephants wander quietly")
	if intent != domain.IntentGeneral || score != 0 {
		t.Fatalf("got (%s, %.1f), want (general, 0)", intent, score)
	}
}

func TestClassifyUnclearOutscoresFunctional(t *testing.T) {
	// A bare number must land on unclear, not be swallowed by general or a
	// partial functional match.
	c := NewClassifier()
	intent, score := c.Classify("25")
	if intent != domain.IntentUnclear {
		t.Fatalf("intent = %s, want unclear", intent)
	}
	if score <= baseScore {
		t.Fatalf("score = %.1f, want boosted above base", score)
	}
}

func TestClassifyAlwaysReturnsKnownIntent(t *testing.T) {
	c := NewClassifier()
	samples := []string{
		"", "hi", "what's the weather", "play some jazz", "remind me tomorrow",
		"?!?", "42 42", "tell me about blockchain and its history",
		"goodbye", "search for restaurants near me",
	}
	for _, s := range samples {
		intent, score := c.Classify(s)
		if !intent.Known() {
			t.Fatalf("Classify(%q) returned unknown intent %q", s, intent)
		}
		if score < 0 {
			t.Fatalf("Classify(%q) score = %.1f, want >= 0", s, score)
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := NewClassifier()
	for _, s := range []string{"hi there", "what time is it", "25", "explain ai"} {
		i1, s1 := c.Classify(s)
		i2, s2 := c.Classify(s)
		if i1 != i2 || s1 != s2 {
			t.Fatalf("Classify(%q) not stable: (%s,%.1f) then (%s,%.1f)", s, i1, s1, i2, s2)
		}
	}
}
