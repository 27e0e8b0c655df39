package nlp

import (
	"math"
	"testing"
)

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pos, neg float64
	}{
		{name: "positive", text: "i love this great day", pos: 0.4, neg: 0},
		{name: "negative", text: "this is bad and terrible", pos: 0, neg: 0.4},
		{name: "mixed", text: "good but also bad", pos: 0.25, neg: 0.25},
		{name: "neutral", text: "what time is it", pos: 0, neg: 0},
		{name: "uppercase", text: "GREAT stuff", pos: 0.5, neg: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSentiment(tt.text)
			if !approx(got.Positive, tt.pos) || !approx(got.Negative, tt.neg) {
				t.Fatalf("AnalyzeSentiment(%q) = %+v, want pos=%.2f neg=%.2f", tt.text, got, tt.pos, tt.neg)
			}
			sum := got.Positive + got.Negative + got.Neutral
			if !approx(sum, 1) {
				t.Fatalf("components sum to %.4f, want 1", sum)
			}
			if got.Positive < 0 || got.Negative < 0 || got.Neutral < 0 {
				t.Fatalf("negative component in %+v", got)
			}
		})
	}
}

func TestAnalyzeSentimentEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		got := AnalyzeSentiment(text)
		if got.Positive != 0 || got.Negative != 0 || got.Neutral != 1 {
			t.Fatalf("AnalyzeSentiment(%q) = %+v, want fully neutral", text, got)
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
