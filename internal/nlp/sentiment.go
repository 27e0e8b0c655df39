package nlp

import (
	"strings"

	"parley/internal/domain"
)

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"wonderful": true, "fantastic": true, "awesome": true, "love": true,
	"like": true, "happy": true, "joy": true, "pleased": true, "satisfied": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"hate": true, "dislike": true, "sad": true, "angry": true,
	"frustrated": true, "disappointed": true, "upset": true,
}

// AnalyzeSentiment computes the positive/negative/neutral word proportions of
// an utterance via plain lexicon membership, no stemming. The three components
// are non-negative and sum to 1; blank input is fully neutral. The neutral
// component is clamped at zero: the lexicons are disjoint so the clamp should
// never fire, but the formula is guarded rather than trusted.
func AnalyzeSentiment(text string) domain.Sentiment {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return domain.Sentiment{Neutral: 1}
	}

	var pos, neg int
	for _, w := range words {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}

	total := float64(len(words))
	s := domain.Sentiment{
		Positive: float64(pos) / total,
		Negative: float64(neg) / total,
	}
	s.Neutral = 1 - s.Positive - s.Negative
	if s.Neutral < 0 {
		s.Neutral = 0
	}
	return s
}
