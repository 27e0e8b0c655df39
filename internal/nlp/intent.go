package nlp

import (
	"strings"

	"parley/internal/domain"
)

// Scoring weights. A pattern hit earns the base score plus a per-match bonus;
// selected intent groups carry fixed extras on top.
const (
	baseScore       = 10.0
	matchCountBonus = 5.0
	functionalBonus = 20.0
	advancedBonus   = 25.0
	unclearBonus    = 30.0
)

// functionalIntents are high-value task intents boosted over chatty ones so
// that "play some music at noon" lands on the actionable label.
var functionalIntents = map[domain.Intent]bool{
	domain.IntentCalculation:  true,
	domain.IntentWeather:      true,
	domain.IntentNews:         true,
	domain.IntentTime:         true,
	domain.IntentJoke:         true,
	domain.IntentMusicControl: true,
	domain.IntentCalendar:     true,
	domain.IntentNotes:        true,
	domain.IntentTasks:        true,
}

// Classifier assigns exactly one intent label per utterance via scored
// first-match pattern evaluation. It is stateless and safe for concurrent use.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores every intent in library order and returns the best label
// with its score. Per intent only the first matching pattern counts. A
// strictly-greater comparison keeps the earlier intent on ties, so library
// order decides tie-breaks. When nothing matches, the universal fallback
// general is returned with score zero; empty input is unclear by definition.
func (c *Classifier) Classify(text string) (domain.Intent, float64) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return domain.IntentUnclear, 0
	}

	best := domain.IntentGeneral
	bestScore := 0.0
	for _, ip := range intentLibrary {
		score := 0.0
		for _, re := range ip.patterns {
			matches := re.FindAllString(t, -1)
			if len(matches) == 0 {
				continue
			}
			score = baseScore + float64(len(matches))*matchCountBonus
			switch {
			case functionalIntents[ip.intent]:
				score += functionalBonus
			case ip.intent == domain.IntentAdvancedQuestion:
				score += advancedBonus
			case ip.intent == domain.IntentUnclear:
				score += unclearBonus
			}
			break
		}
		if score > bestScore {
			bestScore = score
			best = ip.intent
		}
	}
	return best, bestScore
}
