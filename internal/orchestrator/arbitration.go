package orchestrator

import (
	"strings"

	"parley/internal/domain"
)

// advancedKeywords mark questions worth handing to the generation backend.
// Matched as substrings of the lower-cased utterance.
var advancedKeywords = []string{
	"explain", "how does", "why", "what causes", "describe", "analyze",
	"compare", "difference between", "advantages", "disadvantages",
	"benefits", "risks", "impact", "effect", "process", "mechanism",
	"theory", "concept", "principle", "method", "technique", "strategy",
	"solution", "problem", "challenge", "opportunity", "trend", "future",
	"history", "evolution", "development", "innovation", "technology",
	"science", "research", "study", "experiment", "discovery",
	"understand", "learn about", "tell me about", "what is", "how to",
	"guide", "tutorial", "help me", "assist with", "teach me",
	"philosophy", "psychology", "economics", "politics", "culture",
	"art", "literature", "music", "film", "design", "architecture",
	"medicine", "health", "nutrition", "fitness", "wellness",
	"business", "finance", "marketing", "entrepreneurship", "management",
	"education", "learning", "teaching", "academic", "scholarly",
	"creative", "imaginative", "story", "narrative", "fiction",
	"opinion", "perspective", "viewpoint", "thoughts", "ideas",
}

var conversationalWords = []string{
	"think", "feel", "believe", "opinion", "perspective", "experience",
	"interesting", "fascinating", "amazing", "wonderful", "terrible",
	"love", "hate", "like", "dislike", "prefer", "enjoy",
}

var creativeWords = []string{
	"imagine", "create", "write", "story", "poem", "song", "art",
	"design", "invent", "dream", "fantasy", "creative", "original",
}

// conversationalIntents route to the delegate regardless of wording.
var conversationalIntents = map[domain.Intent]bool{
	domain.IntentConversation: true,
	domain.IntentPersonal:     true,
	domain.IntentGeneral:      true,
	domain.IntentSearch:       true,
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// isAdvanced reports whether the utterance deserves generation: it carries an
// advanced keyword, is structurally complex, reads conversational or
// creative, or is a sophisticated utterance the classifier could only call
// general.
func (s *Service) isAdvanced(text string, intent domain.Intent) bool {
	hasKeywords := containsAny(text, advancedKeywords)
	complex := len(strings.Fields(text)) > s.cfg.AdvancedQueryMinWords ||
		strings.Count(text, ",") > 1 ||
		strings.Count(text, "?") > 1
	sophisticatedGeneral := intent == domain.IntentGeneral && (hasKeywords || complex)

	return hasKeywords || complex || sophisticatedGeneral ||
		containsAny(text, conversationalWords) ||
		containsAny(text, creativeWords)
}

func (s *Service) isComplexQuery(text string) bool {
	return len(strings.Fields(text)) > s.cfg.ComplexQueryMinWords
}

func (s *Service) isConversational(intent domain.Intent) bool {
	return conversationalIntents[intent]
}
