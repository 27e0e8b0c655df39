package domain

import "time"

// Intent is the coarse-grained purpose label assigned to a single utterance.
// The set is closed: every turn is labelled with exactly one member.
type Intent string

const (
	IntentGreeting           Intent = "greeting"
	IntentFarewell           Intent = "farewell"
	IntentWeather            Intent = "weather"
	IntentTime               Intent = "time"
	IntentHelp               Intent = "help"
	IntentMusic              Intent = "music"
	IntentNews               Intent = "news"
	IntentJoke               Intent = "joke"
	IntentSearch             Intent = "search"
	IntentAdvancedQuestion   Intent = "advanced_question"
	IntentReminder           Intent = "reminder"
	IntentCalculation        Intent = "calculation"
	IntentConversation       Intent = "conversation"
	IntentPersonal           Intent = "personal"
	IntentMusicControl       Intent = "music_control"
	IntentCalendar           Intent = "calendar"
	IntentWeatherDetailed    Intent = "weather_detailed"
	IntentNewsCategory       Intent = "news_category"
	IntentCalculatorAdvanced Intent = "calculator_advanced"
	IntentNotes              Intent = "notes"
	IntentTasks              Intent = "tasks"
	IntentWebSearch          Intent = "web_search"
	IntentUnclear            Intent = "unclear"
	IntentGeneral            Intent = "general"
)

var allIntents = []Intent{
	IntentGreeting, IntentFarewell, IntentWeather, IntentTime, IntentHelp,
	IntentMusic, IntentNews, IntentJoke, IntentSearch, IntentAdvancedQuestion,
	IntentReminder, IntentCalculation, IntentConversation, IntentPersonal,
	IntentMusicControl, IntentCalendar, IntentWeatherDetailed,
	IntentNewsCategory, IntentCalculatorAdvanced, IntentNotes, IntentTasks,
	IntentWebSearch, IntentUnclear, IntentGeneral,
}

// Intents returns the closed label set in a fixed order.
func Intents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

func (i Intent) Known() bool {
	for _, candidate := range allIntents {
		if i == candidate {
			return true
		}
	}
	return false
}

// Entity type labels.
const (
	EntityLocation = "location"
	EntityTime     = "time_entity"
	EntityNumber   = "number"
	EntityPerson   = "person"
	EntityTopic    = "topic"
)

var entityTypes = []string{EntityLocation, EntityTime, EntityNumber, EntityPerson, EntityTopic}

// EntityTypes returns the known entity type labels in a fixed order.
func EntityTypes() []string {
	out := make([]string, len(entityTypes))
	copy(out, entityTypes)
	return out
}

// EntityMap maps an entity type label to the substrings extracted for it, in
// order of pattern application. Every known type is always present; callers
// never need to check for key existence.
type EntityMap map[string][]string

// NewEntityMap returns a map with every known entity type keyed to an empty
// (non-nil) list.
func NewEntityMap() EntityMap {
	m := make(EntityMap, len(entityTypes))
	for _, t := range entityTypes {
		m[t] = []string{}
	}
	return m
}

// HasAny reports whether at least one entity of any type was extracted.
func (m EntityMap) HasAny() bool {
	for _, values := range m {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (m EntityMap) Clone() EntityMap {
	out := make(EntityMap, len(m))
	for k, v := range m {
		out[k] = append([]string{}, v...)
	}
	return out
}

// Sentiment is a three-way proportion over the utterance's words. The
// components are non-negative and sum to 1.
type Sentiment struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Result is the full outcome of one dispatched turn.
type Result struct {
	Reply      string    `json:"reply"`
	Intent     Intent    `json:"intent"`
	Entities   EntityMap `json:"entities"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

// Conversation log roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LogEntry is one turn in the shared, capped conversation log.
type LogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Intent    Intent    `json:"intent"`
	Entities  EntityMap `json:"entities"`
	Timestamp time.Time `json:"timestamp"`
}

// UserContext is the per-user conversational state. Topic stays empty until a
// topic-bearing intent is classified for the user.
type UserContext struct {
	LastIntent      Intent    `json:"last_intent"`
	LastEntities    EntityMap `json:"last_entities"`
	Topic           Intent    `json:"topic,omitempty"`
	LastInteraction time.Time `json:"last_interaction"`
}

// IntentCount pairs an intent with its occurrence count.
type IntentCount struct {
	Intent Intent `json:"intent"`
	Count  int    `json:"count"`
}

// ConversationSummary aggregates a user's history from the shared log.
type ConversationSummary struct {
	TotalInteractions int           `json:"total_interactions"`
	TopIntents        []IntentCount `json:"top_intents"`
	CommonTopics      []Intent      `json:"common_topics"`
	LastInteraction   time.Time     `json:"last_interaction"`
}

// TurnRecord is the durable form of one completed turn, written to the
// optional transcript archive.
type TurnRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	Intent     Intent    `json:"intent"`
	Entities   EntityMap `json:"entities"`
	Sentiment  Sentiment `json:"sentiment"`
	Reply      string    `json:"reply"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
