// Package memory keeps conversational state: one context record per user and
// a shared rolling log of the most recent turns across all users.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"parley/internal/domain"
)

const defaultLogCap = 50

// topicIntents are the intents that establish a conversation topic. Any other
// intent leaves the stored topic untouched, so topical follow-ups still know
// what the user was on about.
var topicIntents = map[domain.Intent]bool{
	domain.IntentWeather: true,
	domain.IntentTime:    true,
	domain.IntentMusic:   true,
	domain.IntentNews:    true,
	domain.IntentJoke:    true,
}

// Store is an in-memory context store safe for concurrent use. Per-user
// records are kept for the lifetime of the process; only the shared log is
// bounded.
type Store struct {
	mu     sync.Mutex
	users  map[string]*domain.UserContext
	log    []domain.LogEntry
	logCap int
}

func NewStore(logCap int) *Store {
	if logCap <= 0 {
		logCap = defaultLogCap
	}
	return &Store{
		users:  make(map[string]*domain.UserContext),
		logCap: logCap,
	}
}

// Update records a classified user utterance: the user's context is
// overwritten with the latest intent and entities, the topic is replaced only
// when the intent is topic-bearing, and the utterance is appended to the
// shared log.
func (s *Store) Update(userID, text string, intent domain.Intent, entities domain.EntityMap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uc := s.users[userID]
	if uc == nil {
		uc = &domain.UserContext{}
		s.users[userID] = uc
	}
	uc.LastIntent = intent
	uc.LastEntities = entities.Clone()
	uc.LastInteraction = time.Now()
	if topicIntents[intent] {
		uc.Topic = intent
	}

	s.appendLocked(domain.LogEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      domain.RoleUser,
		Text:      text,
		Intent:    intent,
		Entities:  entities.Clone(),
		Timestamp: time.Now(),
	})
}

// AppendReply adds the engine's own reply to the shared log so transcripts
// interleave both sides of the conversation.
func (s *Store) AppendReply(userID, reply string, intent domain.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendLocked(domain.LogEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      domain.RoleAssistant,
		Text:      reply,
		Intent:    intent,
		Timestamp: time.Now(),
	})
}

// appendLocked enforces the log cap, dropping oldest first. Callers hold mu.
func (s *Store) appendLocked(e domain.LogEntry) {
	s.log = append(s.log, e)
	if len(s.log) > s.logCap {
		s.log = s.log[len(s.log)-s.logCap:]
	}
}

// Snapshot returns a copy of the user's context, reporting whether the user
// has been seen before.
func (s *Store) Snapshot(userID string) (domain.UserContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uc := s.users[userID]
	if uc == nil {
		return domain.UserContext{}, false
	}
	out := *uc
	out.LastEntities = uc.LastEntities.Clone()
	return out, true
}

// RecentUtterances returns the last n user-side texts from the shared log,
// oldest first. Assistant replies are skipped.
func (s *Store) RecentUtterances(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for i := len(s.log) - 1; i >= 0 && len(out) < n; i-- {
		if s.log[i].Role == domain.RoleUser {
			out = append(out, s.log[i].Text)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Log returns a copy of the shared conversation log, oldest first.
func (s *Store) Log() []domain.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LogEntry, len(s.log))
	copy(out, s.log)
	return out
}

// Summary aggregates what the shared log still holds for one user. Counts
// only cover entries inside the rolling window, so long-gone turns age out of
// the summary together with the log.
func (s *Store) Summary(userID string) domain.ConversationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.Intent]int)
	topics := make(map[domain.Intent]bool)
	var sum domain.ConversationSummary
	for _, e := range s.log {
		if e.UserID != userID || e.Role != domain.RoleUser {
			continue
		}
		sum.TotalInteractions++
		counts[e.Intent]++
		if topicIntents[e.Intent] {
			topics[e.Intent] = true
		}
	}

	for intent, n := range counts {
		sum.TopIntents = append(sum.TopIntents, domain.IntentCount{Intent: intent, Count: n})
	}
	sort.Slice(sum.TopIntents, func(i, j int) bool {
		if sum.TopIntents[i].Count != sum.TopIntents[j].Count {
			return sum.TopIntents[i].Count > sum.TopIntents[j].Count
		}
		return sum.TopIntents[i].Intent < sum.TopIntents[j].Intent
	})
	if len(sum.TopIntents) > 5 {
		sum.TopIntents = sum.TopIntents[:5]
	}

	for topic := range topics {
		sum.CommonTopics = append(sum.CommonTopics, topic)
	}
	sort.Slice(sum.CommonTopics, func(i, j int) bool {
		return sum.CommonTopics[i] < sum.CommonTopics[j]
	})

	if uc := s.users[userID]; uc != nil {
		sum.LastInteraction = uc.LastInteraction
	}
	return sum
}
