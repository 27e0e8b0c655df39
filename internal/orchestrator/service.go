// Package orchestrator runs the full turn pipeline: classify, extract, score
// sentiment, update memory, then arbitrate between the generation delegate
// and the deterministic responder.
package orchestrator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"parley/internal/domain"
	"parley/internal/llm"
	"parley/internal/memory"
	"parley/internal/nlp"
	"parley/internal/responder"
)

// GenerationDelegate produces a free-form reply from an external backend.
type GenerationDelegate interface {
	Generate(ctx context.Context, userInput, contextSummary string) (string, error)
}

// TranscriptArchive persists completed turns. Optional; a nil archive means
// turns are kept in memory only.
type TranscriptArchive interface {
	SaveTurn(ctx context.Context, rec domain.TurnRecord) error
}

type Config struct {
	UseDelegate           bool
	ComplexQueryMinWords  int
	AdvancedQueryMinWords int

	// Sentiment thresholds are exclusive bounds: a component must exceed
	// them to trigger framing. Zero is a valid setting (frame on any
	// non-zero component); negative values select the defaults.
	PositiveThreshold float64
	NegativeThreshold float64
}

func (c *Config) applyDefaults() {
	if c.ComplexQueryMinWords <= 0 {
		c.ComplexQueryMinWords = 5
	}
	if c.AdvancedQueryMinWords <= 0 {
		c.AdvancedQueryMinWords = 15
	}
	if c.PositiveThreshold < 0 {
		c.PositiveThreshold = 0.3
	}
	if c.NegativeThreshold < 0 {
		c.NegativeThreshold = 0.3
	}
}

type Service struct {
	cfg        Config
	classifier *nlp.Classifier
	store      *memory.Store
	responder  *responder.Responder
	delegate   GenerationDelegate
	archive    TranscriptArchive
	logger     *slog.Logger
}

func New(cfg Config, store *memory.Store, r *responder.Responder, delegate GenerationDelegate, archive TranscriptArchive, logger *slog.Logger) *Service {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:        cfg,
		classifier: nlp.NewClassifier(),
		store:      store,
		responder:  r,
		delegate:   delegate,
		archive:    archive,
		logger:     logger,
	}
}

// Respond dispatches one utterance and always produces a usable reply. Any
// delegate failure, echo reply included, falls through to the deterministic
// path, so the method itself never errors.
func (s *Service) Respond(ctx context.Context, text, userID string) domain.Result {
	normalized := strings.ToLower(strings.TrimSpace(text))

	intent, score := s.classifier.Classify(normalized)
	entities := nlp.Extract(normalized)
	sentiment := nlp.AnalyzeSentiment(normalized)

	s.store.Update(userID, normalized, intent, entities)

	reply, delegated := s.tryDelegate(ctx, normalized, intent, userID)
	if !delegated {
		reply = s.responder.Reply(intent, entities)
		reply = s.frameSentiment(reply, sentiment)
		reply = s.frameTopic(reply, intent, userID)
	}

	s.store.AppendReply(userID, reply, intent)

	result := domain.Result{
		Reply:      reply,
		Intent:     intent,
		Entities:   entities,
		Sentiment:  sentiment,
		Confidence: score,
	}
	s.archiveTurn(ctx, normalized, userID, result)
	return result
}

// tryDelegate asks the generation backend for a reply when the utterance
// qualifies. Exactly one attempt; any failure logs and yields to the
// deterministic path. Delegated replies are returned verbatim, without
// sentiment or topic framing.
func (s *Service) tryDelegate(ctx context.Context, text string, intent domain.Intent, userID string) (string, bool) {
	if !s.cfg.UseDelegate || s.delegate == nil || text == "" {
		return "", false
	}
	if !s.isAdvanced(text, intent) && !s.isComplexQuery(text) && !s.isConversational(intent) {
		return "", false
	}

	summary := s.contextSummary(userID)
	reply, err := s.delegate.Generate(ctx, text, summary)
	if err != nil {
		s.logger.Warn("delegate generation failed, using deterministic reply",
			"error", err, "intent", intent, "user_id", userID)
		return "", false
	}
	return reply, true
}

// contextSummary renders the user's context the way the delegate expects:
// pipe-separated topic, previous intent, and the last few utterances.
func (s *Service) contextSummary(userID string) string {
	var parts []string
	if uc, ok := s.store.Snapshot(userID); ok {
		if uc.Topic != "" {
			parts = append(parts, "Current topic: "+string(uc.Topic))
		}
		if uc.LastIntent != "" {
			parts = append(parts, "Previous intent: "+string(uc.LastIntent))
		}
	}
	if recent := s.store.RecentUtterances(3); len(recent) > 0 {
		parts = append(parts, "Recent conversation: "+strings.Join(recent, " | "))
	}
	return strings.Join(parts, " | ")
}

func (s *Service) frameSentiment(reply string, sentiment domain.Sentiment) string {
	switch {
	case sentiment.Positive > s.cfg.PositiveThreshold:
		return "Great! " + reply
	case sentiment.Negative > s.cfg.NegativeThreshold:
		return "I understand. " + reply
	default:
		return reply
	}
}

// frameTopic prefixes the reply when the conversation stays on the user's
// established topic.
func (s *Service) frameTopic(reply string, intent domain.Intent, userID string) string {
	uc, ok := s.store.Snapshot(userID)
	if !ok || uc.Topic == "" || uc.Topic != intent {
		return reply
	}
	return "Continuing with " + string(uc.Topic) + ": " + reply
}

func (s *Service) archiveTurn(ctx context.Context, text, userID string, result domain.Result) {
	if s.archive == nil {
		return
	}
	rec := domain.TurnRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		Text:       text,
		Intent:     result.Intent,
		Entities:   result.Entities,
		Sentiment:  result.Sentiment,
		Reply:      result.Reply,
		Confidence: result.Confidence,
		CreatedAt:  time.Now(),
	}
	if err := s.archive.SaveTurn(ctx, rec); err != nil {
		s.logger.Warn("transcript archive write failed", "error", err, "user_id", userID)
	}
}

// Summary exposes the per-user conversation summary.
func (s *Service) Summary(userID string) domain.ConversationSummary {
	return s.store.Summary(userID)
}

var _ GenerationDelegate = (*llm.Delegate)(nil)
