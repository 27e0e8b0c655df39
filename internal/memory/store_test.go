package memory

import (
	"fmt"
	"reflect"
	"testing"

	"parley/internal/domain"
)

func TestUpdateCreatesContext(t *testing.T) {
	s := NewStore(0)

	if _, ok := s.Snapshot("alice"); ok {
		t.Fatal("unseen user should have no snapshot")
	}

	s.Update("alice", "what's the weather", domain.IntentWeather, domain.NewEntityMap())

	uc, ok := s.Snapshot("alice")
	if !ok {
		t.Fatal("expected snapshot after update")
	}
	if uc.LastIntent != domain.IntentWeather {
		t.Fatalf("LastIntent = %s, want weather", uc.LastIntent)
	}
	if uc.Topic != domain.IntentWeather {
		t.Fatalf("Topic = %s, want weather", uc.Topic)
	}
	if uc.LastInteraction.IsZero() {
		t.Fatal("LastInteraction not set")
	}
}

func TestTopicSurvivesNonTopicalIntent(t *testing.T) {
	s := NewStore(0)
	s.Update("alice", "what's the weather", domain.IntentWeather, domain.NewEntityMap())
	s.Update("alice", "hi again", domain.IntentGreeting, domain.NewEntityMap())

	uc, _ := s.Snapshot("alice")
	if uc.LastIntent != domain.IntentGreeting {
		t.Fatalf("LastIntent = %s, want greeting", uc.LastIntent)
	}
	if uc.Topic != domain.IntentWeather {
		t.Fatalf("Topic = %s, want weather to persist", uc.Topic)
	}
}

func TestLogRotation(t *testing.T) {
	s := NewStore(5)
	for i := 0; i < 8; i++ {
		s.Update("alice", fmt.Sprintf("msg %d", i), domain.IntentGeneral, domain.NewEntityMap())
	}

	log := s.Log()
	if len(log) != 5 {
		t.Fatalf("log length = %d, want 5", len(log))
	}
	if log[0].Text != "msg 3" || log[4].Text != "msg 7" {
		t.Fatalf("unexpected window: first %q last %q", log[0].Text, log[4].Text)
	}
}

func TestRecentUtterancesSkipsReplies(t *testing.T) {
	s := NewStore(0)
	s.Update("alice", "hello", domain.IntentGreeting, domain.NewEntityMap())
	s.AppendReply("alice", "Hello! How can I help?", domain.IntentGreeting)
	s.Update("alice", "what time is it", domain.IntentTime, domain.NewEntityMap())
	s.AppendReply("alice", "It is noon.", domain.IntentTime)
	s.Update("alice", "thanks", domain.IntentGeneral, domain.NewEntityMap())

	got := s.RecentUtterances(3)
	want := []string{"hello", "what time is it", "thanks"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RecentUtterances = %v, want %v", got, want)
	}

	if got := s.RecentUtterances(2); !reflect.DeepEqual(got, []string{"what time is it", "thanks"}) {
		t.Fatalf("RecentUtterances(2) = %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(0)
	entities := domain.NewEntityMap()
	entities[domain.EntityLocation] = append(entities[domain.EntityLocation], "london")
	s.Update("alice", "weather in london", domain.IntentWeather, entities)

	uc, _ := s.Snapshot("alice")
	uc.LastEntities[domain.EntityLocation][0] = "mutated"

	again, _ := s.Snapshot("alice")
	if again.LastEntities[domain.EntityLocation][0] != "london" {
		t.Fatal("snapshot shares state with the store")
	}
}

func TestSummary(t *testing.T) {
	s := NewStore(0)
	s.Update("alice", "what's the weather", domain.IntentWeather, domain.NewEntityMap())
	s.Update("alice", "weather again", domain.IntentWeather, domain.NewEntityMap())
	s.Update("alice", "tell me a joke", domain.IntentJoke, domain.NewEntityMap())
	s.AppendReply("alice", "some joke", domain.IntentJoke)
	s.Update("bob", "hi", domain.IntentGreeting, domain.NewEntityMap())

	sum := s.Summary("alice")
	if sum.TotalInteractions != 3 {
		t.Fatalf("TotalInteractions = %d, want 3", sum.TotalInteractions)
	}
	if len(sum.TopIntents) != 2 || sum.TopIntents[0].Intent != domain.IntentWeather || sum.TopIntents[0].Count != 2 {
		t.Fatalf("TopIntents = %v", sum.TopIntents)
	}
	want := []domain.Intent{domain.IntentJoke, domain.IntentWeather}
	if !reflect.DeepEqual(sum.CommonTopics, want) {
		t.Fatalf("CommonTopics = %v, want %v", sum.CommonTopics, want)
	}
	if sum.LastInteraction.IsZero() {
		t.Fatal("LastInteraction not set")
	}
}

func TestSummaryUnknownUser(t *testing.T) {
	s := NewStore(0)
	sum := s.Summary("ghost")
	if sum.TotalInteractions != 0 || len(sum.TopIntents) != 0 || len(sum.CommonTopics) != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}
