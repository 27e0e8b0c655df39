package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9020" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.UseLLM {
		t.Fatal("UseLLM should default to false")
	}
	if cfg.ComplexQueryMinWords != 5 || cfg.AdvancedQueryMinWords != 15 {
		t.Fatalf("query thresholds = %d/%d", cfg.ComplexQueryMinWords, cfg.AdvancedQueryMinWords)
	}
	if cfg.ConversationLogCap != 50 {
		t.Fatalf("ConversationLogCap = %d", cfg.ConversationLogCap)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("USE_LLM", "true")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when USE_LLM=true without an API key")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseLLM || cfg.LLMProvider != "openai" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("USE_LLM", "true")
	t.Setenv("LLM_PROVIDER", "parrot")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadZeroSentimentThreshold(t *testing.T) {
	t.Setenv("SENTIMENT_POSITIVE_THRESHOLD", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PositiveThreshold != 0 {
		t.Fatalf("PositiveThreshold = %v, want explicit 0 to be kept", cfg.PositiveThreshold)
	}
	if cfg.NegativeThreshold != 0.3 {
		t.Fatalf("NegativeThreshold = %v, want default", cfg.NegativeThreshold)
	}
}

func TestGetenvBoolDefault(t *testing.T) {
	t.Setenv("PARLEY_TEST_BOOL", "yes")
	if !getenvBoolDefault("PARLEY_TEST_BOOL", false) {
		t.Fatal("yes should parse as true")
	}
	t.Setenv("PARLEY_TEST_BOOL", "off")
	if getenvBoolDefault("PARLEY_TEST_BOOL", true) {
		t.Fatal("off should parse as false")
	}
	t.Setenv("PARLEY_TEST_BOOL", "maybe")
	if !getenvBoolDefault("PARLEY_TEST_BOOL", true) {
		t.Fatal("unparseable value should keep the default")
	}
}
