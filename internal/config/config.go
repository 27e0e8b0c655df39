package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string
	DBDSN    string

	MQTTBrokerURL   string
	MQTTClientID    string
	MQTTUsername    string
	MQTTPassword    string
	MQTTTopicPrefix string

	UseLLM           bool
	LLMProvider      string
	LLMModel         string
	OpenAIBaseURL    string
	OpenAIAPIKey     string
	AnthropicBaseURL string
	AnthropicAPIKey  string
	OllamaBaseURL    string
	LLMTimeout       time.Duration

	ComplexQueryMinWords  int
	AdvancedQueryMinWords int
	PositiveThreshold     float64
	NegativeThreshold     float64
	ConversationLogCap    int
	DelegateHistoryLimit  int
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr: getenvDefault("PARLEY_HTTP_ADDR", ":9020"),
		DBDSN:    os.Getenv("DB_DSN"),

		MQTTBrokerURL:   os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:    getenvDefault("PARLEY_MQTT_CLIENT_ID", "parley-server"),
		MQTTUsername:    os.Getenv("MQTT_USERNAME"),
		MQTTPassword:    os.Getenv("MQTT_PASSWORD"),
		MQTTTopicPrefix: getenvDefault("MQTT_TOPIC_PREFIX", "parley"),

		UseLLM:           getenvBoolDefault("USE_LLM", false),
		LLMProvider:      getenvDefault("LLM_PROVIDER", "openai"),
		LLMModel:         os.Getenv("LLM_MODEL"),
		OpenAIBaseURL:    getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicBaseURL: getenvDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		OllamaBaseURL:    getenvDefault("OLLAMA_BASE_URL", "http://localhost:11434"),
		LLMTimeout:       time.Duration(getenvIntDefault("LLM_TIMEOUT_SECONDS", 30)) * time.Second,

		ComplexQueryMinWords:  getenvIntDefault("COMPLEX_QUERY_MIN_WORDS", 5),
		AdvancedQueryMinWords: getenvIntDefault("ADVANCED_QUERY_MIN_WORDS", 15),
		PositiveThreshold:     getenvFloatDefault("SENTIMENT_POSITIVE_THRESHOLD", 0.3),
		NegativeThreshold:     getenvFloatDefault("SENTIMENT_NEGATIVE_THRESHOLD", 0.3),
		ConversationLogCap:    getenvIntDefault("CONVERSATION_LOG_CAP", 50),
		DelegateHistoryLimit:  getenvIntDefault("DELEGATE_HISTORY_LIMIT", 10),
	}

	if cfg.UseLLM {
		switch cfg.LLMProvider {
		case "openai":
			if cfg.OpenAIAPIKey == "" {
				return Config{}, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
			}
		case "claude":
			if cfg.AnthropicAPIKey == "" {
				return Config{}, fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=claude")
			}
		case "ollama":
			// no credentials needed
		default:
			return Config{}, fmt.Errorf("unsupported LLM_PROVIDER: %s", cfg.LLMProvider)
		}
	}

	return cfg, nil
}

func getenvDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return val
	}
	return n
}

func getenvFloatDefault(key string, val float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return val
	}
	return f
}

func getenvBoolDefault(key string, val bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return val
}
