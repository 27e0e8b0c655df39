package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"parley/internal/config"
	"parley/internal/db"
	"parley/internal/llm"
	"parley/internal/memory"
	"parley/internal/mqtt"
	"parley/internal/orchestrator"
	"parley/internal/responder"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var archive orchestrator.TranscriptArchive
	var turnStore *db.Store
	if cfg.DBDSN != "" {
		turnStore, err = db.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Error("connect db failed", "error", err)
			os.Exit(1)
		}
		defer turnStore.Close()
		if err := turnStore.Migrate(ctx); err != nil {
			logger.Error("migrate db failed", "error", err)
			os.Exit(1)
		}
		archive = turnStore
		logger.Info("transcript archive enabled")
	}

	var delegate orchestrator.GenerationDelegate
	if cfg.UseLLM {
		provider, err := llm.NewProvider(llm.Config{
			Provider:         strings.ToLower(cfg.LLMProvider),
			Model:            cfg.LLMModel,
			OpenAIBaseURL:    cfg.OpenAIBaseURL,
			OpenAIAPIKey:     cfg.OpenAIAPIKey,
			AnthropicBaseURL: cfg.AnthropicBaseURL,
			AnthropicAPIKey:  cfg.AnthropicAPIKey,
			OllamaBaseURL:    cfg.OllamaBaseURL,
			Timeout:          cfg.LLMTimeout,
		})
		if err != nil {
			logger.Error("init llm provider failed", "error", err)
			os.Exit(1)
		}
		delegate = llm.NewDelegate(provider, cfg.DelegateHistoryLimit)
		logger.Info("generation delegate enabled", "provider", cfg.LLMProvider)
	}

	rsp := responder.New()
	if err := rsp.Validate(); err != nil {
		logger.Error("responder validation failed", "error", err)
		os.Exit(1)
	}

	store := memory.NewStore(cfg.ConversationLogCap)

	orch := orchestrator.New(orchestrator.Config{
		UseDelegate:           cfg.UseLLM,
		ComplexQueryMinWords:  cfg.ComplexQueryMinWords,
		AdvancedQueryMinWords: cfg.AdvancedQueryMinWords,
		PositiveThreshold:     cfg.PositiveThreshold,
		NegativeThreshold:     cfg.NegativeThreshold,
	}, store, rsp, delegate, archive, logger)

	if cfg.MQTTBrokerURL != "" {
		hub := mqtt.NewHub(mqtt.HubConfig{
			BrokerURL:   cfg.MQTTBrokerURL,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.MQTTTopicPrefix,
		}, orch, logger)
		if err := hub.Start(ctx); err != nil {
			logger.Error("start mqtt hub failed", "error", err)
			os.Exit(1)
		}
		logger.Info("mqtt hub started", "broker", cfg.MQTTBrokerURL)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/v1/respond", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Text   string `json:"text"`
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		if strings.TrimSpace(in.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "text is required"})
			return
		}
		if in.UserID == "" {
			in.UserID = "default"
		}
		writeJSON(w, http.StatusOK, orch.Respond(req.Context(), in.Text, in.UserID))
	})

	r.Get("/v1/users/{userID}/summary", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, orch.Summary(chi.URLParam(req, "userID")))
	})

	r.Get("/v1/users/{userID}/transcript", func(w http.ResponseWriter, req *http.Request) {
		if turnStore == nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "transcript archive is not configured"})
			return
		}
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		turns, err := turnStore.RecentTurns(req.Context(), chi.URLParam(req, "userID"), limit)
		if err != nil {
			logger.Error("load transcript failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"turns": turns})
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("parley server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
