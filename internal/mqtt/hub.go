// Package mqtt exposes the engine over a message broker: utterances arrive on
// a per-user topic and replies are published back on the matching reply topic.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"

	paho "github.com/eclipse/paho.mqtt.golang"

	"parley/internal/domain"
)

type HubConfig struct {
	BrokerURL   string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// Responder is the engine surface the hub needs.
type Responder interface {
	Respond(ctx context.Context, text, userID string) domain.Result
}

type Hub struct {
	cfg       HubConfig
	client    paho.Client
	responder Responder
	logger    *slog.Logger
}

type utteranceMessage struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

type replyMessage struct {
	RequestID string        `json:"request_id,omitempty"`
	Result    domain.Result `json:"result"`
}

func NewHub(cfg HubConfig, responder Responder, logger *slog.Logger) *Hub {
	return &Hub{cfg: cfg, responder: responder, logger: logger}
}

// parseUtterance accepts a JSON object, a bare JSON string, or plain text as
// the payload. Plain text and JSON strings carry no request id.
func parseUtterance(payload []byte) utteranceMessage {
	var in utteranceMessage
	if err := json.Unmarshal(payload, &in); err == nil {
		return in
	}
	var s string
	if err := json.Unmarshal(payload, &s); err == nil {
		return utteranceMessage{Text: s}
	}
	return utteranceMessage{Text: string(payload)}
}

func (h *Hub) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(h.cfg.BrokerURL).
		SetClientID(h.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	if h.cfg.Username != "" {
		opts.SetUsername(h.cfg.Username)
		opts.SetPassword(h.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		h.logger.Error("mqtt connection lost", "error", err)
	})

	h.client = paho.NewClient(opts)
	if token := h.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	if token := h.client.Subscribe(TopicUserUtterance(h.cfg.TopicPrefix), 1, h.handleUtterance); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	go func() {
		<-ctx.Done()
		h.client.Disconnect(100)
	}()

	return nil
}

func (h *Hub) handleUtterance(_ paho.Client, msg paho.Message) {
	userID, err := ParseUserID(msg.Topic(), h.cfg.TopicPrefix)
	if err != nil {
		h.logger.Warn("skip invalid utterance topic", "topic", msg.Topic(), "error", err)
		return
	}

	in := parseUtterance(msg.Payload())
	if in.Text == "" {
		h.logger.Warn("empty utterance payload", "user_id", userID)
		return
	}

	result := h.responder.Respond(context.Background(), in.Text, userID)

	payload, err := json.Marshal(replyMessage{RequestID: in.RequestID, Result: result})
	if err != nil {
		h.logger.Error("marshal reply failed", "user_id", userID, "error", err)
		return
	}
	if token := h.client.Publish(TopicReply(h.cfg.TopicPrefix, userID), 1, false, payload); token.Wait() && token.Error() != nil {
		h.logger.Error("publish reply failed", "user_id", userID, "error", token.Error())
	}
}
