package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/carepal/backend/internal/service/assistant"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = readTimeout * 9 / 10
	writeTimeout = 10 * time.Second
)

// Handler WebSocket聊天处理器
type Handler struct {
	assistant *assistant.Service
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// New 创建WebSocket处理器
func New(assistantSvc *assistant.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		assistant: assistantSvc,
		logger:    logger.With("component", "websocket"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// TextMessage 文本消息
type TextMessage struct {
	Text string `json:"text"`
}

// ConfigMessage 配置消息
type ConfigMessage struct {
	PersonaID  string `json:"personaId"`
	StreamMode *bool  `json:"streamMode,omitempty"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type connectionState struct {
	sessionID  string
	personaID  string
	streamMode bool
}

func newConnectionState(sessionID, personaID string) *connectionState {
	return &connectionState{
		sessionID:  sessionID,
		personaID:  personaID,
		streamMode: true,
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.assistant.Session(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	state := newConnectionState(sessionID, session.PersonaID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("connection opened", "session", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go h.pingLoop(ctx, conn)

	h.sendInfo(conn, sessionID, map[string]any{
		"type":    "connected",
		"persona": state.personaID,
		"mode":    h.assistant.Mode(),
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("read error", "session", sessionID, "error", err)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))

		if msg.SessionID != "" && msg.SessionID != sessionID {
			h.sendError(conn, sessionID, "session mismatch")
			continue
		}

		h.handleMessage(ctx, conn, state, &msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, conn *websocket.Conn, state *connectionState, msg *inboundMessage) {
	switch msg.Type {
	case "text":
		h.handleTextMessage(ctx, conn, state, msg.Data)
	case "config":
		h.handleConfigMessage(ctx, conn, state, msg.Data)
	case "reset":
		if _, err := h.assistant.Reset(ctx, state.sessionID); err != nil {
			h.sendError(conn, state.sessionID, err.Error())
			return
		}
		h.sendInfo(conn, state.sessionID, map[string]any{"type": "reset"})
	default:
		h.sendError(conn, state.sessionID, "unsupported message type: "+msg.Type)
	}
}

func (h *Handler) handleTextMessage(ctx context.Context, conn *websocket.Conn, state *connectionState, raw json.RawMessage) {
	var text TextMessage
	if err := json.Unmarshal(raw, &text); err != nil {
		h.sendError(conn, state.sessionID, "invalid text payload")
		return
	}

	h.sendInfo(conn, state.sessionID, map[string]any{
		"type": "user",
		"text": text.Text,
	})

	var (
		turn assistant.Turn
		err  error
	)
	if state.streamMode {
		turn, err = h.assistant.StreamReply(ctx, state.sessionID, text.Text, func(delta string) error {
			return h.writeJSON(conn, outgoingMessage{
				Type:      "result",
				SessionID: state.sessionID,
				Data:      map[string]any{"type": "delta", "text": delta},
				Timestamp: time.Now().UnixMilli(),
			})
		})
	} else {
		turn, err = h.assistant.Reply(ctx, state.sessionID, text.Text)
	}
	if err != nil {
		h.sendError(conn, state.sessionID, err.Error())
		return
	}

	h.sendInfo(conn, state.sessionID, map[string]any{
		"type":    "reply",
		"id":      turn.Reply.ID,
		"text":    turn.Reply.Content,
		"route":   turn.Reply.Route,
		"source":  turn.Reply.Source,
		"isFinal": true,
	})
}

func (h *Handler) handleConfigMessage(ctx context.Context, conn *websocket.Conn, state *connectionState, raw json.RawMessage) {
	var cfg ConfigMessage
	if err := json.Unmarshal(raw, &cfg); err != nil {
		h.sendError(conn, state.sessionID, "invalid config payload")
		return
	}

	if err := h.applyConfig(ctx, state, cfg); err != nil {
		h.sendError(conn, state.sessionID, err.Error())
		return
	}

	h.sendInfo(conn, state.sessionID, map[string]any{
		"type":       "config",
		"persona":    state.personaID,
		"streamMode": state.streamMode,
	})
}

func (h *Handler) applyConfig(ctx context.Context, state *connectionState, cfg ConfigMessage) error {
	if cfg.PersonaID != "" && cfg.PersonaID != state.personaID {
		session, err := h.assistant.SwitchPersona(ctx, state.sessionID, cfg.PersonaID)
		if err != nil {
			return err
		}
		state.personaID = session.PersonaID
	}
	if cfg.StreamMode != nil {
		state.streamMode = *cfg.StreamMode
	}
	return nil
}

func (h *Handler) sendInfo(conn *websocket.Conn, sessionID string, payload map[string]any) {
	h.send(conn, outgoingMessage{
		Type:      "result",
		SessionID: sessionID,
		Data:      payload,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) sendError(conn *websocket.Conn, sessionID, message string) {
	h.send(conn, outgoingMessage{
		Type:      "error",
		SessionID: sessionID,
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	if err := h.writeJSON(conn, msg); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		h.logger.Warn("write failed", "session", msg.SessionID, "error", err)
	}
}

func (h *Handler) writeJSON(conn *websocket.Conn, msg outgoingMessage) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(msg)
}

// pingLoop keeps idle connections alive. WriteControl may run concurrently
// with the reader goroutine's writes.
func (h *Handler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
