package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/carepal/backend/internal/model/chat"
	"github.com/carepal/backend/internal/service/assistant"
	"github.com/carepal/backend/pkg/utils"
)

// ErrStreamingUnsupported is returned when the ResponseWriter cannot flush.
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// Handler streams assistant replies via Server-Sent Events
type Handler struct {
	assistant *assistant.Service
	logger    *slog.Logger
}

// New creates a new stream handler
func New(assistantSvc *assistant.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		assistant: assistantSvc,
		logger:    logger.With("component", "stream"),
	}
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event     string      `json:"event"`
	Content   string      `json:"content,omitempty"`
	SessionID string      `json:"sessionId,omitempty"`
	Route     string      `json:"route,omitempty"`
	Source    chat.Source `json:"source,omitempty"`
	Finished  bool        `json:"finished,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// HandleStreamRequest answers userMessage for a session as an SSE stream:
// start, delta for each piece of reply text, message with the stored reply,
// then end. Errors before the stream opens are returned without writing.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID string, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return ErrStreamingUnsupported
	}

	session, err := h.assistant.Session(ctx, sessionID)
	if err != nil {
		return err
	}

	utils.SetupSSEHeaders(w)

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "start",
		SessionID: sessionID,
		Content:   session.PersonaID,
	})

	turn, err := h.assistant.StreamReply(ctx, sessionID, userMessage, func(delta string) error {
		return utils.SendSSEChunk(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: sessionID,
			Content:   delta,
		})
	})
	if err != nil {
		h.logger.Warn("stream aborted", "session", sessionID, "error", err)
		h.sendSSEError(w, flusher, sessionID, err.Error())
		return nil
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   turn.Reply.Content,
		Route:     turn.Reply.Route,
		Source:    turn.Reply.Source,
	})

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	h.logger.Debug("stream completed", "session", sessionID, "route", turn.Reply.Route, "source", turn.Reply.Source)
	return nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	if err := utils.SendSSEChunk(w, flusher, response); err != nil {
		h.logger.Warn("failed to send sse event", "event", response.Event, "error", err)
	}
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, sessionID, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event:     "error",
		SessionID: sessionID,
		Error:     fmt.Sprintf("reply failed: %s", errorMsg),
	})
}
