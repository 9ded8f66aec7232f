// Package transcript serves a read-only HTML view of a chat session.
package transcript

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/advice"
	"github.com/carepal/backend/internal/service/assistant"
	chatservice "github.com/carepal/backend/internal/service/chat"
)

// Handler renders session transcripts.
type Handler struct {
	assistant *assistant.Service
	personas  persona.Store
	tmpl      *template.Template
	logger    *slog.Logger
}

// New creates a transcript handler.
func New(assistantSvc *assistant.Service, personas persona.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		assistant: assistantSvc,
		personas:  personas,
		tmpl:      parseTemplate(),
		logger:    logger.With("component", "transcript"),
	}
}

// RegisterRoutes mounts the transcript page.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions/{sessionID}", h.handleTranscript)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.assistant.Session(r.Context(), sessionID)
	if err != nil {
		h.renderError(w, err)
		return
	}
	messages, err := h.assistant.Transcript(r.Context(), sessionID)
	if err != nil {
		h.renderError(w, err)
		return
	}

	p, ok := h.personas.FindByID(session.PersonaID)
	if !ok {
		p = h.personas.Default()
	}

	data := PageData{
		Title:       "Care Pal conversation",
		Disclaimer:  advice.Disclaimer,
		PersonaName: p.Name,
		Session:     session,
		Messages:    make([]MessageView, 0, len(messages)),
	}
	for _, m := range messages {
		data.Messages = append(data.Messages, MessageView{Message: m, HTML: renderMarkdown(m.Content)})
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		h.logger.Error("template execution failed", "session", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	if errors.Is(err, chatservice.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	h.logger.Error("load transcript failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
