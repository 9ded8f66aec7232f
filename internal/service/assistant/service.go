// Package assistant drives one Care Pal turn: name capture, triage, the
// rule-based or model answer, and transcript bookkeeping.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/moby/locker"

	"github.com/carepal/backend/internal/analysis/triage"
	"github.com/carepal/backend/internal/model/chat"
	"github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/advice"
	"github.com/carepal/backend/internal/service/ai"
)

// Modes reported by Mode.
const (
	ModeAI      = "ai"
	ModeOffline = "offline"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrPersonaNotFound = errors.New("persona not found")
)

// SessionStore is the session state the assistant reads and writes.
type SessionStore interface {
	CreateSession(ctx context.Context, personaID string) (chat.Session, error)
	GetSession(ctx context.Context, sessionID string) (chat.Session, error)
	SaveMessage(ctx context.Context, message chat.Message) (chat.Message, error)
	LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error)
	SetUserName(ctx context.Context, sessionID, name string) (chat.Session, error)
	SetPersona(ctx context.Context, sessionID, personaID string) (chat.Session, error)
	SetPendingGreeting(ctx context.Context, sessionID, text string) error
	TakePendingGreeting(ctx context.Context, sessionID string) (string, error)
	Reset(ctx context.Context, sessionID string) (chat.Session, error)
}

// Model is the optional external model.
type Model interface {
	GenerateResponse(ctx context.Context, req ai.Request) (*schema.Message, error)
	StreamResponse(ctx context.Context, req ai.Request) (*schema.StreamReader[*schema.Message], error)
	StreamingEnabled() bool
	Timeout() time.Duration
}

// Turn is the outcome of one user message.
type Turn struct {
	Session     chat.Session `json:"session"`
	UserMessage chat.Message `json:"userMessage"`
	Reply       chat.Message `json:"reply"`
	Route       triage.Route `json:"-"`
}

// Service answers user messages.
type Service struct {
	sessions  SessionStore
	personas  persona.Store
	responder *advice.Responder
	model     Model
	logger    *slog.Logger
	locks     *locker.Locker
}

// NewService wires the assistant. model may be nil for offline mode.
func NewService(sessions SessionStore, personas persona.Store, responder *advice.Responder, model Model, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if responder == nil {
		responder = advice.NewResponder()
	}
	return &Service{
		sessions:  sessions,
		personas:  personas,
		responder: responder,
		model:     model,
		logger:    logger.With("component", "assistant"),
		locks:     locker.New(),
	}
}

// Mode reports whether answers may come from the external model.
func (s *Service) Mode() string {
	if s.model == nil {
		return ModeOffline
	}
	return ModeAI
}

// EmergencyNumber is the number quoted in emergency and refusal replies.
func (s *Service) EmergencyNumber() string {
	return s.responder.EmergencyNumber()
}

// Session returns a session by id.
func (s *Service) Session(ctx context.Context, sessionID string) (chat.Session, error) {
	return s.sessions.GetSession(ctx, sessionID)
}

// Transcript returns the session's messages in order.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	return s.sessions.LoadTranscript(ctx, sessionID)
}

// StartSession opens a session. An empty personaID selects the default persona.
func (s *Service) StartSession(ctx context.Context, personaID string) (chat.Session, error) {
	p, err := s.resolvePersona(personaID)
	if err != nil {
		return chat.Session{}, err
	}
	return s.sessions.CreateSession(ctx, p.ID)
}

// SwitchPersona changes the persona of an existing session.
func (s *Service) SwitchPersona(ctx context.Context, sessionID, personaID string) (chat.Session, error) {
	if personaID == "" {
		return chat.Session{}, ErrPersonaNotFound
	}
	p, err := s.resolvePersona(personaID)
	if err != nil {
		return chat.Session{}, err
	}

	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)
	return s.sessions.SetPersona(ctx, sessionID, p.ID)
}

// Reset clears a session's transcript and remembered name.
func (s *Service) Reset(ctx context.Context, sessionID string) (chat.Session, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)
	return s.sessions.Reset(ctx, sessionID)
}

// Reply answers text within a session.
func (s *Service) Reply(ctx context.Context, sessionID, text string) (Turn, error) {
	return s.reply(ctx, sessionID, text, nil)
}

// StreamReply answers text like Reply, passing reply text to emit as it is
// produced. The returned Turn holds the final stored reply, which may
// differ from the emitted text when the model fails mid-stream.
func (s *Service) StreamReply(ctx context.Context, sessionID, text string, emit func(delta string) error) (Turn, error) {
	if emit == nil {
		emit = func(string) error { return nil }
	}
	return s.reply(ctx, sessionID, text, emit)
}

func (s *Service) reply(ctx context.Context, sessionID, text string, emit func(string) error) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return Turn{}, err
	}

	if session, err = s.captureName(ctx, session, text); err != nil {
		return Turn{}, err
	}

	route := triage.Classify(text)
	userMsg, err := s.sessions.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderUser,
		Content:   text,
		Route:     route.String(),
	})
	if err != nil {
		return Turn{}, fmt.Errorf("save user message: %w", err)
	}

	var (
		content string
		source  chat.Source
	)
	switch {
	case route.Gated():
		content, source = s.responder.Respond(route, text, session.UserName), chat.SourceRules
		if err := emitAll(emit, content); err != nil {
			return Turn{}, err
		}
	case s.model == nil:
		content, err = s.ruleReply(ctx, session, route, text)
		if err != nil {
			return Turn{}, err
		}
		source = chat.SourceRules
		if err := emitAll(emit, content); err != nil {
			return Turn{}, err
		}
	default:
		content, source, err = s.modelReply(ctx, session, route, text, userMsg.ID, emit)
		if err != nil {
			return Turn{}, err
		}
	}

	reply, err := s.sessions.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderAssistant,
		Content:   content,
		Route:     route.String(),
		Source:    source,
	})
	if err != nil {
		return Turn{}, fmt.Errorf("save reply: %w", err)
	}

	s.logger.Info("reply sent", "session", sessionID, "route", route.String(), "source", source)
	return Turn{Session: session, UserMessage: userMsg, Reply: reply, Route: route}, nil
}

// captureName remembers a self-introduced name and queues the
// acknowledgement unless the message is a greeting, which already
// addresses the user by name.
func (s *Service) captureName(ctx context.Context, session chat.Session, text string) (chat.Session, error) {
	name, ok := triage.ExtractName(text)
	if !ok {
		return session, nil
	}

	updated, err := s.sessions.SetUserName(ctx, session.ID, name)
	if err != nil {
		return session, err
	}
	if !triage.IsGreeting(text) {
		ack := fmt.Sprintf("Nice to meet you, %s! I'll remember your name for our conversation. ", name)
		if err := s.sessions.SetPendingGreeting(ctx, session.ID, ack); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// ruleReply renders the local answer and personalises it.
func (s *Service) ruleReply(ctx context.Context, session chat.Session, route triage.Route, text string) (string, error) {
	reply := s.responder.Respond(route, text, session.UserName)

	ack, err := s.sessions.TakePendingGreeting(ctx, session.ID)
	if err != nil {
		return "", err
	}
	if ack != "" {
		return ack + reply, nil
	}
	if session.UserName != "" && !addressesUser(reply) {
		return "Hi " + session.UserName + "! " + reply, nil
	}
	return reply, nil
}

func addressesUser(reply string) bool {
	for _, marker := range []string{"What can I help you with today", "How can I help you", "What's your name"} {
		if strings.Contains(reply, marker) {
			return true
		}
	}
	for _, prefix := range []string{"Good ", "Hello", "Hi"} {
		if strings.HasPrefix(reply, prefix) {
			return true
		}
	}
	return false
}

func (s *Service) modelReply(ctx context.Context, session chat.Session, route triage.Route, text, userMsgID string, emit func(string) error) (string, chat.Source, error) {
	// The acknowledgement only decorates rule-based replies; the model is
	// told the name through the system prompt instead.
	if _, err := s.sessions.TakePendingGreeting(ctx, session.ID); err != nil {
		return "", "", err
	}

	req, err := s.buildRequest(ctx, session, text, userMsgID)
	if err != nil {
		return "", "", err
	}

	var content string
	if emit != nil && s.model.StreamingEnabled() {
		content, err = s.streamModel(ctx, req, emit)
	} else {
		content, err = s.generateModel(ctx, req)
		if err == nil {
			err = emitAll(emit, content)
		}
	}

	if err != nil {
		var emitErr *emitError
		if errors.As(err, &emitErr) {
			return "", "", emitErr.err
		}
		s.logger.Warn("model call failed, using local answer", "session", session.ID, "error", err)
		fallback := s.responder.Respond(route, text, session.UserName)
		if emit != nil && !errors.Is(err, errPartialStream) {
			if err := emitAll(emit, fallback); err != nil {
				return "", "", err
			}
		}
		return fallback, chat.SourceFallback, nil
	}
	return content, chat.SourceLLM, nil
}

func (s *Service) generateModel(ctx context.Context, req ai.Request) (string, error) {
	msg, err := s.model.GenerateResponse(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(msg.Content) == "" {
		return "", errEmptyReply
	}
	return withDisclaimer(msg.Content), nil
}

var (
	errEmptyReply    = errors.New("model returned an empty reply")
	errPartialStream = errors.New("model stream failed after output began")
)

type emitError struct{ err error }

func (e *emitError) Error() string { return "emit: " + e.err.Error() }
func (e *emitError) Unwrap() error { return e.err }

func (s *Service) streamModel(ctx context.Context, req ai.Request, emit func(string) error) (string, error) {
	if timeout := s.model.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	stream, err := s.model.StreamResponse(ctx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var b strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if b.Len() > 0 {
				return "", fmt.Errorf("%w: %v", errPartialStream, err)
			}
			return "", err
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		b.WriteString(chunk.Content)
		if err := emit(chunk.Content); err != nil {
			return "", &emitError{err: err}
		}
	}

	content := b.String()
	if strings.TrimSpace(content) == "" {
		return "", errEmptyReply
	}
	if full := withDisclaimer(content); full != content {
		if err := emit(full[len(content):]); err != nil {
			return "", &emitError{err: err}
		}
		content = full
	}
	return content, nil
}

func (s *Service) buildRequest(ctx context.Context, session chat.Session, text, userMsgID string) (ai.Request, error) {
	transcript, err := s.sessions.LoadTranscript(ctx, session.ID)
	if err != nil {
		return ai.Request{}, err
	}
	if n := len(transcript); n > 0 && transcript[n-1].ID == userMsgID {
		transcript = transcript[:n-1]
	}

	p, ok := s.personas.FindByID(session.PersonaID)
	if !ok {
		p = s.personas.Default()
	}

	return ai.Request{
		SessionID:       session.ID,
		Persona:         p,
		UserName:        session.UserName,
		EmergencyNumber: s.responder.EmergencyNumber(),
		History:         transcript,
		Query:           text,
	}, nil
}

func (s *Service) resolvePersona(personaID string) (persona.Persona, error) {
	if personaID == "" {
		return s.personas.Default(), nil
	}
	p, ok := s.personas.FindByID(personaID)
	if !ok {
		return persona.Persona{}, fmt.Errorf("%w: %s", ErrPersonaNotFound, personaID)
	}
	return p, nil
}

func withDisclaimer(reply string) string {
	if strings.Contains(reply, advice.Disclaimer) {
		return reply
	}
	return strings.TrimRight(reply, "\n") + "\n\n" + advice.Disclaimer
}

func emitAll(emit func(string) error, content string) error {
	if emit == nil {
		return nil
	}
	if err := emit(content); err != nil {
		return &emitError{err: err}
	}
	return nil
}
