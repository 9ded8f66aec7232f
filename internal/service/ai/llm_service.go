package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/carepal/backend/internal/config"
	"github.com/carepal/backend/internal/model/chat"
	"github.com/carepal/backend/internal/model/persona"
)

var (
	// ErrNotConfigured means no provider credentials were supplied.
	ErrNotConfigured = errors.New("ai provider not configured")
	// ErrStreamingDisabled is returned by StreamResponse when AI_STREAM is off.
	ErrStreamingDisabled = errors.New("streaming disabled in configuration")
)

// Request is one model turn.
type Request struct {
	SessionID       string
	Persona         persona.Persona
	UserName        string
	EmergencyNumber string
	// History holds earlier turns, oldest first, excluding Query.
	History []chat.Message
	Query   string
}

// Service runs the Care Pal prompt through an external chat model.
type Service struct {
	chatModel model.BaseChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
	logger    *slog.Logger
}

// NewService creates the service for the configured provider. It returns
// ErrNotConfigured when no provider has credentials.
func NewService(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Service, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return NewServiceWithModel(ctx, chatModel, cfg, logger)
}

// NewServiceWithModel wires an existing chat model into the prompt chain.
func NewServiceWithModel(ctx context.Context, chatModel model.BaseChatModel, cfg config.AIConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
		logger:    logger.With("component", "ai"),
	}, nil
}

// Provider names the backing provider.
func (s *Service) Provider() string {
	return s.cfg.ResolvedProvider()
}

// StreamingEnabled 指示是否开启 SSE 流式输出。
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Timeout bounds a single model call.
func (s *Service) Timeout() time.Duration {
	return s.cfg.Timeout
}

// GenerateResponse runs the chain to completion, bounded by the configured timeout.
func (s *Service) GenerateResponse(ctx context.Context, req Request) (*schema.Message, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	response, err := s.chain.Invoke(ctx, s.buildChainInput(req))
	if err != nil {
		return nil, fmt.Errorf("failed to run AI chain: %w", err)
	}

	s.logger.Debug("generated response", "session", req.SessionID, "persona", req.Persona.ID, "length", len(response.Content))
	return response, nil
}

// StreamResponse streams reply chunks. The caller bounds ctx and must close
// the reader.
func (s *Service) StreamResponse(ctx context.Context, req Request) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, ErrStreamingDisabled
	}

	stream, err := s.chain.Stream(ctx, s.buildChainInput(req))
	if err != nil {
		return nil, fmt.Errorf("failed to stream AI chain output: %w", err)
	}
	return stream, nil
}

func (s *Service) buildChainInput(req Request) map[string]any {
	return map[string]any{
		"system":  BuildSystemPrompt(req.Persona, req.UserName, req.EmergencyNumber),
		"history": s.buildHistoryMessages(req.History),
		"query":   req.Query,
	}
}

func (s *Service) buildHistoryMessages(messages []chat.Message) []*schema.Message {
	limit := s.cfg.HistoryLimit
	if len(messages) == 0 || limit <= 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > limit {
		startIdx = len(messages) - limit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}
