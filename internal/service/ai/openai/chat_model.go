// Package openai adapts the langchaingo OpenAI client to eino's chat model
// interface so it can sit in the same chain as the Ark model.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gpt-4o-mini"

// ErrEmptyResponse is returned when the endpoint answers without choices.
var ErrEmptyResponse = errors.New("openai: empty response")

// Config describes an OpenAI-compatible endpoint.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature *float64
	MaxTokens   *int
}

var _ model.BaseChatModel = (*ChatModel)(nil)

// ChatModel implements model.BaseChatModel on top of langchaingo.
type ChatModel struct {
	llm         llms.Model
	model       string
	temperature *float64
	maxTokens   *int
}

// NewChatModel creates a chat model for cfg.
func NewChatModel(cfg Config) (*ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai model: %w", err)
	}

	return newChatModel(llm, cfg), nil
}

func newChatModel(llm llms.Model, cfg Config) *ChatModel {
	return &ChatModel{
		llm:         llm,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate sends the conversation and returns the assistant reply.
func (m *ChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	resp, err := m.llm.GenerateContent(ctx, toMessageContent(input), m.callOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("openai generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	return schema.AssistantMessage(resp.Choices[0].Content, nil), nil
}

// Stream sends the conversation and yields reply chunks as they arrive.
func (m *ChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	sr, sw := schema.Pipe[*schema.Message](16)
	messages := toMessageContent(input)
	sent := false
	callOpts := append(m.callOptions(opts), llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
		if len(chunk) == 0 {
			return nil
		}
		sent = true
		if closed := sw.Send(schema.AssistantMessage(string(chunk), nil), nil); closed {
			return errors.New("openai: stream reader closed")
		}
		return nil
	}))

	go func() {
		defer sw.Close()
		resp, err := m.llm.GenerateContent(ctx, messages, callOpts...)
		if err != nil {
			sw.Send(nil, fmt.Errorf("openai stream: %w", err))
			return
		}
		// Some compatible endpoints ignore the streaming flag.
		if !sent && resp != nil && len(resp.Choices) > 0 && resp.Choices[0].Content != "" {
			sw.Send(schema.AssistantMessage(resp.Choices[0].Content, nil), nil)
		}
	}()

	return sr, nil
}

func (m *ChatModel) callOptions(opts []model.Option) []llms.CallOption {
	base := &model.Options{Model: &m.model}
	if m.temperature != nil {
		t := float32(*m.temperature)
		base.Temperature = &t
	}
	if m.maxTokens != nil {
		n := *m.maxTokens
		base.MaxTokens = &n
	}
	common := model.GetCommonOptions(base, opts...)

	callOpts := make([]llms.CallOption, 0, 3)
	if common.Model != nil && *common.Model != "" {
		callOpts = append(callOpts, llms.WithModel(*common.Model))
	}
	if common.Temperature != nil {
		callOpts = append(callOpts, llms.WithTemperature(float64(*common.Temperature)))
	}
	if common.MaxTokens != nil {
		callOpts = append(callOpts, llms.WithMaxTokens(*common.MaxTokens))
	}
	return callOpts
}

func toMessageContent(input []*schema.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(input))
	for _, msg := range input {
		if msg == nil {
			continue
		}
		var role llms.ChatMessageType
		switch msg.Role {
		case schema.System:
			role = llms.ChatMessageTypeSystem
		case schema.Assistant:
			role = llms.ChatMessageTypeAI
		default:
			role = llms.ChatMessageTypeHuman
		}
		out = append(out, llms.TextParts(role, msg.Content))
	}
	return out
}
