package openai

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeLLM records the last call and replays canned chunks.
type fakeLLM struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	chunks   []string
	err      error
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	f.opts = llms.CallOptions{}
	for _, opt := range options {
		opt(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.opts.StreamingFunc != nil {
		for _, c := range f.chunks {
			if err := f.opts.StreamingFunc(ctx, []byte(c)); err != nil {
				return nil, err
			}
		}
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: strings.Join(f.chunks, "")}}}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestGenerateMapsRolesAndOptions(t *testing.T) {
	temp := 0.4
	tokens := 256
	fake := &fakeLLM{chunks: []string{"Drink water."}}
	m := newChatModel(fake, Config{Model: "gpt-4o-mini", Temperature: &temp, MaxTokens: &tokens})

	reply, err := m.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("be kind"),
		schema.UserMessage("hi"),
		schema.AssistantMessage("hello", nil),
		schema.UserMessage("tips?"),
	})
	require.NoError(t, err)
	assert.Equal(t, schema.Assistant, reply.Role)
	assert.Equal(t, "Drink water.", reply.Content)

	require.Len(t, fake.messages, 4)
	assert.Equal(t, llms.ChatMessageTypeSystem, fake.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, fake.messages[1].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, fake.messages[2].Role)
	assert.Equal(t, "gpt-4o-mini", fake.opts.Model)
	assert.InDelta(t, 0.4, fake.opts.Temperature, 1e-6)
	assert.Equal(t, 256, fake.opts.MaxTokens)
}

func TestGenerateOptionOverride(t *testing.T) {
	temp := 0.4
	fake := &fakeLLM{chunks: []string{"ok"}}
	m := newChatModel(fake, Config{Model: "gpt-4o-mini", Temperature: &temp})

	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")}, model.WithTemperature(0.9))
	require.NoError(t, err)
	assert.InDelta(t, 0.9, fake.opts.Temperature, 1e-6)
}

func TestGenerateError(t *testing.T) {
	boom := errors.New("boom")
	m := newChatModel(&fakeLLM{err: boom}, Config{Model: "gpt-4o-mini"})

	_, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	assert.ErrorIs(t, err, boom)
}

func TestStreamYieldsChunks(t *testing.T) {
	fake := &fakeLLM{chunks: []string{"Rest ", "and ", "hydrate."}}
	m := newChatModel(fake, Config{Model: "gpt-4o-mini"})

	sr, err := m.Stream(context.Background(), []*schema.Message{schema.UserMessage("cold tips")})
	require.NoError(t, err)
	defer sr.Close()

	var parts []string
	for {
		chunk, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		parts = append(parts, chunk.Content)
	}
	assert.Equal(t, []string{"Rest ", "and ", "hydrate."}, parts)
}

func TestStreamSurfacesError(t *testing.T) {
	boom := errors.New("rate limited")
	m := newChatModel(&fakeLLM{err: boom}, Config{Model: "gpt-4o-mini"})

	sr, err := m.Stream(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	defer sr.Close()

	_, err = sr.Recv()
	assert.ErrorIs(t, err, boom)
}

func TestNewChatModelRequiresKey(t *testing.T) {
	_, err := NewChatModel(Config{})
	assert.Error(t, err)
}

func TestChatModelServesAsBaseChatModel(t *testing.T) {
	var m model.BaseChatModel = newChatModel(&fakeLLM{chunks: []string{"Rest well."}}, Config{Model: DefaultModel})

	reply, err := m.Generate(context.Background(), []*schema.Message{schema.UserMessage("tired")})
	require.NoError(t, err)
	assert.Equal(t, "Rest well.", reply.Content)
}
