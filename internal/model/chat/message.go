package chat

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Source records which path produced an assistant message.
type Source string

const (
	SourceRules    Source = "rules"
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Message is one turn of the transcript.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Route     string    `json:"route,omitempty"`
	Source    Source    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
