package chat_test

import (
	"context"
	"errors"
	"testing"

	model "github.com/carepal/backend/internal/model/chat"
	chat "github.com/carepal/backend/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "clinic-nurse")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
	if got.PersonaID != "clinic-nurse" {
		t.Fatalf("unexpected persona ID: got %s", got.PersonaID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServiceCreateSessionRequiresPersona(t *testing.T) {
	svc := chat.NewService()
	if _, err := svc.CreateSession(context.Background(), ""); !errors.Is(err, chat.ErrPersonaRequired) {
		t.Fatalf("expected ErrPersonaRequired, got %v", err)
	}
}

func TestServiceTranscriptOrder(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, "clinic-nurse")

	for _, content := range []string{"first", "second", "third"} {
		saved, err := svc.SaveMessage(ctx, model.Message{SessionID: session.ID, Sender: model.SenderUser, Content: content})
		if err != nil {
			t.Fatalf("SaveMessage err: %v", err)
		}
		if saved.ID == "" || saved.CreatedAt.IsZero() {
			t.Fatalf("saved message missing id or timestamp: %+v", saved)
		}
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(transcript))
	}
	for i, want := range []string{"first", "second", "third"} {
		if transcript[i].Content != want {
			t.Fatalf("message %d: got %q want %q", i, transcript[i].Content, want)
		}
	}

	transcript[0].Content = "mutated"
	again, _ := svc.LoadTranscript(ctx, session.ID)
	if again[0].Content != "first" {
		t.Fatal("LoadTranscript must return a copy")
	}
}

func TestServiceSaveMessageUnknownSession(t *testing.T) {
	svc := chat.NewService()
	_, err := svc.SaveMessage(context.Background(), model.Message{SessionID: "nope", Content: "hi"})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServicePendingGreetingIsOneShot(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, "clinic-nurse")

	if err := svc.SetPendingGreeting(ctx, session.ID, "Nice to meet you, Ana! "); err != nil {
		t.Fatalf("SetPendingGreeting err: %v", err)
	}
	got, _ := svc.TakePendingGreeting(ctx, session.ID)
	if got != "Nice to meet you, Ana! " {
		t.Fatalf("unexpected pending greeting %q", got)
	}
	if again, _ := svc.TakePendingGreeting(ctx, session.ID); again != "" {
		t.Fatalf("pending greeting should be cleared, got %q", again)
	}
}

func TestServiceResetClearsState(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, "health-coach")

	_, _ = svc.SetUserName(ctx, session.ID, "Ana")
	_ = svc.SetPendingGreeting(ctx, session.ID, "hello")
	_, _ = svc.SaveMessage(ctx, model.Message{SessionID: session.ID, Content: "hi"})

	reset, err := svc.Reset(ctx, session.ID)
	if err != nil {
		t.Fatalf("Reset err: %v", err)
	}
	if reset.UserName != "" || reset.PersonaID != "health-coach" {
		t.Fatalf("unexpected session after reset: %+v", reset)
	}
	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 0 {
		t.Fatalf("expected empty transcript, got %d", len(transcript))
	}
	if pending, _ := svc.TakePendingGreeting(ctx, session.ID); pending != "" {
		t.Fatalf("expected pending greeting cleared, got %q", pending)
	}
}

func TestServiceSetPersona(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, "clinic-nurse")

	updated, err := svc.SetPersona(ctx, session.ID, "school-counselor")
	if err != nil {
		t.Fatalf("SetPersona err: %v", err)
	}
	if updated.PersonaID != "school-counselor" {
		t.Fatalf("persona not updated: %+v", updated)
	}
	if _, err := svc.SetPersona(ctx, session.ID, ""); !errors.Is(err, chat.ErrPersonaRequired) {
		t.Fatalf("expected ErrPersonaRequired, got %v", err)
	}
}
