package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepal/backend/internal/model/persona"
	"github.com/carepal/backend/internal/service/advice"
	"github.com/carepal/backend/internal/service/assistant"
	chatservice "github.com/carepal/backend/internal/service/chat"
)

func boolPtr(v bool) *bool { return &v }

type received struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId"`
	Data      map[string]any `json:"data"`
}

func setup(t *testing.T) (*assistant.Service, string, *httptest.Server) {
	t.Helper()
	svc := assistant.NewService(chatservice.NewService(), persona.NewMemoryStore(persona.Seed()), advice.NewResponder(), nil, nil)
	session, err := svc.StartSession(context.Background(), "")
	require.NoError(t, err)

	r := chi.NewRouter()
	New(svc, nil).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return svc, session.ID, srv
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	first := read(t, conn)
	require.Equal(t, "result", first.Type)
	require.Equal(t, "connected", first.Data["type"])
	return conn
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msgType string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(inboundMessage{Type: msgType, Data: raw}))
}

func TestTextMessageStreamsReply(t *testing.T) {
	_, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	send(t, conn, "text", TextMessage{Text: "I can't breathe"})

	user := read(t, conn)
	assert.Equal(t, "user", user.Data["type"])

	delta := read(t, conn)
	assert.Equal(t, "delta", delta.Data["type"])

	reply := read(t, conn)
	assert.Equal(t, "reply", reply.Data["type"])
	assert.Equal(t, delta.Data["text"], reply.Data["text"])
	assert.Contains(t, reply.Data["text"], "CALL 911 IMMEDIATELY!")
	assert.Equal(t, "rules", reply.Data["source"])
}

func TestTextMessageWithoutStreaming(t *testing.T) {
	_, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	send(t, conn, "config", ConfigMessage{StreamMode: boolPtr(false)})
	cfg := read(t, conn)
	assert.Equal(t, false, cfg.Data["streamMode"])

	send(t, conn, "text", TextMessage{Text: "hello"})
	assert.Equal(t, "user", read(t, conn).Data["type"])
	assert.Equal(t, "reply", read(t, conn).Data["type"])
}

func TestEmptyTextReturnsError(t *testing.T) {
	_, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	send(t, conn, "text", TextMessage{Text: ""})
	read(t, conn)

	msg := read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, assistant.ErrEmptyMessage.Error(), msg.Data["message"])
}

func TestConfigSwitchesPersona(t *testing.T) {
	svc, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	send(t, conn, "config", ConfigMessage{PersonaID: "health-coach"})
	msg := read(t, conn)
	assert.Equal(t, "health-coach", msg.Data["persona"])

	session, err := svc.Session(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "health-coach", session.PersonaID)

	send(t, conn, "config", ConfigMessage{PersonaID: "unknown"})
	assert.Equal(t, "error", read(t, conn).Type)
}

func TestResetAndUnsupported(t *testing.T) {
	svc, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	send(t, conn, "text", TextMessage{Text: "my name is Ana"})
	read(t, conn)
	read(t, conn)
	read(t, conn)

	send(t, conn, "reset", struct{}{})
	assert.Equal(t, "reset", read(t, conn).Data["type"])

	transcript, err := svc.Transcript(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, transcript)

	send(t, conn, "audio", struct{}{})
	assert.Equal(t, "error", read(t, conn).Type)
}

func TestSessionMismatch(t *testing.T) {
	_, sessionID, srv := setup(t)
	conn := dial(t, srv, sessionID)

	require.NoError(t, conn.WriteJSON(inboundMessage{Type: "text", SessionID: "other"}))
	msg := read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "session mismatch", msg.Data["message"])
}

func TestUnknownSessionRejected(t *testing.T) {
	_, _, srv := setup(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/missing"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApplyConfigUpdatesState(t *testing.T) {
	svc, sessionID, _ := setup(t)
	handler := New(svc, nil)
	state := newConnectionState(sessionID, persona.DefaultID)

	err := handler.applyConfig(context.Background(), state, ConfigMessage{
		PersonaID:  "school-counselor",
		StreamMode: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "school-counselor", state.personaID)
	assert.False(t, state.streamMode)
}
