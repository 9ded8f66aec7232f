package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepal/backend/internal/config"
	"github.com/carepal/backend/internal/service/assistant"
)

func TestNewOfflineWithoutProvider(t *testing.T) {
	cfg := &config.Config{
		AI:      config.AIConfig{Provider: config.ProviderOff},
		CarePal: config.CarePalConfig{EmergencyNumber: "117", Timezone: "Asia/Manila"},
	}

	a := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, assistant.ModeOffline, a.Assistant.Mode())
	assert.Equal(t, "117", a.Assistant.EmergencyNumber())

	session, err := a.Assistant.StartSession(context.Background(), "")
	require.NoError(t, err)
	turn, err := a.Assistant.Reply(context.Background(), session.ID, "he is not breathing")
	require.NoError(t, err)
	assert.Contains(t, turn.Reply.Content, "CALL 117 IMMEDIATELY!")
}
