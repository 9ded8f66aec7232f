package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "AI_PROVIDER", "AI_TEMPERATURE", "AI_MAX_TOKENS", "AI_TIMEOUT_SECONDS",
		"AI_HISTORY_LIMIT", "AI_STREAM", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL",
		"CAREPAL_EMERGENCY_NUMBER", "CAREPAL_TIMEZONE", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, ProviderAuto, cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAI.Model)
	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, 0.4, *cfg.AI.Temperature, 1e-9)
	assert.Nil(t, cfg.AI.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 20, cfg.AI.HistoryLimit)
	assert.True(t, cfg.AI.StreamResponse)
	assert.False(t, cfg.AI.Enabled())
	assert.Equal(t, "911", cfg.CarePal.EmergencyNumber)
	assert.Equal(t, "Asia/Manila", cfg.CarePal.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadServerAddr(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)

	t.Setenv("PORT", "80 80")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_TEMPERATURE", "warm")
	_, err := Load()
	assert.ErrorContains(t, err, "AI_TEMPERATURE")

	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "gemini")
	_, err = Load()
	assert.ErrorContains(t, err, "AI_PROVIDER")
}

func TestResolvedProvider(t *testing.T) {
	openaiKey := OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}
	arkCreds := ArkConfig{APIKey: "ark", Model: "doubao"}

	tests := []struct {
		name string
		cfg  AIConfig
		want string
	}{
		{"auto prefers openai", AIConfig{Provider: ProviderAuto, OpenAI: openaiKey, Ark: arkCreds}, ProviderOpenAI},
		{"auto falls back to ark", AIConfig{Provider: ProviderAuto, Ark: arkCreds}, ProviderArk},
		{"auto offline", AIConfig{Provider: ProviderAuto}, ""},
		{"ark without model", AIConfig{Provider: ProviderArk, Ark: ArkConfig{APIKey: "ark"}}, ""},
		{"forced ark", AIConfig{Provider: ProviderArk, OpenAI: openaiKey, Ark: arkCreds}, ProviderArk},
		{"off", AIConfig{Provider: ProviderOff, OpenAI: openaiKey}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolvedProvider())
		})
	}
}

func TestNewChatModelWithoutProvider(t *testing.T) {
	_, err := AIConfig{Provider: ProviderOff}.NewChatModel(t.Context())
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestCarePalLocationFallsBack(t *testing.T) {
	assert.Equal(t, time.Local, CarePalConfig{Timezone: "Nowhere/Special"}.Location())
	assert.Equal(t, "UTC", CarePalConfig{Timezone: "UTC"}.Location().String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestFanoutLogger(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := newFanoutLogger(&stderr, &file, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("reply sent", "component", "assistant")

	assert.Contains(t, stderr.String(), "msg=\"reply sent\"")
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, file.String(), `"component":"assistant"`)
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carepal.log")
	logger, cleanup := SetupLogger(LogConfig{Level: "info", File: path})
	logger.Info("hello")
	require.NoError(t, cleanup())
	assert.FileExists(t, path)
}

func TestSetupFileLoggerWritesJSONOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	logger, cleanup, err := SetupFileLogger(LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("turn handled", "component", "assistant")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"turn handled"`)
	assert.Contains(t, string(data), `"component":"assistant"`)
}

func TestSetupFileLoggerWithoutFile(t *testing.T) {
	logger, cleanup, err := SetupFileLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Error("dropped")
	require.NoError(t, cleanup())
}

func TestSetupFileLoggerBadPath(t *testing.T) {
	_, _, err := SetupFileLogger(LogConfig{File: filepath.Join(t.TempDir(), "missing", "cli.log")})
	assert.Error(t, err)
}
