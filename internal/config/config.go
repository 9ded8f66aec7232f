package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"

	"github.com/carepal/backend/internal/service/ai/openai"
)

// AI providers accepted by AI_PROVIDER.
const (
	ProviderAuto   = "auto"
	ProviderOpenAI = "openai"
	ProviderArk    = "ark"
	ProviderOff    = "off"
)

const (
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultTemperature     = 0.4
	defaultTimeoutSeconds  = 30
	defaultHistoryLimit    = 20
	defaultEmergencyNumber = "911"
	defaultTimezone        = "Asia/Manila"
)

// ErrNoProvider is returned when no model credentials are configured.
var ErrNoProvider = errors.New("no AI provider configured")

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	CarePal CarePalConfig
	Log     LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		AI:      ai,
		CarePal: loadCarePalConfig(),
		Log:     loadLogConfig(),
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// OpenAIConfig holds credentials for an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ArkConfig holds Volcengine Ark credentials.
type ArkConfig struct {
	APIKey    string
	AccessKey string
	SecretKey string
	Model     string
	BaseURL   string
	Region    string
}

// Enabled reports whether the Ark credentials are complete.
func (c ArkConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	Provider       string
	OpenAI         OpenAIConfig
	Ark            ArkConfig
	Temperature    *float64
	MaxTokens      *int
	Timeout        time.Duration
	HistoryLimit   int
	StreamResponse bool
}

// ResolvedProvider names the provider that will actually be used, or ""
// when running offline. "auto" prefers OpenAI, then Ark.
func (c AIConfig) ResolvedProvider() string {
	switch c.Provider {
	case ProviderOff:
		return ""
	case ProviderOpenAI:
		if c.OpenAI.APIKey != "" {
			return ProviderOpenAI
		}
		return ""
	case ProviderArk:
		if c.Ark.Enabled() {
			return ProviderArk
		}
		return ""
	default:
		if c.OpenAI.APIKey != "" {
			return ProviderOpenAI
		}
		if c.Ark.Enabled() {
			return ProviderArk
		}
		return ""
	}
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.ResolvedProvider() != ""
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	switch c.ResolvedProvider() {
	case ProviderOpenAI:
		return openai.NewChatModel(openai.Config{
			APIKey:      c.OpenAI.APIKey,
			Model:       c.OpenAI.Model,
			BaseURL:     c.OpenAI.BaseURL,
			Temperature: c.Temperature,
			MaxTokens:   c.MaxTokens,
		})
	case ProviderArk:
		return c.newArkModel(ctx)
	default:
		return nil, ErrNoProvider
	}
}

func (c AIConfig) newArkModel(ctx context.Context) (model.BaseChatModel, error) {
	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.Ark.BaseURL,
		Region:      c.Ark.Region,
		APIKey:      c.Ark.APIKey,
		AccessKey:   c.Ark.AccessKey,
		SecretKey:   c.Ark.SecretKey,
		Model:       c.Ark.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderAuto))
	switch provider {
	case ProviderAuto, ProviderOpenAI, ProviderArk, ProviderOff:
	default:
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value %q", provider)
	}

	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	if temperature == nil {
		val := defaultTemperature
		temperature = &val
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := defaultTimeoutSeconds
	if override, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	historyLimit := defaultHistoryLimit
	if override, err := parseOptionalIntEnv("AI_HISTORY_LIMIT"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 0 {
			historyLimit = 0
		} else {
			historyLimit = *override
		}
	}

	stream, err := parseBoolEnv("AI_STREAM", true)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		Provider: provider,
		OpenAI: OpenAIConfig{
			APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			Model:   getEnvOrDefault("OPENAI_MODEL", defaultOpenAIModel),
			BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		},
		Ark: ArkConfig{
			APIKey:    strings.TrimSpace(os.Getenv("ARK_API_KEY")),
			AccessKey: strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
			Model:     strings.TrimSpace(os.Getenv("ARK_MODEL")),
			BaseURL:   getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
			Region:    getEnvOrDefault("ARK_REGION", "cn-beijing"),
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		Timeout:        time.Duration(timeoutSeconds) * time.Second,
		HistoryLimit:   historyLimit,
		StreamResponse: stream,
	}, nil
}

// CarePalConfig holds the locale settings for rule-based answers.
type CarePalConfig struct {
	EmergencyNumber string
	Timezone        string
}

// Location loads the configured time zone, falling back to local time when
// the name is unknown.
func (c CarePalConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func loadCarePalConfig() CarePalConfig {
	return CarePalConfig{
		EmergencyNumber: getEnvOrDefault("CAREPAL_EMERGENCY_NUMBER", defaultEmergencyNumber),
		Timezone:        getEnvOrDefault("CAREPAL_TIMEZONE", defaultTimezone),
	}
}

// LogConfig 描述日志输出。
type LogConfig struct {
	Level string
	File  string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "info"),
		File:  strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
