package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Config aggregates the configuration for the whole service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Chat   ChatConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Chat: chat}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// Supported completion providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// AIConfig describes the completion provider and its credentials.
type AIConfig struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	ClaudeAPIKey  string
	ClaudeBaseURL string
	ClaudeModel   string

	Temperature *float64
	MaxTokens   *int
}

// ChatConfig bounds the inbound chat payload.
type ChatConfig struct {
	MaxMessageChars int
}

const defaultMaxMessageChars = 5000

// Enabled reports whether the selected provider has its API key set.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderClaude:
		return c.ClaudeAPIKey != ""
	default:
		return false
	}
}

// NewChatModel builds the chat model for the configured provider.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ToolCallingChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("missing API key for provider %q", c.Provider)
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	switch c.Provider {
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: c.GeminiAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       c.GeminiModel,
			MaxTokens:   c.MaxTokens,
			Temperature: temperature,
		})
	case ProviderOpenAI:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:     c.OpenAIBaseURL,
			Model:       c.OpenAIModel,
			APIKey:      c.OpenAIAPIKey,
			MaxTokens:   c.MaxTokens,
			Temperature: temperature,
		})
	case ProviderClaude:
		var baseURL *string
		if c.ClaudeBaseURL != "" {
			baseURL = &c.ClaudeBaseURL
		}
		maxTokens := 2048
		if c.MaxTokens != nil {
			maxTokens = *c.MaxTokens
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:      c.ClaudeAPIKey,
			Model:       c.ClaudeModel,
			BaseURL:     baseURL,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		})
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", c.Provider)
	}
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		Provider: strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderGemini)),

		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),

		ClaudeAPIKey:  strings.TrimSpace(os.Getenv("CLAUDE_API_KEY")),
		ClaudeBaseURL: getEnvOrDefault("CLAUDE_BASE_URL", ""),
		ClaudeModel:   getEnvOrDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514"),

		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

func loadChatConfig() (ChatConfig, error) {
	maxChars := defaultMaxMessageChars
	if override, err := parseOptionalIntEnv("CHAT_MAX_MESSAGE_CHARS"); err != nil {
		return ChatConfig{}, err
	} else if override != nil {
		if *override < 1 {
			maxChars = 1
		} else {
			maxChars = *override
		}
	}

	return ChatConfig{MaxMessageChars: maxChars}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
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
