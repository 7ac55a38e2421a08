package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// Config holds all application configuration
type Config struct {
	Env          string `envconfig:"APP_ENV" default:"development"`
	Port         int    `envconfig:"APP_PORT" default:"8000"`
	LogFile      string `envconfig:"LOG_FILE"`
	MaxQuestions int    `envconfig:"MAX_QUESTIONS" default:"20"`
	CORS         CORSConfig
	LLM          LLMConfig
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"*"`
}

// LLMConfig selects and authenticates the text-generation backend.
// An empty key for the selected provider is valid: the service then runs on
// fallback content only.
type LLMConfig struct {
	Provider     string        `envconfig:"LLM_PROVIDER" default:"gemini"`
	Model        string        `envconfig:"LLM_MODEL"`
	Temperature  float32       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	MaxTokens    int           `envconfig:"LLM_MAX_TOKENS" default:"4096"`
	Timeout      time.Duration `envconfig:"GENERATION_TIMEOUT" default:"60s"`
	GeminiKey    string        `envconfig:"GEMINI_API_KEY"`
	OpenAIKey    string        `envconfig:"OPENAI_API_KEY"`
	GroqKey      string        `envconfig:"GROQ_API_KEY"`
	AnthropicKey string        `envconfig:"ANTHROPIC_API_KEY"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.MaxQuestions < 1 {
		return fmt.Errorf("MAX_QUESTIONS must be at least 1")
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderGroq, ProviderAnthropic:
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be one of: gemini, openai, groq, anthropic)", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.LLM.MaxTokens < 1 {
		return fmt.Errorf("LLM_MAX_TOKENS must be at least 1")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// APIKey returns the credential of the selected provider, or "" when the
// service should run in fallback-only mode.
func (c *LLMConfig) APIKey() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiKey
	case ProviderOpenAI:
		return c.OpenAIKey
	case ProviderGroq:
		return c.GroqKey
	case ProviderAnthropic:
		return c.AnthropicKey
	}
	return ""
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, MaxQuestions=%d, CORS.Origins=%d, "+
		"LLM.Provider=%s, LLM.Model=%s, LLM.Timeout=%s, LLM.Configured=%t}",
		c.Env, c.Port, c.MaxQuestions, len(c.CORS.TrustedOrigins),
		c.LLM.Provider, c.LLM.Model, c.LLM.Timeout, c.LLM.APIKey() != "")
}
