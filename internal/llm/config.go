package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all provider backend configuration.
// Which backend serves a given call is decided per topic by the topic's
// model id (see ForModel), not by a global provider switch.
type Config struct {
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	Retry      RetryConfig

	// Timeout is the bounded duration for a single generation call.
	// Default: 60s (lesson bodies are long).
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // Optional. Override for compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
// OpenRouter serves the llama and deepseek model ids, and acts as the
// fallback route for gpt and gemini when no vendor key is set.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
}

// RetryConfig configures retry behavior for transient failures.
// The gateway itself never retries; pipeline stages that want retries
// wrap their provider with WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OpenRouter: OpenRouterConfig{
			BaseURL: defaultOpenRouterBaseURL,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. The MYAI_* variables win over the
// standard vendor variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.OpenAI.APIKey = firstEnv("MYAI_OPENAI_API_KEY", "OPENAI_API_KEY")
	if u := os.Getenv("MYAI_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.OpenRouter.APIKey = firstEnv("MYAI_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	if u := os.Getenv("MYAI_OPENROUTER_BASE_URL"); u != "" {
		cfg.OpenRouter.BaseURL = u
	}

	cfg.Gemini.APIKey = firstEnv("MYAI_GEMINI_API_KEY", "GEMINI_API_KEY")
	cfg.Anthropic.APIKey = firstEnv("MYAI_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")

	if t := os.Getenv("MYAI_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// ValidateFor checks that the backend serving the given model id has its
// required API key set.
func (c Config) ValidateFor(model string) error {
	switch model {
	case ModelGPT:
		if c.OpenAI.APIKey == "" && c.OpenRouter.APIKey == "" {
			return fmt.Errorf("model %q needs MYAI_OPENAI_API_KEY or MYAI_OPENROUTER_API_KEY", model)
		}
	case ModelLlama, ModelDeepseek:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("model %q needs MYAI_OPENROUTER_API_KEY", model)
		}
	case ModelGemini:
		if c.Gemini.APIKey == "" && c.OpenRouter.APIKey == "" {
			return fmt.Errorf("model %q needs MYAI_GEMINI_API_KEY or MYAI_OPENROUTER_API_KEY", model)
		}
	case ModelClaude:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("model %q needs MYAI_ANTHROPIC_API_KEY", model)
		}
	case ModelMock:
		// No API key needed.
	default:
		return fmt.Errorf("unknown model id: %q", model)
	}
	return nil
}
