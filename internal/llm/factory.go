package llm

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jhalilaj/my-ai/internal/store"
)

// Topic-facing model ids. A topic picks one at creation time and every
// downstream call on its lessons and tests goes through the same backend.
const (
	ModelGPT      = "gpt"
	ModelLlama    = "llama"
	ModelGemini   = "gemini"
	ModelDeepseek = "deepseek"
	ModelClaude   = "claude"
	ModelMock     = "mock"
)

// KnownModels lists the model ids a topic may be configured with.
var KnownModels = []string{ModelGPT, ModelLlama, ModelGemini, ModelDeepseek, ModelClaude}

// KnownModel reports whether id is a valid topic model id.
func KnownModel(id string) bool {
	for _, m := range KnownModels {
		if m == id {
			return true
		}
	}
	return id == ModelMock
}

// Resolver maps a topic model id to a ready Provider.
type Resolver interface {
	ForModel(ctx context.Context, model string) (Provider, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, model string) (Provider, error)

func (f ResolverFunc) ForModel(ctx context.Context, model string) (Provider, error) {
	return f(ctx, model)
}

// StaticResolver returns the same provider for every model id.
// Intended for tests.
func StaticResolver(p Provider) Resolver {
	return ResolverFunc(func(context.Context, string) (Provider, error) {
		return p, nil
	})
}

// Factory builds providers from configuration and caches them per model
// id. Every provider is wrapped with the bounded-timeout and event-logging
// decorators; retry is left to callers.
type Factory struct {
	cfg       Config
	eventRepo store.EventRepo
	log       *zap.Logger

	mu    sync.Mutex
	cache map[string]Provider
}

// NewFactory creates a provider factory. A nil logger disables request
// tracing.
func NewFactory(cfg Config, eventRepo store.EventRepo, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{
		cfg:       cfg,
		eventRepo: eventRepo,
		log:       log,
		cache:     make(map[string]Provider),
	}
}

// ForModel returns the Provider serving the given topic model id.
func (f *Factory) ForModel(ctx context.Context, model string) (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.cache[model]; ok {
		return p, nil
	}

	base, err := f.build(ctx, model)
	if err != nil {
		return nil, err
	}

	// Wrap with middleware: caller → timeout → logging → base
	p := WithTimeout(WithLogging(base, f.eventRepo, f.log), f.cfg.Timeout)
	f.cache[model] = p
	return p, nil
}

func (f *Factory) build(ctx context.Context, model string) (Provider, error) {
	switch model {
	case ModelGPT:
		if f.cfg.OpenAI.APIKey != "" {
			return NewOpenAIProvider(f.cfg.OpenAI, "gpt-4o")
		}
		return NewOpenRouterProvider(f.cfg.OpenRouter, "openai/gpt-4o")
	case ModelLlama:
		return NewOpenRouterProvider(f.cfg.OpenRouter, "meta-llama/llama-4-scout")
	case ModelDeepseek:
		return NewOpenRouterProvider(f.cfg.OpenRouter, "deepseek/deepseek-chat-v3-0324")
	case ModelGemini:
		if f.cfg.Gemini.APIKey != "" {
			return NewGeminiProvider(ctx, f.cfg.Gemini, "gemini-2.0-flash")
		}
		return NewOpenRouterProvider(f.cfg.OpenRouter, "google/gemini-2.0-flash-001")
	case ModelClaude:
		return NewAnthropicProvider(f.cfg.Anthropic, "claude-sonnet-4-20250514")
	case ModelMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model id: %q", model)
	}
}

// ImageProvider returns the image generation backend. Images always go
// through the OpenAI-compatible route (dall-e-3), independent of the
// topic's text model.
func (f *Factory) ImageProvider() (ImageProvider, error) {
	if f.cfg.OpenAI.APIKey != "" {
		return NewOpenAIProvider(f.cfg.OpenAI, "gpt-4o")
	}
	if f.cfg.OpenRouter.APIKey != "" {
		return NewOpenRouterProvider(f.cfg.OpenRouter, "openai/gpt-4o")
	}
	return nil, fmt.Errorf("image generation needs MYAI_OPENAI_API_KEY or MYAI_OPENROUTER_API_KEY")
}
