package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/store"
)

// ErrNoImageProvider is returned by the image provider when no backend
// capable of drawing is configured.
var ErrNoImageProvider = errors.New("no image provider configured (set gemini or openai credentials)")

// Providers bundles the three model roles the app uses.
type Providers struct {
	// Fast serves advisory module suggestions.
	Fast Provider
	// Plan serves full lesson plan generation.
	Plan Provider
	// Image serves illustration rendering.
	Image ImageProvider
}

// NewProviders creates all providers from configuration. Text providers
// are wrapped with middleware: caller → retry → logging → base. The image
// provider is wrapped with logging only; failed images are retried by the
// user through redo.
func NewProviders(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logger.Logger) (*Providers, error) {
	if cfg.Provider == "mock" {
		return newDemoProviders(), nil
	}

	fast, err := newTextProvider(ctx, cfg, true)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	plan, err := newTextProvider(ctx, cfg, false)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var image ImageProvider = unavailableImageProvider{}
	if name := cfg.resolveImageProvider(); name != "" {
		base, err := newImageProvider(ctx, cfg, name)
		if err != nil {
			return nil, fmt.Errorf("initializing %s image provider: %w", name, err)
		}
		image = WithImageLogging(base, eventRepo, log)
	}

	return &Providers{
		Fast:  WithRetry(WithLogging(fast, eventRepo, log), cfg.Retry),
		Plan:  WithRetry(WithLogging(plan, eventRepo, log), cfg.Retry),
		Image: image,
	}, nil
}

func newTextProvider(ctx context.Context, cfg Config, fast bool) (Provider, error) {
	pick := func(model, fastModel string) string {
		if fast && fastModel != "" {
			return fastModel
		}
		return model
	}

	switch cfg.Provider {
	case "anthropic":
		c := cfg.Anthropic
		c.Model = pick(c.Model, c.FastModel)
		return NewAnthropicProvider(c)
	case "openai":
		c := cfg.OpenAI
		c.Model = pick(c.Model, c.FastModel)
		return NewOpenAIProvider(c)
	case "gemini":
		c := cfg.Gemini
		c.Model = pick(c.Model, c.FastModel)
		return NewGeminiProvider(ctx, c)
	case "openrouter":
		c := cfg.OpenRouter
		c.Model = pick(c.Model, c.FastModel)
		return NewOpenRouterProvider(c)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

func newImageProvider(ctx context.Context, cfg Config, name string) (ImageProvider, error) {
	switch name {
	case "gemini":
		return NewGeminiImageProvider(ctx, cfg.Gemini)
	case "openai":
		return NewOpenAIImageProvider(cfg.OpenAI)
	case "mock":
		return NewMockImageProvider(), nil
	default:
		return nil, fmt.Errorf("provider %q cannot generate images", name)
	}
}

type unavailableImageProvider struct{}

func (unavailableImageProvider) GenerateImage(context.Context, ImageRequest) (*Image, error) {
	return nil, ErrNoImageProvider
}

func (unavailableImageProvider) ModelID() string { return "none" }
