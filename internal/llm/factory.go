package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// NewProvider builds the backend named by cfg.Provider and wraps it as
// retry(logging(backend)), so each attempt is recorded separately. The
// mock backend is returned bare.
func NewProvider(ctx context.Context, cfg Config, events RequestLog, log zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	log = log.With().Str("component", "llm").Str("provider", cfg.Provider).Logger()
	return WithRetry(WithLogging(base, cfg.Provider, events, log), cfg.Retry, log), nil
}
