package llm

import "errors"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an OpenAIProvider aimed at OpenRouter. Model IDs
// are passed through untouched since OpenRouter namespaces them itself
// ("google/gemini-2.0-flash-001").
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider from cfg, defaulting BaseURL to
// the public OpenRouter endpoint.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	return &OpenRouterProvider{OpenAIProvider: newChatProvider(cfg.APIKey, base, cfg.Model)}, nil
}
