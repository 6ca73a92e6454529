// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"fmt"

	"github.com/projforge/projforge/internal/pkg/config"
)

// ProviderName constants for supported providers.
const (
	ProviderNameOpenAI   = "openai"
	ProviderNameDeepSeek = "deepseek"
	ProviderNameOllama   = "ollama"
)

// NewProvider creates a new AI provider based on the configuration.
func NewProvider(cfg *config.ProviderConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("provider configuration is required")
	}

	aiConfig := ProviderConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Endpoint:    cfg.Endpoint,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}

	switch cfg.Name {
	case ProviderNameOpenAI, "":
		// Default to OpenAI if no provider specified
		return NewOpenAIProvider(aiConfig)

	case ProviderNameDeepSeek:
		return NewDeepSeekProvider(aiConfig)

	case ProviderNameOllama:
		return NewOllamaProvider(aiConfig)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
