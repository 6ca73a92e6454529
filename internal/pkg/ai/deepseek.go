// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultDeepSeekModel is the default model for DeepSeek.
	DefaultDeepSeekModel = "deepseek-chat"

	// DefaultDeepSeekEndpoint is the default API endpoint for DeepSeek.
	DefaultDeepSeekEndpoint = "https://api.deepseek.com/v1"
)

// DeepSeekProvider implements the Provider interface for DeepSeek.
// DeepSeek uses an OpenAI-compatible API, so we leverage the go-openai client.
type DeepSeekProvider struct {
	client         *openai.Client
	config         ProviderConfig
	promptTemplate *PromptTemplate
}

// NewDeepSeekProvider creates a new DeepSeek provider.
func NewDeepSeekProvider(config ProviderConfig) (*DeepSeekProvider, error) {
	if err := validateDeepSeekConfig(config); err != nil {
		return nil, err
	}

	// Set DeepSeek-specific defaults
	if config.Model == "" {
		config.Model = DefaultDeepSeekModel
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultDeepSeekEndpoint
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.Endpoint
	clientConfig.HTTPClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	client := openai.NewClientWithConfig(clientConfig)

	return &DeepSeekProvider{
		client:         client,
		config:         config,
		promptTemplate: NewPromptTemplate(),
	}, nil
}

// validateDeepSeekConfig validates the DeepSeek provider configuration.
func validateDeepSeekConfig(config ProviderConfig) error {
	if config.APIKey == "" {
		return errors.New("API key is required for DeepSeek provider")
	}

	// DeepSeek API keys are typically longer than 20 characters
	if len(config.APIKey) < 20 {
		return errors.New("API key appears to be invalid (too short)")
	}

	return nil
}

// Name returns the provider name.
func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

// ValidateConfig validates the provider configuration.
func (p *DeepSeekProvider) ValidateConfig(config ProviderConfig) error {
	return validateDeepSeekConfig(config)
}

// GenerateFile generates file content using a streamed chat completion.
func (p *DeepSeekProvider) GenerateFile(ctx context.Context, req *FileRequest, stream StreamFunc) (*FileResult, error) {
	return streamChatCompletion(ctx, p.client, p.config, p.promptTemplate, p.Name(), req, stream)
}

// SetPromptTemplate sets a custom prompt template.
func (p *DeepSeekProvider) SetPromptTemplate(pt *PromptTemplate) {
	if pt != nil {
		p.promptTemplate = pt
	}
}
