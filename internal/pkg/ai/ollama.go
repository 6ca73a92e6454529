// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

const (
	// DefaultOllamaModel is the default model for Ollama.
	DefaultOllamaModel = "codellama"

	// DefaultOllamaEndpoint is the default server URL for Ollama.
	DefaultOllamaEndpoint = "http://localhost:11434"
)

// OllamaProvider implements the Provider interface for local Ollama models
// via the langchaingo client.
type OllamaProvider struct {
	llm            *ollama.LLM
	config         ProviderConfig
	promptTemplate *PromptTemplate
}

// NewOllamaProvider creates a new Ollama provider.
func NewOllamaProvider(config ProviderConfig) (*OllamaProvider, error) {
	if err := validateOllamaConfig(config); err != nil {
		return nil, err
	}

	// Ollama-specific defaults; no API key is needed for a local server.
	if config.Model == "" {
		config.Model = DefaultOllamaModel
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultOllamaEndpoint
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}

	llm, err := ollama.New(
		ollama.WithModel(config.Model),
		ollama.WithServerURL(config.Endpoint),
	)
	if err != nil {
		return nil, apperrors.NewAIProviderError("ollama", err)
	}

	return &OllamaProvider{
		llm:            llm,
		config:         config,
		promptTemplate: NewPromptTemplate(),
	}, nil
}

// validateOllamaConfig validates the Ollama provider configuration.
func validateOllamaConfig(config ProviderConfig) error {
	if config.Endpoint != "" &&
		!strings.HasPrefix(config.Endpoint, "http://") &&
		!strings.HasPrefix(config.Endpoint, "https://") {
		return errors.New("endpoint must start with http:// or https://")
	}
	return nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// ValidateConfig validates the provider configuration.
func (p *OllamaProvider) ValidateConfig(config ProviderConfig) error {
	return validateOllamaConfig(config)
}

// GenerateFile generates file content by streaming tokens from the local model.
func (p *OllamaProvider) GenerateFile(ctx context.Context, req *FileRequest, stream StreamFunc) (*FileResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.FilePath == "" {
		return nil, errors.New("file path is required")
	}

	userPrompt, err := p.promptTemplate.RenderUserPrompt(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrAIProviderFailed, "failed to render prompt")
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	apperrors.LogAPIRequest(p.Name(), p.config.Endpoint, p.config.Model, len(userPrompt))
	startTime := time.Now()

	var sb strings.Builder
	fragments := 0

	opts := []llms.CallOption{
		llms.WithTemperature(float64(p.config.Temperature)),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if len(chunk) == 0 {
				return nil
			}
			sb.Write(chunk)
			fragments++
			if stream != nil {
				stream(string(chunk))
			}
			return nil
		}),
	}
	if p.config.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.config.MaxTokens))
	}

	if _, err := p.llm.GenerateContent(ctx, messages, opts...); err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			appErr := apperrors.NewNetworkError(err)
			appErr.Message = "cannot connect to ollama"
			return nil, appErr.WithSuggestion("Please ensure Ollama is running using 'ollama serve'")
		}
		return nil, apperrors.NewAIProviderError(p.Name(), err)
	}

	apperrors.LogAPIStream(p.Name(), fragments, sb.Len(), time.Since(startTime))

	return &FileResult{
		Content:   sb.String(),
		Fragments: fragments,
		Model:     p.config.Model,
	}, nil
}

// SetPromptTemplate sets a custom prompt template.
func (p *OllamaProvider) SetPromptTemplate(pt *PromptTemplate) {
	if pt != nil {
		p.promptTemplate = pt
	}
}
