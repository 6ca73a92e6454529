// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

const (
	// DefaultOpenAIModel is the default model for OpenAI.
	DefaultOpenAIModel = "gpt-4-turbo-preview"

	// DefaultTemperature is the default temperature for generation.
	DefaultTemperature = 0.7
)

// OpenAIProvider implements the Provider interface for OpenAI.
type OpenAIProvider struct {
	client         *openai.Client
	config         ProviderConfig
	promptTemplate *PromptTemplate
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config ProviderConfig) (*OpenAIProvider, error) {
	if err := validateOpenAIConfig(config); err != nil {
		return nil, err
	}

	// Set defaults
	if config.Model == "" {
		config.Model = DefaultOpenAIModel
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}

	clientConfig := openai.DefaultConfig(config.APIKey)

	// Support custom endpoints (for OpenAI-compatible APIs)
	if config.Endpoint != "" {
		clientConfig.BaseURL = config.Endpoint
	}

	// Connection pooling but no overall client timeout: a streamed
	// completion can legitimately run longer than any fixed deadline.
	clientConfig.HTTPClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	client := openai.NewClientWithConfig(clientConfig)

	return &OpenAIProvider{
		client:         client,
		config:         config,
		promptTemplate: NewPromptTemplate(),
	}, nil
}

// validateOpenAIConfig validates the OpenAI provider configuration.
func validateOpenAIConfig(config ProviderConfig) error {
	if config.APIKey == "" {
		return errors.New("API key is required for OpenAI provider")
	}

	// OpenAI keys typically start with "sk-" and are much longer than this
	if len(config.APIKey) < 20 {
		return errors.New("API key appears to be invalid (too short)")
	}

	return nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// ValidateConfig validates the provider configuration.
func (p *OpenAIProvider) ValidateConfig(config ProviderConfig) error {
	return validateOpenAIConfig(config)
}

// GenerateFile generates file content using a streamed chat completion.
func (p *OpenAIProvider) GenerateFile(ctx context.Context, req *FileRequest, stream StreamFunc) (*FileResult, error) {
	return streamChatCompletion(ctx, p.client, p.config, p.promptTemplate, p.Name(), req, stream)
}

// SetPromptTemplate sets a custom prompt template.
func (p *OpenAIProvider) SetPromptTemplate(pt *PromptTemplate) {
	if pt != nil {
		p.promptTemplate = pt
	}
}

// streamChatCompletion submits the rendered prompt as a single user turn with
// streaming enabled, forwards each fragment to the sink, and returns the
// concatenated result. Shared between the OpenAI and DeepSeek providers.
func streamChatCompletion(
	ctx context.Context,
	client *openai.Client,
	config ProviderConfig,
	promptTemplate *PromptTemplate,
	providerName string,
	req *FileRequest,
	sink StreamFunc,
) (*FileResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.FilePath == "" {
		return nil, errors.New("file path is required")
	}

	userPrompt, err := promptTemplate.RenderUserPrompt(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrAIProviderFailed, "failed to render prompt")
	}

	chatReq := openai.ChatCompletionRequest{
		Model: config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
		Stream:      true,
	}

	apperrors.LogAPIRequest(providerName, config.Endpoint, config.Model, len(userPrompt))
	startTime := time.Now()

	completionStream, err := client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, wrapAPIError(providerName, err)
	}
	defer completionStream.Close()

	var sb strings.Builder
	fragments := 0

	for {
		resp, err := completionStream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Whatever arrived before the interruption is lost with the
			// error; the caller decides what to do with earlier files.
			return nil, apperrors.NewStreamInterruptedError(err, req.FilePath)
		}

		if len(resp.Choices) == 0 {
			continue
		}
		fragment := resp.Choices[0].Delta.Content
		if fragment == "" {
			continue
		}

		sb.WriteString(fragment)
		fragments++
		if sink != nil {
			sink(fragment)
		}
	}

	apperrors.LogAPIStream(providerName, fragments, sb.Len(), time.Since(startTime))

	return &FileResult{
		Content:   sb.String(),
		Fragments: fragments,
		Model:     config.Model,
	}, nil
}

// wrapAPIError wraps an API error with a typed, user-friendly error.
func wrapAPIError(providerName string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return apperrors.NewAuthenticationError(providerName)
		case http.StatusTooManyRequests:
			return apperrors.NewRateLimitError()
		default:
			return apperrors.NewAIProviderError(providerName, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(err)
	}

	return apperrors.NewAIProviderError(providerName, err)
}
