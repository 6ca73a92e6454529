// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"context"
)

// FileRequest contains the data needed to generate one file's content.
type FileRequest struct {
	// ProjectType is the free-text project type label (python, nodejs, ...).
	ProjectType string
	// Description is the free-text project description.
	Description string
	// FilePath is the file's path relative to the project root.
	FilePath string
	// ExistingContent holds the current file content; empty means the file
	// is new and the prompt uses "create" framing instead of "modify".
	ExistingContent string
}

// IsModify reports whether the request edits an existing file.
func (r *FileRequest) IsModify() bool {
	return r.ExistingContent != ""
}

// FileResult contains the outcome of a streamed generation.
type FileResult struct {
	// Content is the concatenation of all streamed fragments in arrival order.
	Content string
	// Fragments is the number of non-empty fragments received.
	Fragments int
	// Model is the model that produced the content.
	Model string
}

// StreamFunc receives each text fragment as it arrives. It is a progress
// side channel; accumulation into the final content happens in the provider.
type StreamFunc func(fragment string)

// ProviderConfig contains configuration for an AI provider.
type ProviderConfig struct {
	APIKey      string
	Model       string
	Endpoint    string
	Temperature float32
	MaxTokens   int
}

// Provider defines the interface for AI providers.
// GenerateFile submits the request as a single user turn with streaming
// enabled and consumes the stream to completion. End-of-stream is the only
// completion signal; there is no retry.
type Provider interface {
	GenerateFile(ctx context.Context, req *FileRequest, stream StreamFunc) (*FileResult, error)
	Name() string
	ValidateConfig(config ProviderConfig) error
}
