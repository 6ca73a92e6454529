package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projforge/projforge/internal/pkg/config"
)

func TestNewProvider_NilConfig(t *testing.T) {
	_, err := NewProvider(nil)
	assert.Error(t, err)
}

func TestNewProvider_DefaultsToOpenAI(t *testing.T) {
	provider, err := NewProvider(&config.ProviderConfig{
		APIKey: testAPIKey,
	})
	require.NoError(t, err)
	assert.Equal(t, ProviderNameOpenAI, provider.Name())
}

func TestNewProvider_DeepSeek(t *testing.T) {
	provider, err := NewProvider(&config.ProviderConfig{
		Name:   ProviderNameDeepSeek,
		APIKey: testAPIKey,
	})
	require.NoError(t, err)
	assert.Equal(t, ProviderNameDeepSeek, provider.Name())
}

func TestNewProvider_Ollama(t *testing.T) {
	provider, err := NewProvider(&config.ProviderConfig{
		Name: ProviderNameOllama,
	})
	require.NoError(t, err)
	assert.Equal(t, ProviderNameOllama, provider.Name())
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(&config.ProviderConfig{
		Name:   "claude",
		APIKey: testAPIKey,
	})
	assert.Error(t, err)
}
