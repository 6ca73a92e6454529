package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	mgr := NewManager(filepath.Join(t.TempDir(), ".env"))
	cfg, err := mgr.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrMissingAPIKey, appErr.Code)
	assert.Equal(t, 1, appErr.Code.ExitCode())
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key-from-environment")

	mgr := NewManager(filepath.Join(t.TempDir(), ".env"))
	cfg, err := mgr.Load()

	require.NoError(t, err)
	assert.Equal(t, "sk-test-key-from-environment", cfg.Provider.APIKey)
	assert.Equal(t, DefaultModel, cfg.Provider.Model)
	assert.Equal(t, "openai", cfg.Provider.Name)
}

func TestLoad_APIKeyFromDotEnvFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("OPENAI_API_KEY=sk-test-key-from-file\n"), 0600))

	mgr := NewManager(envPath)
	cfg, err := mgr.Load()

	require.NoError(t, err)
	assert.Equal(t, "sk-test-key-from-file", cfg.Provider.APIKey)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("PROJFORGE_PROVIDER_MODEL", "gpt-4o-mini")
	t.Setenv("PROJFORGE_HISTORY_ENABLED", "false")

	mgr := NewManager(filepath.Join(t.TempDir(), ".env"))
	cfg, err := mgr.Load()

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Provider.Model)
	assert.False(t, cfg.History.Enabled)
}

func TestLoad_OllamaNeedsNoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PROJFORGE_PROVIDER_NAME", "ollama")

	mgr := NewManager(filepath.Join(t.TempDir(), ".env"))
	cfg, err := mgr.Load()

	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.Provider.Name)
}

func TestSetOverride_TakesPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("PROJFORGE_PROVIDER_MODEL", "env-model")

	mgr := NewManager(filepath.Join(t.TempDir(), ".env"))
	mgr.SetOverride("provider.model", "flag-model")

	cfg, err := mgr.Load()
	require.NoError(t, err)
	assert.Equal(t, "flag-model", cfg.Provider.Model)
}
