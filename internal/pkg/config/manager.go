package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

const (
	// DefaultModel is the model requested when none is specified.
	DefaultModel = "gpt-4-turbo-preview"

	// EnvFileName is the dotenv-style file read from the working directory.
	EnvFileName = ".env"
)

// ViperManager loads configuration from a local .env file, the process
// environment, and built-in defaults. Priority: flags > env > .env > defaults.
type ViperManager struct {
	v       *viper.Viper
	envPath string
}

// NewManager creates a new configuration manager.
// If envPath is empty, ".env" in the working directory is used.
func NewManager(envPath string) *ViperManager {
	v := viper.New()

	if envPath == "" {
		envPath = EnvFileName
	}
	v.SetConfigFile(envPath)
	v.SetConfigType("env")

	v.SetEnvPrefix("PROJFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvVars(v)

	return &ViperManager{
		v:       v,
		envPath: envPath,
	}
}

// bindEnvVars explicitly binds environment variables for all config keys.
// Viper's AutomaticEnv doesn't work well with nested keys, and the credential
// deliberately uses the conventional OPENAI_API_KEY name rather than the
// PROJFORGE prefix.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("provider.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("provider.name", "PROJFORGE_PROVIDER_NAME")
	_ = v.BindEnv("provider.model", "PROJFORGE_PROVIDER_MODEL")
	_ = v.BindEnv("provider.endpoint", "PROJFORGE_PROVIDER_ENDPOINT")
	_ = v.BindEnv("provider.temperature", "PROJFORGE_PROVIDER_TEMPERATURE")
	_ = v.BindEnv("provider.max_tokens", "PROJFORGE_PROVIDER_MAX_TOKENS")

	_ = v.BindEnv("history.enabled", "PROJFORGE_HISTORY_ENABLED")
	_ = v.BindEnv("history.max_entries", "PROJFORGE_HISTORY_MAX_ENTRIES")
	_ = v.BindEnv("history.file_path", "PROJFORGE_HISTORY_FILE_PATH")

	_ = v.BindEnv("ui.color_enabled", "PROJFORGE_UI_COLOR_ENABLED")
}

// setDefaults sets the default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.name", "openai")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.model", DefaultModel)
	v.SetDefault("provider.endpoint", "")
	v.SetDefault("provider.temperature", 0.7)
	v.SetDefault("provider.max_tokens", 0)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)
	homeDir, _ := os.UserHomeDir()
	v.SetDefault("history.file_path", filepath.Join(homeDir, ".projforge", "history.json"))

	v.SetDefault("ui.color_enabled", true)
}

// EnvPath returns the path of the dotenv file consulted by Load.
func (m *ViperManager) EnvPath() string {
	return m.envPath
}

// SetOverride sets a temporary override for a configuration key.
// Used for command-line flag overrides that shouldn't persist.
func (m *ViperManager) SetOverride(key string, value interface{}) {
	m.v.Set(key, value)
}

// Load reads the .env file (if present) and resolves the configuration.
// A missing API key is a configuration error detected here, before any
// filesystem or git side effect.
func (m *ViperManager) Load() (*Config, error) {
	if err := m.v.ReadInConfig(); err != nil {
		// A missing .env file is fine; the environment may carry the key.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to read env file")
		}
	}

	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to unmarshal config")
	}

	if cfg.Provider.APIKey == "" && cfg.Provider.Name != "ollama" {
		return nil, apperrors.NewMissingAPIKeyError()
	}

	return &cfg, nil
}

// List returns all effective configuration values as a map.
func (m *ViperManager) List() map[string]interface{} {
	_ = m.v.ReadInConfig()
	return m.v.AllSettings()
}
