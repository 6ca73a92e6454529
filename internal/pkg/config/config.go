// Package config provides configuration management for projforge.
package config

// Config represents the complete projforge configuration.
// It is built once at program entry and passed by parameter; there is no
// process-wide mutable configuration state.
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	History  HistoryConfig  `mapstructure:"history"`
	UI       UIConfig       `mapstructure:"ui"`
}

// ProviderConfig contains AI provider settings.
type ProviderConfig struct {
	Name        string  `mapstructure:"name"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Endpoint    string  `mapstructure:"endpoint"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// HistoryConfig contains run history settings.
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	MaxEntries int    `mapstructure:"max_entries"`
	FilePath   string `mapstructure:"file_path"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}
