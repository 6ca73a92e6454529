package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projforge/projforge/internal/pkg/config"
	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect projforge configuration",
		Long: `Inspect the effective projforge configuration.

Configuration is resolved from command-line flags, PROJFORGE_* environment
variables, a local .env file, and built-in defaults, in that priority
order. The OpenAI credential is read from OPENAI_API_KEY.`,
	}

	configCmd.AddCommand(newConfigListCmd())

	return configCmd
}

// newConfigListCmd creates the 'config list' subcommand.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath, _ := cmd.Flags().GetString("env")
			mgr := config.NewManager(envPath)

			settings := flattenSettings("", mgr.List())

			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			fmt.Printf("Configuration (env file: %s):\n\n", mgr.EnvPath())
			for _, key := range keys {
				value := settings[key]
				if strings.Contains(key, "api_key") {
					value = apperrors.MaskAPIKey(fmt.Sprintf("%v", value))
				}
				fmt.Printf("  %s = %v\n", key, value)
			}
			return nil
		},
	}
}

// flattenSettings converts viper's nested settings map to dotted keys.
func flattenSettings(prefix string, settings map[string]interface{}) map[string]interface{} {
	flat := make(map[string]interface{})
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			for k, v := range flattenSettings(fullKey, nested) {
				flat[k] = v
			}
			continue
		}
		flat[fullKey] = value
	}
	return flat
}
