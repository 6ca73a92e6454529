package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projforge/projforge/internal/pkg/config"
	"github.com/projforge/projforge/internal/pkg/history"
)

// DefaultHistoryLimit is the default number of history entries to display.
const DefaultHistoryLimit = 20

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "View past mutation runs",
		Long: `View the history of past projforge runs.

By default, displays the most recent 20 entries. Use --limit to change
the number of entries shown.

Examples:
  projforge history           # Show last 20 runs
  projforge history --limit 5 # Show last 5 runs
  projforge history clear     # Clear all history`,
		RunE: runHistoryList,
	}

	historyCmd.Flags().IntP("limit", "l", DefaultHistoryLimit, "Number of entries to display")

	historyCmd.AddCommand(newHistoryClearCmd())

	return historyCmd
}

// runHistoryList displays the history entries.
func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	historyMgr, enabled, err := newHistoryManager(cmd)
	if err != nil {
		return err
	}
	if !enabled {
		fmt.Println("History is disabled. Enable it with: PROJFORGE_HISTORY_ENABLED=true")
		return nil
	}

	entries, err := historyMgr.List(limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	fmt.Printf("Showing %d most recent runs:\n\n", len(entries))
	// Newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		fmt.Printf("%s  %s\n", entry.Timestamp.Format("2006-01-02 15:04"), entry.Message)
		fmt.Printf("  path:  %s (%s)\n", entry.Path, entry.ProjectType)
		fmt.Printf("  files: %s\n", strings.Join(entry.Files, ", "))
		if entry.Provider != "" {
			fmt.Printf("  model: %s/%s\n", entry.Provider, entry.Model)
		}
		fmt.Println()
	}

	return nil
}

// newHistoryClearCmd creates the history clear subcommand.
func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			historyMgr, enabled, err := newHistoryManager(cmd)
			if err != nil {
				return err
			}
			if !enabled {
				fmt.Println("History is disabled; nothing to clear.")
				return nil
			}

			if err := historyMgr.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}

// newHistoryManager builds a history manager from the effective config.
func newHistoryManager(cmd *cobra.Command) (history.Manager, bool, error) {
	envPath, _ := cmd.Flags().GetString("env")
	cfgMgr := config.NewManager(envPath)

	// History commands never call the provider; don't require an API key.
	cfgMgr.SetOverride("provider.name", "ollama")

	cfg, err := cfgMgr.Load()
	if err != nil {
		return nil, false, err
	}
	if !cfg.History.Enabled {
		return nil, false, nil
	}

	return history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries), true, nil
}
