// Package cmd contains the CLI command definitions for projforge.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the projforge CLI.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	flags := &ForgeFlags{}

	rootCmd := &cobra.Command{
		Use:   "projforge",
		Short: "AI-powered project file generator",
		Long: `projforge creates or mutates project files using an AI provider and
commits the result to git in a single run.

Given a target directory, a project type, a description, and a list of
files, it streams generated content for each file from the configured
AI provider (OpenAI, DeepSeek, Ollama), writes the files to disk, and
records everything in one git commit.`,
		Version: version,
		// Errors carry their own exit codes; main formats them once.
		SilenceErrors: true,
		SilenceUsage:  true,
		// Default action runs the forge workflow.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForge(cmd, flags)
		},
	}

	rootCmd.SetVersionTemplate(`projforge {{.Version}}
Commit: ` + commitHash + `
Built:  ` + date + "\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("env", "", "Path to dotenv file (default: ./.env)")
	rootCmd.PersistentFlags().String("provider", "", "AI provider to use (openai, deepseek, ollama)")
	rootCmd.PersistentFlags().String("model", "", "AI model to use")

	addForgeFlags(rootCmd, flags)

	rootCmd.AddCommand(NewForgeCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}
