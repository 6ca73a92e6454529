package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/projforge/projforge/internal/app"
	"github.com/projforge/projforge/internal/pkg/ai"
	"github.com/projforge/projforge/internal/pkg/config"
	apperrors "github.com/projforge/projforge/internal/pkg/errors"
	"github.com/projforge/projforge/internal/pkg/history"
	"github.com/projforge/projforge/internal/pkg/ui"
)

// ForgeTimeout bounds a whole run, including all streaming calls.
const ForgeTimeout = 15 * time.Minute

// ForgeFlags holds the flags for the forge command.
type ForgeFlags struct {
	Path        string
	ProjectType string
	Description string
	Files       []string
	Message     string
	Yes         bool
}

// NewForgeCmd creates the forge command.
func NewForgeCmd() *cobra.Command {
	flags := &ForgeFlags{}

	cmd := &cobra.Command{
		Use:   "forge",
		Short: "Generate project files and commit them",
		Long: `Generate content for each requested file using the configured AI
provider, write the files under the target directory, and commit the
result in a single git commit.

Missing directories are created and a git repository is initialized
when the target has none. Existing files are sent to the provider and
fully replaced by the generated content.

Examples:
  projforge forge -p ./demo -t python -d "hello world app" -f main.py -m "initial commit"
  projforge forge -p ./demo -t go -d "tiny web server" -f main.go,go.mod -m "scaffold server" --yes
  projforge forge                       # interactive: prompts for missing fields`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForge(cmd, flags)
		},
	}

	addForgeFlags(cmd, flags)
	return cmd
}

// addForgeFlags registers the forge flags on a command. The root command
// carries the same set so `projforge` alone behaves like `projforge forge`.
func addForgeFlags(cmd *cobra.Command, flags *ForgeFlags) {
	cmd.Flags().StringVarP(&flags.Path, "path", "p", "", "Target project directory")
	cmd.Flags().StringVarP(&flags.ProjectType, "type", "t", "", "Project type (e.g. python, go, react)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Project description")
	cmd.Flags().StringSliceVarP(&flags.Files, "files", "f", nil, "Files to generate (comma-separated or repeated)")
	cmd.Flags().StringVarP(&flags.Message, "message", "m", "", "Commit message for the run")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip prompts; fail on missing flags instead of asking")
}

// runForge executes the forge command logic.
func runForge(cmd *cobra.Command, flags *ForgeFlags) error {
	ctx, cancel := context.WithTimeout(context.Background(), ForgeTimeout)
	defer cancel()

	verbose, _ := cmd.Flags().GetBool("verbose")
	envPath, _ := cmd.Flags().GetString("env")
	providerOverride, _ := cmd.Flags().GetString("provider")
	modelOverride, _ := cmd.Flags().GetString("model")

	apperrors.SetVerbose(verbose)

	cfgMgr := config.NewManager(envPath)

	// Flag overrides take highest priority (flags > env > .env > defaults).
	if providerOverride != "" {
		cfgMgr.SetOverride("provider.name", providerOverride)
		apperrors.Debug("Provider overridden via flag: %s", providerOverride)
	}
	if modelOverride != "" {
		cfgMgr.SetOverride("provider.model", modelOverride)
		apperrors.Debug("Model overridden via flag: %s", modelOverride)
	}

	// Resolve configuration first: a missing API key must fail before any
	// directory or git side effect.
	cfg, err := cfgMgr.Load()
	if err != nil {
		return err
	}

	if err := collectMissingFields(flags); err != nil {
		return err
	}

	if verbose {
		apperrors.Info("Using provider: %s", cfg.Provider.Name)
		apperrors.Info("Using model: %s", cfg.Provider.Model)
		if cfg.Provider.APIKey != "" {
			apperrors.Info("API key: %s", apperrors.MaskAPIKey(cfg.Provider.APIKey))
		}
	}

	aiProvider, err := ai.NewProvider(&cfg.Provider)
	if err != nil {
		apperrors.Error("Failed to create AI provider: %v", err)
		return err
	}
	apperrors.Debug("AI provider created: %s", aiProvider.Name())

	if !flags.Yes {
		confirmed, err := ui.ConfirmRun(flags.Path, flags.Files)
		if err != nil {
			return err
		}
		if !confirmed {
			apperrors.Info("Run cancelled")
			return nil
		}
	}

	var uiMgr ui.Manager
	if flags.Yes {
		uiMgr = ui.NewPlainManager()
	} else {
		uiMgr = ui.NewDefaultManager(cfg.UI.ColorEnabled)
	}

	var historyMgr history.Manager
	if cfg.History.Enabled {
		historyMgr = history.NewFileManager(cfg.History.FilePath, cfg.History.MaxEntries)
	}

	service := app.NewMutateService(aiProvider, uiMgr, historyMgr, cfg)
	return service.Run(ctx, &app.MutateOptions{
		Path:        flags.Path,
		ProjectType: flags.ProjectType,
		Description: flags.Description,
		Files:       flags.Files,
		Message:     flags.Message,
	})
}

// collectMissingFields fills unset invocation fields, interactively unless
// --yes suppresses prompting.
func collectMissingFields(flags *ForgeFlags) error {
	if flags.Yes {
		// Validation in the service reports what is missing.
		return nil
	}

	values := &ui.FormValues{
		Path:        flags.Path,
		ProjectType: flags.ProjectType,
		Description: flags.Description,
		FilesRaw:    strings.Join(flags.Files, ","),
		Message:     flags.Message,
	}
	if err := ui.RunInvocationForm(values); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInvalidArguments, "interactive setup failed")
	}

	flags.Path = values.Path
	flags.ProjectType = values.ProjectType
	flags.Description = values.Description
	flags.Files = ui.SplitFileList(values.FilesRaw)
	flags.Message = values.Message
	return nil
}
