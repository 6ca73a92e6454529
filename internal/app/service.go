// Package app contains the application layer with business orchestration logic.
package app

import (
	"context"
	"fmt"

	"github.com/projforge/projforge/internal/pkg/ai"
	"github.com/projforge/projforge/internal/pkg/config"
	"github.com/projforge/projforge/internal/pkg/errors"
	"github.com/projforge/projforge/internal/pkg/git"
	"github.com/projforge/projforge/internal/pkg/history"
	"github.com/projforge/projforge/internal/pkg/ui"
	"github.com/projforge/projforge/internal/pkg/workspace"
)

// MutateOptions contains the user's request for a mutation run.
type MutateOptions struct {
	Path        string
	ProjectType string
	Description string
	Files       []string
	Message     string
}

// Validate reports the first missing required field.
func (o *MutateOptions) Validate() error {
	switch {
	case o == nil:
		return errors.NewInvalidArgumentsError("options cannot be nil")
	case o.Path == "":
		return errors.NewInvalidArgumentsError("project path is required")
	case o.ProjectType == "":
		return errors.NewInvalidArgumentsError("project type is required")
	case o.Description == "":
		return errors.NewInvalidArgumentsError("project description is required")
	case len(o.Files) == 0:
		return errors.NewInvalidArgumentsError("at least one file is required")
	case o.Message == "":
		return errors.NewInvalidArgumentsError("commit message is required")
	}
	return nil
}

// MutateService orchestrates the project mutation workflow.
type MutateService struct {
	aiProvider ai.Provider
	uiManager  ui.Manager
	historyMgr history.Manager
	config     *config.Config

	// newGitClient exists so tests can substitute a fake bound to the
	// prepared workspace directory.
	newGitClient func(workDir string) git.Client
}

// NewMutateService creates a new MutateService with the given dependencies.
func NewMutateService(
	aiProvider ai.Provider,
	uiManager ui.Manager,
	historyMgr history.Manager,
	cfg *config.Config,
) *MutateService {
	return &MutateService{
		aiProvider: aiProvider,
		uiManager:  uiManager,
		historyMgr: historyMgr,
		config:     cfg,
		newGitClient: func(workDir string) git.Client {
			return git.NewClientWithWorkDir(workDir)
		},
	}
}

// Run executes the complete mutation workflow.
// Workflow: prepare workspace → ensure git repo → generate and write each
// file in order → stage everything → commit → record history.
//
// Files are processed strictly sequentially; the first failing file aborts
// the run, leaving already-written files on disk uncommitted.
func (s *MutateService) Run(ctx context.Context, opts *MutateOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ws, err := workspace.Prepare(opts.Path)
	if err != nil {
		return err
	}
	if ws.IsNew {
		s.uiManager.ShowInfo(fmt.Sprintf("Created project directory %s", ws.Root))
	}

	gitClient := s.newGitClient(ws.Root)
	if err := s.ensureRepository(ctx, gitClient, ws.IsNew); err != nil {
		return err
	}

	for _, relPath := range opts.Files {
		if err := s.mutateFile(ctx, ws, opts, relPath); err != nil {
			return err
		}
	}

	if err := s.commitAll(ctx, gitClient, opts.Message); err != nil {
		return err
	}

	s.recordRun(ws, opts)
	s.uiManager.ShowSuccess(fmt.Sprintf("Committed %d file(s): %s", len(opts.Files), opts.Message))
	return nil
}

// ensureRepository initializes a git repository when the directory is
// freshly created or has no repository yet.
func (s *MutateService) ensureRepository(ctx context.Context, gitClient git.Client, isNew bool) error {
	if !isNew {
		isRepo, err := gitClient.IsRepository(ctx)
		if err != nil {
			return err
		}
		if isRepo {
			return nil
		}
	}

	spinner := s.uiManager.ShowSpinner("Initializing git repository...")
	spinner.Start()
	err := gitClient.Init(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}
	s.uiManager.ShowInfo("Initialized empty git repository")
	return nil
}

// mutateFile generates content for a single file and writes it to disk.
func (s *MutateService) mutateFile(ctx context.Context, ws *workspace.Workspace, opts *MutateOptions, relPath string) error {
	task, err := ws.NewFileTask(relPath)
	if err != nil {
		return err
	}

	s.uiManager.FileStart(task.RelPath, !task.Exists)

	result, err := s.aiProvider.GenerateFile(ctx, &ai.FileRequest{
		ProjectType:     opts.ProjectType,
		Description:     opts.Description,
		FilePath:        task.RelPath,
		ExistingContent: task.ExistingContent,
	}, s.uiManager.StreamFragment)
	if err != nil {
		return err
	}

	if err := task.WriteResult(result.Content); err != nil {
		return err
	}

	s.uiManager.FileDone(task.RelPath, !task.Exists)
	return nil
}

// commitAll stages the whole working tree and commits it with the user's
// message.
func (s *MutateService) commitAll(ctx context.Context, gitClient git.Client, message string) error {
	spinner := s.uiManager.ShowSpinner("Committing changes...")
	spinner.Start()
	defer spinner.Stop()

	if err := gitClient.AddAll(ctx); err != nil {
		return err
	}
	return gitClient.Commit(ctx, message)
}

// recordRun saves the completed run to history. History failures are
// reported but never fail a run that already committed.
func (s *MutateService) recordRun(ws *workspace.Workspace, opts *MutateOptions) {
	if s.historyMgr == nil {
		return
	}

	entry := &history.Entry{
		Path:        ws.Root,
		ProjectType: opts.ProjectType,
		Files:       opts.Files,
		Message:     opts.Message,
		Committed:   true,
	}
	if s.aiProvider != nil {
		entry.Provider = s.aiProvider.Name()
	}
	if s.config != nil {
		entry.Model = s.config.Provider.Model
	}

	if err := s.historyMgr.Save(entry); err != nil {
		errors.Warn("failed to record run history: %v", err)
	}
}
