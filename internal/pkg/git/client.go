// Package git provides Git operations for projforge.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

const (
	// GitCommandTimeout is the default timeout for git commands.
	GitCommandTimeout = 30 * time.Second
)

// Client defines the interface for Git operations against a project directory.
type Client interface {
	IsRepository(ctx context.Context) (bool, error)
	Init(ctx context.Context) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	HasChanges(ctx context.Context) (bool, error)
}

// DefaultClient implements the Client interface using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// run executes a git command with the client's working directory and timeout.
func (c *DefaultClient) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, GitCommandTimeout)
	defer cancel()

	apperrors.LogGitCommand(c.workDir, args)

	cmd := exec.CommandContext(ctx, "git", args...)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return output, apperrors.NewTimeoutError(ctx.Err())
		}
		return output, apperrors.NewGitError(err, string(output))
	}
	return output, nil
}

// IsRepository reports whether the working directory contains git metadata.
// The check is a plain stat on .git so an unborn repository still counts.
func (c *DefaultClient) IsRepository(ctx context.Context) (bool, error) {
	dir := c.workDir
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, apperrors.NewFileSystemError(err, dir)
	}
	return info.IsDir(), nil
}

// Init initializes a new git repository in the working directory.
func (c *DefaultClient) Init(ctx context.Context) error {
	_, err := c.run(ctx, "init")
	return err
}

// AddAll stages all changes (git add .).
func (c *DefaultClient) AddAll(ctx context.Context) error {
	_, err := c.run(ctx, "add", ".")
	return err
}

// Commit records a commit with the given message.
func (c *DefaultClient) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "-m", message)
	return err
}

// HasChanges reports whether the working tree has any staged or unstaged changes.
func (c *DefaultClient) HasChanges(ctx context.Context) (bool, error) {
	output, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return len(strings.TrimSpace(string(output))) > 0, nil
}
