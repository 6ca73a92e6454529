// Package workspace handles project directory preparation and file tasks for projforge.
package workspace

import (
	"os"
	"path/filepath"

	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

// Workspace represents a prepared project directory.
type Workspace struct {
	// Root is the absolute path of the project directory.
	Root string
	// IsNew reports whether the directory was created by Prepare.
	IsNew bool
}

// Prepare resolves path to an absolute location and ensures it is a directory.
// A missing directory is created with parents and the workspace is marked new.
// A path that exists but is not a directory is rejected before any mutation.
func Prepare(path string) (*Workspace, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, apperrors.NewFileSystemError(err, path)
	}

	info, err := os.Stat(absPath)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(absPath, 0755); err != nil {
			return nil, apperrors.NewFileSystemError(err, absPath)
		}
		return &Workspace{Root: absPath, IsNew: true}, nil
	case err != nil:
		return nil, apperrors.NewFileSystemError(err, absPath)
	case !info.IsDir():
		return nil, apperrors.NewTargetNotDirectoryError(absPath)
	}

	return &Workspace{Root: absPath, IsNew: false}, nil
}

// FileTask represents one file to generate or modify inside a workspace.
type FileTask struct {
	// RelPath is the path as given on the command line, relative to the root.
	RelPath string
	// AbsPath is the resolved location on disk.
	AbsPath string
	// Exists reports whether the file was present when the task was loaded.
	Exists bool
	// ExistingContent holds the file's prior content, empty for new files.
	ExistingContent string
}

// NewFileTask builds a task for relPath, creating missing parent directories
// and loading any existing content.
func (w *Workspace) NewFileTask(relPath string) (*FileTask, error) {
	absPath := filepath.Join(w.Root, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, apperrors.NewFileSystemError(err, absPath)
	}

	task := &FileTask{
		RelPath: relPath,
		AbsPath: absPath,
	}

	content, err := os.ReadFile(absPath)
	switch {
	case os.IsNotExist(err):
		// New file, empty prior content.
	case err != nil:
		return nil, apperrors.NewFileSystemError(err, absPath)
	default:
		task.Exists = true
		task.ExistingContent = string(content)
	}

	return task, nil
}

// WriteResult replaces the file's entire contents with the generated text.
// An empty result produces an empty file.
func (t *FileTask) WriteResult(content string) error {
	if err := os.WriteFile(t.AbsPath, []byte(content), 0644); err != nil {
		return apperrors.NewFileSystemError(err, t.AbsPath)
	}
	return nil
}
