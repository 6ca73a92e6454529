// Package git provides Git operations for projforge.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runGit runs a git command in the specified directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, output)
	}
	return string(output)
}

// configureGitUser sets the identity required for committing in a fresh repo.
func configureGitUser(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestIsRepository_NotARepo(t *testing.T) {
	tmpDir := t.TempDir()

	client := NewClientWithWorkDir(tmpDir)
	isRepo, err := client.IsRepository(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isRepo {
		t.Error("expected directory not to be a repository")
	}
}

func TestInit_CreatesRepository(t *testing.T) {
	tmpDir := t.TempDir()

	client := NewClientWithWorkDir(tmpDir)
	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	isRepo, err := client.IsRepository(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isRepo {
		t.Error("expected directory to be a repository after init")
	}
}

func TestInit_KeepsExistingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "existing.txt", "keep me")

	client := NewClientWithWorkDir(tmpDir)
	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "existing.txt"))
	if err != nil {
		t.Fatalf("existing file missing after init: %v", err)
	}
	if string(content) != "keep me" {
		t.Errorf("existing file content changed: %q", content)
	}
}

func TestHasChanges(t *testing.T) {
	tmpDir := t.TempDir()
	runGit(t, tmpDir, "init")
	configureGitUser(t, tmpDir)

	client := NewClientWithWorkDir(tmpDir)

	hasChanges, err := client.HasChanges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasChanges {
		t.Error("expected no changes in empty repo")
	}

	writeFile(t, tmpDir, "main.py", "print('hello')\n")

	hasChanges, err = client.HasChanges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasChanges {
		t.Error("expected changes after writing a file")
	}
}

func TestAddAllAndCommit(t *testing.T) {
	tmpDir := t.TempDir()
	runGit(t, tmpDir, "init")
	configureGitUser(t, tmpDir)

	writeFile(t, tmpDir, "main.py", "print('hello')\n")
	writeFile(t, tmpDir, "lib/util.py", "def helper(): pass\n")

	client := NewClientWithWorkDir(tmpDir)
	ctx := context.Background()

	if err := client.AddAll(ctx); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	if err := client.Commit(ctx, "init"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	log := runGit(t, tmpDir, "log", "--oneline")
	if !containsLine(log, "init") {
		t.Errorf("expected commit message 'init' in log, got: %s", log)
	}

	// Both files must land in the single commit.
	shown := runGit(t, tmpDir, "show", "--name-only", "--pretty=format:", "HEAD")
	for _, want := range []string{"main.py", "lib/util.py"} {
		if !containsLine(shown, want) {
			t.Errorf("expected %s in commit, got: %s", want, shown)
		}
	}
}

func TestCommit_FailsWithNothingStaged(t *testing.T) {
	tmpDir := t.TempDir()
	runGit(t, tmpDir, "init")
	configureGitUser(t, tmpDir)

	client := NewClientWithWorkDir(tmpDir)
	err := client.Commit(context.Background(), "empty")
	if err == nil {
		t.Fatal("expected error committing with nothing staged")
	}
}

func containsLine(output, want string) bool {
	for _, line := range splitLines(output) {
		if line == want || (len(line) > len(want) && line[len(line)-len(want):] == want) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
