package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true) // verbose mode

	logger.Error("error message")
	logger.Warn("warn message")
	logger.Info("info message")
	logger.Debug("debug message")

	output := buf.String()

	if !strings.Contains(output, "ERROR") {
		t.Error("Output should contain ERROR")
	}
	if !strings.Contains(output, "WARN") {
		t.Error("Output should contain WARN")
	}
	if !strings.Contains(output, "INFO") {
		t.Error("Output should contain INFO")
	}
	if !strings.Contains(output, "DEBUG") {
		t.Error("Output should contain DEBUG")
	}
}

func TestLogger_NonVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false) // non-verbose mode

	logger.Error("error message")
	logger.Warn("warn message")
	logger.Info("info message")
	logger.Debug("debug message")

	output := buf.String()

	if !strings.Contains(output, "ERROR") {
		t.Error("Output should contain ERROR even in non-verbose mode")
	}
	if strings.Contains(output, "WARN") {
		t.Error("Output should not contain WARN in non-verbose mode")
	}
	if strings.Contains(output, "INFO") {
		t.Error("Output should not contain INFO in non-verbose mode")
	}
	if strings.Contains(output, "DEBUG") {
		t.Error("Output should not contain DEBUG in non-verbose mode")
	}
}

func TestLogger_LogAPIStream(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.LogAPIStream("openai", 42, 1024, 3*time.Second)

	output := buf.String()
	if !strings.Contains(output, "provider=openai") {
		t.Errorf("Expected provider in output: %v", output)
	}
	if !strings.Contains(output, "fragments=42") {
		t.Errorf("Expected fragment count in output: %v", output)
	}
}

func TestLogger_LogAPIStreamSkippedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	logger.LogAPIStream("openai", 42, 1024, 3*time.Second)

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestLogger_LogGitCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.LogGitCommand("/tmp/demo", []string{"commit", "-m", "initial commit"})

	output := buf.String()
	if !strings.Contains(output, "git commit -m initial commit") {
		t.Errorf("Expected git command in output: %v", output)
	}
	if !strings.Contains(output, "dir=/tmp/demo") {
		t.Errorf("Expected working directory in output: %v", output)
	}
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose mode enabled")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose mode disabled")
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"empty", "", "****"},
		{"short", "abc", "****"},
		{"normal", "sk-abcdef123456", "***********3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskAPIKey(tt.key); got != tt.expected {
				t.Errorf("MaskAPIKey(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}
