package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"MissingAPIKey", ErrMissingAPIKey, 1},
		{"InvalidArguments", ErrInvalidArguments, 1},
		{"TargetNotDirectory", ErrTargetNotDirectory, 1},
		{"InvalidConfig", ErrInvalidConfig, 1},
		{"GitCommandFailed", ErrGitCommandFailed, 2},
		{"FileSystemError", ErrFileSystemError, 2},
		{"AIProviderFailed", ErrAIProviderFailed, 3},
		{"StreamInterrupted", ErrStreamInterrupted, 3},
		{"NetworkError", ErrNetworkError, 3},
		{"RateLimited", ErrRateLimited, 3},
		{"Timeout", ErrTimeout, 3},
		{"AuthenticationFailed", ErrAuthenticationFailed, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "without cause",
			err: &AppError{
				Code:    ErrMissingAPIKey,
				Message: "OPENAI_API_KEY environment variable not found",
			},
			expected: "OPENAI_API_KEY environment variable not found",
		},
		{
			name: "with cause",
			err: &AppError{
				Code:    ErrGitCommandFailed,
				Message: "git command failed",
				Cause:   errors.New("exit status 1"),
			},
			expected: "git command failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, ErrFileSystemError, "write failed")

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Expected Unwrap to return the cause")
	}
}

func TestAppError_WithContextAndSuggestion(t *testing.T) {
	err := New(ErrGitCommandFailed, "git command failed").
		WithContext("output", "fatal: not a git repository").
		WithSuggestion("run git init first")

	if err.Context["output"] != "fatal: not a git repository" {
		t.Errorf("Context not set: %v", err.Context)
	}
	if err.Suggestion != "run git init first" {
		t.Errorf("Suggestion not set: %v", err.Suggestion)
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NewMissingAPIKeyError()
	wrapped := fmt.Errorf("loading config: %w", appErr)

	if got := GetAppError(wrapped); got == nil || got.Code != ErrMissingAPIKey {
		t.Errorf("GetAppError() = %v, want missing-key error", got)
	}
	if got := GetAppError(errors.New("plain")); got != nil {
		t.Errorf("GetAppError() on plain error = %v, want nil", got)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil-safe plain error", errors.New("plain"), 1},
		{"missing key", NewMissingAPIKeyError(), 1},
		{"git failure", NewGitError(errors.New("exit status 128"), ""), 2},
		{"stream interrupted", NewStreamInterruptedError(errors.New("reset"), "main.py"), 3},
		{"wrapped external", fmt.Errorf("run failed: %w", NewRateLimitError()), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewStreamInterruptedError_CarriesFilePath(t *testing.T) {
	err := NewStreamInterruptedError(errors.New("connection reset"), "src/app.py")

	if !strings.Contains(err.Message, "src/app.py") {
		t.Errorf("Message should name the file: %v", err.Message)
	}
	if err.Context["file"] != "src/app.py" {
		t.Errorf("Context should carry the file: %v", err.Context)
	}
}

func TestFormatError(t *testing.T) {
	err := NewTargetNotDirectoryError("/tmp/occupied")
	formatted := FormatError(err)

	if !strings.Contains(formatted, "Error:") {
		t.Errorf("Expected Error prefix: %v", formatted)
	}
	if !strings.Contains(formatted, "/tmp/occupied") {
		t.Errorf("Expected path in output: %v", formatted)
	}
	if !strings.Contains(formatted, "Suggestion:") {
		t.Errorf("Expected suggestion in output: %v", formatted)
	}
}

func TestFormatError_MasksAPIKeys(t *testing.T) {
	key := "sk-abcdefghijklmnopqrstuvwxyz123456"
	err := New(ErrAuthenticationFailed, "invalid key "+key)

	formatted := FormatError(err)
	if strings.Contains(formatted, key) {
		t.Errorf("API key leaked into output: %v", formatted)
	}
	if !strings.Contains(formatted, "3456") {
		t.Errorf("Expected masked key suffix: %v", formatted)
	}
}

func TestFormatErrorVerbose_IncludesChain(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewNetworkError(cause)

	formatted := FormatErrorVerbose(err)
	if !strings.Contains(formatted, "NetworkError") {
		t.Errorf("Expected code name in verbose output: %v", formatted)
	}
	if !strings.Contains(formatted, "connection refused") {
		t.Errorf("Expected cause in verbose output: %v", formatted)
	}
}

func TestSanitizeErrorMessage(t *testing.T) {
	msg := "request failed for sk-abcdefghijklmnopqrstuvwx"
	sanitized := SanitizeErrorMessage(msg)

	if strings.Contains(sanitized, "sk-abcdefghijklmnopqrst") {
		t.Errorf("Key not masked: %v", sanitized)
	}
	if !strings.HasSuffix(sanitized, "uvwx") {
		t.Errorf("Expected last four characters preserved: %v", sanitized)
	}
}
