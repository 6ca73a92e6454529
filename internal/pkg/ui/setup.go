package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormValues holds the invocation fields the wizard can collect. Fields that
// are already non-empty were supplied on the command line and are skipped.
type FormValues struct {
	Path        string
	ProjectType string
	Description string
	FilesRaw    string
	Message     string
}

// RunInvocationForm prompts for any invocation fields still missing after
// flag parsing. It only asks for what it needs; a fully-flagged invocation
// never reaches this form.
func RunInvocationForm(values *FormValues) error {
	if values == nil {
		return fmt.Errorf("form values cannot be nil")
	}

	fields := []huh.Field{}

	if strings.TrimSpace(values.Path) == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Project path").
				Description("Directory to create or mutate").
				Value(&values.Path).
				Validate(requireNonEmpty("project path")),
		)
	}

	if strings.TrimSpace(values.ProjectType) == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Project type").
				Description("e.g. python, go, react").
				Value(&values.ProjectType).
				Validate(requireNonEmpty("project type")),
		)
	}

	if strings.TrimSpace(values.Description) == "" {
		fields = append(fields,
			huh.NewText().
				Title("Project description").
				Description("What should the project do?").
				Value(&values.Description).
				Validate(requireNonEmpty("project description")),
		)
	}

	if strings.TrimSpace(values.FilesRaw) == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Files").
				Description("Comma-separated list of files to generate").
				Value(&values.FilesRaw).
				Validate(requireNonEmpty("file list")),
		)
	}

	if strings.TrimSpace(values.Message) == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Commit message").
				Description("Message for the resulting git commit").
				Value(&values.Message).
				Validate(requireNonEmpty("commit message")),
		)
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// ConfirmRun asks the user to confirm the planned mutation before any
// filesystem or git side effects happen.
func ConfirmRun(path string, files []string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Mutate %d file(s) under %s?", len(files), path)).
		Description(strings.Join(files, "\n")).
		Affirmative("Run").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

// SplitFileList turns a comma-separated file list into trimmed entries,
// dropping empties.
func SplitFileList(raw string) []string {
	parts := strings.Split(raw, ",")
	files := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}

func requireNonEmpty(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
		return nil
	}
}
