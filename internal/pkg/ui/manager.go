// Package ui provides terminal output and progress components for projforge.
package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner provides loading animation functionality for git steps.
type Spinner interface {
	Start()
	Stop()
	UpdateText(text string)
}

// Manager defines the interface for UI operations.
// StreamFragment is the progress sink for streamed model output: it surfaces
// each fragment as it arrives, independent of the accumulation that produces
// the file content.
type Manager interface {
	FileStart(path string, creating bool)
	StreamFragment(fragment string)
	FileDone(path string, creating bool)
	ShowInfo(message string)
	ShowSuccess(message string)
	ShowError(err error)
	ShowSpinner(text string) Spinner
}

// DefaultManager implements the Manager interface using charmbracelet libraries.
type DefaultManager struct {
	colorEnabled bool
	styles       *styles
}

// styles holds the lipgloss styles for UI rendering.
type styles struct {
	header     lipgloss.Style
	fileName   lipgloss.Style
	success    lipgloss.Style
	errorStyle lipgloss.Style
	info       lipgloss.Style
}

// NewDefaultManager creates a new DefaultManager with the specified options.
func NewDefaultManager(colorEnabled bool) *DefaultManager {
	m := &DefaultManager{
		colorEnabled: colorEnabled,
	}
	m.initStyles()
	return m
}

// initStyles initializes the lipgloss styles.
func (m *DefaultManager) initStyles() {
	if !m.colorEnabled {
		m.styles = &styles{
			header:     lipgloss.NewStyle(),
			fileName:   lipgloss.NewStyle(),
			success:    lipgloss.NewStyle(),
			errorStyle: lipgloss.NewStyle(),
			info:       lipgloss.NewStyle(),
		}
		return
	}

	m.styles = &styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		fileName: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		errorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
	}
}

// FileStart announces that generation for a file is starting.
func (m *DefaultManager) FileStart(path string, creating bool) {
	verb := "Modifying"
	if creating {
		verb = "Creating"
	}
	fmt.Println()
	fmt.Printf("%s %s...\n", m.styles.header.Render(verb), m.styles.fileName.Render(path))
}

// StreamFragment prints a streamed fragment as it arrives.
func (m *DefaultManager) StreamFragment(fragment string) {
	fmt.Print(fragment)
	os.Stdout.Sync()
}

// FileDone announces that a file has been written.
func (m *DefaultManager) FileDone(path string, creating bool) {
	verb := "modified"
	if creating {
		verb = "created"
	}
	fmt.Println()
	fmt.Println(m.styles.success.Render(fmt.Sprintf("%s %s", path, verb)))
}

// ShowInfo displays an informational message.
func (m *DefaultManager) ShowInfo(message string) {
	fmt.Println(m.styles.info.Render(message))
}

// ShowSuccess displays a success message to the user.
func (m *DefaultManager) ShowSuccess(message string) {
	fmt.Println()
	fmt.Println(m.styles.success.Render("[OK] " + message))
}

// ShowError displays an error message to the user.
func (m *DefaultManager) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Println()
	fmt.Println(m.styles.errorStyle.Render("Error: " + err.Error()))
}

// ShowSpinner creates and returns a spinner for loading states.
func (m *DefaultManager) ShowSpinner(text string) Spinner {
	return newBubbleSpinner(text)
}

// PlainManager implements Manager without animations, for non-TTY output
// and --quiet-style runs.
type PlainManager struct{}

// NewPlainManager creates a new PlainManager.
func NewPlainManager() *PlainManager {
	return &PlainManager{}
}

// FileStart announces that generation for a file is starting.
func (m *PlainManager) FileStart(path string, creating bool) {
	verb := "Modifying"
	if creating {
		verb = "Creating"
	}
	fmt.Printf("%s %s...\n", verb, path)
}

// StreamFragment prints a streamed fragment as it arrives.
func (m *PlainManager) StreamFragment(fragment string) {
	fmt.Print(fragment)
}

// FileDone announces that a file has been written.
func (m *PlainManager) FileDone(path string, creating bool) {
	verb := "modified"
	if creating {
		verb = "created"
	}
	fmt.Printf("\n%s %s\n", path, verb)
}

// ShowInfo displays an informational message.
func (m *PlainManager) ShowInfo(message string) {
	fmt.Println(message)
}

// ShowSuccess displays a success message.
func (m *PlainManager) ShowSuccess(message string) {
	fmt.Println(message)
}

// ShowError displays an error message.
func (m *PlainManager) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// ShowSpinner returns a no-op spinner.
func (m *PlainManager) ShowSpinner(text string) Spinner {
	return &noopSpinner{}
}

// bubbleSpinner implements Spinner using Bubble Tea.
type bubbleSpinner struct {
	text    string
	program *tea.Program
	model   *spinnerModel
	mu      sync.Mutex
}

// spinnerModel is the Bubble Tea model for the spinner.
type spinnerModel struct {
	spinner  spinner.Model
	text     string
	quitting bool
}

// spinnerTextMsg updates spinner text from outside.
type spinnerTextMsg struct {
	text string
}

// spinnerQuitMsg signals the spinner to quit.
type spinnerQuitMsg struct{}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTextMsg:
		m.text = msg.text
		return m, nil
	case spinnerQuitMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.text)
}

func newBubbleSpinner(text string) *bubbleSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	model := &spinnerModel{
		spinner: s,
		text:    text,
	}

	return &bubbleSpinner{
		text:  text,
		model: model,
	}
}

func (s *bubbleSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = tea.NewProgram(s.model)
	go func() {
		_, _ = s.program.Run()
	}()
}

func (s *bubbleSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		s.program.Send(spinnerQuitMsg{})
		time.Sleep(50 * time.Millisecond)
	}
}

func (s *bubbleSpinner) UpdateText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	if s.program != nil {
		s.program.Send(spinnerTextMsg{text: text})
	}
}

// noopSpinner is a no-op implementation of Spinner.
type noopSpinner struct{}

func (s *noopSpinner) Start()            {}
func (s *noopSpinner) Stop()             {}
func (s *noopSpinner) UpdateText(string) {}
