package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/vaultdvc/internal/settings"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: single-line text field with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	hint      string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint) + "\n")
	}
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- toggleModel: on/off switch starting from the current value ---

type toggleModel struct {
	title   string
	hint    string
	value   bool
	done    bool
	aborted bool
}

func (m toggleModel) Init() tea.Cmd {
	return nil
}

func (m toggleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l", " ":
		m.value = !m.value
	}
	return m, nil
}

func (m toggleModel) View() string {
	if m.done {
		return ""
	}
	on, off := " On ", " Off "
	if m.value {
		on = selectedStyle.Render(on)
	} else {
		off = selectedStyle.Render(off)
	}
	s := fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), on, off)
	if m.hint != "" {
		s += hintStyle.Render(m.hint) + "\n"
	}
	return s
}

// --- prompt helpers ---

func promptInput(title, hint, value string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = "mp4 pdf"
	ti.SetValue(value)
	ti.Focus()

	result, err := tea.NewProgram(inputModel{
		textInput: ti,
		title:     title,
		hint:      hint,
		validate:  validate,
	}).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptToggle(title, hint string, value bool) (bool, error) {
	result, err := tea.NewProgram(toggleModel{title: title, hint: hint, value: value}).Run()
	if err != nil {
		return false, err
	}
	rm := result.(toggleModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveSettings walks through every setting, starting from cur, and
// returns the edited copy.
func interactiveSettings(cur *settings.SyncPolicy) (*settings.SyncPolicy, error) {
	next := *cur
	var err error

	next.AutoStage, err = promptToggle("Auto stage",
		"Stage .dvc files in git automatically after dvc add.", cur.AutoStage)
	if err != nil {
		return nil, err
	}
	next.AutoPull, err = promptToggle("Auto pull",
		"Pull tracked attachments embedded in a note when it is opened.", cur.AutoPull)
	if err != nil {
		return nil, err
	}
	exts, err := promptInput("Auto pull extensions",
		"Space-separated. An embed is pulled if its link contains any of them.",
		strings.Join(cur.AutoPullExtensions, " "), validateExtensions)
	if err != nil {
		return nil, err
	}
	next.AutoPullExtensions = settings.ParseExtensions(exts)
	return &next, nil
}

// validateExtensions rejects entries that can never be part of a file name.
func validateExtensions(s string) error {
	for _, ext := range settings.ParseExtensions(s) {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("extension %q must not contain path separators", ext)
		}
	}
	return nil
}
