// Package ui renders the interactive confirm and prompt dialogs on the
// terminal.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TermPrompter implements dialog.Prompter with small Bubble Tea programs.
type TermPrompter struct {
	theme Theme
}

// NewTermPrompter returns the default terminal prompter.
func NewTermPrompter() *TermPrompter {
	return &TermPrompter{theme: DefaultTheme}
}

// Confirm asks a yes/no question. Esc and ctrl+c count as no.
func (p *TermPrompter) Confirm(message string) (bool, error) {
	m := confirmModel{theme: p.theme, message: message}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("confirm dialog: %w", err)
	}
	return out.(confirmModel).confirmed, nil
}

// Prompt asks for a free-text value. Esc and ctrl+c cancel.
func (p *TermPrompter) Prompt(message string) (string, bool, error) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 500

	m := promptModel{theme: p.theme, message: message, input: ti}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", false, fmt.Errorf("prompt dialog: %w", err)
	}
	final := out.(promptModel)
	return final.value, final.ok, nil
}

type confirmModel struct {
	theme     Theme
	message   string
	confirmed bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		m.confirmed = true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c", "q":
		m.confirmed = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return m.theme.Question.Render(m.message) + "\n" +
		m.theme.Hint.Render("[y] yes  [n] no") + "\n"
}

type promptModel struct {
	theme   Theme
	message string
	input   textinput.Model
	value   string
	ok      bool
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, isKey := msg.(tea.KeyMsg); isKey {
		switch key.String() {
		case "enter":
			m.value = m.input.Value()
			m.ok = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.ok = false
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return m.theme.Question.Render(m.message) + "\n" +
		m.input.View() + "\n" +
		m.theme.Hint.Render("enter to confirm, esc to cancel") + "\n"
}
