// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tokenModel is the Bubble Tea model of the masked token prompt. It finishes
// on enter (submitted) or on esc/ctrl+c (quit).
type tokenModel struct {
	input     textinput.Model
	submitted bool
	quit      bool
}

func newTokenModel() tokenModel {
	input := textinput.New()
	input.Prompt = promptToken
	input.Placeholder = "token"
	input.CharLimit = 512
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return tokenModel{input: input}
}

// Init implements [tea.Model].
func (m tokenModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m tokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Nothing is left on screen once the prompt is
// done, so the token length is not revealed.
func (m tokenModel) View() string {
	if m.submitted || m.quit {
		return ""
	}
	return m.input.View()
}

// Value returns the typed token.
func (m tokenModel) Value() string {
	return m.input.Value()
}
