package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConfigLoadedMsg:
		m.cfg = msg.Config
		m.buildSliders()
		return m, m.recalculateCmd()

	case RecalculatedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.result = msg.Result
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "q"))):
		return m, tea.Quit
	}

	if m.cfg == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left", "h"))):
		m.sliders[m.focused].Decrement()
		return m, m.recalculateCmd()

	case key.Matches(msg, key.NewBinding(key.WithKeys("right", "l"))):
		m.sliders[m.focused].Increment()
		return m, m.recalculateCmd()

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		// Reset sliders back to the scenario file values
		m.buildSliders()
		return m, m.recalculateCmd()
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	m.sliders[m.focused].SetFocused(false)
	m.focused = (m.focused + delta + sliderCount) % sliderCount
	m.sliders[m.focused].SetFocused(true)
}
