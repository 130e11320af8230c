package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
	"github.com/grindlemire/go-tui-behaviors/pkg/hostinput"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// teaModel drives a demo from a bubbletea program. The widget is drawn at
// the origin, so mouse cells need no offset.
type teaModel struct {
	demo  demo
	mouse hostinput.MouseTracker
}

func newTeaModel(d demo) *teaModel {
	return &teaModel{demo: d}
}

func (m *teaModel) Init() tea.Cmd {
	return nil
}

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ke := hostinput.KeyFromTea(msg)
		if isQuit(ke) {
			return m, tea.Quit
		}
		handled := m.demo.Keydown(ke)
		debug.Log("tea: key %s handled=%v", msg.String(), handled)
	case tea.MouseMsg:
		if pe, ok := m.mouse.TeaMouse(msg); ok {
			m.demo.Pointer(pe)
		}
	case tea.WindowSizeMsg:
		m.mouse.Reset()
	}
	return m, nil
}

func (m *teaModel) View() string {
	return m.demo.View() + "\n" + helpStyle.Render(helpLine) + "\n"
}

func runTea(d demo) error {
	p := tea.NewProgram(newTeaModel(d), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run bubbletea program: %w", err)
	}
	return nil
}
