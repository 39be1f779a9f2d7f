package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"scraperfix/internal/core"
)

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the preview TUI for the target file. Nothing is written to
// disk until the user confirms with enter.
func Run(target string) error {
	content, err := core.Load(target)
	if err != nil {
		return err
	}

	m := initialModel(target, content, 80, 24)
	p := tea.NewProgram(&teaModelAdapter{m})

	_, err = p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
