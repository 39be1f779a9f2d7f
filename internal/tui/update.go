package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"scraperfix/internal/core"
)

// appliedMsg reports the outcome of writing the patch to disk.
type appliedMsg struct {
	err error
}

// applyCmd returns a Bubbletea command that applies the patch to the target file.
func applyCmd(target string) tea.Cmd {
	return func() tea.Msg {
		_, err := core.Run(target)
		return appliedMsg{err: err}
	}
}

// Update handles all Bubbletea update logic for the preview model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 5)
		m.viewport.SetContent(renderDiff(m.content, m.result, msg.Width))
		return m, nil
	case appliedMsg:
		m.err = msg.err
		m.view = ViewApplied
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// HandleKeyMsg handles key presses for all views.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.view = ViewQuitting
		return m, tea.Quit
	case "enter":
		switch m.view {
		case ViewPreview, ViewNoMatch:
			// A no-match apply rewrites the file unchanged, same as the
			// non-interactive command.
			return m, applyCmd(m.target)
		case ViewApplied:
			m.view = ViewQuitting
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
