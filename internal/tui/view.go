package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scraperfix/internal/patch"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#55FF55"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.view {
	case ViewQuitting:
		return quittingView()
	case ViewApplied:
		return appliedView(m)
	case ViewNoMatch:
		return noMatchView()
	default:
		return previewView(m)
	}
}

func quittingView() string {
	return "Goodbye!\n"
}

func appliedView(m model) string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\n%s\n", m.err, helpStyle.Render("enter/q: exit"))
	}
	return fmt.Sprintf("%s\n\n%s\n",
		headerStyle.Render("ImageScraper.ts updated successfully"),
		helpStyle.Render("enter/q: exit"))
}

func noMatchView() string {
	return fmt.Sprintf("%s\n\ndownloadImage method not found; applying would rewrite the file unchanged.\n\n%s\n",
		headerStyle.Render("scraperfix preview — "+patch.TargetFile),
		helpStyle.Render("enter: rewrite anyway  q: quit"))
}

func previewView(m model) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("scraperfix preview — " + m.target))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("replacing lines %d–%d\n\n", m.startLine+1, m.endLine+1))
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: apply  q: quit  ↑/↓: scroll"))
	b.WriteString("\n")
	return b.String()
}

// renderDiff renders the matched span and its replacement as removed/added
// lines, clipped to the given display width.
func renderDiff(content []byte, res patch.Result, width int) string {
	if !res.Replaced {
		return ""
	}
	var b strings.Builder
	matched := string(content[res.Span.Start:res.Span.End])
	for _, line := range strings.Split(matched, "\n") {
		b.WriteString(removedStyle.Render(clipLine("- "+line, width)))
		b.WriteByte('\n')
	}
	for _, line := range strings.Split(patch.Template, "\n") {
		b.WriteString(addedStyle.Render(clipLine("+ "+line, width)))
		b.WriteByte('\n')
	}
	return b.String()
}

// clipLine truncates line to at most width display cells. Code lines read
// better truncated than wrapped.
func clipLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}
