package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"scraperfix/internal/patch"
	"scraperfix/internal/rewrite"
)

type viewState int

const (
	ViewPreview viewState = iota
	ViewNoMatch
	ViewApplied
	ViewQuitting
)

// model is the Bubbletea model for the preview TUI.
type model struct {
	target    string
	content   []byte       // the target file as loaded, untouched
	result    patch.Result // in-memory application of the patch to content
	startLine int          // 0-based first line of the matched span
	endLine   int          // 0-based last line of the matched span
	view      viewState
	viewport  viewport.Model
	width     int // Track terminal width for dynamic resizing
	height    int // Track terminal height for dynamic resizing
	err       error
}

// initialModel creates the initial TUI model. The patch is applied in memory
// only; the file on disk is not touched until the user confirms.
func initialModel(target string, content []byte, width, height int) model {
	res := patch.Apply(content)

	m := model{
		target:  target,
		content: content,
		result:  res,
		view:    ViewPreview,
		width:   width,
		height:  height,
	}
	if res.Replaced {
		offsets := rewrite.BuildLineOffsets(content)
		m.startLine = rewrite.LineIndexOfByte(offsets, res.Span.Start)
		m.endLine = rewrite.LineIndexOfByte(offsets, res.Span.End-1)
	} else {
		m.view = ViewNoMatch
	}

	vp := viewport.New(width, max(height-6, 5))
	vp.SetContent(renderDiff(content, res, width))
	m.viewport = vp
	return m
}

// max returns the maximum of two ints.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
