package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dotglobe/internal/globe"
	"dotglobe/internal/render"
)

// Status line texts
const (
	HintText    = "Drag to rotate • Scroll to zoom • Click dots for details"
	LoadingText = "Loading Earth..."
	ErrorPrefix = "Error loading Earth visualization: "
)

// StatusBar is the single line under the globe
type StatusBar struct {
	y, width int
}

// NewStatusBar creates a status line on row y
func NewStatusBar(y, width int) *StatusBar {
	return &StatusBar{y: y, width: width}
}

// Message returns the left-hand text and its style for the globe state
func (s *StatusBar) Message(g *globe.Globe) (string, tcell.Style) {
	switch g.Status() {
	case globe.StatusLoading:
		return LoadingText, render.StyleHint
	case globe.StatusFailed:
		return ErrorPrefix + g.Err().Error(), render.StyleError
	default:
		return HintText, render.StyleHint
	}
}

// Draw renders the status line
func (s *StatusBar) Draw(screen tcell.Screen, g *globe.Globe) {
	for x := 0; x < s.width; x++ {
		screen.SetContent(x, s.y, ' ', nil, tcell.StyleDefault)
	}

	right := fmt.Sprintf("%d markers  %.1fx", len(g.Markers()), g.State().ScaleFactor())
	rightWidth := runewidth.StringWidth(right)

	text, style := s.Message(g)
	avail := s.width - rightWidth - 2
	if avail < runewidth.StringWidth(text) && g.Status() == globe.StatusFailed {
		avail = s.width
		rightWidth = 0
	}
	drawText(screen, 0, s.y, avail, text, style)
	if rightWidth > 0 && rightWidth < s.width {
		drawText(screen, s.width-rightWidth, s.y, rightWidth, right, render.StyleHint)
	}
}

// UpdateDimensions moves the status line after a resize
func (s *StatusBar) UpdateDimensions(y, width int) {
	s.y = y
	s.width = width
}
