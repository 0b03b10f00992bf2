package ui

import (
	"github.com/gdamore/tcell/v2"

	"dotglobe/internal/marker"
	"dotglobe/internal/render"
)

// DetailView displays the selected marker
type DetailView struct {
	marker        *marker.Marker
	x, y          int
	width, height int
}

// NewDetailView creates a new detail view
func NewDetailView(x, y, width, height int) *DetailView {
	return &DetailView{
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

// SetMarker sets the marker to display; nil hides the panel
func (d *DetailView) SetMarker(m *marker.Marker) {
	d.marker = m
}

// Marker returns the displayed marker
func (d *DetailView) Marker() *marker.Marker {
	return d.marker
}

// Lines returns the panel body for m
func (d *DetailView) Lines(m *marker.Marker) []string {
	lines := []string{m.DisplayTitle(), m.KindLabel()}
	if m.Location != "" {
		lines = append(lines, "Location: "+m.Location)
	}
	if m.Date != "" {
		lines = append(lines, "Date:     "+m.Date)
	}
	lines = append(lines, "Position: "+m.PositionString())
	if m.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(m.Description, d.width-4)...)
	}
	return lines
}

// Draw renders the detail view to the screen
func (d *DetailView) Draw(screen tcell.Screen) {
	if d.marker == nil {
		return
	}
	drawPanel(screen, d.x, d.y, d.width, d.height, "Details")

	kindStyle := render.StyleIssue
	if d.marker.IsSprint() {
		kindStyle = render.StyleSprint
	}

	for i, line := range d.Lines(d.marker) {
		y := d.y + 1 + i
		if y >= d.y+d.height-1 {
			break
		}
		style := render.StyleLabel
		switch i {
		case 0:
			style = render.StyleLabel.Bold(true)
		case 1:
			style = kindStyle
		}
		drawText(screen, d.x+2, y, d.width-4, line, style)
	}

	instructions := "ESC to close"
	drawText(screen, d.x+(d.width-len(instructions))/2, d.y+d.height-1, d.width-2, instructions, render.StyleHint)
}

// UpdateDimensions updates the view dimensions
func (d *DetailView) UpdateDimensions(x, y, width, height int) {
	d.x = x
	d.y = y
	d.width = width
	d.height = height
}
