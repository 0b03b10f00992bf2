package ui

import (
	"github.com/gdamore/tcell/v2"

	"dotglobe/internal/debug"
	"dotglobe/internal/globe"
	"dotglobe/internal/render"
)

// GlobeView displays the globe and turns terminal mouse input into pointer events
type GlobeView struct {
	globe   *globe.Globe
	pressed bool
}

// NewGlobeView creates a view over g
func NewGlobeView(g *globe.Globe) *GlobeView {
	return &GlobeView{globe: g}
}

// CellToPixel returns the canvas pixel at the centre of a terminal cell
func CellToPixel(x, y int) (float64, float64) {
	return float64(x*render.PixelsPerCellX + render.PixelsPerCellX/2),
		float64(y*render.PixelsPerCellY + render.PixelsPerCellY/2)
}

// Draw renders the globe canvas to the screen
func (v *GlobeView) Draw(screen tcell.Screen) {
	v.globe.Canvas().Blit(screen, 0, 0)
}

// Pressed reports whether the primary button is held over the globe
func (v *GlobeView) Pressed() bool {
	return v.pressed
}

// HandleMouse converts a tcell mouse event into globe events
// Releasing the button ends the drag and then clicks at the release point.
func (v *GlobeView) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	px, py := CellToPixel(x, y)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return v.globe.Dispatch(globe.Event{Kind: globe.EventWheel, DeltaY: -1})

	case buttons&tcell.WheelDown != 0:
		return v.globe.Dispatch(globe.Event{Kind: globe.EventWheel, DeltaY: 1})

	case buttons&tcell.Button1 != 0:
		if !v.pressed {
			v.pressed = true
			return v.globe.Dispatch(globe.Event{Kind: globe.EventPointerDown, X: px, Y: py})
		}
		return v.globe.Dispatch(globe.Event{Kind: globe.EventPointerMove, X: px, Y: py})

	default:
		if !v.pressed {
			return false
		}
		v.pressed = false
		v.globe.Dispatch(globe.Event{Kind: globe.EventPointerUp, X: px, Y: py})
		if debug.Enabled() {
			debug.Log("Click at cell %d,%d (pixel %.0f,%.0f)", x, y, px, py)
		}
		return v.globe.Dispatch(globe.Event{Kind: globe.EventClick, X: px, Y: py})
	}
}

// Reset forgets a held button, used when the globe is rebuilt mid-gesture
func (v *GlobeView) Reset() {
	v.pressed = false
}

// ZoomIn zooms in one wheel notch
func (v *GlobeView) ZoomIn() {
	v.globe.Zoom(-1)
}

// ZoomOut zooms out one wheel notch
func (v *GlobeView) ZoomOut() {
	v.globe.Zoom(1)
}
