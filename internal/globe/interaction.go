package globe

import (
	"math"

	"dotglobe/internal/debug"
	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
)

// Zoom step per wheel notch
const (
	zoomOutFactor = 0.9
	zoomInFactor  = 1.1
)

// InteractionConfig tunes pointer handling
type InteractionConfig struct {
	Sensitivity    float64 // degrees per pixel of drag
	ClickThreshold float64 // pick radius in pixels

	// SuppressClickAfterDrag drops the click that follows a pointer release when
	// the pointer travelled more than DragThreshold pixels. Off by default, so
	// releasing a drag over a marker selects it.
	SuppressClickAfterDrag bool
	DragThreshold          float64
}

// DefaultInteractionConfig returns the dashboard's pointer settings
func DefaultInteractionConfig() InteractionConfig {
	return InteractionConfig{
		Sensitivity:    0.5,
		ClickThreshold: DefaultClickThreshold,
		DragThreshold:  3,
	}
}

// InteractionController turns pointer and wheel events into projection changes
type InteractionController struct {
	cfg      InteractionConfig
	state    *geo.ProjectionState
	rotation *RotationController
	markers  []marker.Marker

	onChange func()
	onSelect func(*marker.Marker)

	dragActive   bool
	originX      float64
	originY      float64
	snapLambda   float64
	snapPhi      float64
	dragDistance float64
}

// NewInteractionController creates a controller mutating state
func NewInteractionController(state *geo.ProjectionState, rotation *RotationController, cfg InteractionConfig) *InteractionController {
	return &InteractionController{
		cfg:      cfg,
		state:    state,
		rotation: rotation,
		onChange: func() {},
		onSelect: func(*marker.Marker) {},
	}
}

// SetMarkers sets the markers considered by clicks
func (ic *InteractionController) SetMarkers(markers []marker.Marker) {
	ic.markers = markers
}

// OnChange sets the callback run after every state mutation
func (ic *InteractionController) OnChange(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	ic.onChange = fn
}

// OnSelect sets the callback run on every click; nil means nothing was hit
func (ic *InteractionController) OnSelect(fn func(*marker.Marker)) {
	if fn == nil {
		fn = func(*marker.Marker) {}
	}
	ic.onSelect = fn
}

// Handlers returns the dispatch table entries for this controller
func (ic *InteractionController) Handlers() map[EventKind]Handler {
	return map[EventKind]Handler{
		EventPointerDown: func(ev Event) { ic.PointerDown(ev.X, ev.Y) },
		EventPointerMove: func(ev Event) { ic.PointerMove(ev.X, ev.Y) },
		EventPointerUp:   func(ev Event) { ic.PointerUp(ev.X, ev.Y) },
		EventWheel:       func(ev Event) { ic.Wheel(ev.DeltaY) },
		EventClick:       func(ev Event) { ic.Click(ev.X, ev.Y) },
	}
}

// Dragging reports whether a drag gesture is active
func (ic *InteractionController) Dragging() bool {
	return ic.dragActive
}

// PointerDown starts a drag from (x, y)
func (ic *InteractionController) PointerDown(x, y float64) {
	ic.rotation.Demote()
	ic.rotation.BeginDrag()

	ic.dragActive = true
	ic.originX, ic.originY = x, y
	ic.snapLambda, ic.snapPhi = ic.state.Lambda, ic.state.Phi
	ic.dragDistance = 0
}

// PointerMove rotates the globe relative to the drag origin
func (ic *InteractionController) PointerMove(x, y float64) {
	if !ic.dragActive {
		return
	}
	dx := x - ic.originX
	dy := y - ic.originY
	ic.dragDistance = math.Max(ic.dragDistance, math.Hypot(dx, dy))

	ic.state.SetRotation(
		ic.snapLambda+dx*ic.cfg.Sensitivity,
		ic.snapPhi-dy*ic.cfg.Sensitivity,
	)
	ic.onChange()
}

// PointerUp ends the drag; autorotation continues at the slow speed
func (ic *InteractionController) PointerUp(x, y float64) {
	if ic.dragActive {
		ic.dragDistance = math.Max(ic.dragDistance, math.Hypot(x-ic.originX, y-ic.originY))
	}
	ic.dragActive = false
	ic.rotation.EndDrag()
}

// Wheel zooms out for positive deltaY and in otherwise
func (ic *InteractionController) Wheel(deltaY float64) {
	factor := zoomInFactor
	if deltaY > 0 {
		factor = zoomOutFactor
	}
	ic.state.SetScale(ic.state.Scale * factor)
	ic.onChange()
}

// Click selects the nearest marker under (x, y) or clears the selection
func (ic *InteractionController) Click(x, y float64) {
	if ic.cfg.SuppressClickAfterDrag && ic.dragDistance > ic.cfg.DragThreshold {
		debug.Log("Click after %.1fpx drag suppressed", ic.dragDistance)
		ic.dragDistance = 0
		return
	}
	ic.rotation.Demote()

	hit := Pick(geo.ScreenPoint{X: x, Y: y}, ic.markers, ic.state, ic.cfg.ClickThreshold)
	if hit != nil {
		debug.Log("Marker selected: %s at %s", hit.DisplayTitle(), hit.PositionString())
	}
	ic.onSelect(hit)
	ic.onChange()
}

// Focus rotates the globe so lng/lat sits at the centre of the view
func (ic *InteractionController) Focus(lng, lat float64) {
	ic.rotation.Demote()
	ic.state.SetRotation(-lng, -lat)
	ic.onChange()
}
