package globe

import (
	"dotglobe/internal/geo"
)

// Regime is the autorotation speed class
type Regime int

const (
	RegimeFast Regime = iota
	RegimeSlow
)

// String returns a string representation of the regime
func (r Regime) String() string {
	if r == RegimeSlow {
		return "slow"
	}
	return "fast"
}

// RotationController advances lambda every frame while the globe is not dragged
// The fast regime only lasts until the first interaction; it never comes back.
type RotationController struct {
	regime     Regime
	fastSpeed  float64
	slowSpeed  float64
	autoRotate bool
	dragging   bool
}

// NewRotationController creates an autorotating controller in the fast regime
// Speeds are degrees of longitude per tick.
func NewRotationController(fastSpeed, slowSpeed float64) *RotationController {
	return &RotationController{
		regime:     RegimeFast,
		fastSpeed:  fastSpeed,
		slowSpeed:  slowSpeed,
		autoRotate: true,
	}
}

// Regime returns the current speed regime
func (r *RotationController) Regime() Regime {
	return r.regime
}

// Speed returns the current degrees per tick
func (r *RotationController) Speed() float64 {
	if r.regime == RegimeSlow {
		return r.slowSpeed
	}
	return r.fastSpeed
}

// Demote switches to the slow regime
func (r *RotationController) Demote() {
	r.regime = RegimeSlow
}

// SetAutoRotate enables or pauses autorotation
func (r *RotationController) SetAutoRotate(on bool) {
	r.autoRotate = on
}

// AutoRotating reports whether ticks advance the rotation
func (r *RotationController) AutoRotating() bool {
	return r.autoRotate
}

// BeginDrag hands rotation control to the pointer
func (r *RotationController) BeginDrag() {
	r.dragging = true
}

// EndDrag returns rotation control to the timer
func (r *RotationController) EndDrag() {
	r.dragging = false
}

// Dragging reports whether a drag is in progress
func (r *RotationController) Dragging() bool {
	return r.dragging
}

// Tick advances lambda by the current speed; returns true if the state changed
func (r *RotationController) Tick(state *geo.ProjectionState) bool {
	if !r.autoRotate || r.dragging {
		return false
	}
	state.SetRotation(state.Lambda+r.Speed(), state.Phi)
	return true
}
