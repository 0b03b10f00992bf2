package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
)

type harness struct {
	state    *geo.ProjectionState
	rotation *RotationController
	ic       *InteractionController
	changes  int
	selected []*marker.Marker
}

func newHarness(cfg InteractionConfig, markers []marker.Marker) *harness {
	h := &harness{
		state:    geo.NewProjectionState(500, 500, 1.4, -30, -35),
		rotation: NewRotationController(0.3, 0.1),
	}
	h.ic = NewInteractionController(h.state, h.rotation, cfg)
	h.ic.SetMarkers(markers)
	h.ic.OnChange(func() { h.changes++ })
	h.ic.OnSelect(func(m *marker.Marker) { h.selected = append(h.selected, m) })
	return h
}

func TestDragRotatesBySensitivity(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	lambda, phi := h.state.Lambda, h.state.Phi

	h.ic.PointerDown(10, 10)
	assert.True(t, h.ic.Dragging())
	assert.True(t, h.rotation.Dragging())

	h.ic.PointerMove(110, 10)
	assert.Equal(t, lambda+50, h.state.Lambda)
	assert.Equal(t, phi, h.state.Phi)
	assert.Equal(t, 1, h.changes)

	h.ic.PointerUp(110, 10)
	assert.False(t, h.ic.Dragging())
	assert.False(t, h.rotation.Dragging())
}

func TestDragClampsPhi(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)

	h.ic.PointerDown(0, 0)
	h.ic.PointerMove(0, 1000)
	assert.Equal(t, -90.0, h.state.Phi)

	h.ic.PointerMove(0, -1000)
	assert.Equal(t, 90.0, h.state.Phi)
	h.ic.PointerUp(0, -1000)
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	lambda := h.state.Lambda
	h.ic.PointerMove(300, 300)
	assert.Equal(t, lambda, h.state.Lambda)
	assert.Zero(t, h.changes)
}

func TestPointerDownDemotesAndUpResumesSlow(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	require.Equal(t, RegimeFast, h.rotation.Regime())

	h.ic.PointerDown(0, 0)
	assert.Equal(t, RegimeSlow, h.rotation.Regime())
	assert.False(t, h.rotation.Tick(h.state))

	h.ic.PointerUp(0, 0)
	before := h.state.Lambda
	assert.True(t, h.rotation.Tick(h.state))
	assert.InDelta(t, before+0.1, h.state.Lambda, 1e-12)
}

func TestWheelZoomStaysInRange(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	base := h.state.BaseRadius

	for i := 0; i < 100; i++ {
		h.ic.Wheel(-1)
		assert.LessOrEqual(t, h.state.Scale, 3*base)
	}
	assert.Equal(t, 3*base, h.state.Scale)

	for i := 0; i < 100; i++ {
		h.ic.Wheel(1)
		assert.GreaterOrEqual(t, h.state.Scale, 0.5*base)
	}
	assert.Equal(t, 0.5*base, h.state.Scale)
	assert.Equal(t, 200, h.changes)
}

func TestWheelSingleStep(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	scale := h.state.Scale
	h.ic.Wheel(3)
	assert.InDelta(t, scale*0.9, h.state.Scale, 1e-9)
	h.ic.Wheel(0)
	assert.InDelta(t, scale*0.9*1.1, h.state.Scale, 1e-9)
}

func TestClickSelectsAndMissClears(t *testing.T) {
	markers := []marker.Marker{{Title: "Seoul", Lng: 30, Lat: 35}}
	h := newHarness(DefaultInteractionConfig(), markers)

	// initial rotation (-30, -35) puts (30, 35) at the centre
	h.ic.Click(h.state.TranslateX+3, h.state.TranslateY)
	require.Len(t, h.selected, 1)
	assert.Same(t, &markers[0], h.selected[0])
	assert.Equal(t, RegimeSlow, h.rotation.Regime())

	h.ic.Click(0, 0)
	require.Len(t, h.selected, 2)
	assert.Nil(t, h.selected[1])
}

// A release after a drag still fires a click at the release point, which can
// select a marker the user only meant to drag past.
func TestClickAfterDragStillSelects(t *testing.T) {
	markers := []marker.Marker{{Title: "Seoul", Lng: 30, Lat: 35}}
	h := newHarness(DefaultInteractionConfig(), markers)
	cx, cy := h.state.TranslateX, h.state.TranslateY

	h.ic.PointerDown(cx, cy)
	h.ic.PointerMove(cx+100, cy)
	h.ic.PointerMove(cx, cy)
	h.ic.PointerUp(cx, cy)
	h.ic.Click(cx, cy)

	require.Len(t, h.selected, 1)
	require.NotNil(t, h.selected[0], "drag-release still hit-tests")
	assert.Equal(t, "Seoul", h.selected[0].Title)
}

func TestSuppressClickAfterDrag(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.SuppressClickAfterDrag = true
	markers := []marker.Marker{{Title: "Seoul", Lng: 30, Lat: 35}}
	h := newHarness(cfg, markers)
	cx, cy := h.state.TranslateX, h.state.TranslateY

	h.ic.PointerDown(cx, cy)
	h.ic.PointerMove(cx+40, cy)
	h.ic.PointerMove(cx, cy)
	h.ic.PointerUp(cx, cy)
	h.ic.Click(cx, cy)
	assert.Empty(t, h.selected, "drag travelled 40px")

	h.ic.PointerDown(cx, cy)
	h.ic.PointerUp(cx+1, cy)
	h.ic.Click(cx+1, cy)
	require.Len(t, h.selected, 1)
	assert.NotNil(t, h.selected[0])
}

func TestFocusCentresPoint(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	h.ic.Focus(126.978, 37.5665)

	p, ok := h.state.Project(126.978, 37.5665)
	require.True(t, ok)
	assert.InDelta(t, h.state.TranslateX, p.X, 1e-9)
	assert.InDelta(t, h.state.TranslateY, p.Y, 1e-9)
	assert.Equal(t, RegimeSlow, h.rotation.Regime())
}

func TestHandlersRouteEvents(t *testing.T) {
	h := newHarness(DefaultInteractionConfig(), nil)
	d := NewDispatcher()
	release := d.Attach(h.ic.Handlers())
	defer release()

	lambda := h.state.Lambda
	d.Dispatch(Event{Kind: EventPointerDown, X: 0, Y: 0})
	d.Dispatch(Event{Kind: EventPointerMove, X: 20, Y: 0})
	d.Dispatch(Event{Kind: EventPointerUp, X: 20, Y: 0})
	assert.Equal(t, lambda+10, h.state.Lambda)

	scale := h.state.Scale
	d.Dispatch(Event{Kind: EventWheel, DeltaY: 1})
	assert.Less(t, h.state.Scale, scale)
}
