package globe

import (
	"time"

	"dotglobe/internal/debug"
	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
	"dotglobe/internal/metrics"
	"dotglobe/internal/render"
)

// Status is the land loading state of the globe
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// String returns a string representation of the status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configure a globe
type Options struct {
	FPS             int
	InitialRotation [2]float64 // lambda, phi
	InitialZoom     float64
	FastSpeed       float64
	SlowSpeed       float64
	Interaction     InteractionConfig
	Theme           render.Theme
}

// DefaultOptions returns the dashboard's globe settings
func DefaultOptions() Options {
	return Options{
		FPS:             30,
		InitialRotation: [2]float64{-30, -35},
		InitialZoom:     1.4,
		FastSpeed:       0.3,
		SlowSpeed:       0.1,
		Interaction:     DefaultInteractionConfig(),
		Theme:           render.DefaultTheme(),
	}
}

// Globe is the rotating globe component
// All methods must be called from one goroutine; only the land fetch runs elsewhere.
type Globe struct {
	opts Options

	canvas     *render.Canvas
	state      *geo.ProjectionState
	rotation   *RotationController
	input      *InteractionController
	dispatcher *Dispatcher
	frames     *FrameScheduler
	renderer   *render.SceneRenderer

	land    *geo.Land
	status  Status
	err     error
	markers []marker.Marker

	selected *marker.Marker
	onSelect func(*marker.Marker)

	release func()
	stats   render.FrameStats
}

// New creates an unmounted globe filling cols x rows terminal cells
func New(cols, rows int, markers []marker.Marker, opts Options) *Globe {
	g := &Globe{
		opts:       opts,
		dispatcher: NewDispatcher(),
		renderer:   render.NewSceneRenderer(opts.Theme),
		status:     StatusLoading,
		onSelect:   func(*marker.Marker) {},
	}
	g.build(cols, rows, markers)
	return g
}

// build creates the per-mount state: canvas, projection and controllers
func (g *Globe) build(cols, rows int, markers []marker.Marker) {
	g.canvas = render.NewCanvas(cols, rows)
	g.state = geo.NewProjectionState(
		float64(g.canvas.PixelWidth()),
		float64(g.canvas.PixelHeight()),
		g.opts.InitialZoom,
		g.opts.InitialRotation[0],
		g.opts.InitialRotation[1],
	)
	g.rotation = NewRotationController(g.opts.FastSpeed, g.opts.SlowSpeed)
	g.frames = NewFrameScheduler(g.opts.FPS)
	g.markers = markers
	g.selected = nil

	g.input = NewInteractionController(g.state, g.rotation, g.opts.Interaction)
	g.input.SetMarkers(g.markers)
	g.input.OnChange(g.Render)
	g.input.OnSelect(g.handleSelect)
}

// Mount attaches input handlers and starts the frame timer
// The returned func releases both and is safe to call more than once.
func (g *Globe) Mount() (release func()) {
	if g.release != nil {
		return g.release
	}

	detach := g.dispatcher.Attach(g.input.Handlers())
	g.frames.Start()
	g.Render()

	released := false
	g.release = func() {
		if released {
			return
		}
		released = true
		detach()
		g.frames.Stop()
		g.release = nil
	}
	debug.Log("Globe mounted: %dx%d cells, base radius %.1fpx", g.canvas.Width(), g.canvas.Height(), g.state.BaseRadius)
	return g.release
}

// Unmount releases listeners and the timer if mounted
func (g *Globe) Unmount() {
	if g.release != nil {
		g.release()
	}
}

// Mounted reports whether listeners and the timer are active
func (g *Globe) Mounted() bool {
	return g.release != nil
}

// Reinit rebuilds the globe for new dimensions or markers
// Land data survives; rotation, zoom and selection start over.
func (g *Globe) Reinit(cols, rows int, markers []marker.Marker) {
	wasMounted := g.Mounted()
	g.Unmount()
	g.build(cols, rows, markers)
	g.onSelect(nil)
	if wasMounted {
		g.Mount()
	}
}

// Frames returns the frame timer channel; nil while unmounted
func (g *Globe) Frames() <-chan time.Time {
	return g.frames.C()
}

// Tick advances autorotation and repaints when it moved
func (g *Globe) Tick() bool {
	if !g.rotation.Tick(g.state) {
		return false
	}
	g.Render()
	return true
}

// Dispatch routes an input event through the dispatch table
func (g *Globe) Dispatch(ev Event) bool {
	handled := g.dispatcher.Dispatch(ev)
	if handled {
		metrics.InputEventsTotal.WithLabelValues(ev.Kind.String()).Inc()
	}
	return handled
}

// Render paints the current frame onto the canvas
func (g *Globe) Render() {
	start := time.Now()
	g.stats = g.renderer.Render(g.canvas, g.state, render.Scene{
		Land:     g.land,
		Markers:  g.markers,
		Selected: g.selected,
	})
	metrics.ObserveRender(start, g.stats.DotsDrawn)
}

// SetLand installs the stippled land and switches to ready
func (g *Globe) SetLand(land *geo.Land) {
	g.land = land
	g.status = StatusReady
	g.err = nil
	g.Render()
}

// Fail switches to the error state; there is no retry
func (g *Globe) Fail(err error) {
	g.status = StatusFailed
	g.err = err
	debug.Warn("Globe failed to load land: %v", err)
}

// Apply installs a load result
func (g *Globe) Apply(res LoadResult) {
	if res.Err != nil {
		g.Fail(res.Err)
		return
	}
	g.SetLand(res.Land)
}

// OnSelect sets the marker-selected notification; nil means the selection cleared
func (g *Globe) OnSelect(fn func(*marker.Marker)) {
	if fn == nil {
		fn = func(*marker.Marker) {}
	}
	g.onSelect = fn
}

func (g *Globe) handleSelect(m *marker.Marker) {
	if m == nil {
		metrics.MarkerSelectionsTotal.WithLabelValues("miss").Inc()
	} else {
		metrics.MarkerSelectionsTotal.WithLabelValues("hit").Inc()
	}
	g.selected = m
	g.onSelect(m)
}

// Select marks the i-th marker as selected without a click
func (g *Globe) Select(i int) {
	if i < 0 || i >= len(g.markers) {
		g.selected = nil
	} else {
		g.selected = &g.markers[i]
	}
	g.onSelect(g.selected)
	g.Render()
}

// Selected returns the selected marker or nil
func (g *Globe) Selected() *marker.Marker {
	return g.selected
}

// SelectedAnchor returns where the selected marker sits on the canvas
// Returns false when nothing is selected or the marker is on the far side.
func (g *Globe) SelectedAnchor() (geo.ScreenPoint, bool) {
	if g.selected == nil || !g.state.Visible(g.selected.Lng, g.selected.Lat) {
		return geo.ScreenPoint{}, false
	}
	return g.state.Project(g.selected.Lng, g.selected.Lat)
}

// Focus centres the view on lng/lat
func (g *Globe) Focus(lng, lat float64) {
	g.input.Focus(lng, lat)
}

// Zoom applies one wheel notch; positive zooms out
func (g *Globe) Zoom(deltaY float64) {
	g.Dispatch(Event{Kind: EventWheel, DeltaY: deltaY})
}

// Canvas returns the drawing surface
func (g *Globe) Canvas() *render.Canvas {
	return g.canvas
}

// State returns the live projection state
func (g *Globe) State() *geo.ProjectionState {
	return g.state
}

// Rotation returns the rotation controller
func (g *Globe) Rotation() *RotationController {
	return g.rotation
}

// Dispatcher returns the event table
func (g *Globe) Dispatcher() *Dispatcher {
	return g.dispatcher
}

// Markers returns the markers being drawn
func (g *Globe) Markers() []marker.Marker {
	return g.markers
}

// Land returns the loaded land or nil
func (g *Globe) Land() *geo.Land {
	return g.land
}

// Status returns the loading status
func (g *Globe) Status() Status {
	return g.status
}

// Err returns the load error in the failed state
func (g *Globe) Err() error {
	return g.err
}

// Stats returns counts from the last painted frame
func (g *Globe) Stats() render.FrameStats {
	return g.stats
}
