package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"dotglobe/internal/debug"
	"dotglobe/internal/globe"
	"dotglobe/internal/marker"
)

const (
	listWidth     = 30
	listMaxHeight = 12
	detailWidth   = 40
	detailHeight  = 12
)

// Options configure the application
type Options struct {
	Store   *marker.Store
	Fetch   globe.FetchFunc
	Spacing float64
	Globe   globe.Options
}

// App is the main application controller
type App struct {
	screen     tcell.Screen
	store      *marker.Store
	fetch      globe.FetchFunc
	spacing    float64
	globe      *globe.Globe
	globeView  *GlobeView
	listView   *ListView
	detailView *DetailView
	statusBar  *StatusBar
	quit       chan struct{}
	quitOnce   sync.Once
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewApp creates a new application on the terminal
func NewApp(opts Options) (*App, error) {
	// Initialize tcell screen
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	return NewAppWithScreen(screen, opts), nil
}

// NewAppWithScreen creates an application on an initialized screen
func NewAppWithScreen(screen tcell.Screen, opts Options) *App {
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	screen.Clear()

	width, height := screen.Size()
	markers := opts.Store.All()

	g := globe.New(width, globeRows(height), markers, opts.Globe)

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		screen:     screen,
		store:      opts.Store,
		fetch:      opts.Fetch,
		spacing:    opts.Spacing,
		globe:      g,
		globeView:  NewGlobeView(g),
		listView:   NewListView(0, 0, listWidth, listMaxHeight),
		detailView: NewDetailView(0, 0, detailWidth, detailHeight),
		statusBar:  NewStatusBar(height-1, width),
		quit:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
	app.listView.Update(g.Markers())
	app.layout(width, height)
	g.OnSelect(app.handleSelect)

	return app
}

// globeRows leaves the last row for the status line
func globeRows(height int) int {
	if height < 2 {
		return 1
	}
	return height - 1
}

// Run starts the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	a.globe.Mount()
	loads := globe.StartLoad(a.ctx, a.fetch, a.spacing)

	events := make(chan tcell.Event, 16)
	go a.screen.ChannelEvents(events, a.quit)

	a.render()

	for {
		select {
		case <-a.quit:
			return nil

		case <-a.globe.Frames():
			if a.globe.Tick() {
				a.render()
			}

		case res := <-loads:
			loads = nil
			a.globe.Apply(res)
			a.render()

		case <-a.store.Changed():
			a.reloadMarkers()
			a.render()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil // Quit requested
			}
			a.render()
		}
	}
}

// Stop ends Run from any goroutine
func (a *App) Stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Globe returns the globe component
func (a *App) Globe() *globe.Globe {
	return a.globe
}

// handleSelect keeps the list and detail panel in step with the globe selection
func (a *App) handleSelect(m *marker.Marker) {
	a.detailView.SetMarker(m)
	if m == nil {
		a.listView.SetSelected(-1)
		return
	}
	markers := a.globe.Markers()
	for i := range markers {
		if &markers[i] == m {
			a.listView.SetSelected(i)
			return
		}
	}
}

// selectListed selects and centres the marker highlighted in the list
func (a *App) selectListed() {
	i := a.listView.SelectedIndex()
	if i < 0 {
		return
	}
	a.globe.Select(i)
	if m := a.globe.Selected(); m != nil {
		a.globe.Focus(m.Lng, m.Lat)
	}
}

// reloadMarkers remounts the globe with the store's current markers
func (a *App) reloadMarkers() {
	width, height := a.screen.Size()
	a.globeView.Reset()
	a.globe.Reinit(width, globeRows(height), a.store.All())
	a.listView.Update(a.globe.Markers())
	a.layout(width, height)
	debug.Log("Markers reloaded: %d (version %d)", a.store.Count(), a.store.Version())
}

// render renders the current view to the screen
func (a *App) render() {
	a.screen.Clear()

	a.globeView.Draw(a.screen)
	a.listView.Draw(a.screen)

	// The panel follows the marker; it hides while the marker is on the far side.
	if _, visible := a.globe.SelectedAnchor(); visible {
		a.detailView.Draw(a.screen)
	}

	a.statusBar.Draw(a.screen, a.globe)
	a.screen.Show()
}

// handleEvent processes keyboard, mouse and resize events
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			if a.globe.Selected() != nil {
				a.globe.Select(-1)
			} else {
				a.Stop()
				return false
			}

		case tcell.KeyEnter:
			a.selectListed()

		case tcell.KeyUp:
			if a.listView.SelectedIndex() < 0 {
				a.listView.SetSelected(a.listView.Len() - 1)
			} else {
				a.listView.SelectPrev()
			}
			a.selectListed()

		case tcell.KeyDown:
			if a.listView.SelectedIndex() < 0 {
				a.listView.SetSelected(0)
			} else {
				a.listView.SelectNext()
			}
			a.selectListed()

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				a.Stop()
				return false

			case 'r', 'R':
				a.screen.Sync()

			case ' ':
				rot := a.globe.Rotation()
				rot.SetAutoRotate(!rot.AutoRotating())

			case '+', '=':
				a.globeView.ZoomIn()

			case '-', '_':
				a.globeView.ZoomOut()
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// handleMouse sends presses on the list to the list and everything else to the globe
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if !a.globeView.Pressed() && ev.Buttons()&tcell.Button1 != 0 && a.listView.Contains(x, y) {
		if i, ok := a.listView.ItemAt(x, y); ok {
			a.listView.SetSelected(i)
			a.selectListed()
		}
		return
	}
	a.globeView.HandleMouse(ev)
}

// handleResize remounts the globe at the new size; land data is kept
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()

	a.globeView.Reset()
	a.globe.Reinit(width, globeRows(height), a.store.All())
	a.listView.Update(a.globe.Markers())
	a.layout(width, height)
	debug.Log("Resized to %dx%d", width, height)
}

// layout positions the panels for a screen of width x height
func (a *App) layout(width, height int) {
	listHeight := min(a.listView.Len()+2, listMaxHeight)
	a.listView.UpdateDimensions(0, height-1-listHeight, min(listWidth, width), listHeight)
	a.detailView.UpdateDimensions(max(width-detailWidth-1, 0), 1, min(detailWidth, width), detailHeight)
	a.statusBar.UpdateDimensions(height-1, width)
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	a.Stop()

	if a.cancel != nil {
		a.cancel()
	}

	a.globe.Unmount()

	if a.screen != nil {
		a.screen.Fini()
	}
}
