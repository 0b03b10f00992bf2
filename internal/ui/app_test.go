package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotglobe/internal/debug"
	"dotglobe/internal/globe"
	"dotglobe/internal/marker"
)

const (
	screenW = 80
	screenH = 24
)

// centreMarker sits under the view centre at the default rotation
var centreMarker = marker.Marker{Title: "Berlin offsite", Type: marker.TypeSprint, Lng: 30, Lat: 35, Location: "Berlin", Date: "2024-03-01"}

func newTestApp(t *testing.T, markers ...marker.Marker) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenW, screenH)

	app := NewAppWithScreen(screen, Options{
		Store: marker.NewStore(markers),
		Fetch: func(context.Context) ([]byte, error) {
			return nil, errors.New("offline")
		},
		Spacing: 16,
		Globe:   globe.DefaultOptions(),
	})
	app.globe.Mount()
	t.Cleanup(app.globe.Unmount)
	return app, screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(screen, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func click(app *App, x, y int) {
	app.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestStatusLineFollowsLoadState(t *testing.T) {
	app, screen := newTestApp(t)

	app.render()
	assert.Contains(t, rowText(screen, screenH-1), LoadingText)

	res := <-globe.StartLoad(context.Background(), app.fetch, app.spacing)
	app.globe.Apply(res)
	app.render()

	status := rowText(screen, screenH-1)
	assert.Contains(t, status, "Error loading Earth visualization: ")
	assert.Contains(t, status, "offline")
}

func TestClickSelectsMarkerAndOpensDetail(t *testing.T) {
	app, screen := newTestApp(t, centreMarker)

	// Pixel centre of the globe is (80, 46); cell 40,11 maps to pixel 81,46.
	click(app, 40, 11)
	require.NotNil(t, app.globe.Selected())
	assert.Equal(t, "Berlin offsite", app.globe.Selected().Title)
	assert.Equal(t, 0, app.listView.SelectedIndex())

	app.render()
	text := screenText(screen)
	assert.Contains(t, text, "Details")
	assert.Contains(t, text, "Sprint Event")
	assert.Contains(t, text, "Location: Berlin")

	click(app, 1, 1)
	assert.Nil(t, app.globe.Selected())
	assert.Nil(t, app.detailView.Marker())
}

func TestDetailHiddenOnFarSide(t *testing.T) {
	app, screen := newTestApp(t, centreMarker)

	click(app, 40, 11)
	require.NotNil(t, app.globe.Selected())

	app.globe.Focus(-150, -35)
	app.render()
	assert.NotContains(t, screenText(screen), "Sprint Event")
	assert.NotNil(t, app.globe.Selected())
}

func TestKeyboardNavigation(t *testing.T) {
	markers := marker.Samples()
	app, _ := newTestApp(t, markers...)

	app.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	require.NotNil(t, app.globe.Selected())
	assert.Equal(t, markers[0].Title, app.globe.Selected().Title)

	// Focus puts the marker at the view centre.
	anchor, ok := app.globe.SelectedAnchor()
	require.True(t, ok)
	s := app.globe.State()
	assert.InDelta(t, s.TranslateX, anchor.X, 1e-6)
	assert.InDelta(t, s.TranslateY, anchor.Y, 1e-6)

	app.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, markers[1].Title, app.globe.Selected().Title)
	app.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, markers[0].Title, app.globe.Selected().Title)

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Nil(t, app.globe.Selected())

	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	select {
	case <-app.quit:
	default:
		t.Fatal("escape without a selection should quit")
	}
}

func TestQuitKeyIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t)
	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.NotPanics(t, app.Stop)
}

func TestZoomKeys(t *testing.T) {
	app, _ := newTestApp(t)
	scale := app.globe.State().Scale

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	assert.Greater(t, app.globe.State().Scale, scale)

	scale = app.globe.State().Scale
	app.handleEvent(tcell.NewEventMouse(10, 10, tcell.WheelDown, tcell.ModNone))
	assert.Less(t, app.globe.State().Scale, scale)
}

func TestSpaceTogglesAutorotation(t *testing.T) {
	app, _ := newTestApp(t)
	require.True(t, app.globe.Rotation().AutoRotating())

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.False(t, app.globe.Rotation().AutoRotating())
	assert.False(t, app.globe.Tick())
}

func TestResizeRemountsGlobe(t *testing.T) {
	app, screen := newTestApp(t, centreMarker)
	click(app, 40, 11)
	require.NotNil(t, app.globe.Selected())

	screen.SetSize(100, 30)
	app.handleEvent(tcell.NewEventResize(100, 30))

	assert.Equal(t, 100, app.globe.Canvas().Width())
	assert.Equal(t, 29, app.globe.Canvas().Height())
	assert.Nil(t, app.globe.Selected())
	assert.True(t, app.globe.Mounted())
}

func TestStoreReplaceReloadsMarkers(t *testing.T) {
	app, _ := newTestApp(t, centreMarker)

	app.store.Replace(marker.Samples())
	<-app.store.Changed()
	app.reloadMarkers()

	assert.Len(t, app.globe.Markers(), len(marker.Samples()))
	assert.Equal(t, len(marker.Samples()), app.listView.Len())
}

func TestListClickSelectsMarker(t *testing.T) {
	markers := marker.Samples()
	app, _ := newTestApp(t, markers...)

	// List panel sits above the status line with one row per marker.
	top := screenH - 1 - (len(markers) + 2)
	click(app, 2, top+2)

	require.NotNil(t, app.globe.Selected())
	assert.Equal(t, markers[1].Title, app.globe.Selected().Title)
	assert.False(t, app.globeView.Pressed())
}

func TestClickLoggedWhenDebugEnabled(t *testing.T) {
	app, _ := newTestApp(t, centreMarker)

	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(io.Discard)
	debug.SetLevel("debug")

	click(app, 40, 11)
	assert.Contains(t, buf.String(), "Click at cell 40,11")
}
