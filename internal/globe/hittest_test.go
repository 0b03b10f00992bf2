package globe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
)

// 500x500 surface at zoom 1: radius 200, centre (250, 250)
func flatState() *geo.ProjectionState {
	return geo.NewProjectionState(500, 500, 1, 0, 0)
}

// lngAtOffset returns the equatorial longitude projecting dx pixels right of centre
func lngAtOffset(state *geo.ProjectionState, dx float64) float64 {
	return math.Asin(dx/state.Scale) * 180 / math.Pi
}

func TestPickNearestWithinThreshold(t *testing.T) {
	state := flatState()
	markers := []marker.Marker{
		{Title: "far", Lng: lngAtOffset(state, 45)},
		{Title: "near", Lng: 0},
	}
	click := geo.ScreenPoint{X: 255, Y: 250}

	p, ok := state.Project(markers[0].Lng, 0)
	require.True(t, ok)
	require.InDelta(t, 40, p.Distance(click), 1e-9)

	hit := Pick(click, markers, state, 30)
	require.NotNil(t, hit)
	assert.Equal(t, "near", hit.Title)
	assert.Same(t, &markers[1], hit)

	assert.Nil(t, Pick(click, markers[:1], state, 30))
}

func TestPickIgnoresFarSide(t *testing.T) {
	state := flatState()
	markers := []marker.Marker{{Lng: 180, Lat: 0}}
	assert.Nil(t, Pick(geo.ScreenPoint{X: 250, Y: 250}, markers, state, 1000))
}

func TestPickTieGoesToFirst(t *testing.T) {
	state := flatState()
	markers := []marker.Marker{
		{Title: "first", Lng: 0},
		{Title: "second", Lng: 0},
	}
	hit := Pick(geo.ScreenPoint{X: 251, Y: 250}, markers, state, 30)
	require.NotNil(t, hit)
	assert.Equal(t, "first", hit.Title)
}

func TestPickThresholdIsExclusive(t *testing.T) {
	state := flatState()
	markers := []marker.Marker{{Lng: 0}}
	assert.Nil(t, Pick(geo.ScreenPoint{X: 280, Y: 250}, markers, state, 30))
	assert.NotNil(t, Pick(geo.ScreenPoint{X: 279, Y: 250}, markers, state, 30))
}
