package globe

import (
	"dotglobe/internal/geo"
	"dotglobe/internal/marker"
)

// DefaultClickThreshold is the pick radius in pixels
const DefaultClickThreshold = 30.0

// Pick returns the marker nearest to p within threshold pixels
// Markers on the far hemisphere are ignored. On equal distances the marker that
// comes first in the slice wins. The result points into markers.
func Pick(p geo.ScreenPoint, markers []marker.Marker, state *geo.ProjectionState, threshold float64) *marker.Marker {
	var closest *marker.Marker
	best := threshold

	for i := range markers {
		if !state.Visible(markers[i].Lng, markers[i].Lat) {
			continue
		}
		projected, ok := state.Project(markers[i].Lng, markers[i].Lat)
		if !ok {
			continue
		}
		d := projected.Distance(p)
		if d < best {
			best = d
			closest = &markers[i]
		}
	}

	return closest
}
