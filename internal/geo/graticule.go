package geo

import (
	"github.com/paulmach/orb"
)

const (
	graticuleStep      = 10.0
	graticuleMajorStep = 90.0
	graticuleExtent    = 80.0
	graticulePrecision = 2.5
)

// Graticule returns meridians and parallels as polylines
// Minor meridians stop at +/-80 degrees, the four major ones reach the poles.
func Graticule() []orb.LineString {
	var lines []orb.LineString

	for lng := -180.0; lng < 180; lng += graticuleStep {
		extent := graticuleExtent
		if isMultiple(lng, graticuleMajorStep) {
			extent = 90
		}
		line := orb.LineString{}
		for lat := -extent; lat <= extent; lat += graticulePrecision {
			line = append(line, orb.Point{lng, lat})
		}
		lines = append(lines, line)
	}

	for lat := -graticuleExtent; lat <= graticuleExtent; lat += graticuleStep {
		line := orb.LineString{}
		for lng := -180.0; lng <= 180; lng += graticulePrecision {
			line = append(line, orb.Point{lng, lat})
		}
		lines = append(lines, line)
	}

	return lines
}

func isMultiple(v, step float64) bool {
	q := v / step
	return q == float64(int(q))
}
