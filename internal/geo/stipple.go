package geo

import (
	"github.com/paulmach/orb"

	"dotglobe/internal/debug"
)

// StepFactor converts a dot spacing into a lattice step in degrees
const StepFactor = 0.08

// GenerateDots samples a lng/lat lattice over every feature's bounding box and
// keeps the points inside the feature. Step is spacing*StepFactor degrees.
//
// Bounding boxes are plain min/max so features crossing the antimeridian are
// under-sampled. The cost is O(lattice points x ring vertices) and is meant to
// run once per loaded feature set.
func GenerateDots(features []*Feature, spacing float64) []DotSample {
	step := spacing * StepFactor
	if step <= 0 {
		return nil
	}

	var dots []DotSample
	for i, f := range features {
		if f == nil || f.Kind() == KindUnsupported {
			debug.Log("Stippler skipping feature %d: unsupported geometry", i)
			continue
		}
		dots = appendFeatureDots(dots, f, step)
	}
	return dots
}

func appendFeatureDots(dots []DotSample, f *Feature, step float64) []DotSample {
	b := f.Bound()
	for i := 0; ; i++ {
		lng := b.Min[0] + float64(i)*step
		if lng > b.Max[0] {
			break
		}
		for j := 0; ; j++ {
			lat := b.Min[1] + float64(j)*step
			if lat > b.Max[1] {
				break
			}
			if PointInFeature(orb.Point{lng, lat}, f) {
				dots = append(dots, DotSample{Lng: lng, Lat: lat})
			}
		}
	}
	return dots
}

// BuildLand stipples a decoded feature set
func BuildLand(features []*Feature, spacing float64) *Land {
	land := &Land{
		Features: features,
		Dots:     GenerateDots(features, spacing),
	}
	debug.Log("Generated %d land dots from %d features (%d rings)", len(land.Dots), len(features), land.RingCount())
	return land
}

// PointInFeature tests land membership, honoring holes
func PointInFeature(p orb.Point, f *Feature) bool {
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		return pointInPolygon(p, g)
	case orb.MultiPolygon:
		for _, poly := range g {
			if pointInPolygon(p, poly) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func pointInPolygon(p orb.Point, poly orb.Polygon) bool {
	if len(poly) == 0 || !pointInRing(p, poly[0]) {
		return false
	}
	for _, hole := range poly[1:] {
		if pointInRing(p, hole) {
			return false
		}
	}
	return true
}

// pointInRing is an even-odd ray cast towards +x
func pointInRing(p orb.Point, ring orb.Ring) bool {
	x, y := p[0], p[1]
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
