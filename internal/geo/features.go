package geo

import (
	"github.com/paulmach/orb"
)

// GeometryKind identifies which land geometry variant a feature carries
type GeometryKind int

const (
	KindUnsupported GeometryKind = iota
	KindPolygon
	KindMultiPolygon
)

// String returns a string representation of the geometry kind
func (k GeometryKind) String() string {
	switch k {
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unsupported"
	}
}

// KindOf reports the variant of an orb geometry
func KindOf(g orb.Geometry) GeometryKind {
	switch g.(type) {
	case orb.Polygon:
		return KindPolygon
	case orb.MultiPolygon:
		return KindMultiPolygon
	default:
		return KindUnsupported
	}
}

// Feature is a land feature: an orb.Polygon or orb.MultiPolygon with its properties
// Coordinates are orb.Point{lng, lat}. Features are never mutated after decoding.
type Feature struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// NewFeature wraps a geometry in a feature
func NewFeature(g orb.Geometry) *Feature {
	return &Feature{
		Geometry:   g,
		Properties: make(map[string]interface{}),
	}
}

// Kind returns the geometry variant of the feature
func (f *Feature) Kind() GeometryKind {
	return KindOf(f.Geometry)
}

// Polygons returns the feature as a list of polygons regardless of variant
func (f *Feature) Polygons() []orb.Polygon {
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		return []orb.Polygon{g}
	case orb.MultiPolygon:
		return g
	default:
		return nil
	}
}

// Bound returns the plain lng/lat bounding box of the feature
// The box is not corrected for features crossing the antimeridian.
func (f *Feature) Bound() orb.Bound {
	return f.Geometry.Bound()
}

// DotSample is a stipple point known to lie inside a land feature
type DotSample struct {
	Lng float64
	Lat float64
}

// Land is the loaded feature set together with its stipple dots
type Land struct {
	Features []*Feature
	Dots     []DotSample
}

// RingCount returns the total number of rings across all features
func (l *Land) RingCount() int {
	n := 0
	for _, f := range l.Features {
		for _, p := range f.Polygons() {
			n += len(p)
		}
	}
	return n
}
