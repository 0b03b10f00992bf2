package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// ClipAngle is the visible radius around the view centre in degrees
	ClipAngle = 90.0

	// MinZoom and MaxZoom bound Scale as multiples of BaseRadius
	MinZoom = 0.5
	MaxZoom = 3.0

	radians = math.Pi / 180.0
)

// ScreenPoint is a position on the drawing surface in pixels
type ScreenPoint struct {
	X float64
	Y float64
}

// Distance returns the Euclidean pixel distance between two points
func (p ScreenPoint) Distance(q ScreenPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ProjectionState is the mutable orthographic view
// Lambda is kept as accumulated and only interpreted modulo 360 when projecting.
type ProjectionState struct {
	Lambda     float64 // rotation about the polar axis, degrees
	Phi        float64 // tilt, degrees, always within [-90, 90]
	Scale      float64 // globe radius in pixels
	BaseRadius float64
	TranslateX float64
	TranslateY float64
	Width      float64
	Height     float64
}

// NewProjectionState creates the view for a surface of width x height pixels
// BaseRadius is min(width, height)/2.5 and the initial scale is BaseRadius*zoom.
func NewProjectionState(width, height, zoom, lambda, phi float64) *ProjectionState {
	base := math.Min(width, height) / 2.5
	s := &ProjectionState{
		BaseRadius: base,
		TranslateX: width / 2,
		TranslateY: height / 2,
		Width:      width,
		Height:     height,
	}
	s.SetRotation(lambda, phi)
	s.SetScale(base * zoom)
	return s
}

// SetRotation updates the rotation, clamping phi to [-90, 90]
func (s *ProjectionState) SetRotation(lambda, phi float64) {
	s.Lambda = lambda
	s.Phi = ClampPhi(phi)
}

// SetScale updates the scale, clamped to [MinZoom, MaxZoom] x BaseRadius
func (s *ProjectionState) SetScale(scale float64) {
	s.Scale = clamp(scale, s.BaseRadius*MinZoom, s.BaseRadius*MaxZoom)
}

// ScaleFactor is the current zoom relative to BaseRadius
func (s *ProjectionState) ScaleFactor() float64 {
	if s.BaseRadius == 0 {
		return 1
	}
	return s.Scale / s.BaseRadius
}

// Center returns the lng/lat currently at the middle of the view
func (s *ProjectionState) Center() (lng, lat float64) {
	return NormalizeLongitude(-s.Lambda), -s.Phi
}

// Project converts lng/lat to screen coordinates
// Returns false for points on the far hemisphere.
func (s *ProjectionState) Project(lng, lat float64) (ScreenPoint, bool) {
	lambda := (lng + NormalizeLongitude(s.Lambda)) * radians
	phi := lat * radians
	dphi := s.Phi * radians

	cosPhi := math.Cos(phi)
	x := math.Cos(lambda) * cosPhi
	y := math.Sin(lambda) * cosPhi
	z := math.Sin(phi)

	cosDphi, sinDphi := math.Cos(dphi), math.Sin(dphi)

	// x is the cosine of the angular distance from the view centre
	xr := x*cosDphi - z*sinDphi
	zr := z*cosDphi + x*sinDphi

	if xr <= math.Cos(ClipAngle*radians) {
		return ScreenPoint{}, false
	}

	return ScreenPoint{
		X: s.TranslateX + s.Scale*y,
		Y: s.TranslateY - s.Scale*zr,
	}, true
}

// Visible reports whether lng/lat lies within ClipAngle of the view centre
func (s *ProjectionState) Visible(lng, lat float64) bool {
	clng, clat := s.Center()
	return AngularDistance(clng, clat, lng, lat) < ClipAngle
}

// InBounds reports whether a projected point falls on the surface
func (s *ProjectionState) InBounds(p ScreenPoint) bool {
	return p.X >= 0 && p.X <= s.Width && p.Y >= 0 && p.Y <= s.Height
}

// AngularDistance returns the great-circle distance between two points in degrees
func AngularDistance(lng1, lat1, lng2, lat2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Degrees()
}

// NormalizeLongitude maps any angle onto [-180, 180)
func NormalizeLongitude(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// ClampPhi limits a tilt to [-90, 90]
func ClampPhi(phi float64) float64 {
	return clamp(phi, -90, 90)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
