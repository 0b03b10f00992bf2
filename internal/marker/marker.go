package marker

import (
	"fmt"
)

// Marker types supplied by the dashboard
const (
	TypeSprint = "sprint"
	TypeIssue  = "issue"
)

// Defaults applied when a marker leaves presentation fields empty
const (
	DefaultSize  = 6.0
	DefaultColor = "#7aa2f7"
)

// Marker is a caller-supplied point of interest on the globe
// The globe only reads markers; ownership stays with the supplier.
type Marker struct {
	Lat         float64                `yaml:"lat" json:"lat"`
	Lng         float64                `yaml:"lng" json:"lng"`
	Color       string                 `yaml:"color,omitempty" json:"color,omitempty"`
	Size        float64                `yaml:"size,omitempty" json:"size,omitempty"`
	Type        string                 `yaml:"type,omitempty" json:"type,omitempty"`
	Title       string                 `yaml:"title,omitempty" json:"title,omitempty"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Location    string                 `yaml:"location,omitempty" json:"location,omitempty"`
	Date        string                 `yaml:"date,omitempty" json:"date,omitempty"`
	Extra       map[string]interface{} `yaml:",inline" json:"-"`
}

// Radius returns the marker size, falling back to DefaultSize
func (m *Marker) Radius() float64 {
	if m.Size > 0 {
		return m.Size
	}
	return DefaultSize
}

// ColorOr returns the marker color or the given fallback
func (m *Marker) ColorOr(fallback string) string {
	if m.Color != "" {
		return m.Color
	}
	return fallback
}

// IsSprint returns true for sprint markers
func (m *Marker) IsSprint() bool {
	return m.Type == TypeSprint
}

// DisplayTitle returns the title if set, otherwise a label for the type
func (m *Marker) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	if m.IsSprint() {
		return "Sprint"
	}
	return "Issue"
}

// KindLabel describes the event type for the detail panel
func (m *Marker) KindLabel() string {
	if m.IsSprint() {
		return "Sprint Event"
	}
	return "Issue Event"
}

// Valid returns true if the coordinates are on the globe
func (m *Marker) Valid() bool {
	return m.Lat >= -90 && m.Lat <= 90 && m.Lng >= -180 && m.Lng <= 180
}

// PositionString returns a formatted lat/lng string
func (m *Marker) PositionString() string {
	lat := m.Lat
	lng := m.Lng

	latDir := "N"
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}

	lngDir := "E"
	if lng < 0 {
		lngDir = "W"
		lng = -lng
	}

	return fmt.Sprintf("%.4f*%s, %.4f*%s", lat, latDir, lng, lngDir)
}

// ListDisplay returns the formatted string for the marker list
// Format: "(S) Q1 Sprint Planning" or "(I) Authentication Bug"
func (m *Marker) ListDisplay() string {
	indicator := "(I)"
	if m.IsSprint() {
		indicator = "(S)"
	}
	return fmt.Sprintf("%s %s", indicator, m.DisplayTitle())
}
