package marker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dotglobe/internal/debug"
)

type markerFile struct {
	Markers []Marker `yaml:"markers"`
}

// LoadFile reads markers from a YAML or JSON file
// The file is either a bare list or a document with a top-level "markers" key.
// Entries with out-of-range coordinates are skipped.
func LoadFile(path string) ([]Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markers file: %w", err)
	}
	return Parse(data)
}

// Parse decodes marker data, see LoadFile
func Parse(data []byte) ([]Marker, error) {
	var list []Marker
	if err := yaml.Unmarshal(data, &list); err != nil {
		var doc markerFile
		if docErr := yaml.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("failed to parse markers: %w", err)
		}
		list = doc.Markers
	}

	markers := make([]Marker, 0, len(list))
	for i, m := range list {
		if !m.Valid() {
			debug.Log("Skipping marker %d (%q): coordinates out of range %.4f, %.4f", i, m.Title, m.Lat, m.Lng)
			continue
		}
		markers = append(markers, m)
	}
	return markers, nil
}
