package geo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"dotglobe/internal/debug"
)

// ErrMalformedGeometry marks a feature that cannot be used as land
var ErrMalformedGeometry = errors.New("malformed geometry")

type rawCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// ValidateFeatureCollection checks that data is a GeoJSON FeatureCollection
// without decoding the geometries.
func ValidateFeatureCollection(data []byte) error {
	_, err := parseCollection(data)
	return err
}

func parseCollection(data []byte) (rawCollection, error) {
	var raw rawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("failed to parse feature collection: %w", err)
	}
	if raw.Type != "FeatureCollection" {
		return raw, fmt.Errorf("expected FeatureCollection, got %q", raw.Type)
	}
	return raw, nil
}

// DecodeFeatureCollection parses a GeoJSON FeatureCollection of land polygons
// A collection that is not valid JSON fails as a whole. Individual features with
// unsupported or degenerate geometry are skipped and the rest are returned.
func DecodeFeatureCollection(data []byte) ([]*Feature, error) {
	raw, err := parseCollection(data)
	if err != nil {
		return nil, err
	}

	features := make([]*Feature, 0, len(raw.Features))
	skipped := 0
	for i, msg := range raw.Features {
		f, err := decodeFeature(msg)
		if err != nil {
			skipped++
			debug.WithFields(debug.Fields{"index": i}).Debugf("skipping feature: %v", err)
			continue
		}
		features = append(features, f)
	}

	debug.Log("Decoded %d land features (%d skipped)", len(features), skipped)
	return features, nil
}

func decodeFeature(msg json.RawMessage) (*Feature, error) {
	gf, err := geojson.UnmarshalFeature(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
	}
	if gf.Geometry == nil {
		return nil, fmt.Errorf("%w: no geometry", ErrMalformedGeometry)
	}

	geom, err := sanitize(gf.Geometry)
	if err != nil {
		return nil, err
	}

	f := NewFeature(geom)
	for k, v := range gf.Properties {
		f.Properties[k] = v
	}
	return f, nil
}

// sanitize checks the variant and drops degenerate rings
// A degenerate outer ring invalidates its polygon; degenerate holes are dropped.
func sanitize(g orb.Geometry) (orb.Geometry, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		p, ok := sanitizePolygon(geom)
		if !ok {
			return nil, fmt.Errorf("%w: degenerate outer ring", ErrMalformedGeometry)
		}
		return p, nil
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, 0, len(geom))
		for _, poly := range geom {
			if p, ok := sanitizePolygon(poly); ok {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%w: no usable polygons", ErrMalformedGeometry)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrMalformedGeometry, g.GeoJSONType())
	}
}

func sanitizePolygon(p orb.Polygon) (orb.Polygon, bool) {
	if len(p) == 0 || degenerate(p[0]) {
		return nil, false
	}
	out := orb.Polygon{p[0]}
	for _, hole := range p[1:] {
		if !degenerate(hole) {
			out = append(out, hole)
		}
	}
	return out, true
}

// degenerate reports rings that cannot enclose an area
func degenerate(r orb.Ring) bool {
	if len(r) < 4 {
		return true
	}
	distinct := make(map[orb.Point]struct{}, 3)
	for _, pt := range r {
		distinct[pt] = struct{}{}
		if len(distinct) >= 3 {
			return false
		}
	}
	return true
}
