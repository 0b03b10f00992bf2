// Package config resolves runtime settings from defaults, an optional YAML file
// and the process environment (optionally seeded from .env files).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFeedURL is the Natural Earth 1:110m land polygon feed
const DefaultFeedURL = "https://raw.githubusercontent.com/martynafford/natural-earth-geojson/refs/heads/master/110m/physical/ne_110m_land.json"

// Theme holds hex colors for the globe
type Theme struct {
	Ocean   string `yaml:"ocean"`
	Outline string `yaml:"outline"`
	Land    string `yaml:"land"`
	Marker  string `yaml:"marker"`
}

// Config is the full set of tunables
type Config struct {
	FeedURL     string `yaml:"feed_url"`
	CacheDir    string `yaml:"cache_dir"`
	MarkersFile string `yaml:"markers_file"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`

	DotSpacing      float64    `yaml:"dot_spacing"`
	FPS             int        `yaml:"fps"`
	InitialRotation [2]float64 `yaml:"initial_rotation"`
	InitialZoom     float64    `yaml:"initial_zoom"`
	FastSpeed       float64    `yaml:"fast_speed"`
	SlowSpeed       float64    `yaml:"slow_speed"`
	DragSensitivity float64    `yaml:"drag_sensitivity"`
	ClickThreshold  float64    `yaml:"click_threshold"`

	// Off by default: a click fires after every pointer release, drags included
	SuppressClickAfterDrag bool    `yaml:"suppress_click_after_drag"`
	DragThreshold          float64 `yaml:"drag_threshold"`

	Theme Theme `yaml:"theme"`
}

// Default returns the settings the globe ships with
func Default() Config {
	return Config{
		FeedURL:         DefaultFeedURL,
		LogLevel:        "info",
		DotSpacing:      16,
		FPS:             30,
		InitialRotation: [2]float64{-30, -35},
		InitialZoom:     1.4,
		FastSpeed:       0.3,
		SlowSpeed:       0.1,
		DragSensitivity: 0.5,
		ClickThreshold:  30,
		DragThreshold:   3,
		Theme: Theme{
			Ocean:   "#000000",
			Outline: "#ffffff",
			Land:    "#999999",
			Marker:  "#7aa2f7",
		},
	}
}

// LoadFile overlays the YAML file at path onto cfg
// Keys absent from the file keep their current values
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges that would otherwise break the globe
func (c *Config) Validate() error {
	if c.DotSpacing <= 0 {
		return fmt.Errorf("dot spacing must be positive, got %g", c.DotSpacing)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.FPS)
	}
	if c.InitialZoom < 0.5 || c.InitialZoom > 3 {
		return fmt.Errorf("initial zoom must be between 0.5 and 3, got %g", c.InitialZoom)
	}
	if c.FastSpeed < 0 || c.SlowSpeed < 0 {
		return fmt.Errorf("rotation speeds must not be negative")
	}
	if c.DragSensitivity <= 0 {
		return fmt.Errorf("drag sensitivity must be positive, got %g", c.DragSensitivity)
	}
	if c.ClickThreshold <= 0 {
		return fmt.Errorf("click threshold must be positive, got %g", c.ClickThreshold)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("drag threshold must not be negative, got %g", c.DragThreshold)
	}
	if c.FeedURL == "" {
		return fmt.Errorf("feed url must not be empty")
	}
	return nil
}
