package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dotglobe/internal/debug"
)

// EnvPrefix is prepended to every environment key read by ApplyEnv
const EnvPrefix = "DOTGLOBE_"

// LoadEnv loads variables from local .env files if present
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			debug.Warn("failed to load %s: %v", file, err)
			continue
		}
		loaded = append(loaded, file)
	}
	if len(loaded) > 0 {
		debug.Log("Loaded env files: %s", strings.Join(loaded, ", "))
	}
}

// ApplyEnv overlays DOTGLOBE_* variables onto cfg
func ApplyEnv(cfg *Config) {
	cfg.FeedURL = GetEnv("FEED_URL", cfg.FeedURL)
	cfg.CacheDir = GetEnv("CACHE_DIR", cfg.CacheDir)
	cfg.MarkersFile = GetEnv("MARKERS_FILE", cfg.MarkersFile)
	cfg.MetricsAddr = GetEnv("METRICS_ADDR", cfg.MetricsAddr)
	cfg.LogLevel = GetEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DotSpacing = GetEnvFloat("DOT_SPACING", cfg.DotSpacing)
	cfg.FPS = GetEnvInt("FPS", cfg.FPS)
	cfg.InitialZoom = GetEnvFloat("INITIAL_ZOOM", cfg.InitialZoom)
	cfg.FastSpeed = GetEnvFloat("FAST_SPEED", cfg.FastSpeed)
	cfg.SlowSpeed = GetEnvFloat("SLOW_SPEED", cfg.SlowSpeed)
	cfg.DragSensitivity = GetEnvFloat("DRAG_SENSITIVITY", cfg.DragSensitivity)
	cfg.ClickThreshold = GetEnvFloat("CLICK_THRESHOLD", cfg.ClickThreshold)
	cfg.SuppressClickAfterDrag = GetEnvBool("SUPPRESS_CLICK_AFTER_DRAG", cfg.SuppressClickAfterDrag)
	cfg.DragThreshold = GetEnvFloat("DRAG_THRESHOLD", cfg.DragThreshold)
}

// GetEnv gets a prefixed environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets a prefixed integer environment variable with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvFloat gets a prefixed float environment variable with a default value
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvBool gets a prefixed boolean environment variable with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
