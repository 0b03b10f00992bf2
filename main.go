package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dotglobe/internal/cache"
	"dotglobe/internal/config"
	"dotglobe/internal/debug"
	"dotglobe/internal/globe"
	"dotglobe/internal/marker"
	"dotglobe/internal/metrics"
	"dotglobe/internal/render"
	"dotglobe/internal/ui"
)

func main() {
	// Parse command line flags
	help := flag.Bool("h", false, "Show help message")
	configFile := flag.String("config", "", "YAML config file")
	markersFile := flag.String("markers", "", "Marker file, YAML or JSON (default: built-in sample markers)")
	cacheDir := flag.String("cache", "", "Cache directory for land data (default: ~/.dotglobe/data)")
	debugLog := flag.String("d", "", "Debug log file (e.g., debug.log)")
	feedURL := flag.String("feed", "", "Land GeoJSON feed URL")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g., :9090)")
	spacing := flag.Float64("spacing", 0, "Land dot spacing (default: 16)")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("dotglobe - Terminal dotted globe with event markers")
		fmt.Println("\nUsage: dotglobe [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		fmt.Println("\nEnvironment variables use the DOTGLOBE_ prefix and may be set in .env")
		os.Exit(0)
	}

	// Set up debug logging if requested
	if *debugLog != "" {
		logFile, err := os.Create(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			debug.SetLevel("debug")
			debug.Log("dotglobe debug log started")
			fmt.Printf("Debug logging enabled: %s\n", *debugLog)
		}
	}

	// Resolve configuration: defaults < file < environment < flags
	cfg := config.Default()
	config.LoadEnv()
	if *configFile != "" {
		if err := config.LoadFile(&cfg, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	config.ApplyEnv(&cfg)
	applyFlags(&cfg, *markersFile, *cacheDir, *feedURL, *metricsAddr, *spacing)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *debugLog != "" {
		debug.SetLevel(cfg.LogLevel)
	}

	// Initialize cache manager
	fmt.Println("Initializing land data cache...")
	cacheManager, err := cache.NewManager(cfg.CacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize cache: %v\n", err)
		os.Exit(1)
	}

	// Load markers
	markers, err := loadMarkers(cfg.MarkersFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load markers: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d markers\n", len(markers))
	store := marker.NewStore(markers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reload the marker file on SIGHUP
	if cfg.MarkersFile != "" {
		go watchReload(ctx, cfg.MarkersFile, store)
	}

	if cfg.MetricsAddr != "" {
		fmt.Printf("Serving metrics on %s/metrics\n", cfg.MetricsAddr)
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				debug.Warn("metrics server stopped: %v", err)
			}
		}()
	}

	// Create and run application
	fmt.Printf("Starting dotglobe (spacing: %.0f, zoom: %.1fx)...\n", cfg.DotSpacing, cfg.InitialZoom)
	app, err := ui.NewApp(ui.Options{
		Store:   store,
		Fetch:   cacheManager.Fetcher(cache.LandFeed(cfg.FeedURL)),
		Spacing: cfg.DotSpacing,
		Globe:   globeOptions(cfg),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// applyFlags overrides cfg with flags that were set
func applyFlags(cfg *config.Config, markersFile, cacheDir, feedURL, metricsAddr string, spacing float64) {
	if markersFile != "" {
		cfg.MarkersFile = markersFile
	}
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}
	if spacing > 0 {
		cfg.DotSpacing = spacing
	}
}

// globeOptions maps resolved settings onto the globe
func globeOptions(cfg config.Config) globe.Options {
	opts := globe.DefaultOptions()
	opts.FPS = cfg.FPS
	opts.InitialRotation = cfg.InitialRotation
	opts.InitialZoom = cfg.InitialZoom
	opts.FastSpeed = cfg.FastSpeed
	opts.SlowSpeed = cfg.SlowSpeed
	opts.Interaction = globe.InteractionConfig{
		Sensitivity:            cfg.DragSensitivity,
		ClickThreshold:         cfg.ClickThreshold,
		SuppressClickAfterDrag: cfg.SuppressClickAfterDrag,
		DragThreshold:          cfg.DragThreshold,
	}
	opts.Theme = render.NewTheme(cfg.Theme.Ocean, cfg.Theme.Outline, cfg.Theme.Land, cfg.Theme.Marker)
	return opts
}

func loadMarkers(path string) ([]marker.Marker, error) {
	if path == "" {
		return marker.Samples(), nil
	}
	return marker.LoadFile(path)
}

// watchReload replaces the store's markers each time SIGHUP arrives
func watchReload(ctx context.Context, path string, store *marker.Store) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			markers, err := marker.LoadFile(path)
			if err != nil {
				debug.Warn("marker reload failed, keeping %d markers: %v", store.Count(), err)
				continue
			}
			store.Replace(markers)
			debug.Log("Reloaded %d markers from %s", len(markers), path)
		}
	}
}
