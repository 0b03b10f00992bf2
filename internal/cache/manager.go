package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dotglobe/internal/debug"
	"dotglobe/internal/geo"
)

const userAgent = "Mozilla/5.0 (compatible; dotglobe/1.0)"

// Manager handles downloading and caching the land feed
type Manager struct {
	cacheDir string
	client   *http.Client
}

// DataFile represents a dataset to download
type DataFile struct {
	Name string // Friendly name
	URL  string // Download URL
	File string // Filename inside the cache directory

	// Validate rejects content that must not stay cached; nil accepts anything
	Validate func(data []byte) error
}

// LandFeed returns the land polygon feed served from url
func LandFeed(url string) DataFile {
	return DataFile{
		Name: "Land polygons",
		URL:  url,
		File: "ne_110m_land.json",

		Validate: geo.ValidateFeatureCollection,
	}
}

// NewManager creates a new cache manager
// If cacheDir is empty, uses ~/.dotglobe/data
func NewManager(cacheDir string) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".dotglobe", "data")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Manager{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Ensure returns the cached path of file, downloading it first if missing
func (m *Manager) Ensure(ctx context.Context, file DataFile) (string, error) {
	path := m.GetDataPath(file.File)
	if _, err := os.Stat(path); err == nil {
		debug.Log("Using cached %s at %s", file.Name, path)
		return path, nil
	}

	debug.Log("Downloading %s from %s", file.Name, file.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status: %s (URL: %s)", resp.Status, file.URL)
	}

	tmpFile, err := os.CreateTemp(m.cacheDir, file.File+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to save download: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to save download: %w", err)
	}

	// Rename so a partial download never looks cached.
	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move download into cache: %w", err)
	}

	debug.Log("Downloaded %s", file.Name)
	return path, nil
}

// Fetch returns the contents of file, downloading it on first use
// Content that fails file.Validate is removed from the cache so the next
// fetch downloads it again.
func (m *Manager) Fetch(ctx context.Context, file DataFile) ([]byte, error) {
	path, err := m.Ensure(ctx, file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached %s: %w", file.Name, err)
	}
	if file.Validate != nil {
		if err := file.Validate(data); err != nil {
			if rmErr := m.Invalidate(file); rmErr != nil {
				debug.Warn("failed to drop invalid %s: %v", file.Name, rmErr)
			}
			return nil, fmt.Errorf("invalid %s: %w", file.Name, err)
		}
	}
	return data, nil
}

// Invalidate removes the cached copy of file; a missing file is not an error
func (m *Manager) Invalidate(file DataFile) error {
	err := os.Remove(m.GetDataPath(file.File))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached %s: %w", file.Name, err)
	}
	debug.Log("Dropped cached %s", file.Name)
	return nil
}

// Fetcher binds file to Fetch for callers that take a plain fetch function
func (m *Manager) Fetcher(file DataFile) func(ctx context.Context) ([]byte, error) {
	return func(ctx context.Context) ([]byte, error) {
		return m.Fetch(ctx, file)
	}
}

// GetDataPath returns where name is stored in the cache
func (m *Manager) GetDataPath(name string) string {
	return filepath.Join(m.cacheDir, name)
}

// GetCacheDir returns the cache directory
func (m *Manager) GetCacheDir() string {
	return m.cacheDir
}
