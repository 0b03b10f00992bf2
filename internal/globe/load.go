package globe

import (
	"context"
	"fmt"

	"dotglobe/internal/geo"
	"dotglobe/internal/metrics"
)

// FetchFunc returns the raw land feed
type FetchFunc func(ctx context.Context) ([]byte, error)

// LoadResult is delivered once the land is ready or has failed
type LoadResult struct {
	Land *geo.Land
	Err  error
}

// LoadLand fetches, decodes and stipples the land feed
func LoadLand(ctx context.Context, fetch FetchFunc, spacing float64) (*geo.Land, error) {
	data, err := fetch(ctx)
	if err != nil {
		metrics.FeedFetchTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("failed to load land data: %w", err)
	}

	features, err := geo.DecodeFeatureCollection(data)
	if err != nil {
		metrics.FeedFetchTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("failed to load land data: %w", err)
	}
	metrics.FeedFetchTotal.WithLabelValues("ok").Inc()

	land := geo.BuildLand(features, spacing)
	metrics.DotsTotal.Set(float64(len(land.Dots)))
	return land, nil
}

// StartLoad runs LoadLand in the background
// The channel receives exactly one result. The load is not cancelled when the
// globe is remounted; only ctx stops it.
func StartLoad(ctx context.Context, fetch FetchFunc, spacing float64) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		land, err := LoadLand(ctx, fetch, spacing)
		out <- LoadResult{Land: land, Err: err}
	}()
	return out
}
