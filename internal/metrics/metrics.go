package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dotglobe/internal/debug"
)

var (
	FramesRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dotglobe_frames_rendered_total",
		Help: "Total number of globe frames painted",
	})
	RenderDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dotglobe_render_duration_ms",
		Help:    "Frame render duration in milliseconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 33, 50, 100},
	})
	DotsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dotglobe_land_dots_total",
		Help: "Number of stipple dots generated from the land feed",
	})
	DotsVisible = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dotglobe_land_dots_visible",
		Help: "Number of stipple dots drawn in the last frame",
	})
	FeedFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dotglobe_feed_fetch_total",
		Help: "Land feed loads by result",
	}, []string{"result"})
	InputEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dotglobe_input_events_total",
		Help: "Pointer and wheel events dispatched by kind",
	}, []string{"kind"})
	MarkerSelectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dotglobe_marker_selections_total",
		Help: "Click outcomes: hit selects a marker, miss clears the selection",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(FramesRendered)
	prometheus.MustRegister(RenderDurationMs)
	prometheus.MustRegister(DotsTotal)
	prometheus.MustRegister(DotsVisible)
	prometheus.MustRegister(FeedFetchTotal)
	prometheus.MustRegister(InputEventsTotal)
	prometheus.MustRegister(MarkerSelectionsTotal)
}

// ObserveRender records one painted frame
func ObserveRender(start time.Time, dotsDrawn int) {
	FramesRendered.Inc()
	RenderDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	DotsVisible.Set(float64(dotsDrawn))
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve runs a /metrics listener until ctx is cancelled
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	debug.Log("Metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
