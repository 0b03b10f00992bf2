package globe

import (
	"time"
)

// FrameScheduler is the animation timer driving autorotation
type FrameScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewFrameScheduler creates a stopped scheduler running at fps frames per second
func NewFrameScheduler(fps int) *FrameScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &FrameScheduler{
		interval: time.Second / time.Duration(fps),
	}
}

// Start begins emitting frames; starting a running scheduler is a no-op
func (f *FrameScheduler) Start() {
	if f.ticker != nil {
		return
	}
	f.ticker = time.NewTicker(f.interval)
}

// Stop halts the timer; C returns a nil channel afterwards
func (f *FrameScheduler) Stop() {
	if f.ticker == nil {
		return
	}
	f.ticker.Stop()
	f.ticker = nil
}

// C returns the frame channel, or nil while stopped so selects skip it
func (f *FrameScheduler) C() <-chan time.Time {
	if f.ticker == nil {
		return nil
	}
	return f.ticker.C
}

// Running reports whether the timer is active
func (f *FrameScheduler) Running() bool {
	return f.ticker != nil
}

// Interval returns the time between frames
func (f *FrameScheduler) Interval() time.Duration {
	return f.interval
}
