package marker

import (
	"sync"
)

// Store holds the current marker list with thread-safe access
// Replacing the list bumps the version so the UI knows to remount the globe.
type Store struct {
	mu      sync.RWMutex
	markers []Marker
	version uint64
	changed chan struct{}
}

// NewStore creates a store seeded with markers
func NewStore(markers []Marker) *Store {
	return &Store{
		markers: markers,
		changed: make(chan struct{}, 1),
	}
}

// Replace swaps in a new marker list
func (s *Store) Replace(markers []Marker) {
	s.mu.Lock()
	s.markers = markers
	s.version++
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// All returns a copy of the markers in supply order
func (s *Store) All() []Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Count returns the number of markers
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.markers)
}

// Version increases by one on every Replace
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Changed signals after Replace; pending signals coalesce
func (s *Store) Changed() <-chan struct{} {
	return s.changed
}
