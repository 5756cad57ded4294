package resize

import "sync"

// DimensionSource abstracts where container dimensions come from. The
// engine side never touches window or DOM APIs; the presentation layer
// injects whatever it measures (a browser container, a terminal, a test).
type DimensionSource interface {
	// Size returns the current container dimensions in pixels.
	Size() (width, height float64)

	// Subscribe registers a callback for dimension changes and returns
	// an unsubscribe function. Implementations that never change may
	// return a no-op.
	Subscribe(fn func(width, height float64)) (cancel func())
}

// StaticSource is a DimensionSource with fixed dimensions. Useful for
// one-shot computations (the inspect CLI) and as a subscription no-op.
type StaticSource struct {
	W, H float64
}

func (s StaticSource) Size() (float64, float64) { return s.W, s.H }

func (s StaticSource) Subscribe(func(width, height float64)) func() {
	return func() {}
}

// ManualSource is a DimensionSource driven by explicit Set calls: the
// adapter used by the debug TUI (terminal resizes) and by tests.
type ManualSource struct {
	mu     sync.Mutex
	w, h   float64
	nextID int
	subs   map[int]func(width, height float64)
}

// NewManualSource creates a ManualSource with initial dimensions.
func NewManualSource(width, height float64) *ManualSource {
	return &ManualSource{
		w:    width,
		h:    height,
		subs: make(map[int]func(width, height float64)),
	}
}

func (s *ManualSource) Size() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *ManualSource) Subscribe(fn func(width, height float64)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Set updates the dimensions and notifies subscribers.
func (s *ManualSource) Set(width, height float64) {
	s.mu.Lock()
	s.w, s.h = width, height
	fns := make([]func(width, height float64), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}
