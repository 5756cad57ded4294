package resize

import (
	"sync"
	"time"

	"cardlot/layout"
	"cardlot/log"
)

// State is the coordinator's position in its Idle -> Scheduled -> Running
// cycle.
type State int

const (
	// StateIdle means no recomputation is pending or running.
	StateIdle State = iota

	// StateScheduled means a debounced recomputation is pending.
	StateScheduled

	// StateRunning means a recomputation is in flight.
	StateRunning
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// DefaultHistorySize bounds the retained layout results.
const DefaultHistorySize = 20

// Coordinator debounces dimension-change events and drives the layout
// engine. Repeated events while Scheduled collapse into one pending run
// using the latest dimensions (last-write-wins); events arriving while
// Running re-enter Scheduled after the current run completes, so runs
// never overlap. Completed layouts and per-run metrics are kept in
// bounded rolling histories.
type Coordinator struct {
	engine *layout.Engine
	deb    *Debouncer

	mu          sync.Mutex
	state       State
	cardCount   int
	pendingW    float64
	pendingH    float64
	lastW       float64
	lastH       float64
	lastCount   int
	rerun       bool
	closed      bool
	last        *layout.LayoutResult
	history     []layout.LayoutResult
	historySize int
	onLayout    func(layout.LayoutResult)

	metrics     *metricsRecorder
	unsubscribe func()
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDebounce sets the debounce window (default 150ms).
func WithDebounce(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.deb = NewDebouncer(d) }
}

// WithHistorySize bounds the retained layout results.
func WithHistorySize(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.historySize = n
		}
	}
}

// WithMetricsWindow bounds the rolling per-run metrics.
func WithMetricsWindow(n int) CoordinatorOption {
	return func(c *Coordinator) { c.metrics = newMetricsRecorder(n) }
}

// WithOnLayout registers a callback invoked (outside the coordinator
// lock) after every completed run.
func WithOnLayout(fn func(layout.LayoutResult)) CoordinatorOption {
	return func(c *Coordinator) { c.onLayout = fn }
}

// NewCoordinator creates a coordinator for engine, fed by source. The
// initial dimensions are read from the source and a first computation is
// scheduled; call Flush to force it synchronously (e.g. on mount).
func NewCoordinator(engine *layout.Engine, source DimensionSource, cardCount int, opts ...CoordinatorOption) *Coordinator {
	if cardCount < 1 {
		cardCount = 1
	}

	c := &Coordinator{
		engine:      engine,
		deb:         NewDebouncer(DefaultDebounce),
		cardCount:   cardCount,
		historySize: DefaultHistorySize,
		metrics:     newMetricsRecorder(DefaultMetricsWindow),
	}
	for _, opt := range opts {
		opt(c)
	}

	w, h := source.Size()
	c.pendingW, c.pendingH = w, h
	c.unsubscribe = source.Subscribe(c.OnResize)

	c.mu.Lock()
	c.state = StateScheduled
	c.mu.Unlock()
	c.deb.Trigger(c.run)

	return c
}

// OnResize records new container dimensions and schedules a debounced
// recomputation. Intermediate sizes within the window are discarded.
func (c *Coordinator) OnResize(width, height float64) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.pendingW, c.pendingH = width, height
	if c.state == StateRunning {
		c.rerun = true
		c.mu.Unlock()
		return
	}
	c.state = StateScheduled
	c.mu.Unlock()

	c.deb.Trigger(c.run)
}

// SetCardCount changes the card count and schedules a recomputation.
func (c *Coordinator) SetCardCount(n int) {
	if n < 1 {
		n = 1
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cardCount = n
	if c.state == StateRunning {
		c.rerun = true
		c.mu.Unlock()
		return
	}
	c.state = StateScheduled
	c.mu.Unlock()

	c.deb.Trigger(c.run)
}

// Flush cancels the debounce window and runs any pending computation
// synchronously. Used on mount and by tests.
func (c *Coordinator) Flush() {
	c.deb.Cancel()
	c.run()
}

// run executes one recomputation. Never called concurrently with itself:
// entry is gated on the Scheduled state, and events during Running only
// set the rerun flag.
func (c *Coordinator) run() {
	c.mu.Lock()
	if c.closed || c.state == StateRunning {
		c.mu.Unlock()
		return
	}
	w, h := c.pendingW, c.pendingH
	count := c.cardCount

	// No-op resize: identical inputs must not disturb the previous
	// result or produce a new history entry.
	if c.last != nil && w == c.lastW && h == c.lastH && count == c.lastCount {
		c.state = StateIdle
		c.rerun = false
		c.mu.Unlock()
		return
	}
	c.state = StateRunning
	c.mu.Unlock()

	result, info := c.engine.Compute(count, w, h)

	errs := 0
	if info.Recovered {
		errs = 1
		log.Errorf("layout run recovered from panic at %dx%d, %d cards", int(w), int(h), count)
	}
	if info.Duration > slowRunThreshold {
		log.Warnf("slow layout run: %v for %d cards at %dx%d", info.Duration, count, int(w), int(h))
	}
	c.metrics.record(RunMetrics{
		Timestamp: time.Now(),
		Duration:  info.Duration,
		CacheHit:  info.CacheHit,
		Fallback:  info.Fallback,
		Errors:    errs,
	})

	c.mu.Lock()
	c.last = &result
	c.lastW, c.lastH, c.lastCount = w, h, count
	if len(c.history) >= c.historySize {
		c.history = c.history[1:]
	}
	c.history = append(c.history, result)

	notify := c.onLayout
	rerun := c.rerun
	c.rerun = false
	if rerun {
		c.state = StateScheduled
	} else {
		c.state = StateIdle
	}
	c.mu.Unlock()

	if notify != nil {
		notify(result)
	}
	if rerun {
		c.deb.Trigger(c.run)
	}
}

// Layout returns the most recent result, if any run has completed.
func (c *Coordinator) Layout() (layout.LayoutResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return layout.LayoutResult{}, false
	}
	return *c.last, true
}

// History returns a copy of the bounded layout history, oldest first.
func (c *Coordinator) History() []layout.LayoutResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]layout.LayoutResult, len(c.history))
	copy(out, c.history)
	return out
}

// Metrics returns an aggregate snapshot of per-run metrics.
func (c *Coordinator) Metrics() MetricsSnapshot {
	return c.metrics.snapshot()
}

// State returns the coordinator's current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CardCount returns the current card count.
func (c *Coordinator) CardCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cardCount
}

// Dimensions returns the most recently observed container dimensions.
func (c *Coordinator) Dimensions() (width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingW, c.pendingH
}

// Engine exposes the underlying engine for debug tooling.
func (c *Coordinator) Engine() *layout.Engine {
	return c.engine
}

// Close unsubscribes from the dimension source and drops any pending run.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.deb.Cancel()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}
