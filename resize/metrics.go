package resize

import (
	"sync"
	"time"
)

// DefaultMetricsWindow bounds the rolling per-run metrics history.
const DefaultMetricsWindow = 100

// RunMetrics records one coordinator run.
type RunMetrics struct {
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	CacheHit  bool          `json:"cache_hit"`
	Fallback  bool          `json:"fallback"`
	Errors    int           `json:"errors"`
}

// MetricsSnapshot is the JSON-serializable aggregate exposed to debug
// tooling.
type MetricsSnapshot struct {
	TotalRuns     int64         `json:"total_runs"`
	TotalErrors   int64         `json:"total_errors"`
	CacheHits     int64         `json:"cache_hits"`
	Fallbacks     int64         `json:"fallbacks"`
	AvgDuration   time.Duration `json:"avg_duration"`
	MaxDuration   time.Duration `json:"max_duration"`
	RecentRuns    []RunMetrics  `json:"recent_runs"`
	WindowSize    int           `json:"window_size"`
	SlowThreshold time.Duration `json:"slow_threshold"`
}

// slowRunThreshold marks runs worth a log line; layout math for a few
// hundred cards should stay well under it.
const slowRunThreshold = 16 * time.Millisecond

// metricsRecorder keeps cumulative counters plus a fixed-size rolling
// window of recent runs, oldest discarded first. Single writer (the
// coordinator); readers take the lock for a consistent snapshot.
type metricsRecorder struct {
	mu sync.Mutex

	window int
	runs   []RunMetrics

	totalRuns     int64
	totalErrors   int64
	cacheHits     int64
	fallbacks     int64
	totalDuration time.Duration
	maxDuration   time.Duration
}

func newMetricsRecorder(window int) *metricsRecorder {
	if window < 1 {
		window = DefaultMetricsWindow
	}
	return &metricsRecorder{
		window: window,
		runs:   make([]RunMetrics, 0, window),
	}
}

func (m *metricsRecorder) record(run RunMetrics) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRuns++
	m.totalErrors += int64(run.Errors)
	if run.CacheHit {
		m.cacheHits++
	}
	if run.Fallback {
		m.fallbacks++
	}
	m.totalDuration += run.Duration
	if run.Duration > m.maxDuration {
		m.maxDuration = run.Duration
	}

	if len(m.runs) >= m.window {
		m.runs = m.runs[1:]
	}
	m.runs = append(m.runs, run)
}

func (m *metricsRecorder) snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := make([]RunMetrics, len(m.runs))
	copy(recent, m.runs)

	var avg time.Duration
	if m.totalRuns > 0 {
		avg = m.totalDuration / time.Duration(m.totalRuns)
	}

	return MetricsSnapshot{
		TotalRuns:     m.totalRuns,
		TotalErrors:   m.totalErrors,
		CacheHits:     m.cacheHits,
		Fallbacks:     m.fallbacks,
		AvgDuration:   avg,
		MaxDuration:   m.maxDuration,
		RecentRuns:    recent,
		WindowSize:    m.window,
		SlowThreshold: slowRunThreshold,
	}
}
