package layout

import (
	"math/rand"
	"sync"
	"time"

	"cardlot/log"
)

// Engine runs the layout pipeline: classify device, look up spacing,
// solve the grid, generate positions, validate, and fall back to the
// emergency solver when the primary plan cannot be contained.
//
// ComputeLayout always returns a usable result: inputs are clamped
// instead of rejected, containment failures route through the emergency
// solver, and an unexpected panic is replaced by the last known good
// layout (or a minimal single-row one). There is no error return by
// contract.
type Engine struct {
	mu       sync.Mutex
	cache    *resultCache
	rng      *rand.Rand
	lastGood *LayoutResult
}

// ComputeInfo describes how a single computation was served. Consumed by
// the resize coordinator's metrics; not part of the layout result.
type ComputeInfo struct {
	Duration  time.Duration `json:"duration"`
	CacheHit  bool          `json:"cache_hit"`
	Fallback  bool          `json:"fallback"`
	Recovered bool          `json:"recovered"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithRotationSeed pins the cosmetic rotation source, for tests.
func WithRotationSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCacheCapacity bounds the result cache.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) {
		e.cache = newResultCache(n)
	}
}

// NewEngine creates a layout engine with a bounded result cache.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache: newResultCache(defaultCacheCapacity),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeLayout is the primary entry point consumed by the presentation
// layer on every relevant resize or card-count change.
func (e *Engine) ComputeLayout(cardCount int, containerWidth, containerHeight float64) LayoutResult {
	res, _ := e.Compute(cardCount, containerWidth, containerHeight)
	return res
}

// Compute is ComputeLayout plus bookkeeping about how the result was
// produced.
func (e *Engine) Compute(cardCount int, containerWidth, containerHeight float64) (result LayoutResult, info ComputeInfo) {
	start := time.Now()

	if cardCount < 1 {
		cardCount = 1
	}
	tier := ClassifyDevice(containerWidth)

	e.mu.Lock()
	defer e.mu.Unlock()

	defer func() {
		info.Duration = time.Since(start)
		if r := recover(); r != nil {
			log.Errorf("layout computation panicked: %v", r)
			info.Recovered = true
			result = e.recoveryLayout(cardCount, tier)
			info.Fallback = result.IsFallback()
		}
	}()

	key := cacheKey{cardCount: cardCount, width: containerWidth, height: containerHeight, tier: tier}
	if cached, ok := e.cache.Get(key); ok {
		info.CacheHit = true
		info.Fallback = cached.IsFallback()
		return cached, info
	}

	result = e.computeLocked(cardCount, containerWidth, containerHeight, tier)
	info.Fallback = result.IsFallback()

	e.cache.Set(key, result)
	good := result.clone()
	e.lastGood = &good
	return result, info
}

// computeLocked runs the pipeline. Caller holds e.mu.
func (e *Engine) computeLocked(cardCount int, containerWidth, containerHeight float64, tier DeviceTier) LayoutResult {
	sp := SpacingFor(tier)
	avail := CalculateAvailableSpace(containerWidth, containerHeight, sp)

	plan := DetermineGridPlan(cardCount, avail, sp)
	size := CalculateCardSize(plan, avail, tier, sp)
	positions := GeneratePositions(cardCount, plan, size, sp, e.rng)

	totalW, totalH := gridExtent(plan, size, sp)
	result := LayoutResult{
		Positions:      positions,
		ActualCardSize: size,
		LayoutInfo: LayoutInfo{
			Rows:        plan.Rows,
			CardsPerRow: plan.CardsPerRow,
			TotalWidth:  totalW,
			TotalHeight: totalH,
		},
		Tier:     tier,
		TierName: tier.String(),
	}

	report := ValidateBounds(result, avail)
	if report.IsValid {
		return result
	}

	emergency := SolveEmergencyLayout(cardCount, avail, e.rng)
	emergency.Tier = tier
	emergency.TierName = tier.String()
	log.Warnf("primary layout %s for %d cards in %.0fx%.0f (%s); emergency layout %dx%d at %.0fx%.0f -> %.0fx%.0f total",
		describeReport(report), cardCount, avail.Width, avail.Height, tier,
		emergency.LayoutInfo.Rows, emergency.LayoutInfo.CardsPerRow,
		emergency.ActualCardSize.Width, emergency.ActualCardSize.Height,
		emergency.LayoutInfo.TotalWidth, emergency.LayoutInfo.TotalHeight)
	return emergency
}

// recoveryLayout substitutes a result after a panic: last known good if
// present, otherwise a minimal centered single row.
func (e *Engine) recoveryLayout(cardCount int, tier DeviceTier) LayoutResult {
	if e.lastGood != nil && len(e.lastGood.Positions) == cardCount {
		return e.lastGood.clone()
	}

	avail := AvailableSpace{
		Width: MinAvailableWidth, Height: MinAvailableHeight,
		CenterX: MinAvailableWidth / 2, CenterY: MinAvailableHeight / 2,
	}
	res := SolveEmergencyLayout(cardCount, avail, e.rng)
	res.Tier = tier
	res.TierName = tier.String()
	return res
}

// InvalidateCache clears cached results; the next ComputeLayout
// recomputes from scratch.
func (e *Engine) InvalidateCache() {
	e.cache.Invalidate()
}

// CacheStats reports cumulative cache hits and misses.
func (e *Engine) CacheStats() (hits, misses int64) {
	return e.cache.Stats()
}
