package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayoutNineCardsLaptop(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	result := engine.ComputeLayout(9, 1366, 768)

	assert.Equal(t, 2, result.LayoutInfo.Rows)
	assert.Equal(t, 5, result.LayoutInfo.CardsPerRow)
	require.Len(t, result.Positions, 9)
	assert.False(t, result.IsFallback())

	avail := CalculateAvailableSpace(1366, 768, SpacingFor(TierDesktop))
	report := ValidateCards(result, avail)
	assert.True(t, report.IsValid, describeReport(report))
}

func TestComputeLayoutSingleCardPhone(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	result := engine.ComputeLayout(1, 375, 667)

	require.Len(t, result.Positions, 1)
	assert.Equal(t, 1, result.LayoutInfo.Rows)
	assert.Equal(t, 1, result.LayoutInfo.CardsPerRow)
	assert.Equal(t, "mobile", result.TierName)
	assert.InDelta(t, 0, result.Positions[0].X, 0.001, "single card centered")
	assert.InDelta(t, 0, result.Positions[0].Y, 0.001)
}

func TestComputeLayoutManyCardsFullHD(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	result := engine.ComputeLayout(27, 1920, 1080)

	require.Len(t, result.Positions, 27)
	assert.Greater(t, result.LayoutInfo.Rows, 1, "27 cards never render as one row here")
	assert.False(t, result.IsFallback(), "a full HD container holds 27 cards without fallback")

	avail := CalculateAvailableSpace(1920, 1080, SpacingFor(TierDesktop))
	report := ValidateCards(result, avail)
	assert.True(t, report.IsValid, describeReport(report))
}

func TestComputeLayoutTinyContainerFallsBack(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	result := engine.ComputeLayout(5, 200, 300)

	require.Len(t, result.Positions, 5, "cards are never dropped")
	for i, p := range result.Positions {
		assert.True(t, p.IsFallback, "card %d", i)
		// Positions are center-relative; the whole card must stay inside
		// the 200x300 container.
		assert.LessOrEqual(t, math.Abs(p.X)+p.CardWidth/2, 100+boundsEpsilon, "card %d x", i)
		assert.LessOrEqual(t, math.Abs(p.Y)+p.CardHeight/2, 150+boundsEpsilon, "card %d y", i)
	}
}

func TestComputeLayoutClampsInputs(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	tests := []struct {
		name      string
		cards     int
		w, h      float64
		wantCards int
	}{
		{name: "zero cards", cards: 0, w: 1024, h: 768, wantCards: 1},
		{name: "negative cards", cards: -7, w: 1024, h: 768, wantCards: 1},
		{name: "zero dimensions", cards: 4, w: 0, h: 0, wantCards: 4},
		{name: "NaN dimensions", cards: 4, w: math.NaN(), h: math.NaN(), wantCards: 4},
		{name: "negative dimensions", cards: 4, w: -50, h: -50, wantCards: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ComputeLayout(tt.cards, tt.w, tt.h)
			assert.Len(t, result.Positions, tt.wantCards)
			assert.Positive(t, result.ActualCardSize.Width)
			assert.Positive(t, result.ActualCardSize.Height)
		})
	}
}

func TestComputeLayoutDeterminism(t *testing.T) {
	// Grid shape and card size are pure functions of the inputs,
	// regardless of the rotation seed.
	a := NewEngine(WithRotationSeed(1)).ComputeLayout(10, 1280, 800)
	b := NewEngine(WithRotationSeed(99)).ComputeLayout(10, 1280, 800)

	assert.Equal(t, a.LayoutInfo, b.LayoutInfo)
	assert.Equal(t, a.ActualCardSize, b.ActualCardSize)
	for i := range a.Positions {
		assert.Equal(t, a.Positions[i].X, b.Positions[i].X, "card %d x", i)
		assert.Equal(t, a.Positions[i].Y, b.Positions[i].Y, "card %d y", i)
	}
}

func TestComputeLayoutCaching(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	first := engine.ComputeLayout(8, 1366, 768)
	second := engine.ComputeLayout(8, 1366, 768)

	// Cache hits replay the pass wholesale, rotation included.
	assert.Equal(t, first, second)

	hits, misses := engine.CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	// A cached result is a fresh slice, not a shared one.
	second.Positions[0].X = 9999
	third := engine.ComputeLayout(8, 1366, 768)
	assert.NotEqual(t, 9999.0, third.Positions[0].X)
}

func TestComputeLayoutCacheInvalidation(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	engine.ComputeLayout(8, 1366, 768)
	engine.InvalidateCache()
	engine.ComputeLayout(8, 1366, 768)

	hits, misses := engine.CacheStats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(2), misses)
}

func TestComputeLayoutPositionsAlwaysMatchCount(t *testing.T) {
	engine := NewEngine(WithRotationSeed(7))

	sizes := []struct{ w, h float64 }{
		{320, 480}, {375, 667}, {768, 1024}, {1366, 768}, {1920, 1080}, {200, 200},
	}
	for _, s := range sizes {
		for _, n := range []int{1, 2, 5, 9, 13, 27, 60} {
			result := engine.ComputeLayout(n, s.w, s.h)
			assert.Len(t, result.Positions, n, "%d cards in %.0fx%.0f", n, s.w, s.h)
		}
	}
}

func TestComputeLayoutSafetyMarginInvariant(t *testing.T) {
	engine := NewEngine(WithRotationSeed(3))

	sizes := []struct{ w, h float64 }{
		{375, 667}, {768, 1024}, {1366, 768}, {1920, 1080},
	}
	for _, s := range sizes {
		tier := ClassifyDevice(s.w)
		avail := CalculateAvailableSpace(s.w, s.h, SpacingFor(tier))

		for n := 1; n <= 15; n++ {
			result := engine.ComputeLayout(n, s.w, s.h)
			if result.IsFallback() {
				continue
			}
			assert.LessOrEqual(t, result.LayoutInfo.TotalWidth, avail.Width*SafetyFraction+boundsEpsilon,
				"%d cards in %.0fx%.0f width", n, s.w, s.h)
			assert.LessOrEqual(t, result.LayoutInfo.TotalHeight, avail.Height*SafetyFraction+boundsEpsilon,
				"%d cards in %.0fx%.0f height", n, s.w, s.h)
		}
	}
}

func TestComputeReportsInfo(t *testing.T) {
	engine := NewEngine(WithRotationSeed(1))

	_, info := engine.Compute(9, 1366, 768)
	assert.False(t, info.CacheHit)
	assert.False(t, info.Fallback)
	assert.False(t, info.Recovered)

	_, info = engine.Compute(9, 1366, 768)
	assert.True(t, info.CacheHit)

	_, info = engine.Compute(5, 200, 300)
	assert.True(t, info.Fallback)
}
