package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePositionsRowMajor(t *testing.T) {
	sp := SpacingFor(TierDesktop)
	plan := GridPlan{Rows: 2, CardsPerRow: 5}
	size := CardSize{Width: 100, Height: 150}

	positions := GeneratePositions(9, plan, size, sp, rand.New(rand.NewSource(1)))
	require.Len(t, positions, 9)

	// First row shares one y, second row another, top to bottom.
	for i := 1; i < 5; i++ {
		assert.InDelta(t, positions[0].Y, positions[i].Y, 0.001, "row 0 card %d", i)
	}
	for i := 6; i < 9; i++ {
		assert.InDelta(t, positions[5].Y, positions[i].Y, 0.001, "row 1 card %d", i)
	}
	assert.Less(t, positions[0].Y, positions[5].Y, "rows ordered top to bottom")

	// Left to right within a row.
	for i := 1; i < 5; i++ {
		assert.Greater(t, positions[i].X, positions[i-1].X, "card %d", i)
	}
}

func TestGeneratePositionsGridIsCentered(t *testing.T) {
	sp := SpacingFor(TierDesktop)
	plan := GridPlan{Rows: 2, CardsPerRow: 4}
	size := CardSize{Width: 100, Height: 150}

	positions := GeneratePositions(8, plan, size, sp, nil)

	// Full rows are symmetric about the center on both axes.
	assert.InDelta(t, -positions[3].X, positions[0].X, 0.001)
	assert.InDelta(t, -positions[7].Y, positions[0].Y, 0.001)
}

func TestGeneratePositionsLastRowRecentered(t *testing.T) {
	sp := SpacingFor(TierDesktop)
	plan := GridPlan{Rows: 2, CardsPerRow: 5}
	size := CardSize{Width: 100, Height: 150}

	positions := GeneratePositions(9, plan, size, sp, nil)

	// The 4-card final row must be centered on its own: its x values sum
	// to zero instead of repeating the first row's.
	var sum float64
	for _, p := range positions[5:] {
		sum += p.X
	}
	assert.InDelta(t, 0, sum, 0.001, "last row centered")
	assert.NotEqual(t, positions[0].X, positions[5].X, "last row must not be left-aligned")
}

func TestGeneratePositionsSingleCard(t *testing.T) {
	sp := SpacingFor(TierMobile)
	positions := GeneratePositions(1, GridPlan{Rows: 1, CardsPerRow: 1}, CardSize{Width: 120, Height: 180}, sp, nil)

	require.Len(t, positions, 1)
	assert.InDelta(t, 0, positions[0].X, 0.001, "centered x")
	assert.InDelta(t, 0, positions[0].Y, 0.001, "centered y")
}

func TestGeneratePositionsRotationIsCosmetic(t *testing.T) {
	sp := SpacingFor(TierTablet)
	plan := GridPlan{Rows: 2, CardsPerRow: 4}
	size := CardSize{Width: 90, Height: 135}

	a := GeneratePositions(7, plan, size, sp, rand.New(rand.NewSource(1)))
	b := GeneratePositions(7, plan, size, sp, rand.New(rand.NewSource(2)))

	for i := range a {
		assert.Equal(t, a[i].X, b[i].X, "x must not depend on the random source (card %d)", i)
		assert.Equal(t, a[i].Y, b[i].Y, "y must not depend on the random source (card %d)", i)
		assert.LessOrEqual(t, math.Abs(a[i].Rotation), MaxRotationDegrees, "rotation bounded (card %d)", i)
	}
}

func TestGeneratePositionsNilSourceMeansNoRotation(t *testing.T) {
	positions := GeneratePositions(3, GridPlan{Rows: 1, CardsPerRow: 3}, CardSize{Width: 60, Height: 90}, SpacingFor(TierMobile), nil)
	for i, p := range positions {
		assert.Zero(t, p.Rotation, "card %d", i)
	}
}

func TestGeneratePositionsClampsCount(t *testing.T) {
	positions := GeneratePositions(0, GridPlan{Rows: 1, CardsPerRow: 1}, CardSize{Width: 60, Height: 90}, SpacingFor(TierMobile), nil)
	assert.Len(t, positions, 1, "a layout pass never returns zero cards")
}
