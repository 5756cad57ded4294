package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveEmergencyLayoutTinyContainer(t *testing.T) {
	sp := SpacingFor(TierMobile)
	avail := CalculateAvailableSpace(200, 300, sp)

	result := SolveEmergencyLayout(5, avail, nil)

	require.Len(t, result.Positions, 5, "no card is ever dropped")
	for i, p := range result.Positions {
		assert.True(t, p.IsFallback, "card %d marked fallback", i)
	}

	// Containment is the whole point of the emergency path.
	assert.LessOrEqual(t, result.LayoutInfo.TotalWidth, avail.Width*EmergencyFillFraction+boundsEpsilon)
	assert.LessOrEqual(t, result.LayoutInfo.TotalHeight, avail.Height*EmergencyFillFraction+boundsEpsilon)

	report := ValidateCards(result, avail)
	assert.Empty(t, report.OutOfBoundsIndices, "all cards inside the container")
	assert.Empty(t, report.OverlappingPairs)
}

func TestSolveEmergencyLayoutPrefersSingleRow(t *testing.T) {
	avail := AvailableSpace{Width: 1000, Height: 400, CenterX: 500, CenterY: 200}

	result := SolveEmergencyLayout(6, avail, nil)
	assert.Equal(t, 1, result.LayoutInfo.Rows, "6x35px cards fit one 1000px row")
	assert.Equal(t, 6, result.LayoutInfo.CardsPerRow)
}

func TestSolveEmergencyLayoutMinimizesRows(t *testing.T) {
	avail := AvailableSpace{Width: 300, Height: 500, CenterX: 150, CenterY: 250}

	// One 270px-wide row cannot hold 10 minimum-width cards
	// (10*35+9*6 = 404), but two rows of 5 can (5*35+4*6 = 199).
	result := SolveEmergencyLayout(10, avail, nil)
	assert.Equal(t, 2, result.LayoutInfo.Rows)
	assert.Equal(t, 5, result.LayoutInfo.CardsPerRow)
}

func TestSolveEmergencyLayoutExtremeCountStillContains(t *testing.T) {
	avail := AvailableSpace{Width: 320, Height: 200, CenterX: 160, CenterY: 100}

	result := SolveEmergencyLayout(200, avail, nil)

	require.Len(t, result.Positions, 200)
	assert.LessOrEqual(t, result.LayoutInfo.TotalWidth, avail.Width*EmergencyFillFraction+boundsEpsilon)
	assert.LessOrEqual(t, result.LayoutInfo.TotalHeight, avail.Height*EmergencyFillFraction+boundsEpsilon)

	halfW := avail.Width/2 + boundsEpsilon
	halfH := avail.Height/2 + boundsEpsilon
	for i, p := range result.Positions {
		assert.LessOrEqual(t, math.Abs(p.X)+p.CardWidth/2, halfW, "card %d x", i)
		assert.LessOrEqual(t, math.Abs(p.Y)+p.CardHeight/2, halfH, "card %d y", i)
	}
}

func TestSolveEmergencyLayoutClampsCount(t *testing.T) {
	avail := AvailableSpace{Width: 320, Height: 200}
	result := SolveEmergencyLayout(0, avail, nil)
	assert.Len(t, result.Positions, 1)
}

func TestSolveEmergencyLayoutKeepsAspectRatio(t *testing.T) {
	avail := AvailableSpace{Width: 800, Height: 600, CenterX: 400, CenterY: 300}
	result := SolveEmergencyLayout(8, avail, nil)
	assert.InDelta(t, 1.5, result.ActualCardSize.Height/result.ActualCardSize.Width, 0.001)
}
