package layout

import "math/rand"

// MaxRotationDegrees bounds the cosmetic per-card rotation.
const MaxRotationDegrees = 2.0

// GeneratePositions lays out cardCount cards row-major (top-to-bottom,
// left-to-right), centering the whole grid on the available-space center.
// A final row holding fewer cards than CardsPerRow is re-centered
// horizontally on its own instead of staying left-aligned.
//
// Each card gets a small random rotation for visual realism. The rotation
// is purely cosmetic: x, y, and size are fully determined by the inputs
// and never read the random source.
func GeneratePositions(cardCount int, plan GridPlan, size CardSize, sp SpacingConfig, rng *rand.Rand) []CardPosition {
	if cardCount < 1 {
		cardCount = 1
	}

	_, totalH := gridExtent(plan, size, sp)
	startY := -totalH/2 + size.Height/2

	positions := make([]CardPosition, 0, cardCount)
	for i := 0; i < cardCount; i++ {
		row := i / plan.CardsPerRow
		col := i % plan.CardsPerRow

		inRow := plan.CardsPerRow
		if remaining := cardCount - row*plan.CardsPerRow; remaining < inRow {
			inRow = remaining
		}

		rowW := float64(inRow)*size.Width + float64(inRow-1)*sp.CardSpacing
		startX := -rowW/2 + size.Width/2

		positions = append(positions, CardPosition{
			X:          startX + float64(col)*(size.Width+sp.CardSpacing),
			Y:          startY + float64(row)*(size.Height+sp.RowSpacing),
			Rotation:   rotationJitter(rng),
			CardWidth:  size.Width,
			CardHeight: size.Height,
		})
	}

	return positions
}

func rotationJitter(rng *rand.Rand) float64 {
	if rng == nil {
		return 0
	}
	return (rng.Float64()*2 - 1) * MaxRotationDegrees
}
