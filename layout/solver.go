package layout

import "math"

// Minimum card dimensions used when deciding how many cards can share a
// row or column on the primary (non-emergency) path.
const (
	MinPlanCardWidth  = 60
	MinPlanCardHeight = 90
)

// SafetyFraction leaves a margin between the grid and the available
// space; validated layouts must stay within it on both axes.
const SafetyFraction = 0.95

// RescueScaleFloor bounds the final down-scale pass in CalculateCardSize.
const RescueScaleFloor = 0.90

// Fixed width:height aspect ratio for cards (2:3).
const cardAspect = 1.5

// Per-tier card size bounds. Multi-row grids get smaller caps so tall
// stacks keep breathing room.
var cardSizeBounds = map[DeviceTier]struct {
	maxSingleRow float64
	maxMultiRow  float64
	minWidth     float64
}{
	TierMobile:  {maxSingleRow: 120, maxMultiRow: 90, minWidth: 40},
	TierTablet:  {maxSingleRow: 150, maxMultiRow: 110, minWidth: 44},
	TierDesktop: {maxSingleRow: 180, maxMultiRow: 130, minWidth: 48},
}

// DetermineGridPlan decides the rows × cards-per-row decomposition for a
// card count within the available space.
//
// Counts 1-10 follow a fixed table favoring visual rhythm over packing
// efficiency: up to 5 cards sit in a single row when width allows, and
// 6-10 cards always prefer a two-row ceil(n/2) split once vertical space
// allows it (7 -> 4+3, 8 -> 4+4, 9 -> 5+4, 10 -> 5+5). Nine cards in
// particular are never arranged 3x3, keeping them visually consistent
// with the 8- and 10-card layouts.
//
// Larger counts use cardsPerRow = min(maxCardsPerRow, ceil(sqrt(n))); if
// the resulting row count exceeds what the height can hold, the plan
// collapses to a single row and the validator decides whether the
// emergency solver takes over.
func DetermineGridPlan(cardCount int, avail AvailableSpace, sp SpacingConfig) GridPlan {
	if cardCount < 1 {
		cardCount = 1
	}

	maxCardsPerRow := maxUnitsAlong(avail.Width, MinPlanCardWidth, sp.CardSpacing)
	maxRows := maxUnitsAlong(avail.Height, MinPlanCardHeight, sp.RowSpacing)

	if cardCount <= 5 && cardCount <= maxCardsPerRow {
		return GridPlan{Rows: 1, CardsPerRow: cardCount}
	}

	if cardCount <= 10 {
		perRow := (cardCount + 1) / 2
		if maxRows >= 2 && perRow <= maxCardsPerRow {
			return GridPlan{Rows: 2, CardsPerRow: perRow}
		}
		if cardCount <= maxCardsPerRow {
			return GridPlan{Rows: 1, CardsPerRow: cardCount}
		}
	}

	perRow := int(math.Ceil(math.Sqrt(float64(cardCount))))
	if perRow > maxCardsPerRow {
		perRow = maxCardsPerRow
	}
	if perRow < 1 {
		perRow = 1
	}
	rows := (cardCount + perRow - 1) / perRow
	if rows > maxRows {
		// Too tall at minimum card size: a single wide row is the
		// documented last primary attempt before emergency handling.
		return GridPlan{Rows: 1, CardsPerRow: cardCount}
	}
	return GridPlan{Rows: rows, CardsPerRow: perRow}
}

// CalculateCardSize derives the uniform card size for a plan: fit within
// the safety-margin space minus inter-card gaps, lock the 2:3 aspect
// ratio, clamp to tier-aware maximums and minimums, then rescue-scale
// down (at most 10%) if the minimum clamp pushed the grid back over the
// available space.
func CalculateCardSize(plan GridPlan, avail AvailableSpace, tier DeviceTier, sp SpacingConfig) CardSize {
	bounds, ok := cardSizeBounds[tier]
	if !ok {
		bounds = cardSizeBounds[TierDesktop]
	}

	cols := float64(plan.CardsPerRow)
	rows := float64(plan.Rows)

	maxW := (avail.Width*SafetyFraction - (cols-1)*sp.CardSpacing) / cols
	maxH := (avail.Height*SafetyFraction - (rows-1)*sp.RowSpacing) / rows

	w := math.Min(maxW, maxH/cardAspect)

	widthCap := bounds.maxSingleRow
	if plan.Rows > 1 {
		widthCap = bounds.maxMultiRow
	}
	w = math.Min(w, widthCap)
	w = math.Max(w, bounds.minWidth)
	h := w * cardAspect

	totalW, totalH := gridExtent(plan, CardSize{Width: w, Height: h}, sp)
	if totalW > avail.Width || totalH > avail.Height {
		scale := math.Min(avail.Width/totalW, avail.Height/totalH)
		scale = math.Max(scale, RescueScaleFloor)
		w *= scale
		h *= scale
	}

	return CardSize{Width: w, Height: h}
}

// gridExtent returns the total width and height of a solved grid.
func gridExtent(plan GridPlan, size CardSize, sp SpacingConfig) (float64, float64) {
	cols := float64(plan.CardsPerRow)
	rows := float64(plan.Rows)
	return cols*size.Width + (cols-1)*sp.CardSpacing,
		rows*size.Height + (rows-1)*sp.RowSpacing
}

// maxUnitsAlong is how many minSize units plus spacing gaps fit in span.
func maxUnitsAlong(span, minSize, spacing float64) int {
	n := int(math.Floor((span + spacing) / (minSize + spacing)))
	if n < 1 {
		return 1
	}
	return n
}
