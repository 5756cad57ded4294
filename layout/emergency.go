package layout

import (
	"math"
	"math/rand"

	"cardlot/log"
)

// Relaxed constraints for the emergency solver. Card size is traded away
// for guaranteed containment.
const (
	EmergencyMinCardWidth  = 35
	EmergencyMinCardHeight = 50
	EmergencySpacing       = 6

	// EmergencyFillFraction is the share of available space the
	// emergency grid may occupy after the final down-scale.
	EmergencyFillFraction = 0.90
)

// SolveEmergencyLayout is the guaranteed-success terminal step of the
// pipeline, invoked when the primary plan fails boundary validation. It
// prefers a single row when one fits at the relaxed minimum size,
// otherwise the smallest row count that does; if nothing fits even at the
// minimums it falls back to a near-square grid and lets the final
// down-scale (unbounded below) force containment. Every position is
// marked as fallback. This function never fails.
func SolveEmergencyLayout(cardCount int, avail AvailableSpace, rng *rand.Rand) LayoutResult {
	if cardCount < 1 {
		cardCount = 1
	}

	sp := SpacingConfig{RowSpacing: EmergencySpacing, CardSpacing: EmergencySpacing}
	budgetW := avail.Width * EmergencyFillFraction
	budgetH := avail.Height * EmergencyFillFraction

	plan := emergencyPlan(cardCount, budgetW, budgetH, sp)
	size := emergencySize(plan, budgetW, budgetH, sp)

	positions := GeneratePositions(cardCount, plan, size, sp, rng)
	for i := range positions {
		positions[i].IsFallback = true
	}

	totalW, totalH := gridExtent(plan, size, sp)
	return LayoutResult{
		Positions:      positions,
		ActualCardSize: size,
		LayoutInfo: LayoutInfo{
			Rows:        plan.Rows,
			CardsPerRow: plan.CardsPerRow,
			TotalWidth:  totalW,
			TotalHeight: totalH,
		},
	}
}

// emergencyPlan picks the smallest row count whose grid fits the budget
// at the relaxed minimum card size.
func emergencyPlan(cardCount int, budgetW, budgetH float64, sp SpacingConfig) GridPlan {
	for rows := 1; rows <= cardCount; rows++ {
		perRow := (cardCount + rows - 1) / rows
		needW := float64(perRow)*EmergencyMinCardWidth + float64(perRow-1)*sp.CardSpacing
		needH := float64(rows)*EmergencyMinCardHeight + float64(rows-1)*sp.RowSpacing
		if needW <= budgetW && needH <= budgetH {
			return GridPlan{Rows: rows, CardsPerRow: perRow}
		}
		if needH > budgetH {
			// Taller grids only get worse vertically; stop searching.
			break
		}
	}

	perRow := int(math.Ceil(math.Sqrt(float64(cardCount))))
	if perRow < 1 {
		perRow = 1
	}
	rows := (cardCount + perRow - 1) / perRow
	log.Warnf("emergency layout: no grid fits %d cards at minimum size in %.0fx%.0f, down-scaling a %dx%d grid",
		cardCount, budgetW, budgetH, rows, perRow)
	return GridPlan{Rows: rows, CardsPerRow: perRow}
}

// emergencySize fits the card size to the budget with the 2:3 aspect
// ratio. Unlike the primary solver there is no lower clamp: containment
// wins over legibility here.
func emergencySize(plan GridPlan, budgetW, budgetH float64, sp SpacingConfig) CardSize {
	cols := float64(plan.CardsPerRow)
	rows := float64(plan.Rows)

	maxW := (budgetW - (cols-1)*sp.CardSpacing) / cols
	maxH := (budgetH - (rows-1)*sp.RowSpacing) / rows

	w := math.Min(maxW, maxH/cardAspect)
	w = math.Max(w, 1)
	h := w * cardAspect

	totalW, totalH := gridExtent(plan, CardSize{Width: w, Height: h}, sp)
	if totalW > budgetW || totalH > budgetH {
		scale := math.Min(budgetW/totalW, budgetH/totalH)
		w *= scale
		h *= scale
	}

	return CardSize{Width: w, Height: h}
}
