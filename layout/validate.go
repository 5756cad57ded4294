package layout

import (
	"fmt"
	"math"
)

// boundsEpsilon absorbs float rounding at the safety-margin edge.
const boundsEpsilon = 0.5

// OverlapTolerance is how far two card bounding boxes may intrude into
// each other before they count as overlapping.
const OverlapTolerance = 1.0

// ValidateBounds checks a layout's total extent against the available
// space with the 5% safety margin and reports per-axis overflow amounts.
// This is the hot-path check run on every layout pass.
func ValidateBounds(result LayoutResult, avail AvailableSpace) ValidationReport {
	report := ValidationReport{IsValid: true}

	limitW := avail.Width*SafetyFraction + boundsEpsilon
	limitH := avail.Height*SafetyFraction + boundsEpsilon

	if result.LayoutInfo.TotalWidth > limitW {
		report.IsValid = false
		report.OverflowAreas = append(report.OverflowAreas, OverflowArea{
			Direction: "horizontal",
			Amount:    result.LayoutInfo.TotalWidth - avail.Width*SafetyFraction,
		})
	}
	if result.LayoutInfo.TotalHeight > limitH {
		report.IsValid = false
		report.OverflowAreas = append(report.OverflowAreas, OverflowArea{
			Direction: "vertical",
			Amount:    result.LayoutInfo.TotalHeight - avail.Height*SafetyFraction,
		})
	}

	return report
}

// ValidateCards is the strict per-card variant used by tests and debug
// tooling: every card rectangle must sit inside the available space, and
// no two rectangles may overlap beyond OverlapTolerance. Flagged cards
// get a diagnostic written to their ValidationError field.
func ValidateCards(result LayoutResult, avail AvailableSpace) ValidationReport {
	report := ValidateBounds(result, avail)

	halfW := avail.Width/2 + boundsEpsilon
	halfH := avail.Height/2 + boundsEpsilon

	for i, p := range result.Positions {
		if math.Abs(p.X)+p.CardWidth/2 > halfW || math.Abs(p.Y)+p.CardHeight/2 > halfH {
			report.IsValid = false
			report.OutOfBoundsIndices = append(report.OutOfBoundsIndices, i)
			result.Positions[i].ValidationError = "outside available space"
		}
	}

	for i := 0; i < len(result.Positions); i++ {
		for j := i + 1; j < len(result.Positions); j++ {
			if cardsOverlap(result.Positions[i], result.Positions[j]) {
				report.IsValid = false
				report.OverlappingPairs = append(report.OverlappingPairs, [2]int{i, j})
				annotateOverlap(result.Positions, i, j)
				annotateOverlap(result.Positions, j, i)
			}
		}
	}

	return report
}

// annotateOverlap writes an overlap diagnostic unless the card already
// carries one.
func annotateOverlap(positions []CardPosition, i, other int) {
	if positions[i].ValidationError == "" {
		positions[i].ValidationError = fmt.Sprintf("overlaps card %d", other)
	}
}

// cardsOverlap does an axis-aligned bounding box intersection test with
// tolerance. Rotation is cosmetic (at most ±2°) and ignored here.
func cardsOverlap(a, b CardPosition) bool {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	overlapX := (a.CardWidth+b.CardWidth)/2 - dx
	overlapY := (a.CardHeight+b.CardHeight)/2 - dy
	return overlapX > OverlapTolerance && overlapY > OverlapTolerance
}

// describeReport renders a short diagnostic for warning logs.
func describeReport(report ValidationReport) string {
	if report.IsValid {
		return "valid"
	}
	msg := "invalid"
	for _, o := range report.OverflowAreas {
		msg += fmt.Sprintf(" %s+%.1fpx", o.Direction, o.Amount)
	}
	if n := len(report.OutOfBoundsIndices); n > 0 {
		msg += fmt.Sprintf(" out-of-bounds=%d", n)
	}
	if n := len(report.OverlappingPairs); n > 0 {
		msg += fmt.Sprintf(" overlaps=%d", n)
	}
	return msg
}
