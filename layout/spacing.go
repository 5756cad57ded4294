package layout

import "math"

// Margins are the container-edge margins for a tier.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Chrome is the vertical space reserved for non-card UI: the game-info
// panel above the card area and the action buttons below it.
type Chrome struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// SpacingConfig is the per-tier spacing policy. The table is read-only;
// values are never mutated at runtime.
type SpacingConfig struct {
	ContainerMargins  Margins `json:"container_margins"`
	RowSpacing        float64 `json:"row_spacing"`
	CardSpacing       float64 `json:"card_spacing"`
	MinCardAreaHeight float64 `json:"min_card_area_height"`
	ReservedChrome    Chrome  `json:"reserved_chrome"`
}

// Available-space clamps. Floors avoid degenerate layouts on very small
// screens; fraction caps avoid over-stretching on very large ones.
const (
	// MinAvailableWidth is the floor for usable width.
	MinAvailableWidth = 320

	// MinAvailableHeight is the floor for usable height.
	MinAvailableHeight = 200

	// MaxWidthFraction caps usable width at 90% of the container.
	MaxWidthFraction = 0.90

	// MaxHeightFraction caps usable height at 50% of the container.
	MaxHeightFraction = 0.50
)

var spacingTable = map[DeviceTier]SpacingConfig{
	TierMobile: {
		ContainerMargins:  Margins{Top: 16, Bottom: 16, Left: 16, Right: 16},
		RowSpacing:        12,
		CardSpacing:       12,
		MinCardAreaHeight: 240,
		ReservedChrome:    Chrome{Top: 60, Bottom: 80},
	},
	TierTablet: {
		ContainerMargins:  Margins{Top: 24, Bottom: 24, Left: 24, Right: 24},
		RowSpacing:        14,
		CardSpacing:       14,
		MinCardAreaHeight: 300,
		ReservedChrome:    Chrome{Top: 70, Bottom: 90},
	},
	TierDesktop: {
		ContainerMargins:  Margins{Top: 32, Bottom: 32, Left: 32, Right: 32},
		RowSpacing:        16,
		CardSpacing:       16,
		MinCardAreaHeight: 360,
		ReservedChrome:    Chrome{Top: 80, Bottom: 100},
	},
}

// SpacingFor returns the spacing policy for a tier. Unknown tiers fall
// back to the desktop table so the function is total.
func SpacingFor(tier DeviceTier) SpacingConfig {
	if sp, ok := spacingTable[tier]; ok {
		return sp
	}
	return spacingTable[TierDesktop]
}

// CalculateAvailableSpace converts a raw container size into the usable
// card rectangle: margins and reserved chrome are subtracted, the result
// is capped to fractions of the container and floored to the documented
// minimums. Floors never push past the raw container, so a tiny container
// still bounds its own layout.
func CalculateAvailableSpace(containerWidth, containerHeight float64, sp SpacingConfig) AvailableSpace {
	containerWidth = sanitizeDimension(containerWidth, MinAvailableWidth)
	containerHeight = sanitizeDimension(containerHeight, MinAvailableHeight)

	w := containerWidth - sp.ContainerMargins.Left - sp.ContainerMargins.Right
	h := containerHeight - sp.ContainerMargins.Top - sp.ContainerMargins.Bottom -
		sp.ReservedChrome.Top - sp.ReservedChrome.Bottom

	w = math.Min(w, containerWidth*MaxWidthFraction)
	h = math.Min(h, containerHeight*MaxHeightFraction)

	w = math.Max(w, MinAvailableWidth)
	h = math.Max(h, math.Max(MinAvailableHeight, sp.MinCardAreaHeight))

	// The floors are there to avoid degenerate grids, not to exceed the
	// physical container.
	w = math.Min(w, containerWidth)
	h = math.Min(h, containerHeight)

	return AvailableSpace{
		Width:   w,
		Height:  h,
		CenterX: w / 2,
		CenterY: h / 2,
	}
}

// sanitizeDimension replaces non-finite or non-positive container input
// with a usable fallback, favoring availability over strictness. Valid
// small containers pass through untouched; the floor/cap dance above
// handles them.
func sanitizeDimension(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}
