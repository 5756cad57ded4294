package layout

// AvailableSpace is the usable rectangle for cards after subtracting
// reserved chrome (game-info panel, action buttons) from the raw
// container. Recomputed on every layout pass.
type AvailableSpace struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// GridPlan is the chosen rows × cards-per-row decomposition for a card
// count. A pure function of (cardCount, AvailableSpace, SpacingConfig).
type GridPlan struct {
	Rows        int `json:"rows"`
	CardsPerRow int `json:"cards_per_row"`
}

// CardSize is the uniform size applied to every card in one layout pass.
type CardSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CardPosition is the placement of a single card, coordinates relative to
// the available-space center. A pass produces a fresh slice of exactly
// cardCount entries; positions are never mutated in place.
type CardPosition struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`

	CardWidth  float64 `json:"card_width"`
	CardHeight float64 `json:"card_height"`

	// IsFallback marks positions produced by the emergency solver.
	IsFallback bool `json:"is_fallback,omitempty"`

	// ValidationError carries a non-fatal diagnostic written by
	// ValidateCards when the card is out of bounds or overlapping.
	ValidationError string `json:"validation_error,omitempty"`
}

// LayoutInfo summarizes the grid geometry of one layout pass.
type LayoutInfo struct {
	Rows        int     `json:"rows"`
	CardsPerRow int     `json:"cards_per_row"`
	TotalWidth  float64 `json:"total_width"`
	TotalHeight float64 `json:"total_height"`
}

// LayoutResult is the complete output of one pipeline run.
type LayoutResult struct {
	Positions      []CardPosition `json:"positions"`
	ActualCardSize CardSize       `json:"actual_card_size"`
	LayoutInfo     LayoutInfo     `json:"layout_info"`
	Tier           DeviceTier     `json:"-"`
	TierName       string         `json:"tier"`
}

// IsFallback reports whether the result came from the emergency solver.
// The per-position flag is authoritative; all positions of a pass share it.
func (r LayoutResult) IsFallback() bool {
	return len(r.Positions) > 0 && r.Positions[0].IsFallback
}

// clone returns a deep copy so cached results keep the fresh-slice
// invariant toward callers.
func (r LayoutResult) clone() LayoutResult {
	out := r
	out.Positions = make([]CardPosition, len(r.Positions))
	copy(out.Positions, r.Positions)
	return out
}

// OverflowArea reports by how much one axis exceeds the allowed bounds.
type OverflowArea struct {
	Direction string  `json:"direction"`
	Amount    float64 `json:"amount"`
}

// ValidationReport is produced by the boundary validator and consumed
// immediately to decide whether the emergency solver runs. It is never
// stored beyond the current pass.
type ValidationReport struct {
	IsValid            bool           `json:"is_valid"`
	OverflowAreas      []OverflowArea `json:"overflow_areas,omitempty"`
	OverlappingPairs   [][2]int       `json:"overlapping_pairs,omitempty"`
	OutOfBoundsIndices []int          `json:"out_of_bounds_indices,omitempty"`
}
