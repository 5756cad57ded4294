// Package layout computes adaptive card grid layouts for prize-drawing UIs.
package layout

import "math"

// DeviceTier represents the device-size classification derived from
// container width. Spacing and card-size constants are keyed by tier.
type DeviceTier int

const (
	// TierMobile is for containers narrower than 768px.
	// Tight margins, small card caps.
	TierMobile DeviceTier = iota

	// TierTablet is for containers narrower than 1024px.
	// Medium spacing.
	TierTablet

	// TierDesktop is for containers 1024px and wider.
	// Generous spacing, largest card caps.
	TierDesktop
)

// Width breakpoints
const (
	// MobileMaxWidth is the exclusive upper bound for the mobile tier.
	MobileMaxWidth = 768

	// TabletMaxWidth is the exclusive upper bound for the tablet tier.
	TabletMaxWidth = 1024
)

// String returns the string representation of the device tier.
func (t DeviceTier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	case TierDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// ClassifyDevice maps a container width to a device tier. It is total:
// zero, negative, and non-finite widths classify as desktop so that a
// missing measurement never breaks a layout pass.
func ClassifyDevice(width float64) DeviceTier {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return TierDesktop
	}

	switch {
	case width < MobileMaxWidth:
		return TierMobile
	case width < TabletMaxWidth:
		return TierTablet
	default:
		return TierDesktop
	}
}
