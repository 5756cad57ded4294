package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  DeviceTier
	}{
		{
			name:  "narrow phone",
			width: 375,
			want:  TierMobile,
		},
		{
			name:  "just below mobile breakpoint",
			width: 767.9,
			want:  TierMobile,
		},
		{
			name:  "exact mobile breakpoint is tablet",
			width: 768,
			want:  TierTablet,
		},
		{
			name:  "tablet landscape",
			width: 1023,
			want:  TierTablet,
		},
		{
			name:  "exact tablet breakpoint is desktop",
			width: 1024,
			want:  TierDesktop,
		},
		{
			name:  "full hd",
			width: 1920,
			want:  TierDesktop,
		},
		{
			name:  "zero width defaults to desktop",
			width: 0,
			want:  TierDesktop,
		},
		{
			name:  "negative width defaults to desktop",
			width: -100,
			want:  TierDesktop,
		},
		{
			name:  "NaN defaults to desktop",
			width: math.NaN(),
			want:  TierDesktop,
		},
		{
			name:  "infinity defaults to desktop",
			width: math.Inf(1),
			want:  TierDesktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDevice(tt.width)
			assert.Equal(t, tt.want, got, "ClassifyDevice(%v)", tt.width)
		})
	}
}

func TestDeviceTierString(t *testing.T) {
	tests := []struct {
		tier DeviceTier
		want string
	}{
		{TierMobile, "mobile"},
		{TierTablet, "tablet"},
		{TierDesktop, "desktop"},
		{DeviceTier(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.String())
		})
	}
}

// TestBreakpointOrder verifies the breakpoint thresholds are sensible.
func TestBreakpointOrder(t *testing.T) {
	assert.Less(t, float64(MobileMaxWidth), float64(TabletMaxWidth))
	assert.GreaterOrEqual(t, MobileMaxWidth, 320, "mobile breakpoint should cover small phones")
}
