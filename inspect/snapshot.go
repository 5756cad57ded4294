// Package inspect exports JSON-serializable snapshots of the layout
// engine's state for debug tooling.
package inspect

import (
	"encoding/json"
	"io"
	"time"

	"cardlot/layout"
	"cardlot/resize"
)

// SnapshotVersion identifies the snapshot format.
const SnapshotVersion = "1.0"

// Snapshot is a complete picture of the coordinator at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Container holds the most recently observed dimensions and tier.
	Container ContainerInfo `json:"container"`

	// Spacing is the active spacing policy for the container's tier.
	Spacing layout.SpacingConfig `json:"spacing"`

	// Current is the most recent layout result, if any.
	Current *layout.LayoutResult `json:"current,omitempty"`

	// History is the bounded rolling layout history, oldest first.
	History []layout.LayoutResult `json:"history"`

	// Metrics aggregates per-run coordinator metrics.
	Metrics resize.MetricsSnapshot `json:"metrics"`

	// Breakpoints documents the tier classification thresholds.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// ContainerInfo holds container dimensions and classification.
type ContainerInfo struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Tier      string  `json:"tier"`
	CardCount int     `json:"card_count"`
	State     string  `json:"state"`
}

// BreakpointInfo documents one tier threshold.
type BreakpointInfo struct {
	Tier     string  `json:"tier"`
	MaxWidth float64 `json:"max_width,omitempty"`
}

// Capture takes a snapshot of the coordinator's state.
func Capture(c *resize.Coordinator) Snapshot {
	w, h := c.Dimensions()
	tier := layout.ClassifyDevice(w)

	snap := Snapshot{
		Timestamp: time.Now(),
		Version:   SnapshotVersion,
		Container: ContainerInfo{
			Width:     w,
			Height:    h,
			Tier:      tier.String(),
			CardCount: c.CardCount(),
			State:     c.State().String(),
		},
		Spacing: layout.SpacingFor(tier),
		History: c.History(),
		Metrics: c.Metrics(),
		Breakpoints: []BreakpointInfo{
			{Tier: layout.TierMobile.String(), MaxWidth: layout.MobileMaxWidth},
			{Tier: layout.TierTablet.String(), MaxWidth: layout.TabletMaxWidth},
			{Tier: layout.TierDesktop.String()},
		},
	}

	if last, ok := c.Layout(); ok {
		snap.Current = &last
	}
	return snap
}

// JSON renders the snapshot as indented JSON.
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// WriteJSON writes the snapshot as indented JSON to w.
func (s Snapshot) WriteJSON(w io.Writer) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
