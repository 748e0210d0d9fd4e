// Package perspective holds the shared pseudo-3D geometry: how depth below
// the horizon maps to screen rows, lane centers, and object scaling.
// Everything is integer math so rendering is bit-identical across runs.
package perspective

// Lane count and the center lane used as the safe default for
// out-of-range discriminants.
const (
	LaneCount  = 3
	CenterLane = 1
)

// Geometry describes the raster layout. Derived once from the video
// config at reset; all fields are in pixels.
type Geometry struct {
	Width     int
	Height    int
	HorizonY  int // Row of the vanishing point
	HUDHeight int // Top strip reserved for the HUD
	MaxDepth  int // Depth at the bottom edge (Height - HorizonY)

	// Bottom-edge extents; both converge linearly toward the vanishing
	// point as depth decreases to 0.
	LaneOffset    int // Horizontal distance between adjacent lane centers at full depth
	TrackHalfSpan int // Track half-width at full depth
}

// NewGeometry derives the track geometry from a raster size.
func NewGeometry(width, height, horizonY, hudHeight int) Geometry {
	return Geometry{
		Width:         width,
		Height:        height,
		HorizonY:      horizonY,
		HUDHeight:     hudHeight,
		MaxDepth:      height - horizonY,
		LaneOffset:    width * 17 / 80,
		TrackHalfSpan: width * 7 / 20,
	}
}

// Depth returns the per-row distance metric: 0 at the horizon, MaxDepth
// at the bottom edge. Rows above the horizon yield negative values.
func (g Geometry) Depth(y int) int {
	return y - g.HorizonY
}

// Row returns the screen row for a given depth.
func (g Geometry) Row(depth int) int {
	return g.HorizonY + depth
}

// Scaled shrinks a full-depth extent to its apparent size at the given
// depth. At depth 0 everything collapses into the vanishing point.
func (g Geometry) Scaled(extent, depth int) int {
	if depth <= 0 {
		return 0
	}
	if depth > g.MaxDepth {
		depth = g.MaxDepth
	}
	return extent * depth / g.MaxDepth
}

// LaneCenterX returns the x-coordinate of a lane's center at the given
// depth. Out-of-range lanes resolve to the center lane.
func (g Geometry) LaneCenterX(lane, depth int) int {
	if lane < 0 || lane >= LaneCount {
		lane = CenterLane
	}
	return g.Width/2 + g.Scaled((lane-CenterLane)*g.LaneOffset, depth)
}

// TrackHalfWidth returns the track's half-width at the given depth.
func (g Geometry) TrackHalfWidth(depth int) int {
	return g.Scaled(g.TrackHalfSpan, depth)
}

// LaneBoundaryX returns the x-coordinate of the boundary line between
// lane b and lane b+1 (b in 0..LaneCount-2) at the given depth.
func (g Geometry) LaneBoundaryX(b, depth int) int {
	// Boundary sits halfway between adjacent lane centers.
	off := (2*b - (LaneCount - 2)) * g.LaneOffset / 2
	return g.Width/2 + g.Scaled(off, depth)
}
