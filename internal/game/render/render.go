// Package render synthesizes one RGB color per screen coordinate from a
// committed tick snapshot. Pixel is a pure function: no state beyond the
// font and palette tables, no mutation, evaluable in any order.
package render

import (
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game/obstacles"
	"github.com/vovakirdan/lane-runner/internal/game/state"
)

// Palette. Obstacle colors are keyed by kind; everything else is fixed.
var (
	hudBarColor   = core.NewRGB(25, 25, 45)
	lifeColor     = core.NewRGB(220, 40, 60)
	lifeEdgeColor = core.NewRGB(120, 20, 35)

	bodyColor = core.NewRGB(40, 180, 220)
	headColor = core.NewRGB(255, 215, 170)

	barrierColor = core.NewRGB(255, 140, 0)
	wireColor    = core.NewRGB(235, 220, 60)
	trainColor   = core.NewRGB(205, 35, 35)
	coinColor    = core.NewRGB(255, 200, 40)

	edgeColor    = core.NewRGB(210, 210, 215)
	dividerColor = core.NewRGB(235, 235, 235)
	tieColor     = core.NewRGB(70, 50, 35)
	nearGround   = core.NewRGB(125, 95, 65)
	farGround    = core.NewRGB(55, 45, 40)
	nearWall     = core.NewRGB(90, 90, 105)
	farWall      = core.NewRGB(35, 35, 50)

	topSky      = core.NewRGB(15, 15, 70)
	horizonSky  = core.NewRGB(235, 120, 60)
	buildingInk = core.NewRGB(30, 30, 48)
	windowLit   = core.NewRGB(255, 230, 120)

	overlayTitleColor = core.NewRGB(255, 60, 60)
	overlayTextColor  = core.NewRGB(240, 240, 240)
)

// Pixel composes the color for one coordinate by descending priority:
// blanking, game-over overlay, lives icons, HUD bar, player, obstacles,
// coins, track, sky.
func Pixel(x, y int, s *Snapshot) core.RGB {
	g := s.Geo
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return core.Black // Blanking region
	}

	if s.Phase == state.GameOver {
		if c, ok := overlayPixel(x, y, s); ok {
			return c
		}
	}

	if c, ok := livesPixel(x, y, s); ok {
		return c
	}
	if y < g.HUDHeight {
		return hudBarColor
	}

	if c, ok := playerPixel(x, y, s); ok {
		return c
	}
	if c, ok := obstaclePixel(x, y, s); ok {
		return c
	}
	if c, ok := coinPixel(x, y, s); ok {
		return c
	}

	if g.Depth(y) > 0 {
		return trackPixel(x, y, s)
	}
	return skyPixel(x, y, s)
}

// overlayPixel draws the fixed-font game-over text: a 3x-scale title,
// then 2x-scale score and instruction lines. Non-text pixels fall through
// to the scene behind.
func overlayPixel(x, y int, s *Snapshot) (core.RGB, bool) {
	g := s.Geo
	cx := g.Width / 2

	const title = "GAME OVER"
	titleY := g.Height/2 - 90
	if textPixel(x, y, cx-textWidth(title, 3)/2, titleY, 3, title) {
		return overlayTitleColor, true
	}

	digits := scoreDigits(s.Score)
	scoreLine := "SCORE " + string(digits[:])
	scoreY := titleY + 60
	if textPixel(x, y, cx-textWidth(scoreLine, 2)/2, scoreY, 2, scoreLine) {
		return overlayTextColor, true
	}

	const instr = "PRESS JUMP TO RESTART"
	instrY := scoreY + 40
	if textPixel(x, y, cx-textWidth(instr, 2)/2, instrY, 2, instr) {
		return overlayTextColor, true
	}

	return core.RGB{}, false
}

// livesPixel draws one icon per remaining life in the HUD strip.
func livesPixel(x, y int, s *Snapshot) (core.RGB, bool) {
	const iconSize = 24
	top := (s.Geo.HUDHeight - iconSize) / 2
	if y < top || y >= top+iconSize {
		return core.RGB{}, false
	}
	for i := 0; i < s.Lives; i++ {
		left := 16 + i*(iconSize+12)
		if x < left || x >= left+iconSize {
			continue
		}
		dx, dy := x-left, y-top
		if dx < 2 || dx >= iconSize-2 || dy < 2 || dy >= iconSize-2 {
			return lifeEdgeColor, true
		}
		return lifeColor, true
	}
	return core.RGB{}, false
}

// playerPixel tests the player silhouette, suppressed on alternating
// frame-counter phases while invincible (the blink effect).
func playerPixel(x, y int, s *Snapshot) (core.RGB, bool) {
	if s.Phase == state.Idle {
		return core.RGB{}, false
	}
	if s.Invincible && (s.Frame>>2)&1 == 1 {
		return core.RGB{}, false
	}
	body, head := s.Player.Occupancy(x, y, s.Geo, s.PlayerCfg)
	if body {
		return bodyColor, true
	}
	if head {
		return headColor, true
	}
	return core.RGB{}, false
}

// Obstacle box extents at full depth, per kind. The wire is thin but wide
// and hangs at slide-under height; the train is tall and fills the lane.
const (
	barrierHalfW = 60
	barrierH     = 40
	wireHalfW    = 78
	wireTop      = 56
	wireBottom   = 46
	trainHalfW   = 70
	trainH       = 130
)

// obstaclePixel tests the active obstacle boxes in slot order: when boxes
// overlap, the lowest-indexed slot wins (fixed priority, not depth-sorted).
func obstaclePixel(x, y int, s *Snapshot) (core.RGB, bool) {
	g := s.Geo
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if !o.Active || o.Y <= 0 {
			continue
		}
		depth := o.Y
		row := g.Row(core.Min(depth, g.MaxDepth))
		cx := g.LaneCenterX(o.Lane, depth)
		dx := core.Abs(x - cx)

		switch o.Kind {
		case obstacles.KindBarrier:
			if dx <= g.Scaled(barrierHalfW, depth) && y < row && y >= row-g.Scaled(barrierH, depth) {
				return barrierColor, true
			}
		case obstacles.KindWire:
			top := row - g.Scaled(wireTop, depth)
			bottom := row - g.Scaled(wireBottom, depth)
			if dx <= g.Scaled(wireHalfW, depth) && y >= top && y < bottom {
				return wireColor, true
			}
		case obstacles.KindTrain:
			if dx <= g.Scaled(trainHalfW, depth) && y < row && y >= row-g.Scaled(trainH, depth) {
				return trainColor, true
			}
		}
	}
	return core.RGB{}, false
}

// Coin box extents at full depth; smaller than any obstacle box.
const (
	coinHalfW  = 9
	coinTop    = 26
	coinBottom = 8
)

// coinPixel tests the active coin squares.
func coinPixel(x, y int, s *Snapshot) (core.RGB, bool) {
	g := s.Geo
	for i := range s.Coins {
		c := &s.Coins[i]
		if !c.Active || c.Y <= 0 {
			continue
		}
		depth := c.Y
		row := g.Row(core.Min(depth, g.MaxDepth))
		cx := g.LaneCenterX(c.Lane, depth)
		top := row - g.Scaled(coinTop, depth)
		bottom := row - g.Scaled(coinBottom, depth)
		if core.Abs(x-cx) <= g.Scaled(coinHalfW, depth) && y >= top && y < bottom {
			return coinColor, true
		}
	}
	return core.RGB{}, false
}

// trackPixel draws the perspective ground below the horizon: edge
// highlight lines, dashed lane dividers keyed off depth, cross-ties keyed
// off depth plus the scroll offset, a depth-shaded ground fill, and
// depth-shaded side walls outside the track. Dividers and ties dim to
// half brightness at the horizon.
func trackPixel(x, y int, s *Snapshot) core.RGB {
	g := s.Geo
	depth := g.Depth(y)
	half := g.TrackHalfWidth(depth)
	off := x - g.Width/2

	// Edge highlight lines.
	edgeThick := core.Max(1, g.Scaled(6, depth))
	if core.Abs(core.Abs(off)-half) <= edgeThick {
		return edgeColor
	}

	if core.Abs(off) < half {
		// Dashed lane dividers.
		if (depth/24)%2 == 0 {
			divThick := core.Max(1, g.Scaled(3, depth))
			for b := 0; b < 2; b++ {
				if core.Abs(x-g.LaneBoundaryX(b, depth)) <= divThick {
					return core.Scale(dividerColor, g.MaxDepth+depth, 2*g.MaxDepth)
				}
			}
		}

		// Scrolling cross-ties.
		const tieSpacing = 64
		tieThick := core.Max(2, g.Scaled(8, depth))
		phase := (depth - int(s.Scroll)) % tieSpacing
		if phase < 0 {
			phase += tieSpacing
		}
		if phase < tieThick {
			return core.Scale(tieColor, g.MaxDepth+depth, 2*g.MaxDepth)
		}

		return core.Lerp(farGround, nearGround, depth, g.MaxDepth)
	}

	return core.Lerp(farWall, nearWall, depth, g.MaxDepth)
}

// building silhouettes above the horizon, in 800-wide design units,
// scaled to the configured raster.
type building struct {
	x, w, h, seed int
}

var skyline = []building{
	{20, 70, 95, 1},
	{110, 50, 60, 2},
	{180, 85, 120, 3},
	{300, 60, 75, 4},
	{420, 90, 105, 5},
	{540, 55, 65, 6},
	{620, 75, 130, 7},
	{720, 60, 85, 8},
}

// skyPixel draws the gradient sky with fixed building silhouettes and
// deterministic lit-window dots.
func skyPixel(x, y int, s *Snapshot) core.RGB {
	g := s.Geo
	for _, b := range skyline {
		bx := b.x * g.Width / 800
		bw := b.w * g.Width / 800
		if x < bx || x >= bx+bw {
			continue
		}
		if y < g.HorizonY-b.h {
			break // Buildings are sorted by x; sky above this one
		}
		wx := x - bx
		wy := g.HorizonY - y
		if wx%14 >= 4 && wx%14 < 8 && wy%18 >= 6 && wy%18 < 10 {
			if (wx/14*7+wy/18*13+b.seed)%5 < 2 {
				return windowLit
			}
		}
		return buildingInk
	}
	return core.Lerp(topSky, horizonSky, y, core.Max(1, g.HorizonY))
}
