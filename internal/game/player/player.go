// Package player owns the runner's lane, jump arc, and slide state, and
// exposes the clearance predicates and silhouette occupancy the pool
// managers and renderer read.
package player

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
)

// Jump arc timing: a fixed 24-tick arc, 12 ticks ascending and 12
// descending by the same step, returning to exactly 0.
const (
	JumpDuration = 24
	jumpApexTick = JumpDuration / 2
)

// Latch is an edge-triggered pending flag. Raise sets it from the input
// edge handler; Consume reads and clears it once per tick. The tick
// function raises before consuming, so a press that coincides with the
// consumption instant is never lost (set wins over same-tick clear).
type Latch struct {
	pending bool
}

// Raise marks the event pending.
func (l *Latch) Raise() {
	l.pending = true
}

// Consume returns the pending state and clears it.
func (l *Latch) Consume() bool {
	v := l.pending
	l.pending = false
	return v
}

// Pending reports the latch state without clearing it.
func (l *Latch) Pending() bool {
	return l.pending
}

// View is the player's committed state for one tick. Other components
// read this value snapshot, never the controller's mutable fields.
type View struct {
	Lane        int
	JumpCounter int
	JumpOffset  int
	Sliding     bool
	JumpClear   bool // High enough to clear a ground obstacle
	SlideClear  bool // Low enough to pass under a wire
}

// Jumping reports whether the player is mid-arc.
func (v View) Jumping() bool {
	return v.JumpCounter > 0
}

// Controller owns all player state. It is mutated only in Tick, and only
// while the game is active.
type Controller struct {
	cfg config.PlayerConfig

	lane        int
	jumpCounter int
	jumpOffset  int
	sliding     bool

	left  Latch
	right Latch
	jump  Latch

	slideHeld bool // Level input, sampled each tick
}

// New creates a controller with the given tunables.
func New(cfg config.PlayerConfig) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Reset returns the player to the center lane, grounded and standing.
func (c *Controller) Reset() {
	c.lane = perspective.CenterLane
	c.jumpCounter = 0
	c.jumpOffset = 0
	c.sliding = false
	c.left = Latch{}
	c.right = Latch{}
	c.jump = Latch{}
	c.slideHeld = false
}

// RaiseLeft latches a move-left press.
func (c *Controller) RaiseLeft() { c.left.Raise() }

// RaiseRight latches a move-right press.
func (c *Controller) RaiseRight() { c.right.Raise() }

// RaiseJump latches a jump press.
func (c *Controller) RaiseJump() { c.jump.Raise() }

// SetSlide records the slide-hold input level for the next tick.
func (c *Controller) SetSlide(held bool) { c.slideHeld = held }

// View returns the committed state snapshot for this tick.
func (c *Controller) View() View {
	return View{
		Lane:        c.lane,
		JumpCounter: c.jumpCounter,
		JumpOffset:  c.jumpOffset,
		Sliding:     c.sliding,
		JumpClear:   c.jumpOffset > c.JumpPeak()*c.cfg.JumpClearPct/100,
		SlideClear:  c.sliding,
	}
}

// JumpPeak returns the apex height of the jump arc.
func (c *Controller) JumpPeak() int {
	return c.cfg.JumpStep * jumpApexTick
}

// Tick consumes pending inputs and advances the player by one frame.
// While inactive, no field changes; pending latches stay latched so a
// press just before the run starts still registers.
func (c *Controller) Tick(active bool) {
	if !active {
		return
	}

	left := c.left.Consume()
	right := c.right.Consume()
	jump := c.jump.Consume()

	// Lane change is an instantaneous snap; left wins over right.
	if left && c.lane > 0 {
		c.lane--
	} else if right && c.lane < perspective.LaneCount-1 {
		c.lane++
	}

	// Jump starts only when grounded and not sliding.
	if jump && c.jumpCounter == 0 && !c.sliding {
		c.jumpCounter = JumpDuration
	}

	// Advance the arc: first half ascends, second half descends.
	if c.jumpCounter > 0 {
		if c.jumpCounter > jumpApexTick {
			c.jumpOffset += c.cfg.JumpStep
		} else {
			c.jumpOffset -= c.cfg.JumpStep
		}
		c.jumpCounter--
	}

	// Slide follows the hold level but never while jumping.
	c.sliding = c.slideHeld && c.jumpCounter == 0
}

// Occupancy classifies a screen coordinate against the player silhouette:
// a perspective-scaled bounding box at the player's fixed depth, raised by
// the jump offset. Sliding shrinks the body to the crouched profile and
// suppresses the head region.
func (v View) Occupancy(x, y int, geo perspective.Geometry, cfg config.PlayerConfig) (body, head bool) {
	depth := cfg.Depth
	feet := geo.Row(depth) - v.JumpOffset
	cx := geo.LaneCenterX(v.Lane, depth)

	halfW := geo.Scaled(cfg.BodyHalfWidth, depth)
	height := geo.Scaled(cfg.BodyHeight, depth)
	if v.Sliding {
		height = geo.Scaled(cfg.SlideHeight, depth)
	}

	dx := x - cx
	if dx < 0 {
		dx = -dx
	}

	if dx <= halfW && y < feet && y >= feet-height {
		return true, false
	}

	if !v.Sliding {
		headHalf := geo.Scaled(cfg.HeadHalfWidth, depth)
		headH := geo.Scaled(cfg.HeadSize, depth)
		gap := geo.Scaled(cfg.HeadGap, depth)
		headBottom := feet - height - gap
		if dx <= headHalf && y < headBottom && y >= headBottom-headH {
			return false, true
		}
	}

	return false, false
}
