// Package coins owns the fixed pool of coin slots. It mirrors the
// obstacle pool's mechanics but draws from disjoint RNG bit ranges and
// collects instead of colliding.
package coins

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
	"github.com/vovakirdan/lane-runner/internal/game/player"
	"github.com/vovakirdan/lane-runner/internal/game/rng"
)

// PoolSize is the fixed slot capacity.
const PoolSize = 4

var laneEncoding = [4]int{0, 1, 2, perspective.CenterLane}

// Slot is one pooled coin. Y is depth below the horizon.
type Slot struct {
	Active bool
	Lane   int
	Y      int
}

// Pool owns the coin slots and spawn timer. Only Tick mutates it.
type Pool struct {
	cfg   config.CoinConfig
	slots [PoolSize]Slot
	timer int
}

// New creates an empty pool.
func New(cfg config.CoinConfig) *Pool {
	p := &Pool{cfg: cfg}
	p.Reset()
	return p
}

// Reset clears every slot and restarts the spawn timer.
func (p *Pool) Reset() {
	p.slots = [PoolSize]Slot{}
	p.timer = p.cfg.SpawnBase
}

// Slots returns a copy of the slot array for snapshotting.
func (p *Pool) Slots() [PoolSize]Slot {
	return p.slots
}

// Tick advances the pool by one frame while the game is active. A coin in
// the player's lane whose depth falls inside the collection window is
// collected and deactivates the same tick; off-screen coins deactivate at
// the threshold. Returns whether any coin was collected this tick.
func (p *Pool) Tick(d rng.Draw, pl player.View, speed int, active bool) (collected bool) {
	if !active {
		return false
	}

	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}

		s.Y += speed

		if s.Lane == pl.Lane && p.inWindow(s.Y) {
			collected = true
			*s = Slot{}
			continue
		}

		if s.Y > p.cfg.DeactivateDepth {
			*s = Slot{}
		}
	}

	p.tickSpawn(d)
	return collected
}

// inWindow tests the asymmetric collection window: slightly more
// tolerance above the player's feet than below.
func (p *Pool) inWindow(y int) bool {
	return y >= p.cfg.FeetDepth-p.cfg.CollectAbove && y <= p.cfg.FeetDepth+p.cfg.CollectBelow
}

func (p *Pool) tickSpawn(d rng.Draw) {
	if p.timer > 0 {
		p.timer--
		return
	}

	idx := p.freeSlot()
	if idx < 0 {
		return
	}

	lane := perspective.CenterLane
	if bits := d.CoinLaneBits(); bits >= 0 && bits < len(laneEncoding) {
		lane = laneEncoding[bits]
	}

	p.slots[idx] = Slot{Active: true, Lane: lane, Y: 0}
	p.timer = p.cfg.SpawnBase + d.CoinIntervalBits()
}

func (p *Pool) freeSlot() int {
	for i := range p.slots {
		if !p.slots[i].Active {
			return i
		}
	}
	return -1
}
