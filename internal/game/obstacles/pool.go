// Package obstacles owns the fixed pool of obstacle slots: spawning,
// scrolling, exactly-once collision detection, and deactivation.
package obstacles

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
	"github.com/vovakirdan/lane-runner/internal/game/player"
	"github.com/vovakirdan/lane-runner/internal/game/rng"
)

// PoolSize is the fixed slot capacity, matching the original's bounded
// register array. Slot identity is the index; no dynamic allocation.
const PoolSize = 4

// Kind discriminates obstacle behavior and rendering.
type Kind uint8

const (
	KindBarrier Kind = iota // Cleared by jumping
	KindWire                // Cleared by sliding
	KindTrain               // Never avoidable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBarrier:
		return "barrier"
	case KindWire:
		return "wire"
	case KindTrain:
		return "train"
	default:
		return "unknown"
	}
}

// Lane encodings weight the center lane by duplicating it; kind encodings
// weight barriers the same way. Unrecognized values fall back to the
// center lane / barrier defaults.
var (
	laneEncoding = [4]int{0, 1, 2, perspective.CenterLane}
	kindEncoding = [4]Kind{KindBarrier, KindWire, KindTrain, KindBarrier}
)

// Slot is one pooled obstacle. Y is depth below the horizon: 0 at spawn,
// growing toward the player each tick.
type Slot struct {
	Active  bool
	Lane    int
	Kind    Kind
	Y       int
	Checked bool // Set the tick a collision is detected; blocks re-reports
}

// Pool owns the obstacle slots and the spawn timer. Only Tick mutates it.
type Pool struct {
	cfg   config.ObstacleConfig
	slots [PoolSize]Slot
	timer int
}

// New creates an empty pool.
func New(cfg config.ObstacleConfig) *Pool {
	p := &Pool{cfg: cfg}
	p.Reset()
	return p
}

// Reset clears every slot and restarts the spawn timer at its base value.
func (p *Pool) Reset() {
	p.slots = [PoolSize]Slot{}
	p.timer = p.cfg.SpawnBase
}

// Slots returns a copy of the slot array for snapshotting.
func (p *Pool) Slots() [PoolSize]Slot {
	return p.slots
}

// Tick advances the pool by one frame while the game is active. It scrolls
// active slots by speed, runs the collision test against the player's
// committed state from this tick's start, deactivates slots past the
// threshold, and services the spawn timer. The returned hit flag is the
// OR across all slots of a collision detected this tick.
func (p *Pool) Tick(d rng.Draw, pl player.View, speed int, active bool) (hit bool) {
	if !active {
		return false
	}

	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}

		s.Y += speed

		// Collision band test. An unchecked slot stays eligible while
		// in-band, so a later lane change onto it still collides.
		if !s.Checked && p.inBand(s.Y) && s.Lane == pl.Lane {
			if !avoided(s.Kind, pl) {
				s.Checked = true
				hit = true
			}
		}

		// Past the threshold the slot frees itself, checked or not.
		if s.Y > p.cfg.DeactivateDepth {
			*s = Slot{}
		}
	}

	p.tickSpawn(d)
	return hit
}

// inBand reports whether a depth falls in the narrow collision band at
// the player's feet.
func (p *Pool) inBand(y int) bool {
	return y >= p.cfg.BandCenter-p.cfg.BandHalfWidth && y <= p.cfg.BandCenter+p.cfg.BandHalfWidth
}

// avoided applies the kind-specific clearance predicate.
func avoided(k Kind, pl player.View) bool {
	switch k {
	case KindBarrier:
		return pl.JumpClear
	case KindWire:
		return pl.SlideClear
	default:
		// Trains and anything unrecognized are never avoidable.
		return false
	}
}

// tickSpawn decrements the spawn timer and, once expired, activates the
// lowest-indexed free slot. With no free slot the spawn is deferred and
// retried each tick; pool exhaustion is not an error.
func (p *Pool) tickSpawn(d rng.Draw) {
	if p.timer > 0 {
		p.timer--
		return
	}

	idx := p.freeSlot()
	if idx < 0 {
		return
	}

	p.slots[idx] = Slot{
		Active: true,
		Lane:   decodeLane(d.ObstacleLaneBits()),
		Kind:   decodeKind(d.ObstacleKindBits()),
		Y:      0,
	}
	p.timer = p.cfg.SpawnBase + d.ObstacleIntervalBits()
}

// freeSlot returns the lowest-indexed inactive slot, or -1 if full.
func (p *Pool) freeSlot() int {
	for i := range p.slots {
		if !p.slots[i].Active {
			return i
		}
	}
	return -1
}

func decodeLane(bits int) int {
	if bits < 0 || bits >= len(laneEncoding) {
		return perspective.CenterLane
	}
	return laneEncoding[bits]
}

func decodeKind(bits int) Kind {
	if bits < 0 || bits >= len(kindEncoding) {
		return KindBarrier
	}
	return kindEncoding[bits]
}
