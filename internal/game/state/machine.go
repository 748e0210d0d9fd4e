// Package state owns global progression: lives, score, speed, scroll
// offset, and the Idle/Playing/HitPause/GameOver phase machine. It is the
// sole writer of these fields; everything else reads a per-tick View.
package state

import "github.com/vovakirdan/lane-runner/internal/config"

// Phase is the machine's current state.
type Phase uint8

const (
	Idle Phase = iota
	Playing
	HitPause
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case HitPause:
		return "hit_pause"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// View is the committed state other components read for one tick.
type View struct {
	Phase       Phase
	Lives       int
	Score       uint16
	Speed       int
	Scroll      uint16
	HitCooldown int
	GameActive  bool // Playing or HitPause
	Invincible  bool // hits cannot land: HitPause, or a pending cooldown
}

// Machine owns the progression state. Only Tick and Reset mutate it, and
// Tick runs exactly once per frame-boundary pulse so that a transition and
// its counter mutations commit atomically in the same tick.
type Machine struct {
	cfg config.GameConfig

	phase       Phase
	lives       int
	score       uint16
	speed       int
	scroll      uint16
	hitCooldown int
	speedTimer  int
}

// New creates a machine in the Idle phase.
func New(cfg config.GameConfig) *Machine {
	m := &Machine{cfg: cfg}
	m.Reset()
	return m
}

// Reset is the single synchronous recovery path: everything back to the
// initial Idle configuration, immediately and unconditionally.
func (m *Machine) Reset() {
	m.phase = Idle
	m.resetRun()
}

// resetRun reinitializes the per-run counters.
func (m *Machine) resetRun() {
	m.lives = m.cfg.Lives
	m.score = 0
	m.speed = m.cfg.StartSpeed
	m.scroll = 0
	m.hitCooldown = 0
	m.speedTimer = 0
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// View returns the committed state snapshot for this tick.
func (m *Machine) View() View {
	return View{
		Phase:       m.phase,
		Lives:       m.lives,
		Score:       m.score,
		Speed:       m.speed,
		Scroll:      m.scroll,
		HitCooldown: m.hitCooldown,
		GameActive:  m.gameActive(),
		Invincible:  m.phase == HitPause || m.hitCooldown > 0,
	}
}

func (m *Machine) gameActive() bool {
	return m.phase == Playing || m.phase == HitPause
}

// Tick advances the machine by one frame. hit and collected are the
// combinational signals from the pool managers, computed from this tick's
// pre-mutation state; start is the consumed start/jump press.
func (m *Machine) Tick(hit, collected, start bool) {
	switch m.phase {
	case Idle:
		if start {
			m.phase = Playing
		}

	case Playing:
		// A hit only lands when no cooldown is pending, so a checked
		// obstacle cannot re-trigger during the blink.
		if hit && m.hitCooldown == 0 {
			if m.lives <= 1 {
				m.lives = 0
				m.phase = GameOver
			} else {
				m.lives--
				m.hitCooldown = m.cfg.HitCooldown
				m.phase = HitPause
			}
		}

	case HitPause:
		// The pause rides the cooldown down to its last tick.
		if m.hitCooldown <= 1 {
			m.phase = Playing
		}

	case GameOver:
		if start {
			m.resetRun()
			m.phase = Idle
		}
	}

	if !m.gameActive() {
		return
	}

	// Per-tick progression while Playing or HitPause. The score counter
	// wraps like the original 16-bit register.
	m.score += uint16(m.speed)
	if collected {
		m.score += uint16(m.cfg.CoinBonus)
	}
	m.scroll += uint16(m.speed)

	if m.cfg.SpeedUpEvery > 0 {
		m.speedTimer++
		if m.speedTimer >= m.cfg.SpeedUpEvery {
			m.speedTimer = 0
			if m.speed < m.cfg.MaxSpeed {
				m.speed++
			}
		}
	}

	if m.hitCooldown > 0 {
		m.hitCooldown--
	}
}
