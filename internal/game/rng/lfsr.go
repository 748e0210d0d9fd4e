// Package rng implements the 16-bit linear-feedback shift register that
// schedules spawns. It is the only source of randomness in the engine, so
// a run is fully determined by the seed and the input sequence.
package rng

// DefaultSeed is the fixed power-on value of the register. Any nonzero
// seed works; zero is the absorbing state and is silently replaced.
const DefaultSeed uint16 = 0xACE1

// Period is the sequence length before the register repeats.
const Period = 1<<16 - 1

// LFSR is a 16-bit maximal-length Fibonacci LFSR with taps at bits
// 16, 14, 13 and 11 (x^16 + x^14 + x^13 + x^11 + 1).
type LFSR struct {
	reg uint16
}

// New creates a generator seeded with DefaultSeed.
func New() *LFSR {
	return &LFSR{reg: DefaultSeed}
}

// NewSeeded creates a generator with the given seed.
// A zero seed is replaced with DefaultSeed.
func NewSeeded(seed uint16) *LFSR {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &LFSR{reg: seed}
}

// Step advances the register by one shift.
func (l *LFSR) Step() {
	bit := (l.reg ^ (l.reg >> 2) ^ (l.reg >> 3) ^ (l.reg >> 5)) & 1
	l.reg = (l.reg >> 1) | (bit << 15)
}

// Advance steps the register n times. The engine advances many steps per
// frame tick, standing in for the free-running base clock, so that the
// per-frame samples of different bit ranges stay decorrelated.
func (l *LFSR) Advance(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// Value returns the current register contents.
func (l *LFSR) Value() uint16 {
	return l.reg
}

// Sample returns the register as a Draw for field extraction.
func (l *LFSR) Sample() Draw {
	return Draw(l.reg)
}

// Draw is one sampled register value. Distinct bit ranges are assigned to
// distinct purposes so that simultaneous draws do not correlate:
//
//	bits  0-1   obstacle lane
//	bits  2-3   obstacle kind
//	bits  4-9   obstacle spawn interval addend
//	bits 10-13  coin spawn interval addend
//	bits 14-15  coin lane
type Draw uint16

// ObstacleLaneBits returns the 2-bit obstacle lane field.
func (d Draw) ObstacleLaneBits() int {
	return int(d & 0x3)
}

// ObstacleKindBits returns the 2-bit obstacle kind field.
func (d Draw) ObstacleKindBits() int {
	return int((d >> 2) & 0x3)
}

// ObstacleIntervalBits returns the 6-bit spawn interval addend (0-63).
func (d Draw) ObstacleIntervalBits() int {
	return int((d >> 4) & 0x3f)
}

// CoinIntervalBits returns the 4-bit coin interval addend, scaled by 4
// to cover a comparable range (0-60).
func (d Draw) CoinIntervalBits() int {
	return int((d>>10)&0xf) * 4
}

// CoinLaneBits returns the 2-bit coin lane field.
func (d Draw) CoinLaneBits() int {
	return int((d >> 14) & 0x3)
}
