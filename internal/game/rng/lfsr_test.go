package rng

import "testing"

func TestStepKnownValue(t *testing.T) {
	l := New()
	if l.Value() != DefaultSeed {
		t.Fatalf("Value() = %#x, expected %#x", l.Value(), DefaultSeed)
	}

	// From 0xACE1 the feedback bit is 0, so one step is a plain shift.
	l.Step()
	if l.Value() != 0x5670 {
		t.Errorf("Value() after one step = %#x, expected 0x5670", l.Value())
	}
}

func TestNeverZero(t *testing.T) {
	l := New()
	for i := 0; i < Period; i++ {
		l.Step()
		if l.Value() == 0 {
			t.Fatalf("register reached zero after %d steps", i+1)
		}
	}
}

func TestFullPeriod(t *testing.T) {
	l := New()
	steps := 0
	for {
		l.Step()
		steps++
		if l.Value() == DefaultSeed {
			break
		}
		if steps > Period {
			t.Fatalf("register did not return to seed within %d steps", Period)
		}
	}

	if steps != Period {
		t.Errorf("period = %d, expected %d", steps, Period)
	}
}

func TestZeroSeedReplaced(t *testing.T) {
	l := NewSeeded(0)
	if l.Value() != DefaultSeed {
		t.Errorf("NewSeeded(0).Value() = %#x, expected %#x", l.Value(), DefaultSeed)
	}
}

func TestAdvance(t *testing.T) {
	a := New()
	b := New()

	a.Advance(100)
	for i := 0; i < 100; i++ {
		b.Step()
	}

	if a.Value() != b.Value() {
		t.Errorf("Advance(100) = %#x, expected %#x", a.Value(), b.Value())
	}
}

func TestDrawFields(t *testing.T) {
	tests := []struct {
		name         string
		draw         Draw
		lane         int
		kind         int
		interval     int
		coinInterval int
		coinLane     int
	}{
		{"all zeros", Draw(0), 0, 0, 0, 0, 0},
		{"all ones", Draw(0xFFFF), 3, 3, 63, 60, 3},
		{"default seed", Draw(0xACE1), 1, 0, 14, 44, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.draw.ObstacleLaneBits(); got != tc.lane {
				t.Errorf("ObstacleLaneBits() = %d, expected %d", got, tc.lane)
			}
			if got := tc.draw.ObstacleKindBits(); got != tc.kind {
				t.Errorf("ObstacleKindBits() = %d, expected %d", got, tc.kind)
			}
			if got := tc.draw.ObstacleIntervalBits(); got != tc.interval {
				t.Errorf("ObstacleIntervalBits() = %d, expected %d", got, tc.interval)
			}
			if got := tc.draw.CoinIntervalBits(); got != tc.coinInterval {
				t.Errorf("CoinIntervalBits() = %d, expected %d", got, tc.coinInterval)
			}
			if got := tc.draw.CoinLaneBits(); got != tc.coinLane {
				t.Errorf("CoinLaneBits() = %d, expected %d", got, tc.coinLane)
			}
		})
	}
}

func TestSampleMatchesValue(t *testing.T) {
	l := NewSeeded(0x1234)
	l.Advance(17)
	if uint16(l.Sample()) != l.Value() {
		t.Errorf("Sample() = %#x, expected %#x", uint16(l.Sample()), l.Value())
	}
}
