package coins

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/player"
	"github.com/vovakirdan/lane-runner/internal/game/rng"
)

func testConfig() config.CoinConfig {
	return config.DefaultRunnerConfig().Coins
}

// farDraw yields a long spawn interval so spawns don't interfere with
// manually placed slots.
const farDraw = rng.Draw(0xf << 10)

func TestInactiveFreezes(t *testing.T) {
	p := New(testConfig())
	p.slots[0] = Slot{Active: true, Lane: 1, Y: 100}

	if collected := p.Tick(farDraw, player.View{Lane: 1}, 5, false); collected {
		t.Error("collected while inactive")
	}
	if p.slots[0].Y != 100 {
		t.Errorf("slot moved while inactive: Y = %d", p.slots[0].Y)
	}
}

func TestCollectionWindow(t *testing.T) {
	cfg := testConfig()

	// Window after the per-tick scroll: asymmetric around the feet depth.
	tests := []struct {
		name      string
		startY    int
		collected bool
	}{
		{"top of window", cfg.FeetDepth - cfg.CollectAbove - 1, true},
		{"bottom of window", cfg.FeetDepth + cfg.CollectBelow - 1, true},
		{"above window", cfg.FeetDepth - cfg.CollectAbove - 2, false},
		{"below window", cfg.FeetDepth + cfg.CollectBelow, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(cfg)
			p.slots[0] = Slot{Active: true, Lane: 1, Y: tc.startY}

			collected := p.Tick(farDraw, player.View{Lane: 1}, 1, true)
			if collected != tc.collected {
				t.Errorf("collected = %v, expected %v", collected, tc.collected)
			}
		})
	}
}

func TestCollectionDeactivatesSameTick(t *testing.T) {
	cfg := testConfig()
	p := New(cfg)
	p.slots[0] = Slot{Active: true, Lane: 2, Y: cfg.FeetDepth - 1}

	if collected := p.Tick(farDraw, player.View{Lane: 2}, 1, true); !collected {
		t.Fatal("expected collection at feet depth")
	}
	if p.slots[0].Active {
		t.Error("collected coin still active")
	}
}

func TestWrongLaneNotCollected(t *testing.T) {
	cfg := testConfig()
	p := New(cfg)
	p.slots[0] = Slot{Active: true, Lane: 0, Y: cfg.FeetDepth - 1}

	if collected := p.Tick(farDraw, player.View{Lane: 1}, 1, true); collected {
		t.Error("collected from the wrong lane")
	}
	if !p.slots[0].Active {
		t.Error("missed coin should stay active")
	}
}

func TestDeactivationPastThreshold(t *testing.T) {
	cfg := testConfig()
	p := New(cfg)
	p.slots[3] = Slot{Active: true, Lane: 0, Y: cfg.DeactivateDepth}

	p.Tick(farDraw, player.View{Lane: 1}, 1, true)

	if p.slots[3].Active {
		t.Error("coin still active past deactivation depth")
	}
}

func TestSpawnDecodesDraw(t *testing.T) {
	p := New(testConfig())
	p.timer = 0

	// coin lane bits 2 -> lane 2, coin interval bits 3 -> 12 extra ticks
	d := rng.Draw(0x2<<14 | 0x3<<10)
	p.Tick(d, player.View{Lane: 0}, 0, true)

	s := p.slots[0]
	if !s.Active || s.Lane != 2 || s.Y != 0 {
		t.Errorf("spawned slot = %+v, expected lane 2 at depth 0", s)
	}
	if p.timer != p.cfg.SpawnBase+12 {
		t.Errorf("timer = %d, expected %d", p.timer, p.cfg.SpawnBase+12)
	}
}

func TestSpawnLowestFreeSlot(t *testing.T) {
	p := New(testConfig())
	p.timer = 0
	p.slots[0] = Slot{Active: true, Lane: 0, Y: 50}
	p.slots[1] = Slot{Active: true, Lane: 1, Y: 80}

	p.Tick(farDraw, player.View{Lane: 2}, 0, true)

	if !p.slots[2].Active {
		t.Error("spawn did not use the lowest free slot")
	}
	if p.slots[3].Active {
		t.Error("spawn activated more than one slot")
	}
}
