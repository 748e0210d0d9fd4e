package player

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
)

func testController() *Controller {
	return New(config.DefaultRunnerConfig().Player)
}

func TestLatch(t *testing.T) {
	var l Latch

	if l.Consume() {
		t.Error("fresh latch should not be pending")
	}

	l.Raise()
	if !l.Pending() {
		t.Error("Pending() = false after Raise")
	}
	if !l.Consume() {
		t.Error("Consume() = false after Raise")
	}
	if l.Consume() {
		t.Error("Consume() should clear the latch")
	}

	// Multiple raises collapse into one event.
	l.Raise()
	l.Raise()
	if !l.Consume() {
		t.Error("Consume() = false after double Raise")
	}
	if l.Consume() {
		t.Error("double Raise should still be a single event")
	}
}

func TestLaneMovement(t *testing.T) {
	c := testController()

	if c.View().Lane != perspective.CenterLane {
		t.Fatalf("starting lane = %d, expected %d", c.View().Lane, perspective.CenterLane)
	}

	c.RaiseLeft()
	c.Tick(true)
	if c.View().Lane != 0 {
		t.Errorf("lane after left = %d, expected 0", c.View().Lane)
	}

	// Already at the left edge
	c.RaiseLeft()
	c.Tick(true)
	if c.View().Lane != 0 {
		t.Errorf("lane after left at edge = %d, expected 0", c.View().Lane)
	}

	c.RaiseRight()
	c.Tick(true)
	c.RaiseRight()
	c.Tick(true)
	if c.View().Lane != 2 {
		t.Errorf("lane after two rights = %d, expected 2", c.View().Lane)
	}

	c.RaiseRight()
	c.Tick(true)
	if c.View().Lane != 2 {
		t.Errorf("lane after right at edge = %d, expected 2", c.View().Lane)
	}
}

func TestSimultaneousLeftWins(t *testing.T) {
	c := testController()

	c.RaiseLeft()
	c.RaiseRight()
	c.Tick(true)

	if c.View().Lane != 0 {
		t.Errorf("lane = %d, expected 0 (left wins)", c.View().Lane)
	}
}

func TestJumpArc(t *testing.T) {
	c := testController()
	step := config.DefaultRunnerConfig().Player.JumpStep

	c.RaiseJump()
	c.Tick(true)

	v := c.View()
	if !v.Jumping() {
		t.Fatal("not jumping after jump press")
	}
	if v.JumpOffset != step {
		t.Errorf("offset after first tick = %d, expected %d", v.JumpOffset, step)
	}

	// Ascend to the apex.
	for i := 0; i < JumpDuration/2-1; i++ {
		c.Tick(true)
	}
	if got := c.View().JumpOffset; got != c.JumpPeak() {
		t.Errorf("offset at apex = %d, expected %d", got, c.JumpPeak())
	}

	// Descend back to the ground.
	for i := 0; i < JumpDuration/2; i++ {
		c.Tick(true)
	}
	v = c.View()
	if v.JumpOffset != 0 {
		t.Errorf("offset after full arc = %d, expected 0", v.JumpOffset)
	}
	if v.Jumping() {
		t.Error("still jumping after full arc")
	}
}

func TestJumpIgnoredMidAir(t *testing.T) {
	c := testController()

	c.RaiseJump()
	c.Tick(true)
	counter := c.View().JumpCounter

	c.RaiseJump()
	c.Tick(true)
	if c.View().JumpCounter != counter-1 {
		t.Errorf("mid-air jump press should not restart the arc: counter = %d", c.View().JumpCounter)
	}
}

func TestJumpClearThreshold(t *testing.T) {
	c := testController()
	cfg := config.DefaultRunnerConfig().Player
	threshold := c.JumpPeak() * cfg.JumpClearPct / 100

	c.RaiseJump()
	ticks := 0
	for i := 0; i < JumpDuration; i++ {
		c.Tick(true)
		ticks++
		v := c.View()
		want := v.JumpOffset > threshold
		if v.JumpClear != want {
			t.Fatalf("tick %d: JumpClear = %v at offset %d (threshold %d)", ticks, v.JumpClear, v.JumpOffset, threshold)
		}
	}
}

func TestSlideSuppressedWhileJumping(t *testing.T) {
	c := testController()

	c.RaiseJump()
	c.SetSlide(true)
	c.Tick(true)

	if c.View().Sliding {
		t.Error("sliding while airborne")
	}

	// Land, then the held slide takes effect.
	for i := 0; i < JumpDuration-1; i++ {
		c.Tick(true)
	}
	c.Tick(true)
	if !c.View().Sliding {
		t.Error("not sliding after landing with slide held")
	}
	if !c.View().SlideClear {
		t.Error("SlideClear should follow Sliding")
	}
}

func TestJumpBlockedWhileSliding(t *testing.T) {
	c := testController()

	c.SetSlide(true)
	c.Tick(true)
	if !c.View().Sliding {
		t.Fatal("not sliding")
	}

	c.RaiseJump()
	c.Tick(true)
	if c.View().Jumping() {
		t.Error("jump started while sliding")
	}
}

func TestInactiveFreezesStateButKeepsLatches(t *testing.T) {
	c := testController()

	c.RaiseLeft()
	c.Tick(false)
	if c.View().Lane != perspective.CenterLane {
		t.Error("lane changed while inactive")
	}

	// The latched press survives into the first active tick.
	c.Tick(true)
	if c.View().Lane != 0 {
		t.Errorf("lane = %d, expected 0 after latched press", c.View().Lane)
	}
}

func TestOccupancy(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	geo := perspective.NewGeometry(cfg.Video.Width, cfg.Video.Height, cfg.Video.HorizonY, cfg.Video.HUDHeight)
	pc := cfg.Player

	standing := View{Lane: 1}
	feet := geo.Row(pc.Depth) // 560

	tests := []struct {
		name       string
		v          View
		x, y       int
		body, head bool
	}{
		{"body center", standing, 400, feet - 10, true, false},
		{"head gap row", standing, 400, feet - 75, false, false},
		{"head center", standing, 400, feet - 90, false, true},
		{"outside lane", standing, 200, feet - 10, false, false},
		{"below feet", standing, 400, feet + 1, false, false},
		{"sliding shrinks body", View{Lane: 1, Sliding: true}, 400, feet - 50, false, false},
		{"sliding keeps low body", View{Lane: 1, Sliding: true}, 400, feet - 10, true, false},
		{"sliding suppresses head", View{Lane: 1, Sliding: true}, 400, feet - 90, false, false},
		{"jump raises body", View{Lane: 1, JumpOffset: 48, JumpCounter: 12}, 400, feet - 10, false, false},
		{"jump body at offset", View{Lane: 1, JumpOffset: 48, JumpCounter: 12}, 400, feet - 58, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, head := tc.v.Occupancy(tc.x, tc.y, geo, pc)
			if body != tc.body || head != tc.head {
				t.Errorf("Occupancy(%d, %d) = (%v, %v), expected (%v, %v)", tc.x, tc.y, body, head, tc.body, tc.head)
			}
		})
	}
}
