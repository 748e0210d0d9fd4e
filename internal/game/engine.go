// Package game wires the runner engine together: the LFSR, the player
// controller, both pool managers, and the state machine, advanced exactly
// once per frame-boundary tick, plus the snapshot the renderer reads.
//
// Ownership is partitioned: each component owns its own fields and is
// mutated only in its Tick. Cross-component reads go through value views
// captured before any mutation, so this tick's decisions never see this
// tick's not-yet-committed updates.
package game

import (
	"sync"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game/coins"
	"github.com/vovakirdan/lane-runner/internal/game/obstacles"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
	"github.com/vovakirdan/lane-runner/internal/game/player"
	"github.com/vovakirdan/lane-runner/internal/game/render"
	"github.com/vovakirdan/lane-runner/internal/game/rng"
	"github.com/vovakirdan/lane-runner/internal/game/state"
)

// lfsrStepsPerTick stands in for the free-running base clock: the register
// advances this many shifts between frame samples. Odd and coprime with
// the period, so consecutive samples stay decorrelated.
const lfsrStepsPerTick = 613

// Package-level variables for config/difficulty, set by the CLI before
// the engine is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Engine is the frame-synchronous runner simulation. It has no dependency
// on wall-clock time: given the same seed and input frames, two engines
// produce bit-identical state and pixels at every frame index.
type Engine struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	geo     perspective.Geometry

	lfsr      *rng.LFSR
	player    *player.Controller
	obstacles *obstacles.Pool
	coins     *coins.Pool
	fsm       *state.Machine

	start player.Latch // Jump doubles as start outside a run
	frame uint64

	snap render.Snapshot
}

// New creates an uninitialized engine; call Reset before stepping.
func New() *Engine {
	return &Engine{}
}

// ID returns the identifier used for score storage.
func (e *Engine) ID() string {
	return "runner"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Lane Runner"
}

// Reset initializes or restarts the whole simulation: the single global
// synchronous reset. All owned state is reinitialized immediately, with
// no graceful drain.
func (e *Engine) Reset(rt core.RuntimeConfig) {
	e.runtime = rt

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	e.cfg = cfg

	e.geo = perspective.NewGeometry(cfg.Video.Width, cfg.Video.Height, cfg.Video.HorizonY, cfg.Video.HUDHeight)
	e.lfsr = rng.NewSeeded(uint16(rt.Seed))
	e.player = player.New(cfg.Player)
	e.obstacles = obstacles.New(cfg.Obstacles)
	e.coins = coins.New(cfg.Coins)
	e.fsm = state.New(cfg.Game)
	e.start = player.Latch{}
	e.frame = 0

	e.rebuildSnapshot()
}

// Step advances the simulation by one frame-boundary tick.
//
// Input edges raise latches first, then views of every component's
// committed state are captured, then each component ticks against those
// views. Raising before consuming implements the simultaneity rule: a
// press on the consumption tick is still seen (set wins over clear).
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionLeft) {
		e.player.RaiseLeft()
	}
	if in.Has(core.ActionRight) {
		e.player.RaiseRight()
	}
	if in.Has(core.ActionJump) {
		e.player.RaiseJump()
		e.start.Raise()
	}
	e.player.SetSlide(in.Has(core.ActionSlide))

	pv := e.player.View()
	fv := e.fsm.View()

	// The register keeps running regardless of phase, like the hardware
	// counter it models.
	e.lfsr.Advance(lfsrStepsPerTick)
	draw := e.lfsr.Sample()

	hit := e.obstacles.Tick(draw, pv, fv.Speed, fv.GameActive)
	collected := e.coins.Tick(draw, pv, fv.Speed, fv.GameActive)
	e.player.Tick(fv.GameActive)
	e.fsm.Tick(hit, collected, e.start.Consume())

	// Entering a run resets the per-run entities so the new run starts
	// from the pristine configuration.
	if fv.Phase == state.Idle && e.fsm.Phase() == state.Playing {
		e.player.Reset()
		e.obstacles.Reset()
		e.coins.Reset()
	}

	e.frame++
	e.rebuildSnapshot()

	return core.StepResult{State: e.State()}
}

// rebuildSnapshot commits the tick's state for the renderer.
func (e *Engine) rebuildSnapshot() {
	fv := e.fsm.View()
	e.snap = render.Snapshot{
		Geo:        e.geo,
		PlayerCfg:  e.cfg.Player,
		Frame:      e.frame,
		Phase:      fv.Phase,
		GameActive: fv.GameActive,
		Invincible: fv.Invincible,
		Lives:      fv.Lives,
		Score:      fv.Score,
		Speed:      fv.Speed,
		Scroll:     fv.Scroll,
		Player:     e.player.View(),
		Obstacles:  e.obstacles.Slots(),
		Coins:      e.coins.Slots(),
	}
}

// State returns the current platform-facing state.
func (e *Engine) State() core.GameState {
	fv := e.fsm.View()
	return core.GameState{
		Score:    int(fv.Score),
		Lives:    fv.Lives,
		GameOver: fv.Phase == state.GameOver,
		Active:   fv.GameActive,
	}
}

// Snapshot returns the last committed tick's render snapshot.
func (e *Engine) Snapshot() *render.Snapshot {
	return &e.snap
}

// ColorAt synthesizes the color for one coordinate of the current frame.
func (e *Engine) ColorAt(x, y int) core.RGB {
	return render.Pixel(x, y, &e.snap)
}

// Width returns the logical raster width.
func (e *Engine) Width() int {
	return e.geo.Width
}

// Height returns the logical raster height.
func (e *Engine) Height() int {
	return e.geo.Height
}

// RenderFrame fills buf (len Width*Height, row-major) with the current
// frame, splitting rows across workers. Safe because Pixel is pure.
func (e *Engine) RenderFrame(buf []core.RGB) {
	w, h := e.geo.Width, e.geo.Height
	if len(buf) < w*h {
		return
	}

	workers := 4
	rowsPer := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < h; start += rowsPer {
		end := core.Min(start+rowsPer, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					buf[y*w+x] = render.Pixel(x, y, &e.snap)
				}
			}
		}(start, end)
	}
	wg.Wait()
}
