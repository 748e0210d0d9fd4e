package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// slideHoldTicks is how many simulation ticks a slide key press counts as
// held. Terminals deliver no key-release events, so the hold level is
// approximated from key-repeat: each repeat refreshes the countdown.
const slideHoldTicks = 8

// GameModel is the Bubble Tea model for a runner session.
type GameModel struct {
	engine     *game.Engine
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	slideTicks int
	termW      int
	termH      int
	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model around the engine.
func NewGameModel(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig, difficulty string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		engine:     engine,
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.engine.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Bindings live in the key mapper;
// this only decides what each action means in the play screen.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.paused {
			m.backToMenu = true
		}
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionSlide:
		m.slideTicks = slideHoldTicks
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks. While paused the loop keeps
// running but no tick reaches the engine, so the simulation freezes
// without the engine knowing.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	// Full restart reseeds the run
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.engine.Reset(m.config)
		m.gameState = m.engine.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.slideTicks > 0 {
		m.inputFrame.Set(core.ActionSlide)
		m.slideTicks--
	}

	result := m.engine.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.engine.ID(), m.gameState.Score, m.difficulty, m.config.Seed)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the full-resolution frame as a binary PPM file.
func (m *GameModel) saveScreenshot() {
	w, h := m.engine.Width(), m.engine.Height()
	buf := make([]core.RGB, w*h)
	m.engine.RenderFrame(buf)

	dir := filepath.Join(os.Getenv("HOME"), ".lane-runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.ppm", m.engine.ID(), timestamp))

	out := make([]byte, 0, w*h*3+32)
	out = append(out, []byte(fmt.Sprintf("P6\n%d %d\n255\n", w, h))...)
	for _, c := range buf {
		out = append(out, c.R, c.G, c.B)
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, out, 0o600)
}

// View renders the current frame to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	return RenderView(m.engine, m.termW, m.termH)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a fresh game model.
func Run(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewGameModel(engine, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
