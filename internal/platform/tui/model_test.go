package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game"
)

func testGameModel() GameModel {
	return NewGameModel(game.New(), nil, core.RuntimeConfig{TickRate: 60, Seed: 1}, "normal")
}

func pressKey(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestGameplayKeysFillInputFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"a moves left", runeKey('a'), core.ActionLeft},
		{"right arrow moves right", specialKey(tea.KeyRight), core.ActionRight},
		{"w jumps", runeKey('w'), core.ActionJump},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := pressKey(t, testGameModel(), tc.msg)
			if !m.inputFrame.Has(tc.action) {
				t.Errorf("frame missing %v after key press", tc.action)
			}
		})
	}
}

func TestSlideKeyRefreshesHold(t *testing.T) {
	m, _ := pressKey(t, testGameModel(), runeKey('s'))

	if m.slideTicks != slideHoldTicks {
		t.Errorf("slideTicks = %d, expected %d", m.slideTicks, slideHoldTicks)
	}
	// The slide action reaches the frame at tick time, not on the press.
	if m.inputFrame.Has(core.ActionSlide) {
		t.Error("slide latched directly instead of through the hold counter")
	}
}

func TestPauseKeyToggles(t *testing.T) {
	m, _ := pressKey(t, testGameModel(), runeKey('p'))
	if !m.paused {
		t.Fatal("not paused after p")
	}

	m, _ = pressKey(t, m, runeKey('p'))
	if m.paused {
		t.Error("still paused after second p")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m, _ := pressKey(t, testGameModel(), runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart latched while the run is live")
	}

	m.gameState.GameOver = true
	m, _ = pressKey(t, m, runeKey('r'))
	if !m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart not latched at game over")
	}
}

func TestBackKeyReturnsToMenu(t *testing.T) {
	m, _ := pressKey(t, testGameModel(), specialKey(tea.KeyEsc))
	if m.BackToMenu() {
		t.Error("esc left a live run")
	}

	m, _ = pressKey(t, m, runeKey('p'))
	m, _ = pressKey(t, m, specialKey(tea.KeyEsc))
	if !m.BackToMenu() {
		t.Error("esc from pause did not return to the menu")
	}
}

func TestQuitKey(t *testing.T) {
	m, cmd := pressKey(t, testGameModel(), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q did not mark the model as quitting")
	}
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
}
