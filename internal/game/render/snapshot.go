package render

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/game/coins"
	"github.com/vovakirdan/lane-runner/internal/game/obstacles"
	"github.com/vovakirdan/lane-runner/internal/game/perspective"
	"github.com/vovakirdan/lane-runner/internal/game/player"
	"github.com/vovakirdan/lane-runner/internal/game/state"
)

// Snapshot is the consistent, immutable view of one committed tick that
// the renderer reads. The engine rebuilds it after every tick; Pixel never
// mutates it, so coordinates may be evaluated in any order or in parallel.
type Snapshot struct {
	Geo       perspective.Geometry
	PlayerCfg config.PlayerConfig

	Frame      uint64 // Free-running frame counter (drives the blink effect)
	Phase      state.Phase
	GameActive bool
	Invincible bool
	Lives      int
	Score      uint16
	Speed      int
	Scroll     uint16

	Player    player.View
	Obstacles [obstacles.PoolSize]obstacles.Slot
	Coins     [coins.PoolSize]coins.Slot
}
