package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Video: VideoConfig{
			Width:     800,
			Height:    600,
			HorizonY:  200,
			HUDHeight: 40,
		},
		Player: PlayerConfig{
			JumpStep:      4,
			JumpClearPct:  60,
			Depth:         360,
			BodyHalfWidth: 28,
			BodyHeight:    80,
			SlideHeight:   40,
			HeadHalfWidth: 16,
			HeadSize:      24,
			HeadGap:       4,
		},
		Obstacles: ObstacleConfig{
			SpawnBase:       40,
			BandCenter:      360,
			BandHalfWidth:   12,
			DeactivateDepth: 420,
		},
		Coins: CoinConfig{
			SpawnBase:       30,
			FeetDepth:       360,
			CollectAbove:    38,
			CollectBelow:    18,
			DeactivateDepth: 420,
		},
		Game: GameConfig{
			Lives:        3,
			StartSpeed:   3,
			MaxSpeed:     8,
			SpeedUpEvery: 600,
			HitCooldown:  30,
			CoinBonus:    50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, for exporting a
// starting point the user can edit.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
