// Package config provides YAML-based configuration loading and difficulty
// presets for the runner engine.
package config

// RunnerConfig contains all tunable parameters for the runner.
// Structural invariants (lane count, pool sizes, jump arc shape) are
// fixed constants in their owning packages and are not configurable.
type RunnerConfig struct {
	Video     VideoConfig    `yaml:"video"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Game      GameConfig     `yaml:"game"`
}

// VideoConfig defines the logical raster the renderer synthesizes.
// The resolution is a parameter, not a hard requirement; defaults match
// the original 800x600 timing.
type VideoConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HorizonY  int `yaml:"horizon_y"`  // Row where the track vanishes
	HUDHeight int `yaml:"hud_height"` // Height of the top HUD strip
}

// PlayerConfig defines player movement and silhouette parameters.
type PlayerConfig struct {
	JumpStep      int `yaml:"jump_step"`       // Vertical pixels per tick of the jump arc
	JumpClearPct  int `yaml:"jump_clear_pct"`  // Percent of peak offset that clears a barrier
	Depth         int `yaml:"depth"`           // Player's fixed depth below the horizon
	BodyHalfWidth int `yaml:"body_half_width"` // Unscaled body half-width at full depth
	BodyHeight    int `yaml:"body_height"`     // Unscaled standing body height
	SlideHeight   int `yaml:"slide_height"`    // Unscaled crouched body height
	HeadHalfWidth int `yaml:"head_half_width"` // Unscaled head half-width
	HeadSize      int `yaml:"head_size"`       // Unscaled head height
	HeadGap       int `yaml:"head_gap"`        // Gap between body top and head
}

// ObstacleConfig defines obstacle pool parameters.
type ObstacleConfig struct {
	SpawnBase       int `yaml:"spawn_base"`       // Base ticks between spawns (random addend comes from the RNG)
	BandCenter      int `yaml:"band_center"`      // Depth of the collision band center (player's feet)
	BandHalfWidth   int `yaml:"band_half_width"`  // Half-width of the collision band
	DeactivateDepth int `yaml:"deactivate_depth"` // Depth past which a slot frees itself
}

// CoinConfig defines coin pool parameters. The collection window is
// asymmetric: more tolerance above the player's feet than below.
type CoinConfig struct {
	SpawnBase       int `yaml:"spawn_base"`
	FeetDepth       int `yaml:"feet_depth"`
	CollectAbove    int `yaml:"collect_above"`
	CollectBelow    int `yaml:"collect_below"`
	DeactivateDepth int `yaml:"deactivate_depth"`
}

// GameConfig defines progression parameters owned by the state machine.
type GameConfig struct {
	Lives        int `yaml:"lives"`          // Starting lives (max 3)
	StartSpeed   int `yaml:"start_speed"`    // Initial scroll speed
	MaxSpeed     int `yaml:"max_speed"`      // Speed cap
	SpeedUpEvery int `yaml:"speed_up_every"` // Active ticks per speed increment; 0 disables the ramp
	HitCooldown  int `yaml:"hit_cooldown"`   // Invincibility ticks after a hit
	CoinBonus    int `yaml:"coin_bonus"`     // Score bonus per collected coin
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyRunnerPreset mutates tunable constants for a difficulty preset.
// Presets only touch parameters the design marks tunable; invariants
// (lane count, pool sizes, jump arc) are untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.SpeedUpEvery = 900
		cfg.Game.HitCooldown = 45
		cfg.Obstacles.SpawnBase = 55
	case DifficultyHard:
		cfg.Game.StartSpeed = 4
		cfg.Game.SpeedUpEvery = 450
		cfg.Game.HitCooldown = 20
		cfg.Obstacles.SpawnBase = 30
	case DifficultyFixed:
		cfg.Game.SpeedUpEvery = 0
	}
}
