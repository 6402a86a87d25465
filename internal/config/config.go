// Package config provides YAML-based game configuration loading and
// difficulty management for the lane runner.
package config

// RunnerConfig contains all configuration for the lane runner.
// Values are fixed once a run machine is constructed.
type RunnerConfig struct {
	Lanes      LanesConfig      `yaml:"lanes"`
	Player     PlayerConfig     `yaml:"player"`
	Jump       JumpConfig       `yaml:"jump"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LanesConfig defines the three lateral lane positions, left to right.
type LanesConfig struct {
	Positions [3]float64 `yaml:"positions,flow"`
}

// PlayerConfig defines player motion and body parameters.
type PlayerConfig struct {
	ForwardMultiplier float64 `yaml:"forward_multiplier"` // Player runs at speed * this
	HalfHeight        float64 `yaml:"half_height"`        // Distance from feet to body centre
}

// JumpConfig defines the two-phase jump arc.
type JumpConfig struct {
	Peak    float64 `yaml:"peak"`    // Height reached at the end of the ascent
	Ascent  float64 `yaml:"ascent"`  // Seconds
	Descent float64 `yaml:"descent"` // Seconds
}

// Duration returns the total airtime of one jump in seconds.
func (j JumpConfig) Duration() float64 {
	return j.Ascent + j.Descent
}

// ObstaclesConfig defines spawn ranges and lifetime of obstacles.
type ObstaclesConfig struct {
	MinSize        float64 `yaml:"min_size"`
	MaxSize        float64 `yaml:"max_size"`
	MinSpeedFactor float64 `yaml:"min_speed_factor"`
	MaxSpeedFactor float64 `yaml:"max_speed_factor"`
	SpawnDistance  float64 `yaml:"spawn_distance"` // Spawn this far ahead of the player
	RemovalMargin  float64 `yaml:"removal_margin"` // Removed this far behind the player
}

// CollisionConfig defines the axis-aligned overlap thresholds.
type CollisionConfig struct {
	Lateral float64 `yaml:"lateral"`
	Depth   float64 `yaml:"depth"`
}

// ScoringConfig defines how score is awarded.
type ScoringConfig struct {
	PerObstacle int `yaml:"per_obstacle"`
}

// DifficultyConfig defines the per-spawn difficulty ramp.
type DifficultyConfig struct {
	Enabled              bool    `yaml:"enabled"`
	InitialSpeed         float64 `yaml:"initial_speed"`
	InitialSpawnInterval float64 `yaml:"initial_spawn_interval"`
	SpawnIntervalFloor   float64 `yaml:"spawn_interval_floor"`
	SpawnIntervalStep    float64 `yaml:"spawn_interval_step"` // Subtracted on every spawn
	SpeedStep            float64 `yaml:"speed_step"`          // Added on every spawn
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values
// return "" which means "keep the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
