package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default lane runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: LanesConfig{
			Positions: [3]float64{-3, 0, 3},
		},
		Player: PlayerConfig{
			ForwardMultiplier: 1.5,
			HalfHeight:        1.0,
		},
		Jump: JumpConfig{
			Peak:    4.0,
			Ascent:  0.28,
			Descent: 0.32,
		},
		Obstacles: ObstaclesConfig{
			MinSize:        0.8,
			MaxSize:        2.0,
			MinSpeedFactor: 0.5,
			MaxSpeedFactor: 1.5,
			SpawnDistance:  80,
			RemovalMargin:  10,
		},
		Collision: CollisionConfig{
			Lateral: 1.2,
			Depth:   1.2,
		},
		Scoring: ScoringConfig{
			PerObstacle: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:              true,
			InitialSpeed:         8,
			InitialSpawnInterval: 1.2,
			SpawnIntervalFloor:   0.45,
			SpawnIntervalStep:    0.01,
			SpeedStep:            0.05,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
