package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every constraint the config violates.
// The run machine relies on these holding for its whole lifetime.
func Validate(cfg RunnerConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	// Every other check assumes real numbers
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"lanes.positions[0]", cfg.Lanes.Positions[0]},
		{"lanes.positions[1]", cfg.Lanes.Positions[1]},
		{"lanes.positions[2]", cfg.Lanes.Positions[2]},
		{"player.forward_multiplier", cfg.Player.ForwardMultiplier},
		{"player.half_height", cfg.Player.HalfHeight},
		{"jump.peak", cfg.Jump.Peak},
		{"jump.ascent", cfg.Jump.Ascent},
		{"jump.descent", cfg.Jump.Descent},
		{"obstacles.min_size", cfg.Obstacles.MinSize},
		{"obstacles.max_size", cfg.Obstacles.MaxSize},
		{"obstacles.min_speed_factor", cfg.Obstacles.MinSpeedFactor},
		{"obstacles.max_speed_factor", cfg.Obstacles.MaxSpeedFactor},
		{"obstacles.spawn_distance", cfg.Obstacles.SpawnDistance},
		{"obstacles.removal_margin", cfg.Obstacles.RemovalMargin},
		{"collision.lateral", cfg.Collision.Lateral},
		{"collision.depth", cfg.Collision.Depth},
		{"difficulty.initial_speed", cfg.Difficulty.InitialSpeed},
		{"difficulty.initial_spawn_interval", cfg.Difficulty.InitialSpawnInterval},
		{"difficulty.spawn_interval_floor", cfg.Difficulty.SpawnIntervalFloor},
		{"difficulty.spawn_interval_step", cfg.Difficulty.SpawnIntervalStep},
		{"difficulty.speed_step", cfg.Difficulty.SpeedStep},
	} {
		check(!math.IsInf(f.v, 0) && !math.IsNaN(f.v), "%s must be finite, got %v", f.key, f.v)
	}

	p := cfg.Lanes.Positions
	check(p[0] < p[1] && p[1] < p[2], "lanes.positions must be strictly increasing, got %v", p)

	check(cfg.Player.ForwardMultiplier > 0, "player.forward_multiplier must be positive")
	check(cfg.Player.HalfHeight >= 0, "player.half_height must not be negative")

	check(cfg.Jump.Peak > 0, "jump.peak must be positive")
	check(cfg.Jump.Ascent > 0, "jump.ascent must be positive")
	check(cfg.Jump.Descent > 0, "jump.descent must be positive")

	o := cfg.Obstacles
	check(o.MinSize > 0, "obstacles.min_size must be positive")
	check(o.MaxSize >= o.MinSize, "obstacles.max_size (%g) below min_size (%g)", o.MaxSize, o.MinSize)
	check(o.MinSpeedFactor > 0, "obstacles.min_speed_factor must be positive")
	check(o.MaxSpeedFactor >= o.MinSpeedFactor,
		"obstacles.max_speed_factor (%g) below min_speed_factor (%g)", o.MaxSpeedFactor, o.MinSpeedFactor)
	check(o.SpawnDistance > 0, "obstacles.spawn_distance must be positive")
	check(o.RemovalMargin >= 0, "obstacles.removal_margin must not be negative")

	check(cfg.Collision.Lateral > 0, "collision.lateral must be positive")
	check(cfg.Collision.Depth > 0, "collision.depth must be positive")

	check(cfg.Scoring.PerObstacle >= 0, "scoring.per_obstacle must not be negative")

	d := cfg.Difficulty
	check(d.InitialSpeed > 0, "difficulty.initial_speed must be positive")
	check(d.SpawnIntervalFloor > 0, "difficulty.spawn_interval_floor must be positive")
	check(d.InitialSpawnInterval >= d.SpawnIntervalFloor,
		"difficulty.initial_spawn_interval (%g) below spawn_interval_floor (%g)",
		d.InitialSpawnInterval, d.SpawnIntervalFloor)
	check(d.SpawnIntervalStep >= 0, "difficulty.spawn_interval_step must not be negative")
	check(d.SpeedStep >= 0, "difficulty.speed_step must not be negative")

	return errors.Join(errs...)
}
