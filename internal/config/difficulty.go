package config

import "math"

// DifficultyManager tracks forward speed and spawn interval for one run.
// Both only change on spawn events and return to their initial values on Reset.
type DifficultyManager struct {
	cfg           DifficultyConfig
	speed         float64
	spawnInterval float64
	spawns        int
}

// NewDifficultyManager creates a new difficulty manager at its initial values.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the initial speed and spawn interval.
func (d *DifficultyManager) Reset() {
	d.speed = d.cfg.InitialSpeed
	d.spawnInterval = math.Max(d.cfg.SpawnIntervalFloor, d.cfg.InitialSpawnInterval)
	d.spawns = 0
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// OnSpawn escalates difficulty by one step. It must be called once per
// spawn event and never on plain ticks.
func (d *DifficultyManager) OnSpawn() {
	d.spawns++
	if !d.cfg.Enabled {
		return
	}
	d.spawnInterval = math.Max(d.cfg.SpawnIntervalFloor, d.spawnInterval-d.cfg.SpawnIntervalStep)
	d.speed += d.cfg.SpeedStep
}

// Speed returns the current forward speed.
func (d *DifficultyManager) Speed() float64 {
	return d.speed
}

// SpawnInterval returns the current seconds between spawns.
func (d *DifficultyManager) SpawnInterval() float64 {
	return d.spawnInterval
}

// Spawns returns the number of spawn events seen since the last Reset.
func (d *DifficultyManager) Spawns() int {
	return d.spawns
}
