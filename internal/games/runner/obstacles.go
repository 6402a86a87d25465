package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
)

// ObstacleID identifies an obstacle for the lifetime of a field.
// IDs are never reused, not even across restarts.
type ObstacleID uint64

// Obstacle is a box sitting on the ground in one lane.
type Obstacle struct {
	ID          ObstacleID
	Lane        int     // -1, 0 or 1
	Size        float64 // Edge length; also its full height
	SpeedFactor float64 // Multiplier on the run speed
	Depth       float64 // Position along the forward axis
}

// Rand is the randomness the field draws spawns from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FieldEvents reports what one Update did.
// The slices are reused by the next Update; copy them to keep them.
type FieldEvents struct {
	Spawned []Obstacle
	Passed  []ObstacleID
}

// ObstacleField handles spawning, movement, and removal of obstacles.
type ObstacleField struct {
	live       []Obstacle
	rng        Rand
	cfg        config.ObstaclesConfig
	spawnTimer float64
	nextID     ObstacleID
	events     FieldEvents
}

// NewObstacleField creates an empty field drawing spawns from rng.
func NewObstacleField(cfg config.ObstaclesConfig, rng Rand) *ObstacleField {
	return &ObstacleField{
		live:   make([]Obstacle, 0, 16),
		rng:    rng,
		cfg:    cfg,
		nextID: 1,
	}
}

// Update advances the field by dt seconds.
// It spawns at most one obstacle (escalating diff on that spawn), moves
// every obstacle toward the player and prunes the ones left behind.
func (f *ObstacleField) Update(dt, playerDepth float64, diff *config.DifficultyManager) FieldEvents {
	f.events.Spawned = f.events.Spawned[:0]
	f.events.Passed = f.events.Passed[:0]

	f.spawnTimer += dt
	if f.spawnTimer > diff.SpawnInterval() {
		f.spawnTimer = 0
		o := f.spawn(playerDepth)
		f.events.Spawned = append(f.events.Spawned, o)
		diff.OnSpawn()
	}

	step := diff.Speed() * dt
	behind := playerDepth - f.cfg.RemovalMargin

	kept := f.live[:0]
	for _, o := range f.live {
		o.Depth -= step * o.SpeedFactor
		if o.Depth < behind {
			f.events.Passed = append(f.events.Passed, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	f.live = kept

	return f.events
}

// spawn creates an obstacle ahead of the player.
// Draw order is lane, size, speed factor.
func (f *ObstacleField) spawn(playerDepth float64) Obstacle {
	lane := f.rng.Intn(MaxLane-MinLane+1) + MinLane
	size := f.cfg.MinSize + f.rng.Float64()*(f.cfg.MaxSize-f.cfg.MinSize)
	factor := f.cfg.MinSpeedFactor + f.rng.Float64()*(f.cfg.MaxSpeedFactor-f.cfg.MinSpeedFactor)

	o := Obstacle{
		ID:          f.nextID,
		Lane:        lane,
		Size:        size,
		SpeedFactor: factor,
		Depth:       playerDepth + f.cfg.SpawnDistance,
	}
	f.nextID++
	f.live = append(f.live, o)
	return o
}

// Clear removes every live obstacle and returns their IDs.
func (f *ObstacleField) Clear() []ObstacleID {
	ids := make([]ObstacleID, 0, len(f.live))
	for _, o := range f.live {
		ids = append(ids, o.ID)
	}
	f.live = f.live[:0]
	return ids
}

// Reset clears the field and restarts the spawn timer.
func (f *ObstacleField) Reset() []ObstacleID {
	f.spawnTimer = 0
	return f.Clear()
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.live)
}

// SpawnTimer returns seconds accumulated toward the next spawn.
func (f *ObstacleField) SpawnTimer() float64 {
	return f.spawnTimer
}

// Obstacles returns a copy of the live obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.live))
	copy(out, f.live)
	return out
}

// ForEach calls fn with a copy of every live obstacle.
func (f *ObstacleField) ForEach(fn func(Obstacle)) {
	for _, o := range f.live {
		fn(o)
	}
}
