package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func newTestField(rng Rand) (*ObstacleField, *config.DifficultyManager, config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewObstacleField(cfg.Obstacles, rng), config.NewDifficultyManager(cfg.Difficulty), cfg
}

func TestFieldNoSpawnBeforeInterval(t *testing.T) {
	f, diff, _ := newTestField(&scriptedRand{})

	for i := 0; i < 10; i++ {
		ev := f.Update(0.1, 0, diff)
		if len(ev.Spawned) != 0 {
			t.Fatalf("tick %d: unexpected spawn", i)
		}
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", f.Len())
	}
}

func TestFieldSpawnRequiresExceedingInterval(t *testing.T) {
	f, diff, _ := newTestField(&scriptedRand{})

	f.Update(diff.SpawnInterval(), 0, diff)
	if f.Len() != 0 {
		t.Error("timer equal to the interval should not spawn")
	}

	f.Update(0.001, 0, diff)
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 once the interval is exceeded", f.Len())
	}
	if f.SpawnTimer() != 0 {
		t.Errorf("SpawnTimer() = %v, expected reset to 0", f.SpawnTimer())
	}
}

func TestFieldSpawnUsesRandomSource(t *testing.T) {
	rng := &scriptedRand{ints: []int{2}, floats: []float64{0.5, 0.25}}
	f, diff, cfg := newTestField(rng)
	o := cfg.Obstacles

	playerDepth := 12.0
	ev := f.Update(1.5, playerDepth, diff)

	if len(ev.Spawned) != 1 {
		t.Fatalf("expected exactly one spawn, got %d", len(ev.Spawned))
	}
	got := ev.Spawned[0]

	if got.Lane != 1 {
		t.Errorf("Lane = %d, expected 1", got.Lane)
	}
	if want := o.MinSize + 0.5*(o.MaxSize-o.MinSize); got.Size != want {
		t.Errorf("Size = %v, expected %v", got.Size, want)
	}
	if want := o.MinSpeedFactor + 0.25*(o.MaxSpeedFactor-o.MinSpeedFactor); got.SpeedFactor != want {
		t.Errorf("SpeedFactor = %v, expected %v", got.SpeedFactor, want)
	}
	if want := playerDepth + o.SpawnDistance; got.Depth != want {
		t.Errorf("spawn Depth = %v, expected %v", got.Depth, want)
	}

	// The new obstacle also moves this tick, at the escalated speed
	live := f.Obstacles()[0]
	if want := got.Depth - diff.Speed()*1.5*got.SpeedFactor; live.Depth != want {
		t.Errorf("Depth after move = %v, expected %v", live.Depth, want)
	}
}

func TestFieldSpawnLanesCoverAllThree(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 1, 2}}
	f, diff, _ := newTestField(rng)

	for i := 0; i < 3; i++ {
		f.Update(2, 0, diff)
	}

	obs := f.Obstacles()
	if len(obs) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(obs))
	}
	for i, want := range []int{-1, 0, 1} {
		if obs[i].Lane != want {
			t.Errorf("obstacle %d lane = %d, expected %d", i, obs[i].Lane, want)
		}
	}
}

func TestFieldEscalatesOnlyOnSpawn(t *testing.T) {
	f, diff, cfg := newTestField(&scriptedRand{})

	f.Update(0.5, 0, diff)
	if diff.Speed() != cfg.Difficulty.InitialSpeed {
		t.Error("difficulty should not change on a tick without a spawn")
	}

	f.Update(1, 0, diff)
	if diff.Spawns() != 1 {
		t.Errorf("Spawns() = %d, expected 1", diff.Spawns())
	}
	if want := cfg.Difficulty.InitialSpeed + cfg.Difficulty.SpeedStep; diff.Speed() != want {
		t.Errorf("Speed() = %v, expected %v", diff.Speed(), want)
	}
}

func TestFieldPrunesPassedObstacles(t *testing.T) {
	f, diff, cfg := newTestField(&scriptedRand{})
	margin := cfg.Obstacles.RemovalMargin

	f.live = append(f.live,
		Obstacle{ID: 7, Lane: 0, Size: 1, SpeedFactor: 1, Depth: -margin + 0.5},
		Obstacle{ID: 8, Lane: 1, Size: 1, SpeedFactor: 1, Depth: -margin + 2},
	)

	// Speed 8 for 0.1s moves each obstacle 0.8 back
	ev := f.Update(0.1, 0, diff)

	if len(ev.Passed) != 1 || ev.Passed[0] != 7 {
		t.Fatalf("Passed = %v, expected [7]", ev.Passed)
	}
	if f.Len() != 1 || f.Obstacles()[0].ID != 8 {
		t.Errorf("expected only obstacle 8 to remain, got %+v", f.Obstacles())
	}
}

func TestFieldClearAndReset(t *testing.T) {
	f, diff, _ := newTestField(&scriptedRand{})
	f.Update(1.5, 0, diff)
	f.Update(1.5, 0, diff)
	f.Update(0.5, 0, diff)

	if f.SpawnTimer() == 0 {
		t.Fatal("expected a partially filled spawn timer")
	}

	ids := f.Reset()
	if len(ids) != 2 {
		t.Errorf("Reset() returned %d ids, expected 2", len(ids))
	}
	if f.Len() != 0 {
		t.Errorf("Len() after Reset = %d", f.Len())
	}
	if f.SpawnTimer() != 0 {
		t.Errorf("SpawnTimer() after Reset = %v", f.SpawnTimer())
	}

	// IDs keep increasing across resets
	f.Update(1.5, 0, diff)
	if got := f.Obstacles()[0].ID; got != 3 {
		t.Errorf("first ID after reset = %d, expected 3", got)
	}
}

func TestFieldObstaclesIsACopy(t *testing.T) {
	f, diff, _ := newTestField(&scriptedRand{})
	f.Update(1.5, 0, diff)

	obs := f.Obstacles()
	obs[0].Depth = -1000

	if f.Obstacles()[0].Depth == -1000 {
		t.Error("Obstacles() must not alias the live set")
	}
}
