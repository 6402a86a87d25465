package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// scriptedRand replays fixed draws. Once a queue is empty Intn returns 0
// and Float64 returns 0.5.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type event struct {
	kind  string
	id    ObstacleID
	lane  int
	value float64
	score int
	state RunState
}

// recorder is a Presenter that keeps every event.
type recorder struct {
	events []event
}

func (r *recorder) OnPlayerMoved(lane int, depth, height float64) {
	r.events = append(r.events, event{kind: "player", lane: lane, value: depth})
}

func (r *recorder) OnObstacleSpawned(id ObstacleID, lane int, size, depth float64) {
	r.events = append(r.events, event{kind: "spawn", id: id, lane: lane, value: depth})
}

func (r *recorder) OnObstacleMoved(id ObstacleID, depth float64) {
	r.events = append(r.events, event{kind: "move", id: id, value: depth})
}

func (r *recorder) OnObstacleRemoved(id ObstacleID) {
	r.events = append(r.events, event{kind: "remove", id: id})
}

func (r *recorder) OnScoreChanged(score int) {
	r.events = append(r.events, event{kind: "score", score: score})
}

func (r *recorder) OnStateChanged(state RunState) {
	r.events = append(r.events, event{kind: "state", state: state})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, e := range r.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

func newTestMachine(t *testing.T, rng Rand) (*Machine, *recorder) {
	t.Helper()
	rec := &recorder{}
	m, err := NewMachine(config.DefaultRunnerConfig(), rng, rec)
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	return m, rec
}
