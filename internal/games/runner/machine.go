// Package runner implements the simulation core of a three-lane endless
// runner: player lanes and jumps, obstacle spawning, collisions, difficulty
// and the run state machine. It does not draw anything; a Presenter is told
// about every change.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Machine is the run state machine. It owns every gameplay component and
// is driven by one Tick per frame from a single goroutine.
type Machine struct {
	cfg        config.RunnerConfig
	state      RunState
	clock      SimClock
	player     *PlayerController
	field      *ObstacleField
	difficulty *config.DifficultyManager
	detector   Detector
	presenter  Presenter
	score      int
	lastHit    ObstacleID // Obstacle that ended the run, 0 if none
}

// NewMachine creates an idle machine. A nil rng uses a fixed seed and a
// nil presenter discards events.
func NewMachine(cfg config.RunnerConfig, rng Rand, p Presenter) (*Machine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("runner: invalid config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if p == nil {
		p = NopPresenter{}
	}

	return &Machine{
		cfg:        cfg,
		state:      StateIdle,
		player:     NewPlayerController(cfg),
		field:      NewObstacleField(cfg.Obstacles, rng),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		detector:   NewDetector(cfg),
		presenter:  p,
	}, nil
}

// Start begins the first run. Only valid from Idle.
func (m *Machine) Start() bool {
	if m.state != StateIdle {
		return false
	}
	m.beginRun()
	return true
}

// Restart begins a fresh run after a game over. Only valid from GameOver.
func (m *Machine) Restart() bool {
	if m.state != StateGameOver {
		return false
	}
	m.beginRun()
	return true
}

// beginRun resets every component and enters Running.
func (m *Machine) beginRun() {
	for _, id := range m.field.Reset() {
		m.presenter.OnObstacleRemoved(id)
	}
	m.difficulty.Reset()
	m.player.Reset()
	m.clock.Reset()
	m.score = 0
	m.lastHit = 0

	p := m.player.Player()
	m.presenter.OnPlayerMoved(p.Lane, p.Depth, p.Height)
	m.presenter.OnScoreChanged(m.score)
	m.setState(StateRunning)
}

// ShiftLane moves the player one lane left (-1) or right (+1).
// Ignored unless Running.
func (m *Machine) ShiftLane(dir int) {
	if m.state != StateRunning {
		return
	}
	if m.player.ShiftLane(dir) {
		p := m.player.Player()
		m.presenter.OnPlayerMoved(p.Lane, p.Depth, p.Height)
	}
}

// Jump starts a jump unless one is in flight. Ignored unless Running.
func (m *Machine) Jump() {
	if m.state != StateRunning {
		return
	}
	m.player.Jump(m.clock.Now())
}

// Tick advances the simulation by dt seconds. It is a no-op unless Running.
func (m *Machine) Tick(dt float64) {
	if m.state != StateRunning {
		return
	}

	dt = m.clock.Advance(dt)
	playerDepth := m.player.Player().Depth

	// Obstacles: spawn, escalate, move, prune
	ev := m.field.Update(dt, playerDepth, m.difficulty)
	for _, o := range ev.Spawned {
		m.presenter.OnObstacleSpawned(o.ID, o.Lane, o.Size, o.Depth)
	}
	for _, id := range ev.Passed {
		m.presenter.OnObstacleRemoved(id)
		m.score += m.cfg.Scoring.PerObstacle
	}
	if len(ev.Passed) > 0 {
		m.presenter.OnScoreChanged(m.score)
	}
	m.field.ForEach(func(o Obstacle) {
		m.presenter.OnObstacleMoved(o.ID, o.Depth)
	})

	// Player: forward motion, then jump arc at the new time
	m.player.Advance(dt, m.difficulty.Speed())
	m.player.Update(m.clock.Now())
	p := m.player.Player()
	m.presenter.OnPlayerMoved(p.Lane, p.Depth, p.Height)

	if o, hit := m.detector.FirstHit(p, m.field.live); hit {
		m.onCollision(o)
	}
}

// onCollision ends the run. Nothing moves again until Restart.
func (m *Machine) onCollision(o Obstacle) {
	m.lastHit = o.ID
	m.setState(StateGameOver)
}

func (m *Machine) setState(s RunState) {
	if m.state == s {
		return
	}
	m.state = s
	m.presenter.OnStateChanged(s)
}

// State returns the current run state.
func (m *Machine) State() RunState {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() int {
	return m.score
}

// Player returns a copy of the player's state.
func (m *Machine) Player() Player {
	return m.player.Player()
}

// JumpPhase returns the player's jump phase.
func (m *Machine) JumpPhase() JumpPhase {
	return m.player.Phase()
}

// Obstacles returns a copy of the live obstacles.
func (m *Machine) Obstacles() []Obstacle {
	return m.field.Obstacles()
}

// Speed returns the current forward speed.
func (m *Machine) Speed() float64 {
	return m.difficulty.Speed()
}

// SpawnInterval returns the current seconds between spawns.
func (m *Machine) SpawnInterval() float64 {
	return m.difficulty.SpawnInterval()
}

// Escalating reports whether speed and spawn interval change on spawns.
func (m *Machine) Escalating() bool {
	return m.difficulty.IsEnabled()
}

// Time returns seconds of simulation in the current run.
func (m *Machine) Time() float64 {
	return m.clock.Now()
}

// LastHit returns the obstacle that ended the last run, if any.
func (m *Machine) LastHit() (ObstacleID, bool) {
	return m.lastHit, m.lastHit != 0
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.RunnerConfig {
	return m.cfg
}
