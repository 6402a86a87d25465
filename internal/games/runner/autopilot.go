package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Autopilot plays the runner: it dodges into a free lane when one exists
// and jumps when every lane is blocked.
type Autopilot struct {
	cfg       config.RunnerConfig
	detector  Detector
	lookahead float64 // How far ahead, in depth, obstacles count as threats
}

// NewAutopilot creates an autopilot for machines built with cfg.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{
		cfg:       cfg,
		detector:  NewDetector(cfg),
		lookahead: cfg.Obstacles.SpawnDistance / 4,
	}
}

// Drive looks at the machine and issues at most one lane shift or jump.
func (a *Autopilot) Drive(m *Machine) {
	if m.State() != StateRunning {
		return
	}
	s := m.Snapshot()
	p := s.Player

	threat, ok := a.nearestThreat(s, p.Lane)
	if !ok {
		return
	}

	// Prefer a lane that is free for the whole lookahead window
	best, bestDist := 0, -1.0
	for _, dir := range []int{-1, 1} {
		lane := p.Lane + dir
		if lane < MinLane || lane > MaxLane {
			continue
		}
		dist := a.clearance(s, lane)
		if dist > bestDist {
			best, bestDist = dir, dist
		}
	}
	if bestDist > a.lookahead {
		m.ShiftLane(best)
		return
	}

	if !p.Jumping && a.shouldJump(s, threat) {
		m.Jump()
	}
}

// nearestThreat returns the closest obstacle in lane that the player
// has not yet passed.
func (a *Autopilot) nearestThreat(s Snapshot, lane int) (Obstacle, bool) {
	var nearest Obstacle
	found := false
	for _, o := range s.Obstacles {
		if o.Lane != lane {
			continue
		}
		rel := o.Depth - s.Player.Depth
		if rel <= -a.cfg.Collision.Depth || rel > a.lookahead {
			continue
		}
		if !found || o.Depth < nearest.Depth {
			nearest, found = o, true
		}
	}
	return nearest, found
}

// clearance returns the distance to the nearest obstacle in lane, or +Inf.
// An obstacle already beside the player counts as distance 0.
func (a *Autopilot) clearance(s Snapshot, lane int) float64 {
	dist := math.Inf(1)
	probe := s.Player
	probe.Lane = lane
	for _, o := range s.Obstacles {
		if o.Lane != lane {
			continue
		}
		if a.detector.Collides(probe, o) {
			return 0
		}
		rel := o.Depth - s.Player.Depth
		if rel > -a.cfg.Collision.Depth && rel < dist {
			dist = math.Max(rel, 0)
		}
	}
	return dist
}

// shouldJump reports whether jumping now centres the airborne window,
// where the feet are above the obstacle top, on the obstacle's pass.
func (a *Autopilot) shouldJump(s Snapshot, o Obstacle) bool {
	j := a.cfg.Jump
	frac := math.Min(o.Size/j.Peak, 1)
	rise := frac * j.Ascent
	fall := j.Ascent + (1-frac)*j.Descent

	closing := s.Speed*a.cfg.Player.ForwardMultiplier + s.Speed*o.SpeedFactor
	rel := o.Depth - s.Player.Depth
	return rel <= closing*(rise+fall)/2
}
