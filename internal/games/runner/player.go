package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
)

// Lane bounds. Lane indexes map to config.LanesConfig.Positions[lane+1].
const (
	MinLane = -1
	MaxLane = 1
)

// Player is a value snapshot of the player's state.
type Player struct {
	Lane    int     // -1, 0 or 1
	Depth   float64 // Forward progress
	Height  float64 // Feet above the ground, 0 when not jumping
	Jumping bool
}

// JumpPhase is the stage of the jump arc.
type JumpPhase int

const (
	PhaseNone JumpPhase = iota
	PhaseAscending
	PhaseDescending
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseAscending:
		return "ascending"
	case PhaseDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// PlayerController owns the player's lane, depth and jump arc.
// It never touches score or obstacles.
type PlayerController struct {
	player     Player
	phase      JumpPhase
	phaseStart float64 // Simulation time the current phase began
	lanes      config.LanesConfig
	jump       config.JumpConfig
	forward    float64
}

// NewPlayerController creates a player in the centre lane on the ground.
func NewPlayerController(cfg config.RunnerConfig) *PlayerController {
	return &PlayerController{
		lanes:   cfg.Lanes,
		jump:    cfg.Jump,
		forward: cfg.Player.ForwardMultiplier,
	}
}

// Reset puts the player back in the centre lane, on the ground, at depth 0.
func (pc *PlayerController) Reset() {
	pc.player = Player{}
	pc.phase = PhaseNone
	pc.phaseStart = 0
}

// Player returns a copy of the player's state.
func (pc *PlayerController) Player() Player {
	return pc.player
}

// Phase returns the current jump phase.
func (pc *PlayerController) Phase() JumpPhase {
	return pc.phase
}

// LaneX returns the lateral position of the player's lane.
func (pc *PlayerController) LaneX() float64 {
	return LanePosition(pc.lanes, pc.player.Lane)
}

// ShiftLane moves one lane left (-1) or right (+1), saturating at the edges.
// Returns true if the lane changed.
func (pc *PlayerController) ShiftLane(dir int) bool {
	if !invariant(dir == -1 || dir == 1, "lane shift must be -1 or +1, got %d", dir) {
		return false
	}
	next := pc.player.Lane + dir
	if next < MinLane || next > MaxLane {
		return false
	}
	pc.player.Lane = next
	return true
}

// Jump starts a jump arc at simulation time now.
// Returns false, and changes nothing, if a jump is already in flight.
func (pc *PlayerController) Jump(now float64) bool {
	if pc.phase != PhaseNone {
		return false
	}
	pc.phase = PhaseAscending
	pc.phaseStart = now
	pc.player.Jumping = true
	pc.player.Height = 0
	return true
}

// Update samples the jump arc at simulation time now.
// Height depends only on now and the jump start, never on how often
// Update was called in between.
func (pc *PlayerController) Update(now float64) {
	switch pc.phase {
	case PhaseNone:
		return

	case PhaseAscending:
		t := pc.elapsed(now)
		if t < pc.jump.Ascent {
			pc.player.Height = pc.jump.Peak * (t / pc.jump.Ascent)
			return
		}
		// The descent starts exactly when the ascent ended, not at this sample.
		pc.phase = PhaseDescending
		pc.phaseStart += pc.jump.Ascent
		fallthrough

	case PhaseDescending:
		t := pc.elapsed(now)
		if t < pc.jump.Descent {
			pc.player.Height = pc.jump.Peak - pc.jump.Peak*(t/pc.jump.Descent)
			return
		}
		pc.land()
	}
}

// Advance moves the player forward for dt seconds at the given speed.
func (pc *PlayerController) Advance(dt, speed float64) {
	pc.player.Depth += speed * dt * pc.forward
}

func (pc *PlayerController) elapsed(now float64) float64 {
	t := now - pc.phaseStart
	if t < 0 {
		return 0
	}
	return t
}

func (pc *PlayerController) land() {
	pc.player.Height = 0
	pc.player.Jumping = false
	pc.phase = PhaseNone
}

// LanePosition maps a lane index to its lateral position.
// Out-of-range lanes are a contract violation and clamp to the nearest edge.
func LanePosition(lanes config.LanesConfig, lane int) float64 {
	if !invariant(lane >= MinLane && lane <= MaxLane, "lane %d out of range", lane) {
		lane = max(MinLane, min(MaxLane, lane))
	}
	return lanes.Positions[lane-MinLane]
}
