package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Detector tests player/obstacle overlap with per-axis distance thresholds.
//
// Vertical convention: an obstacle's vertical extent is its full Size
// (boxes rest on the ground), and the player is measured at its body
// centre, Height + HalfHeight. The player overlaps while its centre is
// below Size + HalfHeight, i.e. while its feet are below the obstacle top.
type Detector struct {
	lanes      config.LanesConfig
	lateral    float64
	depth      float64
	halfHeight float64
}

// NewDetector builds a detector from the run configuration.
func NewDetector(cfg config.RunnerConfig) Detector {
	return Detector{
		lanes:      cfg.Lanes,
		lateral:    cfg.Collision.Lateral,
		depth:      cfg.Collision.Depth,
		halfHeight: cfg.Player.HalfHeight,
	}
}

// Collides reports whether the player overlaps the obstacle on all three axes.
func (d Detector) Collides(p Player, o Obstacle) bool {
	dx := math.Abs(LanePosition(d.lanes, o.Lane) - LanePosition(d.lanes, p.Lane))
	if dx >= d.lateral {
		return false
	}
	dz := math.Abs(o.Depth - p.Depth)
	if dz >= d.depth {
		return false
	}
	return p.Height+d.halfHeight < o.Size+d.halfHeight
}

// FirstHit returns the first obstacle the player overlaps, if any.
func (d Detector) FirstHit(p Player, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if d.Collides(p, o) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Collides reports whether p overlaps o under cfg.
func Collides(p Player, o Obstacle, cfg config.RunnerConfig) bool {
	return NewDetector(cfg).Collides(p, o)
}
