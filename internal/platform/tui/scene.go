package tui

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// How far ahead and behind the player the lane markings are drawn.
const (
	laneDrawAhead  = 80.0
	laneDrawBehind = 4.0
	laneDrawStep   = 2.0
)

type sceneObstacle struct {
	lane  int
	size  float64
	depth float64
}

// Scene is the renderer's copy of the world. It only learns about the
// world through Presenter events and never reads the machine.
type Scene struct {
	lanes     config.LanesConfig
	lane      int
	depth     float64
	height    float64
	obstacles map[runner.ObstacleID]sceneObstacle
	score     int
	best      int
	state     runner.RunState
	paused    bool
	demo      bool
	fixed     bool
}

var _ runner.Presenter = (*Scene)(nil)

// NewScene creates an empty scene for the given lane layout.
func NewScene(lanes config.LanesConfig) *Scene {
	return &Scene{
		lanes:     lanes,
		obstacles: make(map[runner.ObstacleID]sceneObstacle),
	}
}

func (s *Scene) OnPlayerMoved(lane int, depth, height float64) {
	s.lane, s.depth, s.height = lane, depth, height
}

func (s *Scene) OnObstacleSpawned(id runner.ObstacleID, lane int, size, depth float64) {
	s.obstacles[id] = sceneObstacle{lane: lane, size: size, depth: depth}
}

func (s *Scene) OnObstacleMoved(id runner.ObstacleID, depth float64) {
	if o, ok := s.obstacles[id]; ok {
		o.depth = depth
		s.obstacles[id] = o
	}
}

func (s *Scene) OnObstacleRemoved(id runner.ObstacleID) {
	delete(s.obstacles, id)
}

func (s *Scene) OnScoreChanged(score int) {
	s.score = score
	s.best = max(s.best, score)
}

func (s *Scene) OnStateChanged(state runner.RunState) {
	s.state = state
}

// SetPaused shows or hides the pause banner.
func (s *Scene) SetPaused(paused bool) {
	s.paused = paused
}

// SetDemo marks the scene as driven by the autopilot.
func (s *Scene) SetDemo(demo bool) {
	s.demo = demo
}

// SetFixed tags the HUD when difficulty does not escalate.
func (s *Scene) SetFixed(fixed bool) {
	s.fixed = fixed
}

// Len returns the number of obstacles the scene knows about.
func (s *Scene) Len() int {
	return len(s.obstacles)
}

// Draw renders the scene onto the screen through the camera.
func (s *Scene) Draw(screen *core.Screen, cam *Camera) {
	screen.Clear()
	cam.Follow(s.depth)

	s.drawLanes(screen, cam)
	s.drawObstacles(screen, cam)
	s.drawPlayer(screen, cam)
	s.drawHUD(screen)
}

// drawLanes plots the lane boundaries as dotted lines.
func (s *Scene) drawLanes(screen *core.Screen, cam *Camera) {
	p := s.lanes.Positions
	half := (p[1] - p[0]) / 2
	edges := []float64{p[0] - half, p[0] + half, p[2] - half, p[2] + half}

	for d := s.depth - laneDrawBehind; d <= s.depth+laneDrawAhead; d += laneDrawStep {
		for i, x := range edges {
			cx, cy, _, ok := cam.Project(World(x, 0, d))
			if !ok {
				continue
			}
			r, c := '.', core.ColorLane
			if i == 0 || i == len(edges)-1 {
				r, c = ':', core.ColorGround
			}
			screen.SetColored(cx, cy, r, c)
		}
	}
}

// drawObstacles paints obstacles far to near so closer boxes cover farther ones.
func (s *Scene) drawObstacles(screen *core.Screen, cam *Camera) {
	obs := make([]sceneObstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		obs = append(obs, o)
	}
	slices.SortFunc(obs, func(a, b sceneObstacle) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		default:
			return a.lane - b.lane
		}
	})

	for _, o := range obs {
		x := runner.LanePosition(s.lanes, o.lane)
		s.drawBox(screen, cam, x, 0, o.size, o.size, o.depth, '█', core.ColorObstacle)
	}
}

func (s *Scene) drawPlayer(screen *core.Screen, cam *Camera) {
	x := runner.LanePosition(s.lanes, s.lane)
	c := core.ColorPlayer
	if s.state == runner.StateGameOver {
		c = core.ColorAlert
	}
	s.drawBox(screen, cam, x, s.height, 1, 2, s.depth, '▓', c)
}

// drawBox fills the screen-space rectangle covering a box of the given
// width and height whose base centre is at (x, base, depth).
// Anything visible is at least one cell.
func (s *Scene) drawBox(screen *core.Screen, cam *Camera, x, base, width, height, depth float64, r rune, c core.Color) {
	bx, by, scale, ok := cam.Project(World(x, base, depth))
	if !ok {
		return
	}
	_, ty, _, ok := cam.Project(World(x, base+height, depth))
	if !ok {
		return
	}

	w := max(int(width*scale+0.5), 1)
	h := max(by-ty, 1)
	screen.FillRect(core.NewRect(bx-w/2, by-h, w, h), r, c)
}

func (s *Scene) drawHUD(screen *core.Screen) {
	screen.DrawText(1, 0, fmt.Sprintf("Score: %d", s.score), core.ColorHUD)
	if s.best > 0 {
		best := fmt.Sprintf("Best: %d", s.best)
		screen.DrawText(screen.Width()-len(best)-1, 0, best, core.ColorDim)
	}
	if s.fixed {
		screen.DrawTextCentered(0, "FIXED", core.ColorDim)
	}

	mid := screen.Height() / 3
	switch {
	case s.state == runner.StateIdle:
		screen.DrawTextCentered(mid, "LANE RUNNER", core.ColorHUD)
		screen.DrawTextCentered(mid+2, "Press ENTER to start", core.ColorDim)
	case s.state == runner.StateGameOver:
		panel := core.NewRect(screen.Width()/2-12, mid-1, 24, 6)
		screen.FillRect(panel, ' ', core.ColorDefault)
		screen.DrawBox(panel, core.ColorAlert)
		screen.DrawTextCentered(mid, "GAME OVER", core.ColorAlert)
		screen.DrawTextCentered(mid+2, fmt.Sprintf("Score: %d", s.score), core.ColorHUD)
		screen.DrawTextCentered(mid+3, "Press R to restart", core.ColorDim)
	case s.paused:
		screen.DrawTextCentered(mid, "PAUSED", core.ColorHUD)
	}

	if s.demo {
		screen.DrawTextCentered(screen.Height()-1, "DEMO", core.ColorDim)
	}
}
