package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

func newTestScene() *Scene {
	return NewScene(config.DefaultRunnerConfig().Lanes)
}

func countColor(s *core.Screen, c core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == c {
				n++
			}
		}
	}
	return n
}

func TestSceneTracksObstacles(t *testing.T) {
	sc := newTestScene()

	sc.OnObstacleSpawned(1, 0, 1.5, 80)
	sc.OnObstacleSpawned(2, 1, 1, 70)
	sc.OnObstacleMoved(1, 60)
	sc.OnObstacleMoved(99, 10)
	sc.OnObstacleRemoved(2)

	if sc.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", sc.Len())
	}
	if got := sc.obstacles[1].depth; got != 60 {
		t.Errorf("obstacle depth = %v, expected 60", got)
	}
}

func TestSceneKeepsBestScore(t *testing.T) {
	sc := newTestScene()

	sc.OnScoreChanged(30)
	sc.OnScoreChanged(0)

	if sc.score != 0 || sc.best != 30 {
		t.Errorf("score = %d, best = %d; expected 0 and 30", sc.score, sc.best)
	}
}

func TestSceneDrawsWorld(t *testing.T) {
	sc := newTestScene()
	screen := core.NewScreen(80, 24)
	cam := NewCamera(80, 24)

	sc.OnStateChanged(runner.StateRunning)
	sc.OnPlayerMoved(0, 0, 0)
	sc.OnObstacleSpawned(1, 0, 1.5, 20)
	sc.OnScoreChanged(40)
	sc.Draw(screen, cam)

	if countColor(screen, core.ColorObstacle) == 0 {
		t.Error("obstacle not drawn")
	}
	if countColor(screen, core.ColorPlayer) == 0 {
		t.Error("player not drawn")
	}
	if countColor(screen, core.ColorLane) == 0 {
		t.Error("lanes not drawn")
	}
	if !strings.Contains(strings.Split(screen.String(), "\n")[0], "Score: 40") {
		t.Errorf("HUD row = %q", strings.Split(screen.String(), "\n")[0])
	}
}

func TestSceneBanners(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Scene)
		expected string
	}{
		{"idle", func(*Scene) {}, "Press ENTER to start"},
		{"game over", func(s *Scene) { s.OnStateChanged(runner.StateGameOver) }, "GAME OVER"},
		{"paused", func(s *Scene) {
			s.OnStateChanged(runner.StateRunning)
			s.SetPaused(true)
		}, "PAUSED"},
		{"fixed difficulty", func(s *Scene) {
			s.OnStateChanged(runner.StateRunning)
			s.SetFixed(true)
		}, "FIXED"},
		{"game over panel", func(s *Scene) { s.OnStateChanged(runner.StateGameOver) }, "┌"},
		{"demo", func(s *Scene) {
			s.OnStateChanged(runner.StateRunning)
			s.SetDemo(true)
		}, "DEMO"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := newTestScene()
			tc.setup(sc)
			screen := core.NewScreen(80, 24)
			sc.Draw(screen, NewCamera(80, 24))

			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen does not show %q", tc.expected)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "hi", core.ColorHUD)
	screen.DrawText(0, 1, "there", core.ColorAlert)

	out := RenderScreen(screen)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
