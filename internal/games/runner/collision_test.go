package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestCollidesSameCell(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := Player{Lane: 0, Depth: 0, Height: 0}
	o := Obstacle{Lane: 0, Depth: 0, Size: cfg.Player.HalfHeight + 1}

	if !Collides(p, o, cfg) {
		t.Error("player and obstacle in the same place should collide")
	}

	o.Lane = 1
	if Collides(p, o, cfg) {
		t.Error("obstacle one lane over should not collide")
	}
}

func TestCollidesAxes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	d := NewDetector(cfg)
	depth := cfg.Collision.Depth

	tests := []struct {
		name     string
		p        Player
		o        Obstacle
		expected bool
	}{
		{"just inside depth", Player{}, Obstacle{Size: 1, Depth: depth - 0.01}, true},
		{"at depth threshold", Player{}, Obstacle{Size: 1, Depth: depth}, false},
		{"behind within depth", Player{Depth: 5}, Obstacle{Size: 1, Depth: 5 - depth + 0.01}, true},
		{"far ahead", Player{}, Obstacle{Size: 1, Depth: 30}, false},
		{"feet below top", Player{Height: 0.9}, Obstacle{Size: 1}, true},
		{"feet at top", Player{Height: 1}, Obstacle{Size: 1}, false},
		{"clearing jump", Player{Height: 3}, Obstacle{Size: 2}, false},
		{"left vs right lane", Player{Lane: -1}, Obstacle{Lane: 1, Size: 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Collides(tc.p, tc.o); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFirstHit(t *testing.T) {
	d := NewDetector(config.DefaultRunnerConfig())
	obstacles := []Obstacle{
		{ID: 1, Lane: 1, Size: 1},
		{ID: 2, Lane: 0, Size: 1, Depth: 50},
		{ID: 3, Lane: 0, Size: 1, Depth: 0.5},
	}

	o, hit := d.FirstHit(Player{}, obstacles)
	if !hit || o.ID != 3 {
		t.Errorf("FirstHit() = %d, %v; expected 3, true", o.ID, hit)
	}

	if _, hit := d.FirstHit(Player{}, obstacles[:2]); hit {
		t.Error("FirstHit() should miss when nothing overlaps")
	}
}
