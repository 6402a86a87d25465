package tui

import "testing"

func TestCameraCentresTarget(t *testing.T) {
	cam := NewCamera(80, 24)

	for _, depth := range []float64{0, 37.5, 400} {
		cam.Follow(depth)
		x, y, _, ok := cam.Project(World(0, 0, depth))
		if !ok {
			t.Fatalf("depth %v: target not visible", depth)
		}
		if x != 40 || y != 12 {
			t.Errorf("depth %v: target at (%d, %d), expected (40, 12)", depth, x, y)
		}
	}
}

func TestCameraPerspective(t *testing.T) {
	cam := NewCamera(80, 24)

	lx, _, _, _ := cam.Project(World(-3, 0, 10))
	rx, _, _, _ := cam.Project(World(3, 0, 10))
	if lx >= 40 || rx <= 40 {
		t.Errorf("left lane at %d and right lane at %d should straddle the centre", lx, rx)
	}

	_, nearY, nearScale, _ := cam.Project(World(0, 0, 5))
	_, farY, farScale, _ := cam.Project(World(0, 0, 60))
	if farScale >= nearScale {
		t.Errorf("far scale %v should be below near scale %v", farScale, nearScale)
	}
	if farY >= nearY {
		t.Errorf("far ground row %d should be above near ground row %d", farY, nearY)
	}
}

func TestCameraRejectsPointsBehind(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Follow(50)

	if _, _, _, ok := cam.Project(World(0, 0, 20)); ok {
		t.Error("a point behind the camera should not project")
	}
}

func TestCameraResize(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Resize(120, 40)

	x, y, _, ok := cam.Project(World(0, 0, 0))
	if !ok || x != 60 || y != 20 {
		t.Errorf("after resize target at (%d, %d, %v), expected (60, 20, true)", x, y, ok)
	}
}
