package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera follows the player from behind and above, and projects world
// points onto the terminal grid.
//
// World axes: x is lateral, y is up, and z = -depth, so running forward
// moves toward negative z.
type Camera struct {
	fovY   float64 // Vertical field of view, degrees
	near   float64
	far    float64
	back   float64 // Distance behind the player
	up     float64 // Eye height
	width  int
	height int
	proj   mgl64.Mat4
	view   mgl64.Mat4
	vp     mgl64.Mat4
}

// NewCamera creates a camera for a width x height cell grid.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		fovY: 60,
		near: 0.1,
		far:  200,
		back: 12,
		up:   4,
	}
	c.Resize(width, height)
	c.Follow(0)
	return c
}

// Resize rebuilds the projection for a new grid size.
// Terminal cells are about twice as tall as they are wide.
func (c *Camera) Resize(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
	aspect := float64(c.width) / float64(2*c.height)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.fovY), aspect, c.near, c.far)
	c.vp = c.proj.Mul4(c.view)
}

// Follow places the camera behind the player at depth.
func (c *Camera) Follow(depth float64) {
	eye := mgl64.Vec3{0, c.up, -depth + c.back}
	target := mgl64.Vec3{0, 0, -depth}
	c.view = mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
	c.vp = c.proj.Mul4(c.view)
}

// World converts a lateral position, height and depth to world space.
func World(x, height, depth float64) mgl64.Vec3 {
	return mgl64.Vec3{x, height, -depth}
}

// Project maps a world point to a cell. scale is the number of columns one
// world unit spans at that distance. ok is false for points behind the
// near plane.
func (c *Camera) Project(p mgl64.Vec3) (x, y int, scale float64, ok bool) {
	clip := c.vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= c.near {
		return 0, 0, 0, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	x = int(math.Round((ndcX + 1) / 2 * float64(c.width)))
	y = int(math.Round((1 - ndcY) / 2 * float64(c.height)))
	scale = c.proj.At(0, 0) / w * float64(c.width) / 2
	return x, y, scale, true
}
