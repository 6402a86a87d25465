package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Colors used by the runner scene.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorObstacle
	ColorLane
	ColorGround
	ColorHUD
	ColorAlert
	ColorDim
)
