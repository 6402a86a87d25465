package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed; 0 means "pick one from the clock"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Validate checks the values the platform cannot run without.
func (c RuntimeConfig) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("tick rate must be in (0, 240], got %d", c.TickRate)
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenW, c.ScreenH)
	}
	return nil
}
