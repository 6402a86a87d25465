package runner

// RunState is the phase of a run.
type RunState int

const (
	StateIdle     RunState = iota // Before the first start
	StateRunning                  // Ticks mutate the world
	StateGameOver                 // Frozen until Restart
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
