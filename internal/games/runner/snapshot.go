package runner

// Snapshot is a read-only copy of everything a renderer or bot may look at.
type Snapshot struct {
	Tick          uint64
	Time          float64
	State         RunState
	Score         int
	Player        Player
	Phase         JumpPhase
	Obstacles     []Obstacle
	Speed         float64
	SpawnInterval float64
	Spawns        int
	Escalating    bool
}

// Snapshot returns the current state of the run. The snapshot shares no
// memory with the machine.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Tick:          m.clock.Ticks(),
		Time:          m.clock.Now(),
		State:         m.state,
		Score:         m.score,
		Player:        m.player.Player(),
		Phase:         m.player.Phase(),
		Obstacles:     m.field.Obstacles(),
		Speed:         m.difficulty.Speed(),
		SpawnInterval: m.difficulty.SpawnInterval(),
		Spawns:        m.difficulty.Spawns(),
		Escalating:    m.difficulty.IsEnabled(),
	}
}
