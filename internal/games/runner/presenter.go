package runner

// Presenter receives world changes so it can draw them.
// Calls happen on the simulation goroutine, carry values only and
// must not call back into the Machine.
type Presenter interface {
	OnPlayerMoved(lane int, depth, height float64)
	OnObstacleSpawned(id ObstacleID, lane int, size, depth float64)
	OnObstacleMoved(id ObstacleID, depth float64)
	OnObstacleRemoved(id ObstacleID)
	OnScoreChanged(score int)
	OnStateChanged(state RunState)
}

// NopPresenter ignores every event. Embed it to implement only some methods.
type NopPresenter struct{}

func (NopPresenter) OnPlayerMoved(int, float64, float64)                {}
func (NopPresenter) OnObstacleSpawned(ObstacleID, int, float64, float64) {}
func (NopPresenter) OnObstacleMoved(ObstacleID, float64)                 {}
func (NopPresenter) OnObstacleRemoved(ObstacleID)                        {}
func (NopPresenter) OnScoreChanged(int)                                  {}
func (NopPresenter) OnStateChanged(RunState)                             {}

var _ Presenter = NopPresenter{}

// Presenters fans every event out to each of ps, in order. Nil entries are skipped.
func Presenters(ps ...Presenter) Presenter {
	out := make(multiPresenter, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type multiPresenter []Presenter

func (m multiPresenter) OnPlayerMoved(lane int, depth, height float64) {
	for _, p := range m {
		p.OnPlayerMoved(lane, depth, height)
	}
}

func (m multiPresenter) OnObstacleSpawned(id ObstacleID, lane int, size, depth float64) {
	for _, p := range m {
		p.OnObstacleSpawned(id, lane, size, depth)
	}
}

func (m multiPresenter) OnObstacleMoved(id ObstacleID, depth float64) {
	for _, p := range m {
		p.OnObstacleMoved(id, depth)
	}
}

func (m multiPresenter) OnObstacleRemoved(id ObstacleID) {
	for _, p := range m {
		p.OnObstacleRemoved(id)
	}
}

func (m multiPresenter) OnScoreChanged(score int) {
	for _, p := range m {
		p.OnScoreChanged(score)
	}
}

func (m multiPresenter) OnStateChanged(state RunState) {
	for _, p := range m {
		p.OnStateChanged(state)
	}
}
