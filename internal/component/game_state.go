package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	PausedState GameState = iota
	RunningState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case PausedState:
		return "paused"
	case RunningState:
		return "running"
	case GameOverState:
		return "gameover"
	}
	return "unknown"
}
