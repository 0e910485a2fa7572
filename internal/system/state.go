package system

import (
	"go-avoid-enemies/internal/component"
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/event"
)

// StateSystem ведёт переходы Paused -> Running -> GameOver.
// GameOver конечен: из него нет переходов.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ss, event.EnemyContact)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyContact {
		s.SwitchToGameOver()
	}
}

// Start снимает паузу. Возвращает false, если игра уже не на паузе.
func (s *StateSystem) Start() bool {
	if s.ecs.GameState != component.PausedState {
		return false
	}
	s.ecs.GameState = component.RunningState
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
	return true
}

func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.GameState == component.GameOverState {
		return
	}
	s.ecs.GameState = component.GameOverState
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerCaught, Data: s.ecs.GameTime})
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
