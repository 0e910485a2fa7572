package system

import (
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/event"
)

// CollisionSystem проверяет пересечение каждого врага с игроком
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update возвращает число врагов, касающихся игрока в этом кадре.
func (s *CollisionSystem) Update() int {
	contacts := 0
	for _, id := range s.ecs.EnemyOrder {
		if s.ecs.Interact(id, s.ecs.PlayerID) {
			contacts++
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyContact, Data: id})
		}
	}
	return contacts
}
