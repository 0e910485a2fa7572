// internal/system/player_system.go
package system

import (
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/interfaces"
)

// PlayerSystem переносит игрока в позицию курсора. Ограничений по краям сцены нет.
type PlayerSystem struct {
	ecs   *entity.ECS
	input interfaces.Input
}

func NewPlayerSystem(ecs *entity.ECS, input interfaces.Input) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: input}
}

func (s *PlayerSystem) Update() {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	pos.Set(s.input.CursorPosition())
}
