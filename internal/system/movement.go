// internal/system/movement.go
package system

import (
	"time"

	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/types"
)

// MovementSystem ведёт врагов к цели по прямой, перенацеливая их с фиксированным интервалом
type MovementSystem struct {
	ecs              *entity.ECS
	retargetInterval time.Duration
}

func NewMovementSystem(ecs *entity.ECS, retargetInterval time.Duration) *MovementSystem {
	return &MovementSystem{ecs: ecs, retargetInterval: retargetInterval}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyOrder {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		enemy.RetargetTimer.Advance(deltaTime)
		if enemy.RetargetTimer.Elapsed() >= s.retargetInterval {
			enemy.RetargetTimer.Restart()
			s.Retarget(id)
		}

		pos.X += enemy.Direction.X * enemy.Speed * deltaTime
		pos.Y += enemy.Direction.Y * enemy.Speed * deltaTime
	}
}

// Retarget направляет врага на текущую позицию его цели.
// Если цели нет, направление не меняется; если враг стоит ровно на цели, он останавливается.
func (s *MovementSystem) Retarget(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	target, ok := s.ecs.Positions[enemy.TargetID]
	if !ok {
		return
	}
	enemy.Direction = target.Vec().Sub(pos.Vec()).Normalized()
}
