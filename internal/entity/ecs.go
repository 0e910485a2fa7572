// internal/entity/ecs.go
package entity

import (
	"go-avoid-enemies/internal/component"
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/pkg/geom"
)

type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	EntitySize float64
	Positions  map[types.EntityID]*component.Position
	Sprites    map[types.EntityID]*component.Sprite
	Players    map[types.EntityID]*component.Player
	Enemies    map[types.EntityID]*component.Enemy
	EnemyOrder []types.EntityID // Порядок появления врагов, в нём же они обновляются и рисуются
	PlayerID   types.EntityID
	GameState  component.GameState
}

func NewECS(entitySize float64) *ECS {
	return &ECS{
		NextID:     1,
		EntitySize: entitySize,
		Positions:  make(map[types.EntityID]*component.Position),
		Sprites:    make(map[types.EntityID]*component.Sprite),
		Players:    make(map[types.EntityID]*component.Player),
		Enemies:    make(map[types.EntityID]*component.Enemy),
		GameState:  component.PausedState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Region возвращает ограничивающий прямоугольник сущности: [pos, pos+size).
func (ecs *ECS) Region(id types.EntityID) (geom.Rect, bool) {
	pos, ok := ecs.Positions[id]
	if !ok {
		return geom.Rect{}, false
	}
	return geom.NewRect(pos.Vec(), ecs.EntitySize), true
}

// Interact сообщает, пересекаются ли регионы двух сущностей.
func (ecs *ECS) Interact(a, b types.EntityID) bool {
	ra, ok := ecs.Region(a)
	if !ok {
		return false
	}
	rb, ok := ecs.Region(b)
	if !ok {
		return false
	}
	return ra.Intersects(rb)
}

// AddEnemy регистрирует врага и запоминает порядок появления.
func (ecs *ECS) AddEnemy(id types.EntityID, enemy *component.Enemy) {
	ecs.Enemies[id] = enemy
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
}
