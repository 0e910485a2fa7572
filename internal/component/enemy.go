package component

import (
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/internal/utils"
	"go-avoid-enemies/pkg/geom"
)

// Enemy представляет вражескую сущность, преследующую цель.
type Enemy struct {
	TargetID      types.EntityID  // Сущность, за которой идёт враг (игрок)
	Direction     geom.Vec2       // Единичный вектор с последнего перенацеливания
	Speed         float64         // Единиц в секунду
	RetargetTimer utils.Stopwatch // Время с последнего перенацеливания
}
