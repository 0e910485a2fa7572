// component/movement.go
package component

import "go-avoid-enemies/pkg/geom"

// Position — компонент позиции (левый верхний угол региона)
type Position struct {
	X, Y float64
}

func (p *Position) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}
