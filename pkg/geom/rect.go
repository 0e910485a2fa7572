package geom

// Rect — выровненный по осям прямоугольник, (X, Y) — левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// NewRect строит квадратный регион [pos, pos+size)
func NewRect(pos Vec2, size float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size, H: size}
}

// Intersects сообщает, перекрываются ли прямоугольники с ненулевой площадью.
// Касание краями пересечением не считается.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
