package input

import (
	"go-avoid-enemies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer — ввод мыши или сенсорного экрана.
// Методы читают состояние ebiten и должны вызываться из Update.
type Pointer struct {
	touchIDs  []ebiten.TouchID
	lastTouch geom.Vec2
	touched   bool
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// CursorPosition возвращает позицию активного касания, а без него — позицию мыши.
// После отпускания пальца позиция остаётся там, где было последнее касание.
func (p *Pointer) CursorPosition() geom.Vec2 {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(p.touchIDs[0])
		p.lastTouch = geom.Vec2{X: float64(x), Y: float64(y)}
		p.touched = true
		return p.lastTouch
	}
	if p.touched {
		return p.lastTouch
	}
	x, y := ebiten.CursorPosition()
	return geom.Vec2{X: float64(x), Y: float64(y)}
}

// JustClicked — левая кнопка мыши или новое касание в этом кадре.
func (p *Pointer) JustClicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.touched = false
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
