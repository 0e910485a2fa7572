package render

import (
	"image/color"

	"go-avoid-enemies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextRenderer рисует строки заданным шрифтом
type TextRenderer struct {
	face font.Face
}

// NewTextRenderer создаёт рендерер текста; nil означает встроенный basicfont.
func NewTextRenderer(face font.Face) *TextRenderer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &TextRenderer{face: face}
}

// DrawCentered рисует строку так, чтобы её рамка была по центру в точке center.
func (t *TextRenderer) DrawCentered(screen *ebiten.Image, s string, center geom.Vec2, clr color.Color) {
	b := text.BoundString(t.face, s)
	x := int(center.X) - (b.Min.X+b.Max.X)/2
	y := int(center.Y) - (b.Min.Y+b.Max.Y)/2
	text.Draw(screen, s, t.face, x, y, clr)
}
