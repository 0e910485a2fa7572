// internal/ui/status_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatusIndicator отображает число врагов и время партии.
type StatusIndicator struct {
	X, Y float32
}

const (
	panelWidth  = 150
	panelHeight = 36
	textPadding = 6
	borderWidth = 1
	// Полоса заполняется за одну минуту партии
	fullBarSeconds = 60.0
	barHeight      = 3
)

var (
	panelColor  = color.RGBA{20, 20, 30, 200}
	barColor    = color.RGBA{70, 100, 120, 220}
	borderColor = color.White
)

// NewStatusIndicator создает новый индикатор.
func NewStatusIndicator(x, y float32) *StatusIndicator {
	return &StatusIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *StatusIndicator) Draw(screen *ebiten.Image, enemies int, elapsed float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, panelWidth, panelHeight, panelColor, true)
	vector.StrokeRect(screen, i.X, i.Y, panelWidth, panelHeight, borderWidth, borderColor, true)

	fillRatio := elapsed / fullBarSeconds
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	if fillWidth := float32(float64(panelWidth-borderWidth*2) * fillRatio); fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+panelHeight-barHeight-borderWidth, fillWidth, barHeight, barColor, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies: %d\nTime: %.1fs", enemies, elapsed), int(i.X)+textPadding, int(i.Y))
}
