package render

import (
	"image/color"

	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// WorldRenderer рисует сцену целиком: врагов в порядке появления, затем игрока.
type WorldRenderer struct {
	sprites     *SpriteRenderer
	text        *TextRenderer
	colors      WorldColors
	screenW     int
	screenH     int
	ShowRegions bool
}

func NewWorldRenderer(sprites *SpriteRenderer, text *TextRenderer, colors WorldColors, screenW, screenH int) *WorldRenderer {
	return &WorldRenderer{
		sprites: sprites,
		text:    text,
		colors:  colors,
		screenW: screenW,
		screenH: screenH,
	}
}

func (r *WorldRenderer) Clear(screen *ebiten.Image) {
	screen.Fill(r.colors.BackgroundColor)
}

// DrawPrompt выводит надпись в центре сцены.
func (r *WorldRenderer) DrawPrompt(screen *ebiten.Image, s string) {
	center := geom.Vec2{X: float64(r.screenW) / 2, Y: float64(r.screenH) / 2}
	r.text.DrawCentered(screen, s, center, r.colors.TextColor)
}

func (r *WorldRenderer) DrawWorld(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.EnemyOrder {
		r.drawEntity(screen, ecs, id, r.colors.EnemyRegion)
	}
	r.drawEntity(screen, ecs, ecs.PlayerID, r.colors.PlayerRegion)
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, regionColor color.RGBA) {
	pos, ok := ecs.Positions[id]
	if !ok {
		return
	}
	if sprite, ok := ecs.Sprites[id]; ok {
		r.sprites.DrawAt(screen, sprite.Name, pos.Vec(), DarkenColor(regionColor))
	}
	if r.ShowRegions {
		if region, ok := ecs.Region(id); ok {
			DrawRegion(screen, region, regionColor, r.colors.StrokeWidth)
		}
	}
}
