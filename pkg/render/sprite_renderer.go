package render

import (
	"image"
	"image/color"
	"log"

	"go-avoid-enemies/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSource отдаёт декодированные изображения по имени текстуры.
type ImageSource interface {
	Lookup(name string) (image.Image, bool)
}

// SpriteRenderer рисует текстуры из реестра, приводя их к квадрату size×size.
// GPU-изображения создаются при первом обращении и кэшируются.
type SpriteRenderer struct {
	source  ImageSource
	size    float64
	cache   map[string]*ebiten.Image
	missing map[string]bool
}

func NewSpriteRenderer(source ImageSource, size float64) *SpriteRenderer {
	return &SpriteRenderer{
		source:  source,
		size:    size,
		cache:   make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

func (r *SpriteRenderer) image(name string) *ebiten.Image {
	if img, ok := r.cache[name]; ok {
		return img
	}
	if r.missing[name] {
		return nil
	}
	src, ok := r.source.Lookup(name)
	if !ok {
		log.Printf("WARNING: texture %s is not loaded, drawing placeholder", name)
		r.missing[name] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.cache[name] = img
	return img
}

// DrawAt рисует текстуру с центром в точке center.
func (r *SpriteRenderer) DrawAt(screen *ebiten.Image, name string, center geom.Vec2, fallback color.Color) {
	half := r.size / 2
	img := r.image(name)
	if img == nil {
		vector.DrawFilledRect(screen, float32(center.X-half), float32(center.Y-half), float32(r.size), float32(r.size), fallback, true)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.size/float64(b.Dx()), r.size/float64(b.Dy()))
	op.GeoM.Translate(center.X-half, center.Y-half)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawRegion обводит регион столкновений.
func DrawRegion(screen *ebiten.Image, region geom.Rect, clr color.Color, strokeWidth float32) {
	vector.StrokeRect(screen, float32(region.X), float32(region.Y), float32(region.W), float32(region.H), strokeWidth, clr, true)
}
