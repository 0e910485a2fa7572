// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 920
	ScreenHeight = 920
	EntitySize   = 64.0 // Сторона квадратного региона сущности
	MaxDeltaTime = 0.06

	SpawnInterval   = 100 // мс
	RetargetTime    = 500 // мс
	EnemyMoveSpeed  = 300.0
	MaxEnemies      = 0 // 0 — без ограничения
	SpawnLogEvery   = 100
	DefaultSeed     = 0
	DefaultTitle    = "Avoid the Enemies"
	DefaultSettings = "config.toml"

	PlayerTextureName = "Entity.Odi"
	EnemyTextureName  = "Entity.Enemy"
	DefaultSprite     = "asset/img/odi.png"

	PauseText    = "Pause"
	GameOverText = "Gameover!"
	TextOffsetX  = 4
	TextOffsetY  = 4
	HUDOffsetX   = 4
	HUDOffsetY   = 24
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	RegionColor     = color.RGBA{255, 255, 0, 128}
	PlayerRegion    = color.RGBA{50, 205, 50, 160}
	StrokeWidth     = 1.0
)
