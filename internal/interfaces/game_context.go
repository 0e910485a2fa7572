// internal/interfaces/game_context.go
package interfaces

import "go-avoid-enemies/pkg/geom"

// Input — то, что симуляции нужно от устройства ввода.
type Input interface {
	// CursorPosition — текущая позиция указателя в координатах сцены.
	CursorPosition() geom.Vec2
	// JustClicked — основная кнопка нажата в этом кадре.
	JustClicked() bool
}
