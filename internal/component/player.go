// internal/component/player.go
package component

// Player помечает сущность, которая следует за курсором.
// Позиция игрока полностью определяется вводом, своих полей нет.
type Player struct{}
