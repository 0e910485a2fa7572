package app

import (
	"log"

	"go-avoid-enemies/internal/config"
	"go-avoid-enemies/internal/event"
)

// logListener пишет в лог ключевые события партии
type logListener struct {
	game *Game
}

func (l *logListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		log.Println("Game started")
	case event.EnemySpawned:
		if n := len(l.game.ECS.EnemyOrder); n%config.SpawnLogEvery == 0 {
			log.Printf("%d enemies on the field", n)
		}
	case event.PlayerCaught:
		log.Printf("Gameover! Survived %.2fs against %d enemies", l.game.ECS.GameTime, len(l.game.ECS.EnemyOrder))
	}
}
