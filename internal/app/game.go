// internal/app/game.go
package app

import (
	"log"

	"go-avoid-enemies/internal/component"
	"go-avoid-enemies/internal/config"
	"go-avoid-enemies/internal/entity"
	"go-avoid-enemies/internal/event"
	"go-avoid-enemies/internal/interfaces"
	"go-avoid-enemies/internal/system"
	"go-avoid-enemies/internal/types"
	"go-avoid-enemies/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	Settings        config.Settings
	ECS             *entity.ECS
	PlayerSystem    *system.PlayerSystem
	MovementSystem  *system.MovementSystem
	SpawnSystem     *system.SpawnSystem
	CollisionSystem *system.CollisionSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
}

// NewGame initializes a new game instance. The player starts at the current cursor position.
func NewGame(settings config.Settings, input interfaces.Input) *Game {
	if input == nil {
		panic("input cannot be nil")
	}

	ecs := entity.NewECS(settings.EntitySize)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		Settings:        settings,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, input)
	g.MovementSystem = system.NewMovementSystem(ecs, settings.RetargetInterval())
	g.SpawnSystem = system.NewSpawnSystem(ecs, rng, eventDispatcher, g.MovementSystem, system.SpawnConfig{
		Interval:     settings.SpawnInterval(),
		ScreenWidth:  settings.ScreenWidth,
		ScreenHeight: settings.ScreenHeight,
		EnemySpeed:   settings.EnemySpeed,
		MaxEnemies:   settings.MaxEnemies,
		Sprite:       config.EnemyTextureName,
	})
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	eventDispatcher.Subscribe(&logListener{game: g}, event.GameStarted, event.EnemySpawned, event.PlayerCaught)

	g.createPlayerEntity(input)
	log.Printf("New game: %dx%d, seed %d", settings.ScreenWidth, settings.ScreenHeight, rng.Seed())
	return g
}

func (g *Game) createPlayerEntity(input interfaces.Input) {
	id := g.ECS.NewEntity()
	pos := input.CursorPosition()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Sprites[id] = &component.Sprite{Name: config.PlayerTextureName}
	g.ECS.Players[id] = &component.Player{}
	g.ECS.PlayerID = id
}

// Start leaves the paused state and resumes the spawn timer.
func (g *Game) Start() {
	if g.StateSystem.Start() {
		g.SpawnSystem.Start()
	}
}

// Update advances the simulation by deltaTime seconds.
// While paused nothing moves and the spawn timer is held.
func (g *Game) Update(deltaTime float64) {
	switch g.ECS.GameState {
	case component.PausedState:
		return
	case component.GameOverState:
		if g.Settings.HaltOnGameOver {
			return
		}
	}

	g.ECS.GameTime += deltaTime
	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.PlayerSystem.Update()
}

func (g *Game) Phase() component.GameState {
	return g.StateSystem.Current()
}

func (g *Game) IsGameOver() bool {
	return g.Phase() == component.GameOverState
}

// Enemies returns enemy IDs in spawn order.
func (g *Game) Enemies() []types.EntityID {
	return g.ECS.EnemyOrder
}

func (g *Game) PlayerID() types.EntityID {
	return g.ECS.PlayerID
}
