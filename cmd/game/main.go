// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-avoid-enemies/internal/app"
	"go-avoid-enemies/internal/assets"
	"go-avoid-enemies/internal/config"
	"go-avoid-enemies/internal/input"
	"go-avoid-enemies/internal/state"
	"go-avoid-enemies/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var configPath = flag.String("config", config.DefaultSettings, "path to settings file (TOML)")

type AppGame struct {
	stateMachine   *state.StateMachine
	settings       config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.ScreenWidth, a.settings.ScreenHeight
}

func main() {
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Settings: %+v", settings)
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	registry := assets.NewRegistry()
	registry.Register(config.PlayerTextureName, settings.PlayerSprite)
	registry.Register(config.EnemyTextureName, settings.EnemySprite)
	if err := registry.Load(); err != nil {
		log.Fatal(err)
	}

	pointer := input.NewPointer()
	game := app.NewGame(settings, pointer)

	world := render.NewWorldRenderer(
		render.NewSpriteRenderer(registry, settings.EntitySize),
		render.NewTextRenderer(nil),
		render.WorldColors{
			BackgroundColor: config.BackgroundColor,
			TextColor:       config.TextLightColor,
			EnemyRegion:     config.RegionColor,
			PlayerRegion:    config.PlayerRegion,
			StrokeWidth:     float32(config.StrokeWidth),
		},
		settings.ScreenWidth, settings.ScreenHeight,
	)
	world.ShowRegions = settings.ShowRegions

	sm := state.NewStateMachine()
	sm.SetState(state.NewPauseState(sm, game, pointer, world))

	appGame := &AppGame{
		stateMachine:   sm,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
