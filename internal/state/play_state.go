package state

import (
	"go-avoid-enemies/internal/app"
	"go-avoid-enemies/internal/config"
	"go-avoid-enemies/internal/ui"
	"go-avoid-enemies/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ State = (*PlayState)(nil)

// PlayState — идущая партия. После gameover состояние не меняется:
// сообщение выводится каждый кадр, а симуляция продолжается (если не включён halt_on_gameover).
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.WorldRenderer
	status   *ui.StatusIndicator // nil, если show_hud выключен
}

func NewPlayState(sm *StateMachine, game *app.Game, renderer *render.WorldRenderer) *PlayState {
	p := &PlayState{sm: sm, game: game, renderer: renderer}
	if game.Settings.ShowHUD {
		p.status = ui.NewStatusIndicator(config.HUDOffsetX, config.HUDOffsetY)
	}
	return p
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	p.game.Update(deltaTime)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.renderer.Clear(screen)
	p.renderer.DrawWorld(screen, p.game.ECS)
	if p.status != nil {
		p.status.Draw(screen, len(p.game.Enemies()), p.game.ECS.GameTime)
	}
	if p.game.IsGameOver() {
		ebitenutil.DebugPrintAt(screen, config.GameOverText, config.TextOffsetX, config.TextOffsetY)
	}
}

func (p *PlayState) Exit() {}
