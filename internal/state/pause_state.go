// internal/state/pause_state.go
package state

import (
	"go-avoid-enemies/internal/app"
	"go-avoid-enemies/internal/config"
	"go-avoid-enemies/internal/interfaces"
	"go-avoid-enemies/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — начальная пауза: ждём первого клика, симуляция не идёт
type PauseState struct {
	stateMachine *StateMachine
	game         *app.Game
	input        interfaces.Input
	renderer     *render.WorldRenderer
}

func NewPauseState(sm *StateMachine, game *app.Game, input interfaces.Input, renderer *render.WorldRenderer) *PauseState {
	return &PauseState{
		stateMachine: sm,
		game:         game,
		input:        input,
		renderer:     renderer,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.input.JustClicked() {
		s.game.Start()
		s.stateMachine.SetState(NewPlayState(s.stateMachine, s.game, s.renderer))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.renderer.Clear(screen)
	s.renderer.DrawPrompt(screen, config.PauseText)
}

func (s *PauseState) Exit() {}
