// internal/state/menu_state.go
package state

import (
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/ui"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран с одной кнопкой
type MenuState struct {
	sm       *StateMachine
	scenario *config.Scenario
	start    *ui.Button
}

func NewMenuState(sm *StateMachine, sc *config.Scenario) *MenuState {
	rect := image.Rect(config.ScreenWidth/2-80, config.ScreenHeight/2, config.ScreenWidth/2+80, config.ScreenHeight/2+40)
	return &MenuState{sm: sm, scenario: sc, start: ui.NewButton(rect, "Start", basicfont.Face7x13)}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(ebiten.CursorPosition())
	if !clicked && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.scenario)
	if err != nil {
		log.Printf("Failed to start %q: %v", m.scenario.Name, err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := m.scenario.Name
	face := basicfont.Face7x13
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-40, config.TextLightColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
