// internal/state/game_state.go
package state

import (
	"fmt"
	"go-bloon-defense/internal/app"
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/system"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/internal/ui"
	"go-bloon-defense/internal/utils"
	"go-bloon-defense/pkg/render"
	"image/color"
	"log"
	"math"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// maxStepsPerFrame ограничивает число тиков за кадр на ускорении
const maxStepsPerFrame = 8

var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// GameState — состояние игры
type GameState struct {
	sm           *StateMachine
	scenario     *config.Scenario
	sim          *app.Simulation
	renderer     *render.TrackRenderer
	renderSystem *system.RenderSystem
	fontFace     font.Face

	indicator      *ui.StateIndicator
	pauseButton    *ui.PauseButton
	speedButton    *ui.SpeedButton
	waveIndicator  *ui.WaveIndicator
	livesIndicator *ui.LivesIndicator
	infoPanel      *ui.InfoPanel

	presets       []string
	presetIndex   int
	accumulator   float64
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, sc *config.Scenario) (*GameState, error) {
	sim, err := app.NewFromScenario(sc)
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13

	// Создаем и заполняем структуру с цветами для рендерера
	trackColors := &render.TrackColors{
		BackgroundColor: config.BackgroundColor,
		TrackColor:      config.TrackColor,
		EdgeColor:       config.TrackEdgeColor,
		EntryColor:      config.LivesColor,
		ExitColor:       config.RunStateColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		TrackWidth:      config.TrackWidth,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	presets := make([]string, 0, len(defs.ProjectileLibrary))
	for id := range defs.ProjectileLibrary {
		presets = append(presets, id)
	}
	sort.Strings(presets)

	indicatorX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	gs := &GameState{
		sm:             sm,
		scenario:       sc,
		sim:            sim,
		renderer:       render.NewTrackRenderer(sim.Track, face, trackColors, config.ScreenWidth, config.ScreenHeight),
		renderSystem:   system.NewRenderSystem(sim.ECS),
		fontFace:       face,
		indicator:      ui.NewStateIndicator(indicatorX, config.IndicatorOffsetX, config.IndicatorRadius),
		pauseButton:    ui.NewPauseButton(indicatorX-config.SpeedButtonOffsetX*2, config.SpeedButtonY, config.SpeedButtonSize*0.6, config.PauseStateColor, config.RunStateColor),
		speedButton:    ui.NewSpeedButton(indicatorX-config.SpeedButtonOffsetX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, 30),
		livesIndicator: ui.NewLivesIndicator(20, 40),
		infoPanel:      ui.NewInfoPanel(face, face),
		presets:        presets,
		lastClickTime:  time.Now(),
	}
	return gs, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update(g.sim.ECS)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	if g.sim.Defeated() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		// Глобальный удар: 1 урона каждому шару
		n := g.sim.ApplyGlobalEffect(1, nil)
		log.Printf("Global hit queued for %d bloons", n)
	}
	for i, key := range presetKeys {
		if i < len(g.presets) && inpututil.IsKeyJustPressed(key) {
			g.presetIndex = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleGameClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placeEmitter(ebiten.CursorPosition())
	}

	if g.sim.Defeated() {
		return
	}
	// Фиксированный шаг симуляции независимо от частоты кадров
	tick := g.scenario.Tick
	g.accumulator += deltaTime * g.speedButton.Multiplier()
	for steps := 0; g.accumulator >= tick && steps < maxStepsPerFrame; steps++ {
		g.sim.Tick(tick)
		g.accumulator -= tick
	}
	g.accumulator = math.Min(g.accumulator, tick*maxStepsPerFrame)
}

func (g *GameState) clickReady(last time.Time) bool {
	return time.Since(last) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

// handleUIClick обрабатывает клики по UI и сообщает, был ли клик по нему
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		if g.clickReady(g.speedButton.LastToggleTime) {
			g.speedButton.ToggleState()
		}
	case g.pauseButton.IsClicked(x, y):
		if g.clickReady(g.pauseButton.LastToggleTime) {
			g.pause()
		}
	case g.indicator.IsClicked(x, y):
		if g.clickReady(g.indicator.LastClickTime) {
			g.startWave()
		}
	case g.infoPanel.Contains(x, y):
		// Клик по панели ничего не выбирает
	default:
		return false
	}
	return true
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	if !g.sim.StartNextWave() {
		log.Println("Wave already running")
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.Push(NewPauseState(g.sm, g))
}

func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.scenario)
	if err != nil {
		log.Printf("Restart failed: %v", err)
		return
	}
	g.sm.SetState(next)
}

// findEntityAt ищет шар или эмиттер под курсором.
func (g *GameState) findEntityAt(x, y int) (types.EntityID, bool) {
	world := render.ScreenToWorld(x, y)
	ecs := g.sim.ECS
	for _, id := range ecs.BloonIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		r := ecs.Bloons[id].Tier.HitboxRadius()*0.6 + 4
		if math.Hypot(pos.X-world.X, pos.Y-world.Y) < r {
			return id, true
		}
	}
	for id := range ecs.Emitters {
		if pos, ok := ecs.Positions[id]; ok && math.Hypot(pos.X-world.X, pos.Y-world.Y) < 10 {
			return id, true
		}
	}
	return 0, false
}

func (g *GameState) handleGameClick(x, y int) {
	if id, found := g.findEntityAt(x, y); found {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
}

// placeEmitter ставит эмиттер выбранного пресета, нацеленный на ближайшую точку трека.
func (g *GameState) placeEmitter(x, y int) {
	at := render.ScreenToWorld(x, y)
	aim, _ := g.sim.Track.Closest(at)
	angle := utils.Heading(at, aim)
	preset := g.presets[g.presetIndex]
	if _, err := g.sim.AddEmitter(preset, at, angle, 0.5); err != nil {
		log.Printf("Failed to place emitter: %v", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.renderSystem.Draw(screen, g.infoPanel.TargetEntity)

	var stateColor color.Color
	switch g.sim.ECS.GameState {
	case component.IdleState:
		stateColor = config.PauseStateColor
	case component.WaveState:
		stateColor = config.RunStateColor
	default:
		stateColor = config.EmitterColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	wave := g.sim.StateSystem.NextWave() - 1
	if g.sim.ECS.Wave != nil {
		wave = g.sim.ECS.Wave.Number
	}
	g.waveIndicator.Draw(screen, wave, g.fontFace)
	g.livesIndicator.Draw(screen, g.sim.ECS.PlayerState.Lives, g.scenario.Lives, g.fontFace)
	g.infoPanel.Draw(screen, g.sim.ECS)

	if g.sim.Defeated() {
		label := "DEFEAT - press R to restart"
		bounds := text.BoundString(g.fontFace, label)
		text.Draw(screen, label, g.fontFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.RunStateColor)
	}

	// Отладочный текст
	st := g.sim.Stats
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Bloons: %d  Pops: %d  Leaks: %d  Income: %d  Preset: %s (1-%d, right click)",
		len(g.sim.ECS.Bloons), st.Pops, st.Leaks, st.Income, g.presets[g.presetIndex], len(g.presets)), 20, config.ScreenHeight-20)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

var _ State = (*GameState)(nil)
