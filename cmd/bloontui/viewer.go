// cmd/bloontui/viewer.go
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-bloon-defense/internal/app"
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/pkg/track"
)

const margin = 40.0

var speeds = []float64{1, 2, 4}

type viewer struct {
	screen tcell.Screen
	sim    *app.Simulation
	sc     *config.Scenario

	paused      bool
	speed       int
	accumulator float64

	// мировые границы, которые растягиваются на весь терминал
	minX, maxX, minY, maxY float64
}

func newViewer(screen tcell.Screen, sim *app.Simulation, sc *config.Scenario) *viewer {
	v := &viewer{
		screen: screen,
		sim:    sim,
		sc:     sc,
		minX:   math.Inf(1),
		maxX:   math.Inf(-1),
		minY:   math.Inf(1),
		maxY:   math.Inf(-1),
	}
	points := append([]track.Vec2{}, sim.Track.Nodes()...)
	for _, e := range sc.Emitters {
		points = append(points, e.Position())
	}
	for _, p := range points {
		v.minX = math.Min(v.minX, p.X-margin)
		v.maxX = math.Max(v.maxX, p.X+margin)
		v.minY = math.Min(v.minY, p.Y-margin)
		v.maxY = math.Max(v.maxY, p.Y+margin)
	}
	return v
}

func (v *viewer) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := math.Min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			v.step(dt)
			v.draw()
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.sim.StartNextWave()
		case 'p':
			v.paused = !v.paused
		case '+', '=':
			v.speed = min(v.speed+1, len(speeds)-1)
		case '-':
			v.speed = max(v.speed-1, 0)
		case 'x':
			v.sim.ApplyGlobalEffect(1, nil)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) step(dt float64) {
	if v.paused || v.sim.Defeated() {
		return
	}
	tick := v.sc.Tick
	v.accumulator += dt * speeds[v.speed]
	for steps := 0; v.accumulator >= tick && steps < 8; steps++ {
		v.sim.Tick(tick)
		v.accumulator -= tick
	}
	v.accumulator = math.Min(v.accumulator, tick*8)
}

// cell переводит мировые координаты в клетку терминала; строка 0 занята HUD.
func (v *viewer) cell(p track.Vec2) (int, int) {
	w, h := v.screen.Size()
	x := (p.X - v.minX) / (v.maxX - v.minX) * float64(w-1)
	y := (v.maxY - p.Y) / (v.maxY - v.minY) * float64(h-2)
	return int(math.Round(x)), int(math.Round(y)) + 1
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (v *viewer) draw() {
	v.screen.Clear()
	ecs := v.sim.ECS

	trackStyle := tcell.StyleDefault.Foreground(rgb(config.TrackColor))
	for d := 0.0; d <= v.sim.Track.Length(); d += 4 {
		pos, _ := v.sim.Track.PositionAt(d)
		x, y := v.cell(pos)
		v.screen.SetContent(x, y, '·', nil, trackStyle)
	}

	emitterStyle := tcell.StyleDefault.Foreground(rgb(config.EmitterColor))
	for id := range ecs.Emitters {
		if pos, ok := ecs.Positions[id]; ok {
			x, y := v.cell(track.Vec2(*pos))
			v.screen.SetContent(x, y, '#', nil, emitterStyle)
		}
	}
	for id := range ecs.Projectiles {
		if pos, ok := ecs.Positions[id]; ok {
			x, y := v.cell(track.Vec2(*pos))
			v.screen.SetContent(x, y, '*', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}

	for _, id := range ecs.BloonIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		b := ecs.Bloons[id]
		glyph := 'o'
		if b.Tier.Category() != defs.CategoryNormal {
			glyph = 'O'
		}
		style := tcell.StyleDefault.Foreground(rgb(config.TierColor(b.Tier)))
		if b.Modifiers.Has(defs.ModCamo) {
			style = style.Dim(true)
		}
		if b.Modifiers.Has(defs.ModFortified) {
			style = style.Bold(true)
		}
		x, y := v.cell(track.Vec2(*pos))
		v.screen.SetContent(x, y, glyph, nil, style)
	}

	v.drawHUD()
	v.screen.Show()
}

func (v *viewer) drawHUD() {
	st := v.sim.Stats
	wave := v.sim.StateSystem.NextWave() - 1
	status := "idle (space: next wave)"
	switch {
	case v.sim.Defeated():
		status = "DEFEAT"
	case v.paused:
		status = "paused"
	case v.sim.ECS.Wave != nil:
		status = "wave running"
	}
	line := fmt.Sprintf(" %s | wave %d | lives %d | bloons %d | pops %d | leaks %d | x%.0f | %s ",
		v.sc.Name, wave, v.sim.ECS.PlayerState.Lives, len(v.sim.ECS.Bloons), st.Pops, st.Leaks, speeds[v.speed], status)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range line {
		v.screen.SetContent(i, 0, r, nil, style)
	}
}
