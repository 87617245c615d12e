// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-bloon-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// speedMultipliers соответствуют цветам кнопки: x1, x2, x4
var speedMultipliers = []float64{1, 2, 4}

type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	r, g, bl, a := b.StateColors[b.CurrentState].RGBA()
	clr := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	render.FillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2},
		{b.X, b.Y},
		{b.X - width, b.Y + height/2},
	}, clr)
	render.FillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2},
		{b.X + offset, b.Y},
		{b.X - width + offset, b.Y + height/2},
	}, clr)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, поэтому попадание считаем по кругу
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Multiplier — во сколько раз ускорено время.
func (b *SpeedButton) Multiplier() float64 {
	return speedMultipliers[b.CurrentState%len(speedMultipliers)]
}
