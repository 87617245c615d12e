// internal/ui/player_health_indicator.go
package ui

import (
	"go-bloon-defense/internal/config"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	livesBarWidth  = 160
	livesBarHeight = 12
)

// LivesIndicator отображает оставшиеся жизни полосой и числом.
type LivesIndicator struct {
	X, Y float32
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует полосу жизней; меньше половины — красная.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face font.Face) {
	if maxLives <= 0 {
		return
	}
	frac := float32(lives) / float32(maxLives)
	frac = max(0, min(1, frac))

	barColor := color.Color(config.LivesColor)
	if frac < 0.5 {
		barColor = config.RunStateColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, livesBarWidth, livesBarHeight, color.Black, false)
	vector.DrawFilledRect(screen, i.X, i.Y, livesBarWidth*frac, livesBarHeight, barColor, false)
	vector.StrokeRect(screen, i.X, i.Y, livesBarWidth, livesBarHeight, 1, color.White, false)

	// Текст над полосой
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, int(i.X)+(livesBarWidth-bounds.Dx())/2, int(i.Y)-config.TextOffsetY, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *LivesIndicator) GetHeight() float32 {
	return livesBarHeight + 20
}
