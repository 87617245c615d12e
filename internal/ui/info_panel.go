// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/internal/utils"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 260
)

// InfoPanel показывает состояние выбранного шара или эмиттера.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
}

// NewInfoPanel создает новую информационную панель.
func NewInfoPanel(font font.Face, titleFont font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains — попадает ли точка экрана в видимую панель.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) > p.currentY
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	// Лопнувший или утекший шар снимает выбор
	if p.IsVisible && p.TargetEntity != 0 && !exists(ecs, p.TargetEntity) {
		p.Hide()
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

func exists(ecs *entity.ECS, id types.EntityID) bool {
	if _, ok := ecs.Bloons[id]; ok {
		return true
	}
	_, ok := ecs.Emitters[id]
	return ok
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}
	p.drawEntityInfo(screen, ecs, panelRect.Min.X+15, panelRect.Min.Y+20)
}

func (p *InfoPanel) drawEntityInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	if _, ok := ecs.Bloons[p.TargetEntity]; ok {
		p.drawBloonInfo(screen, ecs, startX, startY)
		return
	}
	if em, ok := ecs.Emitters[p.TargetEntity]; ok {
		text.Draw(screen, "Emitter "+em.Preset, p.titleFontFace, startX, startY, config.TextLightColor)
		y := startY + lineHeight
		text.Draw(screen, fmt.Sprintf("Interval: %.2fs", em.Interval), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Angle: %.0f deg", utils.Degrees(em.Angle)), p.fontFace, startX+columnSpacing, y, config.TextLightColor)
		return
	}
	text.Draw(screen, "Unknown Entity", p.titleFontFace, startX, startY, config.TextLightColor)
}

func (p *InfoPanel) drawBloonInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	b := ecs.Bloons[p.TargetEntity]
	col1X := startX
	col2X := startX + columnSpacing
	col3X := startX + columnSpacing*2

	vector.DrawFilledCircle(screen, float32(col1X+6), float32(startY-4), 6, config.TierColor(b.Tier), true)
	text.Draw(screen, fmt.Sprintf("%s #%d", b.Tier, p.TargetEntity), p.titleFontFace, col1X+18, startY, config.TextLightColor)

	y := startY + lineHeight
	text.Draw(screen, fmt.Sprintf("Health: %d / %d", b.Health, defs.SpawnHealth(b.Tier, b.Modifiers)), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Modifiers: %s", b.Modifiers), p.fontFace, col2X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("RBE: %d", defs.RBE(b.Tier)), p.fontFace, col3X, y, config.TextLightColor)
	y += lineHeight

	speed := 0.0
	if v, ok := ecs.Velocities[p.TargetEntity]; ok {
		speed = v.Speed * ecs.StatusEffects[p.TargetEntity].SpeedMultiplier()
	}
	text.Draw(screen, fmt.Sprintf("Speed: %.1f", speed), p.fontFace, col1X, y, config.TextLightColor)
	if path, ok := ecs.Paths[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("Distance: %.1f", path.Distance), p.fontFace, col2X, y, config.TextLightColor)
	}
	origin := "split"
	if b.Root {
		origin = "root"
	}
	text.Draw(screen, fmt.Sprintf("Lineage: %s (%s)", b.Lineage, origin), p.fontFace, col3X, y, config.TextLightColor)
	y += lineHeight

	if fx, ok := ecs.StatusEffects[p.TargetEntity]; ok {
		x := col1X
		for _, e := range fx.Active {
			label := fmt.Sprintf("%s %.1fs", e.Kind, e.Duration)
			text.Draw(screen, label, p.fontFace, x, y, config.TextLightColor)
			x += text.BoundString(p.fontFace, label).Dx() + config.TextCharWidth*2
		}
	}
}
