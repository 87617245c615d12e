// internal/system/render.go
package system

import (
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/pkg/render"
	"go-bloon-defense/pkg/track"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует шары, снаряды и эмиттеры поверх трека
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, selected types.EntityID) {
	// Эмиттеры
	for _, id := range entity.SortedIDs(s.ecs.Emitters) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := render.WorldToScreen(track.Vec2(*pos))
		vector.DrawFilledRect(screen, x-6, y-6, 12, 12, config.EmitterColor, true)
	}

	// Шары в обратном порядке создания, старые поверх новых
	ids := s.ecs.BloonIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		s.drawBloon(screen, ids[i], ids[i] == selected)
	}

	// Снаряды
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := render.WorldToScreen(track.Vec2(*pos))
		proj := s.ecs.Projectiles[id]
		if proj.Kind == defs.MoveStatic {
			if hb, ok := s.ecs.Hitboxes[id]; ok {
				vector.DrawFilledCircle(screen, x, y, float32(hb.Radius), color.RGBA{230, 230, 120, 90}, true)
			}
			continue
		}
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (s *RenderSystem) drawBloon(screen *ebiten.Image, id types.EntityID, selected bool) {
	b := s.ecs.Bloons[id]
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	x, y := render.WorldToScreen(track.Vec2(*pos))
	radius := float32(b.Tier.HitboxRadius()) * 0.6

	fill := config.TierColor(b.Tier)
	if b.Modifiers.Has(defs.ModCamo) {
		fill.A = 170
	}
	if b.Modifiers.Has(defs.ModFortified) {
		vector.DrawFilledCircle(screen, x, y, radius+3, config.FortifiedStroke, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, 1, render.DarkenColor(fill), true)
	if b.Modifiers.Has(defs.ModCamo) {
		vector.StrokeCircle(screen, x, y, radius, float32(config.StrokeWidth), config.CamoStroke, true)
	}
	// Замедленные шары получают голубую обводку
	if fx, ok := s.ecs.StatusEffects[id]; ok && fx.SpeedMultiplier() < 1 {
		vector.StrokeCircle(screen, x, y, radius+1, 1, color.RGBA{120, 200, 255, 255}, true)
	}
	if selected {
		vector.StrokeCircle(screen, x, y, radius+5, float32(config.StrokeWidth), config.IndicatorStroke, true)
	}
}
