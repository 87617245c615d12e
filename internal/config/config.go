// internal/config/config.go
package config

import (
	"go-bloon-defense/internal/defs"
	"image/color"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TickStep     = 1.0 / 60.0 // шаг фиксированного тика симуляции, секунды

	// StaggerOffset — на сколько единиц пути продвигается каждый следующий
	// брат при расщеплении (i-й брат получает StaggerOffset * i).
	StaggerOffset = 25.0

	DefaultSeed      = 1
	CollisionWorkers = 4     // воркеров для параллельного поиска столкновений
	ProjectileBounds = 500.0 // снаряды за пределами квадрата ±bounds удаляются
	StartingLives    = 200
	PopIncome        = 1 // доход за каждое попадание, лопнувшее слой

	// Мир центрирован в (0,0), ось Y направлена вверх
	WorldOriginX = ScreenWidth / 2
	WorldOriginY = ScreenHeight / 2

	ClickCooldown    = 300
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	TextCharWidth = 7
	TextOffsetY   = 4

	SpeedButtonOffsetX = 80   // Отступ слева от края индикатора
	SpeedButtonY       = 30   // Позиция по Y
	SpeedButtonSize    = 18.0 // Размер кнопки

	TrackWidth       = 28.0
	ProjectileRadius = 3.0 // радиус отрисовки, не хитбокс
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	TrackColor       = color.RGBA{194, 178, 128, 255}
	TrackEdgeColor   = color.RGBA{120, 100, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	RunStateColor    = color.RGBA{220, 60, 60, 220}
	PauseStateColor  = color.RGBA{70, 130, 180, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	LivesColor       = color.RGBA{50, 205, 50, 255}
	ProjectileColor  = color.RGBA{255, 255, 255, 255}
	EmitterColor     = color.RGBA{128, 128, 128, 255}
	FortifiedStroke  = color.RGBA{160, 160, 160, 255}
	CamoStroke       = color.RGBA{60, 120, 60, 255}
	StrokeWidth      = 2.0
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)

var tierColors = map[defs.Tier]color.RGBA{
	defs.Red:     {220, 40, 40, 255},
	defs.Blue:    {50, 120, 230, 255},
	defs.Green:   {60, 180, 70, 255},
	defs.Yellow:  {240, 220, 40, 255},
	defs.Pink:    {250, 120, 180, 255},
	defs.Purple:  {140, 60, 200, 255},
	defs.Black:   {30, 30, 30, 255},
	defs.White:   {245, 245, 245, 255},
	defs.Zebra:   {150, 150, 150, 255},
	defs.Lead:    {110, 110, 130, 255},
	defs.Rainbow: {255, 150, 60, 255},
	defs.Ceramic: {160, 90, 40, 255},
	defs.MOAB:    {80, 140, 220, 255},
	defs.BFB:     {200, 50, 50, 255},
	defs.ZOMG:    {40, 200, 60, 255},
	defs.DDT:     {50, 60, 50, 255},
	defs.BAD:     {150, 40, 160, 255},
}

// TierColor — цвет заливки тира; неизвестные тиры пурпурные.
func TierColor(t defs.Tier) color.RGBA {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}
