// internal/utils/math.go
package utils

import (
	"math"

	"go-bloon-defense/pkg/track"
)

// Heading — угол направления из from в to, радианы в [-π, π].
func Heading(from, to track.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Degrees переводит радианы в градусы в диапазоне [-180, 180].
func Degrees(rad float64) float64 {
	return NormalizeAngle(rad) * 180 / math.Pi
}
