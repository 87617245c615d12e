// internal/component/projectile.go
package component

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/pkg/track"
)

// Projectile представляет летящий снаряд. Урон несет DamageSource той же сущности.
type Projectile struct {
	PresetID string
	Kind     defs.MovementKind
	Velocity track.Vec2 // для MoveStraight, единиц в секунду
	Waypoint track.Vec2 // для MoveStatic
	Speed    float64    // для MoveStatic
	Lifetime float64    // Оставшееся время жизни, секунды
}
