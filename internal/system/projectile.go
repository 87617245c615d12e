// internal/system/projectile.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/pkg/track"
	"math"
)

// ProjectileSystem двигает снаряды и отсчитывает их время жизни.
// Урон наносит CollisionSystem через DamageSource той же сущности.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			proj.Lifetime = 0
			continue
		}

		switch proj.Kind {
		case defs.MoveStraight:
			pos.X += proj.Velocity.X * deltaTime
			pos.Y += proj.Velocity.Y * deltaTime
		case defs.MoveStatic:
			// Летит к точке и остается там
			dx := proj.Waypoint.X - pos.X
			dy := proj.Waypoint.Y - pos.Y
			dist := math.Hypot(dx, dy)
			step := proj.Speed * deltaTime
			if dist <= step {
				pos.X, pos.Y = proj.Waypoint.X, proj.Waypoint.Y
			} else {
				pos.X += dx / dist * step
				pos.Y += dy / dist * step
			}
		}
		proj.Lifetime -= deltaTime
	}
}

// SpawnProjectile создает снаряд с источником урона по пресету.
// angle в радианах, 0 — вправо.
func SpawnProjectile(ecs *entity.ECS, def defs.ProjectileDefinition, origin track.Vec2, angle float64) types.EntityID {
	id := ecs.NewEntity()
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	p := component.Position(origin)
	ecs.Positions[id] = &p
	ecs.Hitboxes[id] = &component.Hitbox{Radius: def.Radius}
	proj := &component.Projectile{
		PresetID: def.ID,
		Kind:     def.Movement,
		Speed:    def.Speed,
		Lifetime: def.Lifetime,
	}
	switch def.Movement {
	case defs.MoveStraight:
		proj.Velocity = track.Vec2{X: dirX * def.Speed, Y: dirY * def.Speed}
	case defs.MoveStatic:
		proj.Waypoint = track.Vec2{X: origin.X + dirX*def.Range, Y: origin.Y + dirY*def.Range}
	}
	ecs.Projectiles[id] = proj
	ecs.DamageSources[id] = NewDamageSource(def.Damage, def.Pierce, def.DamageType.CannotPop(), def.CannotTarget, def.Effect)
	return id
}

// NewDamageSource собирает источник урона из минимального набора полей.
func NewDamageSource(damage, pierce int, cannotPop, cannotTarget defs.Modifier, effect *defs.Effect) *component.DamageSource {
	return &component.DamageSource{
		Damage:       damage,
		Pierce:       pierce,
		CannotPop:    cannotPop,
		CannotTarget: cannotTarget,
		Effect:       effect,
		Spent:        pierce <= 0,
	}
}
