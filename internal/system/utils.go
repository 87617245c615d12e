// internal/system/utils.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/pkg/track"
)

// Removed — шар, удаленный в этом тике.
type Removed struct {
	ID   types.EntityID
	Tier defs.Tier
}

// SpawnBloon создает шар тира tier в заданной точке трека. Модификаторы
// должны быть уже посчитаны через defs.SpawnModifiers.
func SpawnBloon(ecs *entity.ECS, tier defs.Tier, mods defs.Modifier, id lineage.ID, pos track.Vec2, progress track.Progress) types.EntityID {
	eid := ecs.NewEntity()
	p := component.Position(pos)
	ecs.Positions[eid] = &p
	ecs.Paths[eid] = &component.Path{Progress: progress}
	ecs.Velocities[eid] = &component.Velocity{Speed: tier.BaseSpeed()}
	ecs.Hitboxes[eid] = &component.Hitbox{Radius: tier.HitboxRadius()}
	ecs.Bloons[eid] = &component.Bloon{
		Tier:      tier,
		Health:    defs.SpawnHealth(tier, mods),
		Modifiers: mods,
		Lineage:   id,
	}
	return eid
}

// retier превращает существующий шар в потомка на месте: позиция и прогресс
// по треку не меняются, эффекты сбрасываются.
func retier(ecs *entity.ECS, eid types.EntityID, tier defs.Tier, mods defs.Modifier, id lineage.ID) {
	b := ecs.Bloons[eid]
	b.Tier = tier
	b.Modifiers = mods
	b.Health = defs.SpawnHealth(tier, mods)
	b.Lineage = id
	b.Root = false
	if vel, ok := ecs.Velocities[eid]; ok {
		vel.Speed = tier.BaseSpeed()
	}
	if hb, ok := ecs.Hitboxes[eid]; ok {
		hb.Radius = tier.HitboxRadius()
	}
	delete(ecs.StatusEffects, eid)
}
