// internal/entity/ecs.go
package entity

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/types"
	"slices"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Hitboxes      map[types.EntityID]*component.Hitbox
	Bloons        map[types.EntityID]*component.Bloon
	StatusEffects map[types.EntityID]*component.StatusEffects
	DamageSources map[types.EntityID]*component.DamageSource
	Projectiles   map[types.EntityID]*component.Projectile
	Emitters      map[types.EntityID]*component.Emitter
	PlayerState   *component.PlayerStateComponent
	Wave          *component.Wave
	GameState     component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Hitboxes:      make(map[types.EntityID]*component.Hitbox),
		Bloons:        make(map[types.EntityID]*component.Bloon),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		DamageSources: make(map[types.EntityID]*component.DamageSource),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Emitters:      make(map[types.EntityID]*component.Emitter),
		Wave:          nil,
		GameState:     component.IdleState,
	}
}

// NewEntity выдает новый идентификатор. Идентификаторы растут монотонно,
// поэтому порядок по ID совпадает с порядком создания.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Bloons, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.DamageSources, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Emitters, id)
}

// SortedIDs возвращает ключи карты компонентов по возрастанию, чтобы
// системы обходили сущности в детерминированном порядке.
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// BloonIDs — живые шары в порядке создания.
func (ecs *ECS) BloonIDs() []types.EntityID {
	return SortedIDs(ecs.Bloons)
}

// SourceIDs — источники урона в порядке создания.
func (ecs *ECS) SourceIDs() []types.EntityID {
	return SortedIDs(ecs.DamageSources)
}
