// internal/system/status_effect.go
package system

import "go-bloon-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update уменьшает оставшееся время эффектов и удаляет истекшие.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effects := range s.ecs.StatusEffects {
		kept := effects.Active[:0]
		for _, e := range effects.Active {
			e.Duration -= deltaTime
			if e.Duration > 0 {
				kept = append(kept, e)
			}
		}
		effects.Active = kept
		if len(kept) == 0 {
			delete(s.ecs.StatusEffects, id)
		}
	}
}
