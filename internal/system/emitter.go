// internal/system/emitter.go
package system

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/pkg/track"
	"log"
)

// EmitterSystem стреляет пресетами снарядов из неподвижных точек.
type EmitterSystem struct {
	ecs *entity.ECS
}

func NewEmitterSystem(ecs *entity.ECS) *EmitterSystem {
	return &EmitterSystem{ecs: ecs}
}

// Update возвращает число выпущенных снарядов.
func (s *EmitterSystem) Update(deltaTime float64) int {
	fired := 0
	for _, id := range entity.SortedIDs(s.ecs.Emitters) {
		em := s.ecs.Emitters[id]
		pos, ok := s.ecs.Positions[id]
		if !ok || em.Interval <= 0 {
			continue
		}
		def, err := defs.Projectile(em.Preset)
		if err != nil {
			log.Printf("Emitter %d: %v", id, err)
			delete(s.ecs.Emitters, id)
			continue
		}
		em.Cooldown -= deltaTime
		for em.Cooldown <= 0 {
			SpawnProjectile(s.ecs, def, track.Vec2(*pos), em.Angle)
			em.Cooldown += em.Interval
			fired++
		}
	}
	return fired
}
