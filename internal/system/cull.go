// internal/system/cull.go
package system

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/types"
	"math"
)

// CullSystem — последняя фаза тика: убирает шары, дошедшие до конца трека,
// и отработавшие источники урона.
type CullSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	bounds          float64
}

func NewCullSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bounds float64) *CullSystem {
	return &CullSystem{ecs: ecs, eventDispatcher: eventDispatcher, bounds: bounds}
}

// Update возвращает утекшие шары.
func (s *CullSystem) Update() []Removed {
	var leaked []Removed
	for _, id := range s.ecs.BloonIDs() {
		path, ok := s.ecs.Paths[id]
		if !ok || !path.Done() {
			continue
		}
		bloon := s.ecs.Bloons[id]
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BloonLeaked,
			Data: event.LeakData{ID: id, Tier: bloon.Tier, RBE: defs.RBE(bloon.Tier)},
		})
		s.ecs.RemoveEntity(id)
		leaked = append(leaked, Removed{ID: id, Tier: bloon.Tier})
	}

	for _, id := range s.ecs.SourceIDs() {
		if s.expired(id) {
			s.ecs.RemoveEntity(id)
		}
	}
	return leaked
}

func (s *CullSystem) expired(id types.EntityID) bool {
	if s.ecs.DamageSources[id].Spent {
		return true
	}
	proj, ok := s.ecs.Projectiles[id]
	if !ok {
		return false
	}
	if proj.Lifetime <= 0 {
		return true
	}
	pos := s.ecs.Positions[id]
	return pos == nil || math.Abs(pos.X) > s.bounds || math.Abs(pos.Y) > s.bounds
}
