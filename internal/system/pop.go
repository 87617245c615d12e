// internal/system/pop.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/overkill"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/pkg/track"
)

// PopSystem расщепляет шары со здоровьем ≤ 0. Первый потомок занимает
// место родителя (та же сущность, та же точка трека), остальные создаются
// заново и сдвигаются вперед по треку на stagger * индекс.
type PopSystem struct {
	ecs             *entity.ECS
	track           *track.Track
	engine          *overkill.Engine
	eventDispatcher *event.Dispatcher
	stagger         float64
}

func NewPopSystem(ecs *entity.ECS, tr *track.Track, engine *overkill.Engine, eventDispatcher *event.Dispatcher, stagger float64) *PopSystem {
	return &PopSystem{
		ecs:             ecs,
		track:           tr,
		engine:          engine,
		eventDispatcher: eventDispatcher,
		stagger:         stagger,
	}
}

// Update обрабатывает всех погибших за тик и возвращает сущности,
// которые не оставили потомков и были удалены.
func (s *PopSystem) Update() []Removed {
	var dead []types.EntityID
	for _, id := range s.ecs.BloonIDs() {
		if s.ecs.Bloons[id].Dead() {
			dead = append(dead, id)
		}
	}

	var removed []Removed
	for _, id := range dead {
		tier := s.ecs.Bloons[id].Tier
		if !s.pop(id) {
			removed = append(removed, Removed{ID: id, Tier: tier})
		}
	}
	return removed
}

// pop возвращает false, если сущность удалена.
func (s *PopSystem) pop(id types.EntityID) bool {
	bloon := s.ecs.Bloons[id]
	parent := *bloon
	descendants := s.engine.Descendants(parent.Tier, parent.Health)

	income := defs.RBE(parent.Tier) + s.ecs.StatusEffects[id].BonusIncome()
	for _, d := range descendants {
		income -= defs.RBE(d)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BloonPopped,
		Data: event.PopData{
			ID:          id,
			Tier:        parent.Tier,
			Lineage:     parent.Lineage,
			Overkill:    -parent.Health,
			Descendants: len(descendants),
			Income:      income,
		},
	})

	n := len(descendants)
	if n == 0 {
		s.ecs.RemoveEntity(id)
		return false
	}

	parentTier := parent.Tier
	first := descendants[0]
	retier(s.ecs, id, first,
		defs.SpawnModifiers(first, parent.Modifiers, &parentTier),
		lineage.DeriveChild(parent.Lineage, 0, n))

	pos := s.ecs.Positions[id]
	path := s.ecs.Paths[id]
	for i := 1; i < n; i++ {
		tier := descendants[i]
		childPos, progress := s.siblingPlacement(pos, path, i)
		SpawnBloon(s.ecs, tier,
			defs.SpawnModifiers(tier, parent.Modifiers, &parentTier),
			lineage.DeriveChild(parent.Lineage, i, n),
			childPos, progress)
	}
	return true
}

// siblingPlacement сдвигает i-го брата вперед по треку. Если трек
// закончился, брат появляется сразу в терминальном состоянии.
func (s *PopSystem) siblingPlacement(pos *component.Position, path *component.Path, i int) (track.Vec2, track.Progress) {
	if pos == nil || path == nil {
		return s.track.Start(), s.track.StartProgress()
	}
	childPos := track.Vec2(*pos)
	progress := path.Progress
	s.track.Advance(s.stagger*float64(i), &childPos, &progress)
	return childPos, progress
}
