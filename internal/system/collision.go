// internal/system/collision.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/types"
	"math"

	"golang.org/x/sync/errgroup"
)

// target — снимок шара на момент поиска столкновений. Шары в этой фазе не
// меняются, поэтому воркеры читают снимок без блокировок.
type target struct {
	id      types.EntityID
	x, y    float64
	radius  float64
	mods    defs.Modifier
	lineage lineage.ID
}

type shooter struct {
	id     types.EntityID
	x, y   float64
	radius float64
	src    *component.DamageSource
}

// CollisionSystem ищет новые попадания источников урона по шарам и ставит
// урон в очередь. Скан параллелится по источникам: каждый воркер меняет
// только список попаданий и пробивание своих источников.
type CollisionSystem struct {
	ecs             *entity.ECS
	queue           *DamageQueue
	eventDispatcher *event.Dispatcher
	workers         int
}

func NewCollisionSystem(ecs *entity.ECS, queue *DamageQueue, eventDispatcher *event.Dispatcher, workers int) *CollisionSystem {
	if workers < 1 {
		workers = 1
	}
	return &CollisionSystem{
		ecs:             ecs,
		queue:           queue,
		eventDispatcher: eventDispatcher,
		workers:         workers,
	}
}

// Update возвращает число засчитанных попаданий.
func (s *CollisionSystem) Update() int {
	targets := s.snapshotTargets()
	shooters := s.activeShooters()
	if len(targets) == 0 || len(shooters) == 0 {
		return 0
	}

	// Буфер на каждый источник, потом сливаем в порядке источников:
	// порядок урона не зависит от расписания горутин.
	found := make([][]DamageEvent, len(shooters))
	workers := min(s.workers, len(shooters))

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < len(shooters); i += workers {
				found[i] = scan(shooters[i], targets)
			}
			return nil
		})
	}
	_ = g.Wait() // воркеры не возвращают ошибок

	hits := 0
	for i, events := range found {
		s.queue.Push(events...)
		hits += len(events)
		if sh := shooters[i]; sh.src.Spent {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.SourceSpent,
				Data: event.SourceData{ID: sh.id, Hits: sh.src.Hits},
			})
		}
	}
	return hits
}

func (s *CollisionSystem) snapshotTargets() []target {
	ids := s.ecs.BloonIDs()
	targets := make([]target, 0, len(ids))
	for _, id := range ids {
		pos, hasPos := s.ecs.Positions[id]
		hb, hasHitbox := s.ecs.Hitboxes[id]
		path := s.ecs.Paths[id]
		if !hasPos || !hasHitbox || (path != nil && path.Done()) {
			continue
		}
		b := s.ecs.Bloons[id]
		targets = append(targets, target{
			id: id, x: pos.X, y: pos.Y, radius: hb.Radius,
			mods: b.Modifiers, lineage: b.Lineage,
		})
	}
	return targets
}

func (s *CollisionSystem) activeShooters() []shooter {
	var shooters []shooter
	for _, id := range s.ecs.SourceIDs() {
		src := s.ecs.DamageSources[id]
		pos, hasPos := s.ecs.Positions[id]
		hb, hasHitbox := s.ecs.Hitboxes[id]
		// Источник с нулевым пробиванием инертен
		if src.Spent || src.Pierce <= 0 || !hasPos || !hasHitbox {
			continue
		}
		shooters = append(shooters, shooter{id: id, x: pos.X, y: pos.Y, radius: hb.Radius, src: src})
	}
	return shooters
}

// scan проверяет один источник против всех шаров по порядку.
func scan(sh shooter, targets []target) []DamageEvent {
	var events []DamageEvent
	for _, t := range targets {
		if !Overlaps(sh.x, sh.y, sh.radius, t.x, t.y, t.radius) {
			continue
		}
		if sh.src.HasHit(t.lineage) || sh.src.Excludes(t.mods) {
			continue
		}
		events = append(events, DamageEvent{
			Target:   t.id,
			Source:   sh.id,
			Amount:   sh.src.Damage,
			Effect:   sh.src.Effect,
			Targeted: true,
		})
		if sh.src.Credit(t.lineage) {
			break
		}
	}
	return events
}

// Overlaps — пересечение двух кругов: сначала дешевая проверка по
// ограничивающему квадрату, затем точная по расстоянию (строго меньше суммы радиусов).
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	reach := ar + br
	dx, dy := ax-bx, ay-by
	if math.Abs(dx) >= reach || math.Abs(dy) >= reach {
		return false
	}
	return math.Hypot(dx, dy) < reach
}
