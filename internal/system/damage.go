// internal/system/damage.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/types"
	"sync"
)

// DamageEvent — отложенное применение урона к одному шару.
type DamageEvent struct {
	Target   types.EntityID
	Source   types.EntityID // 0 для глобального урона
	Amount   int
	Effect   *defs.Effect
	Targeted bool // попадание источника, а не глобальная способность
}

// DamageQueue копит урон за тик. Безопасна для одновременного добавления.
type DamageQueue struct {
	mu     sync.Mutex
	events []DamageEvent
}

// Push добавляет события в конец очереди.
func (q *DamageQueue) Push(events ...DamageEvent) {
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Drain забирает все события в порядке добавления и очищает очередь.
func (q *DamageQueue) Drain() []DamageEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Len — сколько событий ждет применения.
func (q *DamageQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// DamageSystem применяет накопленный урон строго в порядке очереди.
type DamageSystem struct {
	ecs   *entity.ECS
	queue *DamageQueue
}

func NewDamageSystem(ecs *entity.ECS, queue *DamageQueue) *DamageSystem {
	return &DamageSystem{ecs: ecs, queue: queue}
}

// Apply списывает здоровье и вешает эффекты. Возвращает число примененных событий.
func (s *DamageSystem) Apply() int {
	applied := 0
	for _, ev := range s.queue.Drain() {
		bloon, ok := s.ecs.Bloons[ev.Target]
		if !ok {
			continue
		}
		amount := ev.Amount
		if ev.Targeted && amount > 0 {
			amount += s.ecs.StatusEffects[ev.Target].WeaknessBonus()
		}
		bloon.Health -= amount
		if ev.Effect != nil {
			applyEffect(s.ecs, ev.Target, bloon, *ev.Effect)
		}
		applied++
	}
	return applied
}

// applyEffect вешает эффект на шар. Мгновенные эффекты срабатывают сразу и
// в список не попадают.
func applyEffect(ecs *entity.ECS, id types.EntityID, bloon *component.Bloon, e defs.Effect) {
	switch e.Kind {
	case defs.EffectDefortify:
		if bloon.Modifiers.Has(defs.ModFortified) {
			bloon.Modifiers &^= defs.ModFortified
			if base := bloon.Tier.BaseHealth(); bloon.Health > base {
				bloon.Health = base
			}
		}
	case defs.EffectDecamo:
		bloon.Modifiers &^= defs.ModCamo
	case defs.EffectSpeed, defs.EffectWeakness, defs.EffectBonusIncome:
		if e.Duration <= 0 {
			return
		}
		effects, ok := ecs.StatusEffects[id]
		if !ok {
			effects = &component.StatusEffects{}
			ecs.StatusEffects[id] = effects
		}
		effects.Active = append(effects.Active, e)
	}
}
