package system

import (
	"testing"

	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/pkg/track"
)

type fixedSource uint32

func (f fixedSource) Uint32() uint32 { return uint32(f) }

func addBloon(ecs *entity.ECS, tier defs.Tier, family uint32, at track.Vec2) types.EntityID {
	mods := defs.SpawnModifiers(tier, defs.ModNone, nil)
	progress := track.Progress{Target: 1, Waypoint: track.Vec2{X: 1000, Y: 0}}
	return SpawnBloon(ecs, tier, mods, lineage.NewRoot(fixedSource(family)), at, progress)
}

func addSource(ecs *entity.ECS, damage, pierce int, radius float64, at track.Vec2) (types.EntityID, *component.DamageSource) {
	id := ecs.NewEntity()
	pos := component.Position(at)
	ecs.Positions[id] = &pos
	ecs.Hitboxes[id] = &component.Hitbox{Radius: radius}
	src := NewDamageSource(damage, pierce, defs.ModNone, defs.ModNone, nil)
	ecs.DamageSources[id] = src
	return id, src
}

func TestPierceLimitsHits(t *testing.T) {
	tests := []struct {
		name      string
		pierce    int
		bloons    int
		wantHits  int
		wantSpent bool
	}{
		{"pierce below field", 3, 5, 3, true},
		{"pierce equals field", 4, 4, 4, true},
		{"pierce above field", 6, 2, 2, false},
		{"zero pierce is inert", 0, 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			queue := &DamageQueue{}
			for i := 0; i < tt.bloons; i++ {
				addBloon(ecs, defs.Red, uint32(100+i), track.Vec2{X: float64(i), Y: 0})
			}
			_, src := addSource(ecs, 1, tt.pierce, 10, track.Vec2{})
			sys := NewCollisionSystem(ecs, queue, event.NewDispatcher(), 4)

			if hits := sys.Update(); hits != tt.wantHits {
				t.Errorf("Expected %d hits, got %d", tt.wantHits, hits)
			}
			if queue.Len() != tt.wantHits {
				t.Errorf("Expected %d queued events, got %d", tt.wantHits, queue.Len())
			}
			if src.Spent != tt.wantSpent {
				t.Errorf("Expected spent=%v, got %v", tt.wantSpent, src.Spent)
			}
			if tt.pierce > 0 && src.Pierce != tt.pierce-tt.wantHits {
				t.Errorf("Expected pierce %d left, got %d", tt.pierce-tt.wantHits, src.Pierce)
			}
		})
	}
}

func TestCollisionQueuesInsteadOfApplying(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	id := addBloon(ecs, defs.Ceramic, 1, track.Vec2{})
	addSource(ecs, 3, 1, 5, track.Vec2{})

	NewCollisionSystem(ecs, queue, event.NewDispatcher(), 1).Update()
	if got := ecs.Bloons[id].Health; got != 10 {
		t.Errorf("Health must not change during collision, got %d", got)
	}
	NewDamageSystem(ecs, queue).Apply()
	if got := ecs.Bloons[id].Health; got != 7 {
		t.Errorf("Expected health 7 after apply, got %d", got)
	}
}

func TestSourceSkipsCreditedLineage(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	parent := lineage.NewRoot(fixedSource(9))
	left := lineage.DeriveChild(parent, 0, 2)
	right := lineage.DeriveChild(parent, 1, 2)

	progress := track.Progress{Target: 1, Waypoint: track.Vec2{X: 1000}}
	a := SpawnBloon(ecs, defs.Pink, defs.ModNone, left, track.Vec2{}, progress)
	b := SpawnBloon(ecs, defs.Pink, defs.ModNone, right, track.Vec2{X: 5}, progress)
	_, src := addSource(ecs, 1, 5, 20, track.Vec2{})
	src.HitList = append(src.HitList, parent)

	if hits := NewCollisionSystem(ecs, queue, event.NewDispatcher(), 2).Update(); hits != 0 {
		t.Errorf("Descendants of a credited bloon must not be hit, got %d hits", hits)
	}
	if src.Pierce != 5 {
		t.Errorf("Pierce must be untouched, got %d", src.Pierce)
	}
	if ecs.Bloons[a].Health != 1 || ecs.Bloons[b].Health != 1 {
		t.Errorf("Descendants must keep their health")
	}
}

func TestSourceHitsUnrelatedSiblingOfAnotherHit(t *testing.T) {
	// A source that hit only one child of a split may still hit the other.
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	parent := lineage.NewRoot(fixedSource(4))
	progress := track.Progress{Target: 1, Waypoint: track.Vec2{X: 1000}}
	SpawnBloon(ecs, defs.Pink, defs.ModNone, lineage.DeriveChild(parent, 0, 2), track.Vec2{}, progress)
	SpawnBloon(ecs, defs.Pink, defs.ModNone, lineage.DeriveChild(parent, 1, 2), track.Vec2{}, progress)
	_, src := addSource(ecs, 1, 5, 20, track.Vec2{})
	src.HitList = append(src.HitList, lineage.DeriveChild(parent, 0, 2))

	if hits := NewCollisionSystem(ecs, queue, event.NewDispatcher(), 1).Update(); hits != 1 {
		t.Errorf("Expected only the uncredited sibling to be hit, got %d hits", hits)
	}
}

func TestExclusionMasks(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	addBloon(ecs, defs.Lead, 1, track.Vec2{})
	camo := addBloon(ecs, defs.Red, 2, track.Vec2{})
	ecs.Bloons[camo].Modifiers |= defs.ModCamo

	id := ecs.NewEntity()
	pos := component.Position{}
	ecs.Positions[id] = &pos
	ecs.Hitboxes[id] = &component.Hitbox{Radius: 10}
	ecs.DamageSources[id] = NewDamageSource(1, 5, defs.DamageSharp.CannotPop(), defs.ModCamo, nil)

	if hits := NewCollisionSystem(ecs, queue, event.NewDispatcher(), 1).Update(); hits != 0 {
		t.Errorf("Sharp source must skip lead and camo-blind source must skip camo, got %d hits", hits)
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	if Overlaps(0, 0, 5, 10, 0, 5) {
		t.Errorf("Touching circles must not overlap")
	}
	if !Overlaps(0, 0, 5, 9.99, 0, 5) {
		t.Errorf("Expected overlap")
	}
	if Overlaps(0, 0, 5, 8, 8, 5) {
		t.Errorf("Diagonal distance 11.3 must not overlap radius sum 10")
	}
}

func TestCollisionOrderIndependentOfWorkers(t *testing.T) {
	build := func(workers int) []DamageEvent {
		ecs := entity.NewECS()
		queue := &DamageQueue{}
		for i := 0; i < 20; i++ {
			addBloon(ecs, defs.Ceramic, uint32(i+1), track.Vec2{X: float64(i * 3)})
		}
		for i := 0; i < 12; i++ {
			addSource(ecs, 1, 3, 8, track.Vec2{X: float64(i * 5)})
		}
		NewCollisionSystem(ecs, queue, event.NewDispatcher(), workers).Update()
		return queue.Drain()
	}
	serial := build(1)
	parallel := build(8)
	if len(serial) != len(parallel) {
		t.Fatalf("Expected %d events, got %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("Event %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
}

func TestSourceSpentEvent(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.SourceSpent, rec)
	addBloon(ecs, defs.Red, 1, track.Vec2{})
	srcID, _ := addSource(ecs, 1, 1, 5, track.Vec2{})

	NewCollisionSystem(ecs, queue, dispatcher, 2).Update()
	if len(rec.events) != 1 {
		t.Fatalf("Expected one SourceSpent event, got %d", len(rec.events))
	}
	if data := rec.events[0].Data.(event.SourceData); data.ID != srcID || data.Hits != 1 {
		t.Errorf("Unexpected event data %+v", data)
	}
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}
