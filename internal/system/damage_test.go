package system

import (
	"math"
	"testing"

	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/internal/utils"
	"go-bloon-defense/pkg/track"
)

func lineageOf(family uint32) lineage.ID {
	return lineage.NewRoot(fixedSource(family))
}

func TestDamageAppliedInQueueOrder(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	id := addBloon(ecs, defs.Ceramic, 1, track.Vec2{})
	slow := defs.Slow(0.5, 2)
	queue.Push(
		DamageEvent{Target: id, Amount: 4, Targeted: true},
		DamageEvent{Target: id, Amount: 0, Effect: &slow, Targeted: true},
		DamageEvent{Target: 9999, Amount: 100},
		DamageEvent{Target: id, Amount: 9},
	)

	if applied := NewDamageSystem(ecs, queue).Apply(); applied != 3 {
		t.Errorf("Expected 3 applied events, got %d", applied)
	}
	if got := ecs.Bloons[id].Health; got != -3 {
		t.Errorf("Expected health -3, got %d", got)
	}
	if got := ecs.StatusEffects[id].SpeedMultiplier(); got != 0.5 {
		t.Errorf("Expected speed multiplier 0.5, got %v", got)
	}
	if queue.Len() != 0 {
		t.Errorf("Queue must be drained")
	}
}

func TestWeaknessAddsToTargetedHitsOnly(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	id := addBloon(ecs, defs.Ceramic, 1, track.Vec2{})
	ecs.StatusEffects[id] = &component.StatusEffects{Active: []defs.Effect{defs.Weakness(2, 5)}}

	queue.Push(DamageEvent{Target: id, Amount: 1, Targeted: true})
	queue.Push(DamageEvent{Target: id, Amount: 1})
	NewDamageSystem(ecs, queue).Apply()
	if got := ecs.Bloons[id].Health; got != 10-3-1 {
		t.Errorf("Expected health 6, got %d", got)
	}
}

func TestInstantEffects(t *testing.T) {
	ecs := entity.NewECS()
	queue := &DamageQueue{}
	id := addBloon(ecs, defs.Ceramic, 1, track.Vec2{})
	b := ecs.Bloons[id]
	b.Modifiers |= defs.ModFortified | defs.ModCamo
	b.Health = 20

	queue.Push(
		DamageEvent{Target: id, Effect: &defs.Effect{Kind: defs.EffectDefortify}},
		DamageEvent{Target: id, Effect: &defs.Effect{Kind: defs.EffectDecamo}},
	)
	NewDamageSystem(ecs, queue).Apply()
	if b.Modifiers.Intersects(defs.ModFortified | defs.ModCamo) {
		t.Errorf("Expected fortified and camo stripped, got %s", b.Modifiers)
	}
	if b.Health != 10 {
		t.Errorf("Expected health clamped to base 10, got %d", b.Health)
	}
	if _, ok := ecs.StatusEffects[id]; ok {
		t.Errorf("Instant effects must not be stored")
	}
}

func TestStatusEffectsExpire(t *testing.T) {
	ecs := entity.NewECS()
	id := addBloon(ecs, defs.Red, 1, track.Vec2{})
	ecs.StatusEffects[id] = &component.StatusEffects{Active: []defs.Effect{defs.Slow(0.5, 1), defs.Slow(0.5, 3)}}
	sys := NewStatusEffectSystem(ecs)

	sys.Update(1.5)
	if got := len(ecs.StatusEffects[id].Active); got != 1 {
		t.Fatalf("Expected one effect left, got %d", got)
	}
	sys.Update(2)
	if _, ok := ecs.StatusEffects[id]; ok {
		t.Errorf("Expected every effect expired")
	}
}

func TestMovementRespectsSpeedEffects(t *testing.T) {
	ecs := entity.NewECS()
	tr := lineTrack(t)
	id := placeOnTrack(ecs, tr, defs.Red, lineageOf(1), 0)
	ecs.StatusEffects[id] = &component.StatusEffects{Active: []defs.Effect{defs.Slow(0.5, 10)}}

	NewMovementSystem(ecs, tr).Update(2)
	want := defs.Red.BaseSpeed() * 0.5 * 2
	if got := ecs.Paths[id].Distance; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected distance %v, got %v", want, got)
	}
}

func TestMovementStunnedDoesNotMove(t *testing.T) {
	ecs := entity.NewECS()
	tr := lineTrack(t)
	id := placeOnTrack(ecs, tr, defs.Red, lineageOf(1), 10)
	ecs.StatusEffects[id] = &component.StatusEffects{Active: []defs.Effect{defs.Slow(0, 1)}}

	NewMovementSystem(ecs, tr).Update(1)
	if got := ecs.Paths[id].Distance; got != 10 {
		t.Errorf("Stunned bloon moved to %v", got)
	}
}

func TestProjectileLifecycle(t *testing.T) {
	ecs := entity.NewECS()
	def, err := defs.Projectile("DART")
	if err != nil {
		t.Fatalf("DART preset missing: %v", err)
	}
	id := SpawnProjectile(ecs, def, track.Vec2{}, 0)
	if src := ecs.DamageSources[id]; src.Pierce != def.Pierce || src.CannotPop != defs.DamageSharp.CannotPop() {
		t.Errorf("Unexpected damage source %+v", src)
	}

	NewProjectileSystem(ecs).Update(0.5)
	if pos := ecs.Positions[id]; math.Abs(pos.X-def.Speed*0.5) > 1e-9 || math.Abs(pos.Y) > 1e-9 {
		t.Errorf("Expected straight flight to (%v,0), got %+v", def.Speed*0.5, *pos)
	}

	cull := NewCullSystem(ecs, event.NewDispatcher(), 1000)
	cull.Update()
	if _, ok := ecs.Projectiles[id]; !ok {
		t.Fatalf("Projectile removed too early")
	}
	NewProjectileSystem(ecs).Update(def.Lifetime)
	cull.Update()
	if _, ok := ecs.Projectiles[id]; ok {
		t.Errorf("Expired projectile must be removed")
	}
}

func TestStaticProjectileStops(t *testing.T) {
	ecs := entity.NewECS()
	def, _ := defs.Projectile("GLUE")
	id := SpawnProjectile(ecs, def, track.Vec2{X: 10, Y: 10}, math.Pi/2)
	sys := NewProjectileSystem(ecs)
	for i := 0; i < 10; i++ {
		sys.Update(0.1)
	}
	pos := ecs.Positions[id]
	if math.Abs(pos.X-10) > 1e-9 || math.Abs(pos.Y-(10+def.Range)) > 1e-9 {
		t.Errorf("Expected glue to rest at (10,%v), got %+v", 10+def.Range, *pos)
	}
}

func TestProjectileOutOfBoundsCulled(t *testing.T) {
	ecs := entity.NewECS()
	def, _ := defs.Projectile("LASER")
	id := SpawnProjectile(ecs, def, track.Vec2{X: 490}, 0)
	NewProjectileSystem(ecs).Update(0.1)
	NewCullSystem(ecs, event.NewDispatcher(), 500).Update()
	if _, ok := ecs.DamageSources[id]; ok {
		t.Errorf("Projectile outside the bounds must be removed")
	}
}

func TestEmitterFiresOnInterval(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	pos := component.Position{}
	ecs.Positions[id] = &pos
	ecs.Emitters[id] = &component.Emitter{Preset: "TACK", Interval: 0.5}
	sys := NewEmitterSystem(ecs)

	if fired := sys.Update(0.1); fired != 1 {
		t.Errorf("Expected an immediate first shot, got %d", fired)
	}
	if fired := sys.Update(1.0); fired != 2 {
		t.Errorf("Expected two shots in one second, got %d", fired)
	}
	if len(ecs.Projectiles) != 3 {
		t.Errorf("Expected 3 projectiles, got %d", len(ecs.Projectiles))
	}
}

func TestWaveReleasesGroupsAndEnds(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.WaveEnded, rec)

	var spawned []defs.Tier
	waves := map[int]defs.WaveDefinition{1: defs.WavePatterns[2]}
	sys := NewWaveSystem(ecs, waves, utils.NewPRNGService(1), func(tier defs.Tier, mods defs.Modifier) types.EntityID {
		spawned = append(spawned, tier)
		return 0
	}, dispatcher)

	sys.StartWave(1)
	for i := 0; i < 200 && ecs.Wave != nil; i++ {
		sys.Update(0.1)
	}
	if len(spawned) != defs.WavePatterns[2].TotalRoots() {
		t.Errorf("Expected %d roots, got %d", defs.WavePatterns[2].TotalRoots(), len(spawned))
	}
	if ecs.Wave != nil || len(rec.events) != 1 {
		t.Errorf("Expected the wave to end once, got %d events", len(rec.events))
	}
	if spawned[0] != defs.Red {
		t.Errorf("Expected the first release to be red, got %s", spawned[0])
	}
}

func TestGeneratedWaveUsesPools(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewWaveSystem(ecs, nil, utils.NewPRNGService(3), func(defs.Tier, defs.Modifier) types.EntityID { return 0 }, event.NewDispatcher())
	wave := sys.StartWave(40)
	if len(wave.Groups) != 3 {
		t.Fatalf("Expected 3 generated groups, got %d", len(wave.Groups))
	}
	allowed := map[defs.Tier]bool{}
	for _, e := range defs.PoolFor(40) {
		allowed[e.Tier] = true
	}
	for _, g := range wave.Groups {
		if !allowed[g.Group.Tier] {
			t.Errorf("Tier %s is not in the wave 40 pool", g.Group.Tier)
		}
		if g.Remaining <= 0 {
			t.Errorf("Group must release at least one root")
		}
	}
}
