// internal/app/simulation.go
package app

import (
	"fmt"
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/overkill"
	"go-bloon-defense/internal/system"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/internal/utils"
	"go-bloon-defense/pkg/track"
)

// Options — параметры симуляции. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Seed    int64
	Workers int
	Stagger float64
	Bounds  float64
	Lives   int
	Waves   map[int]defs.WaveDefinition
}

// DefaultOptions возвращает параметры из config.
func DefaultOptions() Options {
	return Options{
		Seed:    config.DefaultSeed,
		Workers: config.CollisionWorkers,
		Stagger: config.StaggerOffset,
		Bounds:  config.ProjectileBounds,
		Lives:   config.StartingLives,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	if o.Stagger <= 0 {
		o.Stagger = d.Stagger
	}
	if o.Bounds <= 0 {
		o.Bounds = d.Bounds
	}
	if o.Lives <= 0 {
		o.Lives = d.Lives
	}
	return o
}

// RemovalReason — почему шар исчез.
type RemovalReason int

const (
	RemovedPopped RemovalReason = iota // лопнул без потомков
	RemovedLeaked                      // дошел до конца трека
)

func (r RemovalReason) String() string {
	if r == RemovedLeaked {
		return "leaked"
	}
	return "popped"
}

// Removal — шар, удаленный за тик.
type Removal struct {
	ID     types.EntityID
	Tier   defs.Tier
	Reason RemovalReason
}

// TickResult — итог одного тика.
type TickResult struct {
	Removed []Removal
	Alive   []types.EntityID
	Hits    int
}

// SourceSpec — минимальный набор полей для источника урона.
type SourceSpec struct {
	Damage       int
	Pierce       int
	Radius       float64
	CannotPop    defs.Modifier
	CannotTarget defs.Modifier
	Effect       *defs.Effect
}

// Simulation держит ECS, трек и системы одного прогона и выполняет тик
// фазами: движение → столкновения → урон → расщепление → удаление.
type Simulation struct {
	Track           *track.Track
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Engine          *overkill.Engine
	Stats           *Stats

	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	EmitterSystem      *system.EmitterSystem
	CollisionSystem    *system.CollisionSystem
	DamageSystem       *system.DamageSystem
	StatusEffectSystem *system.StatusEffectSystem
	PopSystem          *system.PopSystem
	CullSystem         *system.CullSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem

	queue *system.DamageQueue
	ticks int
}

// NewSimulation проверяет каталог, строит таблицу оверкилла и собирает системы.
func NewSimulation(tr *track.Track, opts Options) (*Simulation, error) {
	if tr == nil {
		return nil, fmt.Errorf("new simulation: %w", track.ErrTooFewNodes)
	}
	opts = opts.withDefaults()

	table, err := overkill.BuildTable()
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	ecs := entity.NewECS()
	ecs.PlayerState = &component.PlayerStateComponent{Lives: opts.Lives}
	dispatcher := event.NewDispatcher()
	queue := &system.DamageQueue{}

	s := &Simulation{
		Track:           tr,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		Engine:          overkill.NewEngine(table),
		Stats:           NewStats(),
		queue:           queue,
	}
	s.MovementSystem = system.NewMovementSystem(ecs, tr)
	s.ProjectileSystem = system.NewProjectileSystem(ecs)
	s.EmitterSystem = system.NewEmitterSystem(ecs)
	s.CollisionSystem = system.NewCollisionSystem(ecs, queue, dispatcher, opts.Workers)
	s.DamageSystem = system.NewDamageSystem(ecs, queue)
	s.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	s.PopSystem = system.NewPopSystem(ecs, tr, s.Engine, dispatcher, opts.Stagger)
	s.CullSystem = system.NewCullSystem(ecs, dispatcher, opts.Bounds)
	s.WaveSystem = system.NewWaveSystem(ecs, opts.Waves, s.Rng, s.SpawnRoot, dispatcher)
	s.StateSystem = system.NewStateSystem(ecs, s.WaveSystem, dispatcher)
	s.PlayerSystem = system.NewPlayerSystem(ecs)

	dispatcher.SubscribeAll(s.Stats, event.BloonSpawned, event.BloonPopped, event.BloonLeaked, event.SourceSpent, event.WaveEnded)
	dispatcher.SubscribeAll(s.PlayerSystem, event.BloonPopped, event.BloonLeaked)

	return s, nil
}

// SpawnRoot выпускает новый корневой шар в начало трека со свежим семейством.
func (s *Simulation) SpawnRoot(tier defs.Tier, mods defs.Modifier) types.EntityID {
	mods = defs.SpawnModifiers(tier, mods, nil)
	id := lineage.NewRoot(s.Rng)
	eid := system.SpawnBloon(s.ECS, tier, mods, id, s.Track.Start(), s.Track.StartProgress())
	s.ECS.Bloons[eid].Root = true
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.BloonSpawned,
		Data: event.SpawnData{ID: eid, Tier: tier, Lineage: id},
	})
	return eid
}

// AddDamageSource ставит неподвижный источник урона в точку at.
func (s *Simulation) AddDamageSource(spec SourceSpec, at track.Vec2) types.EntityID {
	id := s.ECS.NewEntity()
	pos := component.Position(at)
	s.ECS.Positions[id] = &pos
	s.ECS.Hitboxes[id] = &component.Hitbox{Radius: spec.Radius}
	s.ECS.DamageSources[id] = system.NewDamageSource(spec.Damage, spec.Pierce, spec.CannotPop, spec.CannotTarget, spec.Effect)
	return id
}

// FireProjectile запускает снаряд по пресету.
func (s *Simulation) FireProjectile(presetID string, origin track.Vec2, angle float64) (types.EntityID, error) {
	def, err := defs.Projectile(presetID)
	if err != nil {
		return 0, err
	}
	return system.SpawnProjectile(s.ECS, def, origin, angle), nil
}

// AddEmitter ставит эмиттер, который стреляет пресетом каждые interval секунд.
func (s *Simulation) AddEmitter(presetID string, at track.Vec2, angle, interval float64) (types.EntityID, error) {
	if _, err := defs.Projectile(presetID); err != nil {
		return 0, err
	}
	if interval <= 0 {
		return 0, fmt.Errorf("emitter %s: interval must be positive, got %v", presetID, interval)
	}
	id := s.ECS.NewEntity()
	pos := component.Position(at)
	s.ECS.Positions[id] = &pos
	s.ECS.Emitters[id] = &component.Emitter{Preset: presetID, Angle: angle, Interval: interval}
	return id, nil
}

// ApplyGlobalEffect ставит урон и эффект в очередь каждому живому шару.
// Применяется в фазе урона следующего тика вместе с попаданиями.
func (s *Simulation) ApplyGlobalEffect(amount int, effect *defs.Effect) int {
	ids := s.ECS.BloonIDs()
	events := make([]system.DamageEvent, 0, len(ids))
	for _, id := range ids {
		events = append(events, system.DamageEvent{Target: id, Amount: amount, Effect: effect})
	}
	s.queue.Push(events...)
	return len(events)
}

// StartNextWave запускает следующую волну, если сейчас нет активной.
func (s *Simulation) StartNextWave() bool {
	return s.StateSystem.SwitchToWaveState()
}

// Tick прогоняет один шаг симуляции длиной dt секунд.
func (s *Simulation) Tick(dt float64) TickResult {
	s.ticks++
	s.ECS.GameTime += dt

	// Спавн: волна и эмиттеры
	s.WaveSystem.Update(dt)
	s.EmitterSystem.Update(dt)

	// 1. Движение
	s.MovementSystem.Update(dt)
	s.ProjectileSystem.Update(dt)

	// 2. Поиск попаданий, урон только ставится в очередь
	hits := s.CollisionSystem.Update()

	// 3. Применение урона. Истекшие эффекты снимаются до новых.
	s.StatusEffectSystem.Update(dt)
	s.DamageSystem.Apply()

	// 4. Расщепление
	popped := s.PopSystem.Update()

	// 5. Удаление дошедших до конца и отработавших источников
	leaked := s.CullSystem.Update()

	res := TickResult{Hits: hits, Alive: s.ECS.BloonIDs()}
	for _, r := range popped {
		res.Removed = append(res.Removed, Removal{ID: r.ID, Tier: r.Tier, Reason: RemovedPopped})
	}
	for _, r := range leaked {
		res.Removed = append(res.Removed, Removal{ID: r.ID, Tier: r.Tier, Reason: RemovedLeaked})
	}
	s.Stats.Hits += hits
	return res
}

// Ticks — сколько тиков выполнено.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Alive — живые шары в порядке создания.
func (s *Simulation) Alive() []types.EntityID {
	return s.ECS.BloonIDs()
}

// Bloon возвращает копию состояния шара.
func (s *Simulation) Bloon(id types.EntityID) (component.Bloon, bool) {
	b, ok := s.ECS.Bloons[id]
	if !ok {
		return component.Bloon{}, false
	}
	return *b, true
}

// Position возвращает позицию сущности.
func (s *Simulation) Position(id types.EntityID) (track.Vec2, bool) {
	p, ok := s.ECS.Positions[id]
	if !ok {
		return track.Vec2{}, false
	}
	return track.Vec2(*p), true
}

// Progress возвращает прогресс шара по треку.
func (s *Simulation) Progress(id types.EntityID) (track.Progress, bool) {
	p, ok := s.ECS.Paths[id]
	if !ok {
		return track.Progress{}, false
	}
	return p.Progress, true
}

// Defeated — жизни закончились.
func (s *Simulation) Defeated() bool {
	return s.ECS.GameState == component.DefeatState
}
