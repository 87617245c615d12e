// internal/system/wave.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"go-bloon-defense/internal/types"
	"go-bloon-defense/internal/utils"
	"log"
	"time"
)

// RootSpawner выпускает корневой шар в начало трека.
type RootSpawner func(tier defs.Tier, mods defs.Modifier) types.EntityID

type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	waves           map[int]defs.WaveDefinition
	rng             *utils.PRNGService
	spawn           RootSpawner
}

func NewWaveSystem(ecs *entity.ECS, waves map[int]defs.WaveDefinition, rng *utils.PRNGService, spawn RootSpawner, eventDispatcher *event.Dispatcher) *WaveSystem {
	if len(waves) == 0 {
		waves = defs.WavePatterns
	}
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		waves:           waves,
		rng:             rng,
		spawn:           spawn,
	}
}

// Update выпускает корни по расписанию групп. Волна заканчивается, когда
// все корни выпущены и на треке не осталось шаров.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	for _, g := range wave.Groups {
		if g.Remaining == 0 {
			continue
		}
		g.Timer += deltaTime
		if !g.Started {
			delay := g.Group.Delay.Seconds()
			if g.Timer < delay {
				continue
			}
			g.Started = true
			g.Timer -= delay
			s.release(g)
		}
		interval := g.Group.Interval.Seconds()
		for g.Remaining > 0 && interval > 0 && g.Timer >= interval {
			g.Timer -= interval
			s.release(g)
		}
		if interval <= 0 {
			// Без интервала вся группа выходит разом
			for g.Remaining > 0 {
				s.release(g)
			}
		}
	}

	if !wave.Spawning() && len(s.ecs.Bloons) == 0 {
		log.Printf("Wave %d cleared", wave.Number)
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

func (s *WaveSystem) release(g *component.GroupProgress) {
	s.spawn(g.Group.Tier, g.Group.Modifiers)
	g.Remaining--
}

// StartWave готовит волну номер waveNumber и делает ее текущей.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef, ok := s.waves[waveNumber]
	if !ok {
		waveDef = s.generate(waveNumber)
	}

	wave := &component.Wave{Number: waveNumber}
	for _, g := range waveDef.Groups {
		wave.Groups = append(wave.Groups, &component.GroupProgress{Group: g, Remaining: g.Count})
	}
	s.ecs.Wave = wave
	log.Printf("Wave %d started: %d roots", waveNumber, waveDef.TotalRoots())
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})
	return wave
}

// generate собирает волну из пулов спавна для номеров без готового описания.
func (s *WaveSystem) generate(waveNumber int) defs.WaveDefinition {
	pool := defs.PoolFor(waveNumber)
	if len(pool) == 0 {
		log.Printf("Критическая ошибка: нет пула для волны %d, используем первую волну", waveNumber)
		return defs.WavePatterns[1]
	}

	def := defs.WaveDefinition{Number: waveNumber}
	interval := max(200*time.Millisecond, time.Second-time.Duration(waveNumber)*20*time.Millisecond)
	for i := 0; i < 3; i++ {
		tier, _ := s.rng.ChooseWeighted(pool)
		count := 4 + waveNumber/2
		if tier.Category() != defs.CategoryNormal {
			count = 1 + waveNumber/15
		}
		var mods defs.Modifier
		if waveNumber >= 15 && s.rng.Intn(3) == 0 {
			mods |= defs.ModCamo
		}
		if waveNumber >= 20 && tier.Fortifiable() && s.rng.Intn(2) == 0 {
			mods |= defs.ModFortified
		}
		def.Groups = append(def.Groups, defs.SpawnGroup{
			Tier:      tier,
			Count:     count,
			Interval:  interval,
			Delay:     time.Duration(i) * 3 * time.Second,
			Modifiers: mods,
		})
	}
	return def
}
