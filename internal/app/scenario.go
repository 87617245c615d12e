// internal/app/scenario.go
package app

import (
	"fmt"
	"go-bloon-defense/internal/config"
)

// NewFromScenario собирает симуляцию по сценарию: трек, волны и эмиттеры.
func NewFromScenario(sc *config.Scenario) (*Simulation, error) {
	tr, err := sc.BuildTrack()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	waves, err := sc.LoadWaves()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	sim, err := NewSimulation(tr, Options{
		Seed:    sc.Seed,
		Workers: sc.Workers,
		Stagger: sc.Stagger,
		Lives:   sc.Lives,
		Waves:   waves,
	})
	if err != nil {
		return nil, err
	}
	for i, e := range sc.Emitters {
		if _, err := sim.AddEmitter(e.Preset, e.Position(), e.Radians(), e.Interval); err != nil {
			return nil, fmt.Errorf("scenario %q: emitter %d: %w", sc.Name, i, err)
		}
	}
	return sim, nil
}
