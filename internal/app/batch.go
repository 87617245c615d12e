// internal/app/batch.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/config"
)

// maxWaveSeconds ограничивает одну волну в пакетном прогоне.
const maxWaveSeconds = 600.0

// BatchOptions — параметры пакетного прогона.
type BatchOptions struct {
	Runs    int // Сколько прогонов, у i-го сид = Seed сценария + i
	Waves   int // Сколько волн в каждом прогоне
	Workers int // Сколько прогонов выполняется одновременно
}

// RunReport — итог одного прогона.
type RunReport struct {
	ID          string  `json:"id"`
	Seed        int64   `json:"seed"`
	Waves       int     `json:"waves"`
	Defeated    bool    `json:"defeated"`
	Lives       int     `json:"lives"`
	Ticks       int     `json:"ticks"`
	GameSeconds float64 `json:"game_seconds"`
	MeanTickUS  float64 `json:"mean_tick_us"`
	Stats       *Stats  `json:"stats"`
}

// RunBatch прогоняет сценарий Runs раз параллельно. Отчеты идут в порядке
// номеров прогонов, независимо от порядка завершения.
func RunBatch(ctx context.Context, sc *config.Scenario, opts BatchOptions) ([]RunReport, error) {
	if opts.Runs <= 0 || opts.Waves <= 0 || opts.Workers <= 0 {
		return nil, fmt.Errorf("batch: runs, waves and workers must be positive, got %d/%d/%d", opts.Runs, opts.Waves, opts.Workers)
	}

	reports := make([]RunReport, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		run := *sc
		run.Seed = sc.Seed + int64(i)
		g.Go(func() error {
			report, err := RunScenario(ctx, &run, opts.Waves)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// RunScenario играет до waves волн подряд или до поражения.
func RunScenario(ctx context.Context, sc *config.Scenario, waves int) (RunReport, error) {
	sim, err := NewFromScenario(sc)
	if err != nil {
		return RunReport{}, err
	}
	report := RunReport{ID: uuid.New().String(), Seed: sc.Seed, Stats: sim.Stats}
	maxTicks := int(maxWaveSeconds / sc.Tick)

	var elapsed time.Duration
	for report.Waves < waves && !sim.Defeated() {
		if err := ctx.Err(); err != nil {
			return RunReport{}, err
		}
		if !sim.StartNextWave() {
			break
		}
		report.Waves++
		for t := 0; sim.ECS.GameState == component.WaveState; t++ {
			if t >= maxTicks {
				return RunReport{}, fmt.Errorf("wave %d did not finish in %v seconds", report.Waves, maxWaveSeconds)
			}
			start := time.Now()
			sim.Tick(sc.Tick)
			elapsed += time.Since(start)
		}
	}

	report.Defeated = sim.Defeated()
	report.Lives = sim.ECS.PlayerState.Lives
	report.Ticks = sim.Ticks()
	report.GameSeconds = sim.ECS.GameTime
	if report.Ticks > 0 {
		report.MeanTickUS = float64(elapsed.Microseconds()) / float64(report.Ticks)
	}
	log.Printf("Run %s (seed %d): %d waves, %d pops, %d leaks, defeated=%v",
		report.ID, report.Seed, report.Waves, report.Stats.Pops, report.Stats.Leaks, report.Defeated)
	return report, nil
}
