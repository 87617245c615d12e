// cmd/bloonsim/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"go-bloon-defense/internal/app"
	"go-bloon-defense/internal/config"
)

// report — итоговый JSON пакетного прогона.
type report struct {
	Scenario string          `json:"scenario"`
	Runs     []app.RunReport `json:"runs"`
	Defeats  int             `json:"defeats"`
	MeanPops float64         `json:"mean_pops"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (built-in level when empty)")
	runs := flag.Int("runs", 8, "number of runs, each with its own seed")
	waves := flag.Int("waves", 10, "waves per run")
	workers := flag.Int("workers", runtime.NumCPU(), "runs executed in parallel")
	output := flag.String("output", "", "write the JSON report to this file instead of stdout")
	flag.Parse()

	if err := run(*scenarioPath, *output, app.BatchOptions{Runs: *runs, Waves: *waves, Workers: *workers}); err != nil {
		log.Fatalf("bloonsim: %v", err)
	}
}

func run(scenarioPath, output string, opts app.BatchOptions) error {
	sc := config.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := config.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
		sc = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runs, err := app.RunBatch(ctx, sc, opts)
	if err != nil {
		return err
	}
	rep := report{Scenario: sc.Name, Runs: runs}
	for _, r := range runs {
		if r.Defeated {
			rep.Defeats++
		}
		rep.MeanPops += float64(r.Stats.Pops)
	}
	rep.MeanPops /= float64(len(runs))

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Printf("Wrote %d runs to %s", len(runs), output)
	return nil
}
