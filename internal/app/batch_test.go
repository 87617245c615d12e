package app

import (
	"context"
	"errors"
	"testing"

	"go-bloon-defense/internal/config"
)

func TestRunBatch(t *testing.T) {
	sc := config.DefaultScenario()
	reports, err := RunBatch(context.Background(), sc, BatchOptions{Runs: 3, Waves: 1, Workers: 2})
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("Expected 3 reports, got %d", len(reports))
	}
	ids := map[string]bool{}
	for i, r := range reports {
		if r.Seed != sc.Seed+int64(i) {
			t.Errorf("Run %d: expected seed %d, got %d", i, sc.Seed+int64(i), r.Seed)
		}
		if r.Waves != 1 || r.Stats.WavesCleared != 1 {
			t.Errorf("Run %d: expected one cleared wave, got %+v", i, r)
		}
		if r.Ticks == 0 || r.GameSeconds <= 0 {
			t.Errorf("Run %d: expected ticks to run, got %+v", i, r)
		}
		ids[r.ID] = true
	}
	if len(ids) != 3 {
		t.Errorf("Expected unique run ids, got %v", ids)
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	sc := config.DefaultScenario()
	a, err := RunScenario(context.Background(), sc, 2)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	b, err := RunScenario(context.Background(), sc, 2)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	if a.Ticks != b.Ticks || a.Stats.Pops != b.Stats.Pops || a.Stats.Leaks != b.Stats.Leaks || a.Lives != b.Lives {
		t.Errorf("Expected identical runs, got %+v and %+v", a.Stats, b.Stats)
	}
	if a.ID == b.ID {
		t.Errorf("Run ids must differ")
	}
}

func TestRunScenarioStopsOnDefeat(t *testing.T) {
	sc := config.DefaultScenario()
	sc.Emitters = nil
	sc.Lives = 1
	r, err := RunScenario(context.Background(), sc, 3)
	if err != nil {
		t.Fatalf("RunScenario failed: %v", err)
	}
	if !r.Defeated || r.Lives != 0 || r.Waves != 1 {
		t.Errorf("Expected defeat in wave 1, got %+v", r)
	}
}

func TestRunBatchErrors(t *testing.T) {
	sc := config.DefaultScenario()
	if _, err := RunBatch(context.Background(), sc, BatchOptions{Runs: 0, Waves: 1, Workers: 1}); err == nil {
		t.Errorf("Expected an error for zero runs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBatch(ctx, sc, BatchOptions{Runs: 2, Waves: 1, Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
