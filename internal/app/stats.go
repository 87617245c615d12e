// internal/app/stats.go
package app

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/event"
)

// Stats — слушатель событий, который считает итоги прогона.
type Stats struct {
	Spawned      int            `json:"spawned"`
	Pops         int            `json:"pops"`
	Leaks        int            `json:"leaks"`
	LeakedRBE    int            `json:"leaked_rbe"`
	Hits         int            `json:"hits"`
	Income       int            `json:"income"`
	SourcesSpent int            `json:"sources_spent"`
	WavesCleared int            `json:"waves_cleared"`
	MaxOverkill  int            `json:"max_overkill"`
	PopsByTier   map[string]int `json:"pops_by_tier"`
}

func NewStats() *Stats {
	return &Stats{PopsByTier: make(map[string]int)}
}

// OnEvent обрабатывает события, на которые подписана статистика.
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.BloonSpawned:
		s.Spawned++
	case event.BloonPopped:
		if data, ok := e.Data.(event.PopData); ok {
			s.Pops++
			s.Income += data.Income
			s.PopsByTier[data.Tier.String()]++
			s.MaxOverkill = max(s.MaxOverkill, data.Overkill)
		}
	case event.BloonLeaked:
		if data, ok := e.Data.(event.LeakData); ok {
			s.Leaks++
			s.LeakedRBE += data.RBE
		}
	case event.SourceSpent:
		s.SourcesSpent++
	case event.WaveEnded:
		s.WavesCleared++
	}
}

// PopsOf — сколько раз лопался тир t.
func (s *Stats) PopsOf(t defs.Tier) int {
	return s.PopsByTier[t.String()]
}
