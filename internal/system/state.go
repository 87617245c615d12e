// internal/system/state.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
)

// StateSystem переключает фазы игры: ожидание волны и волна.
type StateSystem struct {
	ecs        *entity.ECS
	waveSystem *WaveSystem
	nextWave   int
}

func NewStateSystem(ecs *entity.ECS, waveSystem *WaveSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:        ecs,
		waveSystem: waveSystem,
		nextWave:   1,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.WaveEnded {
		s.SwitchToIdleState()
	}
}

func (s *StateSystem) SwitchToIdleState() {
	if s.ecs.GameState == component.DefeatState {
		return
	}
	s.ecs.GameState = component.IdleState
}

// SwitchToWaveState запускает следующую волну. Ничего не делает во время
// волны и после поражения.
func (s *StateSystem) SwitchToWaveState() bool {
	if s.ecs.GameState != component.IdleState {
		return false
	}
	s.ecs.GameState = component.WaveState
	s.waveSystem.StartWave(s.nextWave)
	s.nextWave++
	return true
}

// NextWave — номер волны, которая запустится следующей.
func (s *StateSystem) NextWave() int {
	return s.nextWave
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
