// internal/system/player_system.go
package system

import (
	"go-bloon-defense/internal/component"
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/internal/event"
	"log"
)

// PlayerSystem ведет жизни и доход игрока по событиям лопания и утечки.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	player := s.ecs.PlayerState
	if player == nil {
		return
	}
	switch e.Type {
	case event.BloonPopped:
		if data, ok := e.Data.(event.PopData); ok {
			player.Income += data.Income
		}
	case event.BloonLeaked:
		data, ok := e.Data.(event.LeakData)
		if !ok {
			return
		}
		player.Lives = max(player.Lives-data.RBE, 0)
		if player.Lives == 0 && s.ecs.GameState != component.DefeatState {
			s.ecs.GameState = component.DefeatState
			log.Println("Out of lives")
		}
	}
}
