// internal/system/movement.go
package system

import (
	"go-bloon-defense/internal/entity"
	"go-bloon-defense/pkg/track"
)

// MovementSystem двигает шары по треку
type MovementSystem struct {
	ecs   *entity.ECS
	track *track.Track
}

func NewMovementSystem(ecs *entity.ECS, tr *track.Track) *MovementSystem {
	return &MovementSystem{ecs: ecs, track: tr}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id := range s.ecs.Bloons {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath || path.Done() {
			continue
		}

		// Замедление и ускорение перемножаются
		currentSpeed := vel.Speed * s.ecs.StatusEffects[id].SpeedMultiplier()
		if currentSpeed <= 0 {
			continue
		}
		s.track.Advance(currentSpeed*deltaTime, pos.Vec(), &path.Progress)
	}
}
