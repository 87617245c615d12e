// internal/component/movement.go
package component

import "go-bloon-defense/pkg/track"

// Position — компонент позиции
type Position track.Vec2

// Vec возвращает указатель на позицию в виде track.Vec2, чтобы трек мог
// сдвигать сущность напрямую.
func (p *Position) Vec() *track.Vec2 {
	return (*track.Vec2)(p)
}

// Velocity — компонент скорости (единиц пути в секунду)
type Velocity struct {
	Speed float64
}

// Path — компонент прогресса по треку
type Path struct {
	track.Progress
}

// Hitbox — круглый хитбокс
type Hitbox struct {
	Radius float64
}
