// internal/component/wave.go
package component

import "go-bloon-defense/internal/defs"

// GroupProgress — прогресс одной группы спавна внутри волны.
type GroupProgress struct {
	Group     defs.SpawnGroup
	Remaining int     // Сколько еще корней заспавнить
	Timer     float64 // Время с начала волны или с последнего спавна
	Started   bool    // Задержка группы уже прошла
}

// Wave — состояние текущей волны.
type Wave struct {
	Number int
	Groups []*GroupProgress
}

// Spawning сообщает, что у волны еще остались корни для спавна.
func (w *Wave) Spawning() bool {
	for _, g := range w.Groups {
		if g.Remaining > 0 {
			return true
		}
	}
	return false
}
