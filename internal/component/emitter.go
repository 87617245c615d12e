// internal/component/emitter.go
package component

// Emitter стреляет пресетом снаряда под фиксированным углом через равные
// промежутки времени. Без наведения на цель.
type Emitter struct {
	Preset   string
	Angle    float64 // Радианы, 0 — вправо, против часовой
	Interval float64 // Секунд между выстрелами
	Cooldown float64 // Оставшееся время до следующего выстрела
}
