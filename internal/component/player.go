// internal/component/player.go
package component

// PlayerStateComponent хранит состояние игрока: жизни и доход.
type PlayerStateComponent struct {
	Lives  int // Оставшиеся жизни, утечка шара отнимает его RBE
	Income int // Накопленный доход
}
