package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	IdleState GameState = iota // между волнами
	WaveState
	DefeatState // жизни закончились
)
