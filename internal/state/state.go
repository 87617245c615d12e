// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит стек состояний. Обновляется только верхнее, рисуются
// все снизу вверх, так что пауза видна поверх замороженной игры.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из всех состояний стека и оставляет только newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	sm.Push(newState)
}

// Push кладет состояние поверх текущего, не выходя из него.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current — верхнее состояние или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
