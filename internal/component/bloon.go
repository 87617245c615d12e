// internal/component/bloon.go
package component

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/lineage"
)

// Bloon представляет атакующую сущность.
type Bloon struct {
	Tier      defs.Tier
	Health    int // ≤ 0 — шар уничтожен, модуль значения — величина оверкилла
	Modifiers defs.Modifier
	Lineage   lineage.ID
	Root      bool // заспавнен с нуля, а не расщеплением
}

// Dead сообщает, что шар должен пройти через расщепление в этом тике.
func (b *Bloon) Dead() bool {
	return b.Health <= 0
}
