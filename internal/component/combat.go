// internal/component/combat.go
package component

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/lineage"
)

// DamageSource — источник урона с пробиванием (pierce) и списком уже
// засчитанных линий.
type DamageSource struct {
	Damage       int
	Pierce       int           // Сколько попаданий осталось
	HitList      []lineage.ID  // Линии, по которым уже было попадание
	CannotPop    defs.Modifier // Модификаторы, которые источник не может лопнуть
	CannotTarget defs.Modifier // Модификаторы, по которым источник не бьет вовсе
	Effect       *defs.Effect  // Эффект, накладываемый при попадании
	Spent        bool          // Пробивание закончилось, источник будет удален
	Hits         int           // Всего засчитанных попаданий
}

// HasHit сообщает, было ли уже попадание по линии id.
func (d *DamageSource) HasHit(id lineage.ID) bool {
	for _, h := range d.HitList {
		if h.SameLineage(id) {
			return true
		}
	}
	return false
}

// Excludes сообщает, что источник не может повредить шар с такими модификаторами.
func (d *DamageSource) Excludes(mods defs.Modifier) bool {
	return mods.Intersects(d.CannotPop) || mods.Intersects(d.CannotTarget)
}

// Credit засчитывает попадание по линии id и уменьшает пробивание.
// Возвращает true, если источник исчерпан.
func (d *DamageSource) Credit(id lineage.ID) bool {
	d.HitList = append(d.HitList, id)
	d.Pierce--
	d.Hits++
	if d.Pierce <= 0 {
		d.Spent = true
	}
	return d.Spent
}
