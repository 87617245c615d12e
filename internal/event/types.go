// internal/event/types.go
package event

import (
	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/lineage"
	"go-bloon-defense/internal/types"
)

const (
	WaveStarted  EventType = "WaveStarted"  // Волна началась
	WaveEnded    EventType = "WaveEnded"    // Волна закончилась
	BloonSpawned EventType = "BloonSpawned" // Корневой шар появился на треке
	BloonPopped  EventType = "BloonPopped"  // Шар лопнул (здоровье ≤ 0)
	BloonLeaked  EventType = "BloonLeaked"  // Шар дошел до конца трека
	SourceSpent  EventType = "SourceSpent"  // Пробивание источника закончилось
)

// PopData — данные события BloonPopped.
type PopData struct {
	ID          types.EntityID
	Tier        defs.Tier
	Lineage     lineage.ID
	Overkill    int // Модуль отрицательного здоровья
	Descendants int // Сколько потомков осталось
	Income      int // Доход за лопание, включая бонус
}

// LeakData — данные события BloonLeaked.
type LeakData struct {
	ID   types.EntityID
	Tier defs.Tier
	RBE  int // Сколько жизней стоит утечка
}

// SpawnData — данные события BloonSpawned.
type SpawnData struct {
	ID      types.EntityID
	Tier    defs.Tier
	Lineage lineage.ID
}

// SourceData — данные события SourceSpent.
type SourceData struct {
	ID   types.EntityID
	Hits int
}
