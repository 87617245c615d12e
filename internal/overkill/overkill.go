// internal/overkill/overkill.go

// Package overkill определяет, какие потомки остаются от лопнувшего шара,
// когда лишний урон проходит вниз по дереву расщеплений.
package overkill

import (
	"fmt"

	"go-bloon-defense/internal/defs"
)

// Resolve — живое рекурсивное правило. magnitude — модуль неположительного
// здоровья лопнувшего шара.
//
// Без оверкилла ответ — обычные дети тира. Иначе magnitude вычитается из
// базового здоровья каждого ребенка: ребенок с остатком ≤ 0 раскрывается
// дальше со своим остатком, ребенок с положительным остатком поглощается.
func Resolve(t defs.Tier, magnitude int) []defs.Tier {
	children := t.Children()
	if magnitude <= 0 {
		out := make([]defs.Tier, len(children))
		copy(out, children)
		return out
	}
	var out []defs.Tier
	for _, ch := range children {
		rest := ch.BaseHealth() - magnitude
		if rest > 0 {
			continue
		}
		out = append(out, Resolve(ch, -rest)...)
	}
	return out
}

// Exempt сообщает, что тир не попадает в таблицу: у дирижаблей и боссов
// слишком много достижимых величин оверкилла.
func Exempt(t defs.Tier) bool {
	return t.Category() != defs.CategoryNormal
}

// Table — заранее посчитанное отображение (тир, шаг) -> потомки. Шаги — это
// неположительные значения здоровья 0, -1, ... -Ceiling. После построения
// таблица не меняется и читается без блокировок.
type Table struct {
	entries  [defs.TierCount][][]defs.Tier
	ceilings [defs.TierCount]int
}

// BuildTable проверяет каталог и заполняет по записи на каждый шаг до глубины
// пула для всех тиров, кроме исключенных. Дальше глубины пула ответ всегда пуст.
func BuildTable() (*Table, error) {
	if err := defs.ValidateCatalog(); err != nil {
		return nil, fmt.Errorf("overkill table: %w", err)
	}
	tbl := &Table{}
	for _, t := range defs.Tiers() {
		if Exempt(t) {
			tbl.ceilings[t] = -1
			continue
		}
		ceiling := defs.PoolDepth(t)
		rows := make([][]defs.Tier, ceiling+1)
		for m := 0; m <= ceiling; m++ {
			rows[m] = Resolve(t, m)
		}
		tbl.entries[t] = rows
		tbl.ceilings[t] = ceiling
	}
	return tbl, nil
}

// Ceiling — наибольшая посчитанная величина для t, -1 для исключенных тиров.
func (tbl *Table) Ceiling(t defs.Tier) int {
	return tbl.ceilings[t]
}

// Lookup возвращает запись для health (<= 0). ok ложно для исключенного тира
// и для величины за пределами таблицы. Срез общий, менять его нельзя.
func (tbl *Table) Lookup(t defs.Tier, health int) (children []defs.Tier, ok bool) {
	if health > 0 || !t.Valid() {
		return nil, false
	}
	step := -health
	if step > tbl.Ceiling(t) {
		return nil, false
	}
	return tbl.entries[t][step], true
}

// Engine отвечает по таблице, а для исключенных тиров и величин вне таблицы
// считает живым правилом.
type Engine struct {
	table *Table
}

// NewEngine оборачивает построенную таблицу.
func NewEngine(table *Table) *Engine {
	return &Engine{table: table}
}

// Descendants — упорядоченный список тиров, которые оставит шар тира t,
// закончивший тик с данным неположительным здоровьем. Индекс 0 занимает
// исходную сущность.
func (e *Engine) Descendants(t defs.Tier, health int) []defs.Tier {
	if health > 0 {
		return nil
	}
	if !Exempt(t) {
		if children, ok := e.table.Lookup(t, health); ok {
			return children
		}
	}
	return Resolve(t, -health)
}
