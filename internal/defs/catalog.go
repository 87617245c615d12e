// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"

	"go-bloon-defense/internal/lineage"
)

// ErrInvalidCatalog wraps every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid tier catalog")

// SpawnModifiers derives the modifier set of a tier instance. inherited is the
// parent's full set (or the requested set for a root spawn) and is kept
// unchanged; t adds its own intrinsic flags on top. A root keeps any requested
// fortification. A child drops fortified once it reaches a tier that cannot
// hold it, and never regains it.
func SpawnModifiers(t Tier, inherited Modifier, parent *Tier) Modifier {
	mods := inherited | t.IntrinsicModifiers()
	if parent != nil && !t.Fortifiable() {
		mods &^= ModFortified
	}
	return mods
}

// SpawnHealth is the starting health of an instance with the given modifiers.
// Fortification is applied here and nowhere else.
func SpawnHealth(t Tier, mods Modifier) int {
	hp := t.BaseHealth()
	if mods.Has(ModFortified) {
		hp *= t.FortifiedMultiplier()
	}
	return hp
}

// LineageBits is the number of lineage path bits consumed by the longest
// split chain starting at t.
func LineageBits(t Tier) int {
	children := t.Children()
	if len(children) == 0 {
		return 0
	}
	deepest := 0
	for _, ch := range children {
		if b := LineageBits(ch); b > deepest {
			deepest = b
		}
	}
	return int(lineage.BitsFor(len(children))) + deepest
}

// PoolDepth is the largest overkill magnitude that can still leave a
// descendant of t alive: the summed base health along the heaviest child chain.
func PoolDepth(t Tier) int {
	deepest := 0
	for _, ch := range t.Children() {
		if d := ch.BaseHealth() + PoolDepth(ch); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// RBE is the red bloon equivalent: hits needed to clear t and everything it
// splits into.
func RBE(t Tier) int {
	total := t.BaseHealth()
	for _, ch := range t.Children() {
		total += RBE(ch)
	}
	return total
}

// ValidateCatalog checks the split invariants once at load time.
func ValidateCatalog() error {
	for _, t := range Tiers() {
		row := tierTable[t]
		if row.name == "" {
			return fmt.Errorf("%w: tier %d has no entry", ErrInvalidCatalog, uint8(t))
		}
		if row.health <= 0 {
			return fmt.Errorf("%w: %s has non-positive health %d", ErrInvalidCatalog, t, row.health)
		}
		if row.speed <= 0 || row.radius <= 0 || row.fortMult < 1 {
			return fmt.Errorf("%w: %s has invalid base stats", ErrInvalidCatalog, t)
		}
		if t == Red {
			if len(row.children) != 0 {
				return fmt.Errorf("%w: weakest tier %s must not split", ErrInvalidCatalog, t)
			}
			continue
		}
		if len(row.children) == 0 {
			return fmt.Errorf("%w: %s has no children", ErrInvalidCatalog, t)
		}
		for _, ch := range row.children {
			// Strictly lower values make the forest acyclic and finite.
			if !ch.Valid() || ch >= t {
				return fmt.Errorf("%w: %s lists child %s that is not weaker", ErrInvalidCatalog, t, ch)
			}
		}
	}
	for _, t := range Tiers() {
		if bits := LineageBits(t); bits > lineage.PathBits {
			return fmt.Errorf("%w: %s needs %d lineage bits, limit is %d", ErrInvalidCatalog, t, bits, lineage.PathBits)
		}
	}
	return nil
}
