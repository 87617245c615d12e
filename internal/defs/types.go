// internal/defs/types.go
package defs

import "strings"

// Modifier is a bitmask of bloon properties. Resistances double as the
// "cannot pop" vocabulary of damage types.
type Modifier uint16

const (
	ModLead      Modifier = 1 << iota // resists sharp
	ModPurple                         // resists magic
	ModBlack                          // resists explosion
	ModWhite                          // resists cold
	ModFrozen
	ModCamo
	ModFortified
)

// ModNone is the empty modifier set.
const ModNone Modifier = 0

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModLead, "lead"},
	{ModPurple, "purple"},
	{ModBlack, "black"},
	{ModWhite, "white"},
	{ModFrozen, "frozen"},
	{ModCamo, "camo"},
	{ModFortified, "fortified"},
}

// Has reports whether every flag of other is set.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// Intersects reports whether m and other share any flag.
func (m Modifier) Intersects(other Modifier) bool {
	return m&other != 0
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseModifier maps a single flag name ("camo", "fortified", ...) to its bit.
func ParseModifier(name string) (Modifier, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, mn := range modifierNames {
		if mn.name == name {
			return mn.mod, true
		}
	}
	return ModNone, false
}

// DamageType is the set of bloon modifiers a hit cannot pop.
type DamageType Modifier

const (
	DamageNormal    DamageType = 0
	DamageShatter   DamageType = DamageType(ModLead)
	DamageExplosion DamageType = DamageType(ModBlack)
	DamageFrigid    DamageType = DamageType(ModWhite)
	DamageMagic     DamageType = DamageType(ModPurple)
	DamageEnergy    DamageType = DamageType(ModLead | ModPurple)
	DamageSharp     DamageType = DamageType(ModLead | ModFrozen)
	DamageCold      DamageType = DamageType(ModLead | ModWhite)
)

var damageTypeNames = map[string]DamageType{
	"normal":    DamageNormal,
	"shatter":   DamageShatter,
	"explosion": DamageExplosion,
	"frigid":    DamageFrigid,
	"magic":     DamageMagic,
	"energy":    DamageEnergy,
	"sharp":     DamageSharp,
	"cold":      DamageCold,
}

// CannotPop returns the modifier mask this damage type is blocked by.
func (d DamageType) CannotPop() Modifier {
	return Modifier(d)
}

// ParseDamageType resolves a damage type by its lowercase name.
func ParseDamageType(name string) (DamageType, bool) {
	d, ok := damageTypeNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}
