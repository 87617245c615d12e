// internal/defs/tiers.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a bloon rank. Values are ordered weakest to strongest along the
// splitting hierarchy; every child tier has a lower value than its parent.
type Tier uint8

const (
	Red Tier = iota
	Blue
	Green
	Yellow
	Pink
	Purple
	Black
	White
	Zebra
	Lead
	Rainbow
	Ceramic
	MOAB
	BFB
	ZOMG
	DDT
	BAD
)

// TierCount is the number of defined tiers.
const TierCount = int(BAD) + 1

// Category groups tiers by how damage dealers and the overkill engine treat them.
type Category uint8

const (
	CategoryNormal Category = iota
	CategoryBlimp
	CategoryBoss
)

func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryBlimp:
		return "blimp"
	case CategoryBoss:
		return "boss"
	}
	return fmt.Sprintf("category(%d)", c)
}

// ErrUnknownTier is returned when a tier name or value is not in the catalog.
var ErrUnknownTier = errors.New("unknown tier")

// tierStats is one row of the catalog. Speed is in path units per second.
type tierStats struct {
	name        string
	speed       float64
	health      int
	radius      float64
	fortMult    int
	children    []Tier
	category    Category
	intrinsic   Modifier
	fortifiable bool
}

// Children are listed with the branch holding fewer total descendants last,
// so the in-place replacement slot (index 0) keeps the heavier branch.
var tierTable = [TierCount]tierStats{
	Red:     {name: "red", speed: 25, health: 1, radius: 25, fortMult: 2},
	Blue:    {name: "blue", speed: 35, health: 1, radius: 25, fortMult: 2, children: []Tier{Red}},
	Green:   {name: "green", speed: 45, health: 1, radius: 25, fortMult: 2, children: []Tier{Blue}},
	Yellow:  {name: "yellow", speed: 80, health: 1, radius: 25, fortMult: 2, children: []Tier{Green}},
	Pink:    {name: "pink", speed: 87.5, health: 1, radius: 25, fortMult: 2, children: []Tier{Yellow}},
	Purple:  {name: "purple", speed: 75, health: 1, radius: 25, fortMult: 2, children: []Tier{Pink, Pink}, intrinsic: ModPurple},
	Black:   {name: "black", speed: 45, health: 1, radius: 25, fortMult: 2, children: []Tier{Pink, Pink}, intrinsic: ModBlack},
	White:   {name: "white", speed: 50, health: 1, radius: 25, fortMult: 2, children: []Tier{Pink, Pink}, intrinsic: ModWhite},
	Zebra:   {name: "zebra", speed: 45, health: 1, radius: 25, fortMult: 2, children: []Tier{Black, White}, intrinsic: ModBlack | ModWhite},
	Lead:    {name: "lead", speed: 25, health: 1, radius: 25, fortMult: 4, children: []Tier{Black, Black}, intrinsic: ModLead, fortifiable: true},
	Rainbow: {name: "rainbow", speed: 55, health: 1, radius: 25, fortMult: 2, children: []Tier{Zebra, Zebra}},
	Ceramic: {name: "ceramic", speed: 62.5, health: 10, radius: 25, fortMult: 2, children: []Tier{Rainbow, Rainbow}, fortifiable: true},
	MOAB: {name: "moab", speed: 25, health: 200, radius: 50, fortMult: 2, category: CategoryBlimp, fortifiable: true,
		children: []Tier{Ceramic, Ceramic, Ceramic, Ceramic}},
	BFB: {name: "bfb", speed: 6.25, health: 700, radius: 75, fortMult: 2, category: CategoryBlimp, fortifiable: true,
		children: []Tier{MOAB, MOAB, MOAB, MOAB}},
	ZOMG: {name: "zomg", speed: 4.5, health: 4000, radius: 100, fortMult: 2, category: CategoryBlimp, fortifiable: true,
		children: []Tier{BFB, BFB, BFB, BFB}},
	DDT: {name: "ddt", speed: 66, health: 400, radius: 50, fortMult: 2, category: CategoryBlimp, fortifiable: true,
		children: []Tier{Ceramic, Ceramic, Ceramic, Ceramic}, intrinsic: ModLead | ModCamo},
	BAD: {name: "bad", speed: 4.5, health: 20000, radius: 150, fortMult: 2, category: CategoryBoss, fortifiable: true,
		children: []Tier{ZOMG, ZOMG, DDT, DDT, DDT}},
}

// Tiers returns every tier, weakest first.
func Tiers() []Tier {
	out := make([]Tier, TierCount)
	for i := range out {
		out[i] = Tier(i)
	}
	return out
}

// Valid reports whether t is inside the catalog.
func (t Tier) Valid() bool {
	return int(t) < TierCount
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
	return tierTable[t].name
}

// ParseTier resolves a tier by its case-insensitive name.
func ParseTier(name string) (Tier, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range tierTable {
		if tierTable[i].name == key {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Tier) BaseSpeed() float64 { return tierTable[t].speed }

func (t Tier) BaseHealth() int { return tierTable[t].health }

func (t Tier) HitboxRadius() float64 { return tierTable[t].radius }

// FortifiedMultiplier scales spawn health when the bloon is fortified.
func (t Tier) FortifiedMultiplier() int { return tierTable[t].fortMult }

func (t Tier) Category() Category { return tierTable[t].category }

// Fortifiable reports whether a fortified flag survives on this tier.
func (t Tier) Fortifiable() bool { return tierTable[t].fortifiable }

// IntrinsicModifiers are the flags every instance of the tier carries.
func (t Tier) IntrinsicModifiers() Modifier { return tierTable[t].intrinsic }

// Children returns the tiers produced by a normal split. The returned slice
// is shared and must not be modified.
func (t Tier) Children() []Tier { return tierTable[t].children }
