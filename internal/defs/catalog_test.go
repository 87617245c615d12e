package defs

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("built-in catalog should validate, got %v", err)
	}
}

func TestCatalogIsTotal(t *testing.T) {
	if len(Tiers()) != 17 {
		t.Fatalf("expected 17 tiers, got %d", len(Tiers()))
	}
	for _, tier := range Tiers() {
		if tier.String() == "" || tier.BaseHealth() <= 0 || tier.BaseSpeed() <= 0 || tier.HitboxRadius() <= 0 {
			t.Errorf("%d: incomplete catalog row", tier)
		}
		if tier != Red && len(tier.Children()) == 0 {
			t.Errorf("%s: only the weakest tier may have no children", tier)
		}
	}
	if len(Red.Children()) != 0 {
		t.Errorf("red must not split")
	}
}

func TestCategories(t *testing.T) {
	tests := map[Tier]Category{
		Red: CategoryNormal, Ceramic: CategoryNormal, Lead: CategoryNormal,
		MOAB: CategoryBlimp, DDT: CategoryBlimp, ZOMG: CategoryBlimp,
		BAD: CategoryBoss,
	}
	for tier, want := range tests {
		if got := tier.Category(); got != want {
			t.Errorf("%s: expected %s, got %s", tier, want, got)
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, err := ParseTier(tier.String())
		if err != nil || got != tier {
			t.Errorf("round trip of %s failed: %v %v", tier, got, err)
		}
	}
	if _, err := ParseTier(" MOAB "); err != nil {
		t.Errorf("expected case-insensitive parse, got %v", err)
	}
	if _, err := ParseTier("orange"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestLineageBitsWithinBudget(t *testing.T) {
	if got := LineageBits(BAD); got != 13 {
		t.Errorf("expected BAD to need 13 lineage bits, got %d", got)
	}
	if got := LineageBits(Pink); got != 0 {
		t.Errorf("single-child chains consume no bits, got %d", got)
	}
}

func TestRBE(t *testing.T) {
	tests := map[Tier]int{Red: 1, Blue: 2, Pink: 5, Purple: 11, Zebra: 23, Rainbow: 47, Ceramic: 104, MOAB: 616}
	for tier, want := range tests {
		if got := RBE(tier); got != want {
			t.Errorf("%s: expected RBE %d, got %d", tier, want, got)
		}
	}
}

func TestSpawnModifiers(t *testing.T) {
	lead, zebra, ceramic, black, ddt := Lead, Zebra, Ceramic, Black, DDT
	tests := []struct {
		name      string
		tier      Tier
		inherited Modifier
		parent    *Tier
		want      Modifier
	}{
		{"root lead gains resist-sharp", Lead, ModNone, nil, ModLead},
		{"root camo kept", Red, ModCamo, nil, ModCamo},
		{"root fortified kept on red", Red, ModFortified, nil, ModFortified},
		{"fortified ceramic root", Ceramic, ModFortified | ModCamo, nil, ModFortified | ModCamo},
		{"root ddt", DDT, ModNone, nil, ModLead | ModCamo},
		{"lead child keeps resist-sharp", Black, ModLead | ModCamo, &lead, ModLead | ModBlack | ModCamo},
		{"lead child drops fortified", Black, ModLead | ModFortified, &lead, ModLead | ModBlack},
		{"zebra child keeps both colours", White, ModBlack | ModWhite, &zebra, ModBlack | ModWhite},
		{"ceramic skip to pink", Pink, ModCamo | ModFortified, &ceramic, ModCamo},
		{"black child keeps black", Pink, ModBlack | ModFrozen, &black, ModBlack | ModFrozen},
		{"ddt child", Ceramic, ModLead | ModCamo | ModFortified, &ddt, ModLead | ModCamo | ModFortified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpawnModifiers(tt.tier, tt.inherited, tt.parent); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSpawnModifiersSkipKeepsInheritedFlags(t *testing.T) {
	// A multi-generation skip ends with the same requested flags as splitting
	// one generation at a time. Only intrinsic flags of skipped tiers differ.
	start := Ceramic
	mods := SpawnModifiers(start, ModCamo|ModFortified|ModFrozen, nil)
	chain := []Tier{Rainbow, Zebra, White, Pink, Yellow}
	stepMods, parent := mods, start
	for _, next := range chain {
		p := parent
		stepMods = SpawnModifiers(next, stepMods, &p)
		parent = next
	}
	skipMods := SpawnModifiers(Yellow, mods, &start)
	if skipMods != ModCamo|ModFrozen {
		t.Errorf("skip: expected camo|frozen, got %s", skipMods)
	}
	if stepMods != skipMods|ModBlack|ModWhite {
		t.Errorf("chain: expected %s plus zebra colours, got %s", skipMods, stepMods)
	}
}

func TestSpawnHealth(t *testing.T) {
	if got := SpawnHealth(Ceramic, ModFortified); got != 20 {
		t.Errorf("fortified ceramic: expected 20, got %d", got)
	}
	if got := SpawnHealth(Lead, ModFortified|ModLead); got != 4 {
		t.Errorf("fortified lead: expected 4, got %d", got)
	}
	if got := SpawnHealth(MOAB, ModNone); got != 200 {
		t.Errorf("moab: expected 200, got %d", got)
	}
}

func TestDecodeWaveDefinitions(t *testing.T) {
	data := []byte(`[
		{"number": 2, "groups": [{"tier": "ceramic", "count": 3, "interval": 0.5, "delay": 1, "modifiers": ["camo", "fortified"]}]},
		{"number": 1, "groups": [{"tier": "red", "count": 10, "interval": 0.25}]}
	]`)
	waves, err := DecodeWaveDefinitions(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if nums := WaveNumbers(waves); len(nums) != 2 || nums[0] != 1 || nums[1] != 2 {
		t.Fatalf("expected waves [1 2], got %v", nums)
	}
	g := waves[2].Groups[0]
	if g.Tier != Ceramic || g.Count != 3 || g.Interval != 500*time.Millisecond || g.Delay != time.Second {
		t.Errorf("unexpected group %+v", g)
	}
	if g.Modifiers != ModCamo|ModFortified {
		t.Errorf("expected camo|fortified, got %s", g.Modifiers)
	}
	if waves[1].TotalRoots() != 10 {
		t.Errorf("expected 10 roots, got %d", waves[1].TotalRoots())
	}
}

func TestDecodeWaveDefinitionsErrors(t *testing.T) {
	bad := []string{
		`[{"number": 1, "groups": [{"tier": "orange", "count": 1}]}]`,
		`[{"number": 0, "groups": []}]`,
		`[{"number": 1, "groups": [{"tier": "red", "count": 0}]}]`,
		`[{"number": 1, "groups": [{"tier": "red", "count": 1, "modifiers": ["shiny"]}]}]`,
		`[{"number": 1}, {"number": 1}]`,
		`{`,
	}
	for _, in := range bad {
		if _, err := DecodeWaveDefinitions([]byte(in)); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestPoolFor(t *testing.T) {
	if got := PoolFor(1); len(got) == 0 || got[0].Tier != Red {
		t.Errorf("wave 1 pool should start with red, got %v", got)
	}
	if got := PoolFor(25); got[len(got)-1].Tier != BFB {
		t.Errorf("late pool should include BFB, got %v", got)
	}
	if got := PoolFor(0); got != nil {
		t.Errorf("no pool before wave 1, got %v", got)
	}
}

func TestModifierStringAndParse(t *testing.T) {
	if got := (ModCamo | ModLead).String(); got != "lead|camo" {
		t.Errorf("expected lead|camo, got %s", got)
	}
	if m, ok := ParseModifier("Fortified"); !ok || m != ModFortified {
		t.Errorf("expected fortified flag, got %v %v", m, ok)
	}
	if d, ok := ParseDamageType("sharp"); !ok || d.CannotPop() != ModLead|ModFrozen {
		t.Errorf("sharp cannot pop lead or frozen, got %s", d.CannotPop())
	}
}
