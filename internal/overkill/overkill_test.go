package overkill

import (
	"slices"
	"testing"

	"go-bloon-defense/internal/defs"
)

func mustTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := BuildTable()
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}
	return tbl
}

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(mustTable(t))
}

func repeat(t defs.Tier, n int) []defs.Tier {
	out := make([]defs.Tier, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func TestResolveWithoutOverkillIsChildren(t *testing.T) {
	for _, tier := range defs.Tiers() {
		if got := Resolve(tier, 0); !slices.Equal(got, tier.Children()) {
			t.Errorf("%s: expected %v, got %v", tier, tier.Children(), got)
		}
	}
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name      string
		tier      defs.Tier
		magnitude int
		want      []defs.Tier
	}{
		{"blue exact", defs.Blue, 0, []defs.Tier{defs.Red}},
		{"blue overkilled", defs.Blue, 1, nil},
		{"purple exact", defs.Purple, 0, []defs.Tier{defs.Pink, defs.Pink}},
		{"purple skips one layer", defs.Purple, 1, []defs.Tier{defs.Yellow, defs.Yellow}},
		{"zebra keeps order", defs.Zebra, 0, []defs.Tier{defs.Black, defs.White}},
		{"zebra skips one layer", defs.Zebra, 1, repeat(defs.Pink, 4)},
		// Ceramic (10 hp) hit for 13: rainbow, zebra and black/white layers are consumed.
		{"ceramic overkill 3", defs.Ceramic, 3, repeat(defs.Pink, 16)},
		{"ceramic overkill 7", defs.Ceramic, 7, repeat(defs.Red, 16)},
		{"ceramic beyond pool", defs.Ceramic, 8, nil},
		// A ceramic child of a MOAB keeps 7 of its 10 hp and is consumed.
		{"moab overkill 3", defs.MOAB, 3, nil},
		{"moab exact", defs.MOAB, 0, repeat(defs.Ceramic, 4)},
		{"moab overkill 10", defs.MOAB, 10, repeat(defs.Rainbow, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.tier, tt.magnitude)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTableMatchesLiveResolution(t *testing.T) {
	e := mustEngine(t)
	for _, tier := range defs.Tiers() {
		limit := defs.PoolDepth(tier) + 5
		if Exempt(tier) {
			limit = 30
		}
		for m := 0; m <= limit; m++ {
			got := e.Descendants(tier, -m)
			want := Resolve(tier, m)
			if !slices.Equal(got, want) {
				t.Errorf("%s magnitude %d: table gave %v, live gave %v", tier, m, got, want)
			}
		}
	}
}

func TestTableCeilings(t *testing.T) {
	tbl := mustTable(t)
	tests := []struct {
		tier defs.Tier
		want int
	}{
		{defs.Red, 0}, {defs.Blue, 1}, {defs.Pink, 4}, {defs.Purple, 5},
		{defs.Zebra, 6}, {defs.Rainbow, 7}, {defs.Ceramic, 8},
		{defs.MOAB, -1}, {defs.BAD, -1},
	}
	for _, tt := range tests {
		if got := tbl.Ceiling(tt.tier); got != tt.want {
			t.Errorf("%s: expected ceiling %d, got %d", tt.tier, tt.want, got)
		}
	}
	for _, tier := range defs.Tiers() {
		if Exempt(tier) {
			continue
		}
		rows, ok := tbl.Lookup(tier, -tbl.Ceiling(tier))
		if !ok || len(rows) != 0 {
			t.Errorf("%s: entry at the ceiling should exist and be empty, got %v (ok=%v)", tier, rows, ok)
		}
		if _, ok := tbl.Lookup(tier, -tbl.Ceiling(tier)-1); ok {
			t.Errorf("%s: lookup past the ceiling should miss", tier)
		}
	}
}

func TestLookupExemptTiersMiss(t *testing.T) {
	tbl := mustTable(t)
	for _, tier := range []defs.Tier{defs.MOAB, defs.BFB, defs.ZOMG, defs.DDT, defs.BAD} {
		if _, ok := tbl.Lookup(tier, 0); ok {
			t.Errorf("%s is exempt and must not be in the table", tier)
		}
	}
}

func TestDescendantsPositiveHealth(t *testing.T) {
	e := mustEngine(t)
	if got := e.Descendants(defs.Ceramic, 3); got != nil {
		t.Errorf("a live bloon has no descendants, got %v", got)
	}
}

func TestDescendantsPastCeilingFallsBack(t *testing.T) {
	e := mustEngine(t)
	if got := e.Descendants(defs.Rainbow, -500); len(got) != 0 {
		t.Errorf("expected nothing left after huge overkill, got %v", got)
	}
}

func TestBossLiveResolution(t *testing.T) {
	e := mustEngine(t)
	got := e.Descendants(defs.BAD, 0)
	want := []defs.Tier{defs.ZOMG, defs.ZOMG, defs.DDT, defs.DDT, defs.DDT}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
