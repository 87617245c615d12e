package config

import (
	"image/color"
	"testing"

	"go-bloon-defense/internal/defs"
)

func TestEveryTierHasAColor(t *testing.T) {
	seen := map[color.RGBA]defs.Tier{}
	for _, tier := range defs.Tiers() {
		c, ok := tierColors[tier]
		if !ok {
			t.Errorf("Tier %s has no color", tier)
			continue
		}
		if other, dup := seen[c]; dup {
			t.Errorf("Tiers %s and %s share a color", tier, other)
		}
		seen[c] = tier
	}
	if got := TierColor(defs.Tier(200)); got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("Expected magenta for an unknown tier, got %v", got)
	}
}

func TestWorldOriginIsScreenCentre(t *testing.T) {
	if WorldOriginX*2 != ScreenWidth || WorldOriginY*2 != ScreenHeight {
		t.Errorf("Expected the origin at the screen centre, got (%d,%d)", WorldOriginX, WorldOriginY)
	}
}
