package utils

import (
	"math"
	"testing"

	"go-bloon-defense/pkg/track"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		name     string
		from, to track.Vec2
		want     float64
	}{
		{"east", track.Vec2{}, track.Vec2{X: 1}, 0},
		{"north", track.Vec2{}, track.Vec2{Y: 5}, math.Pi / 2},
		{"west", track.Vec2{X: 3, Y: 3}, track.Vec2{X: 1, Y: 3}, math.Pi},
		{"south", track.Vec2{}, track.Vec2{Y: -2}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heading(tt.from, tt.to); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4.5 * math.Pi, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if got := Degrees(-math.Pi / 4); math.Abs(got+45) > 1e-9 {
		t.Errorf("Expected -45 degrees, got %v", got)
	}
}
