// internal/defs/effects.go
package defs

import (
	"fmt"
	"strings"
)

// EffectKind tags the status effect variant.
type EffectKind uint8

const (
	// EffectSpeed multiplies movement speed by Strength (slow, stun or haste).
	EffectSpeed EffectKind = iota
	// EffectWeakness adds Strength damage to every later targeted hit.
	EffectWeakness
	// EffectBonusIncome credits Strength extra income when the bloon pops.
	EffectBonusIncome
	// EffectDefortify strips fortification. Instant.
	EffectDefortify
	// EffectDecamo strips camouflage. Instant.
	EffectDecamo
)

var effectNames = map[EffectKind]string{
	EffectSpeed:       "speed",
	EffectWeakness:    "weakness",
	EffectBonusIncome: "bonus_income",
	EffectDefortify:   "defortify",
	EffectDecamo:      "decamo",
}

func (k EffectKind) String() string {
	if n, ok := effectNames[k]; ok {
		return n
	}
	return fmt.Sprintf("effect(%d)", uint8(k))
}

// Instant reports whether the kind applies once and carries no duration.
func (k EffectKind) Instant() bool {
	switch k {
	case EffectDefortify, EffectDecamo:
		return true
	case EffectSpeed, EffectWeakness, EffectBonusIncome:
		return false
	}
	return true
}

// ParseEffectKind resolves an effect kind by name.
func ParseEffectKind(name string) (EffectKind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range effectNames {
		if n == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", name)
}

// Effect is a status effect instance. Duration is remaining simulation
// seconds and is ignored for instant kinds.
type Effect struct {
	Kind     EffectKind `json:"kind" yaml:"kind"`
	Strength float64    `json:"strength" yaml:"strength"`
	Duration float64    `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Slow builds a speed effect.
func Slow(multiplier, seconds float64) Effect {
	return Effect{Kind: EffectSpeed, Strength: multiplier, Duration: seconds}
}

// Weakness builds a weakness effect.
func Weakness(bonus int, seconds float64) Effect {
	return Effect{Kind: EffectWeakness, Strength: float64(bonus), Duration: seconds}
}
