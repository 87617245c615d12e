// internal/component/status_effect.go
package component

import "go-bloon-defense/internal/defs"

// StatusEffects хранит временные эффекты, действующие на шар.
type StatusEffects struct {
	Active []defs.Effect
}

// SpeedMultiplier — произведение всех активных эффектов скорости.
func (s *StatusEffects) SpeedMultiplier() float64 {
	if s == nil {
		return 1
	}
	m := 1.0
	for _, e := range s.Active {
		if e.Kind == defs.EffectSpeed {
			m *= e.Strength
		}
	}
	return m
}

// WeaknessBonus — дополнительный урон к каждому прицельному попаданию.
func (s *StatusEffects) WeaknessBonus() int {
	if s == nil {
		return 0
	}
	bonus := 0
	for _, e := range s.Active {
		if e.Kind == defs.EffectWeakness {
			bonus += int(e.Strength)
		}
	}
	return bonus
}

// BonusIncome — дополнительный доход при лопании шара.
func (s *StatusEffects) BonusIncome() int {
	if s == nil {
		return 0
	}
	bonus := 0
	for _, e := range s.Active {
		if e.Kind == defs.EffectBonusIncome {
			bonus += int(e.Strength)
		}
	}
	return bonus
}
