// internal/defs/projectiles.go
package defs

import "fmt"

// MovementKind tags how a projectile travels.
type MovementKind string

const (
	// MoveStraight flies along a fixed velocity.
	MoveStraight MovementKind = "STRAIGHT"
	// MoveStatic travels to a waypoint and rests there.
	MoveStatic MovementKind = "STATIC"
)

// ProjectileDefinition holds the static data needed to build a damage source.
type ProjectileDefinition struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Movement     MovementKind `json:"movement" yaml:"movement"`
	Damage       int          `json:"damage" yaml:"damage"`
	Pierce       int          `json:"pierce" yaml:"pierce"`
	Radius       float64      `json:"radius" yaml:"radius"`
	Speed        float64      `json:"speed" yaml:"speed"`       // path units per second
	Lifetime     float64      `json:"lifetime" yaml:"lifetime"` // seconds
	Range        float64      `json:"range,omitempty" yaml:"range,omitempty"` // static projectiles stop this far out
	DamageType   DamageType   `json:"damage_type" yaml:"damage_type"`
	CannotTarget Modifier     `json:"cannot_target" yaml:"cannot_target"`
	Effect       *Effect      `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// ProjectileLibrary is the built-in set of projectile presets keyed by ID.
var ProjectileLibrary = map[string]ProjectileDefinition{
	"DART": {
		ID: "DART", Name: "Dart", Movement: MoveStraight,
		Damage: 1, Pierce: 2, Radius: 6, Speed: 600, Lifetime: 1.5,
		DamageType: DamageSharp, CannotTarget: ModCamo,
	},
	"TACK": {
		ID: "TACK", Name: "Tack", Movement: MoveStraight,
		Damage: 1, Pierce: 1, Radius: 4, Speed: 500, Lifetime: 0.4,
		DamageType: DamageSharp, CannotTarget: ModCamo,
	},
	"BOMB": {
		ID: "BOMB", Name: "Bomb", Movement: MoveStraight,
		Damage: 1, Pierce: 14, Radius: 40, Speed: 350, Lifetime: 1.2,
		DamageType: DamageExplosion, CannotTarget: ModCamo,
	},
	"ICE": {
		ID: "ICE", Name: "Ice shard", Movement: MoveStraight,
		Damage: 1, Pierce: 3, Radius: 8, Speed: 400, Lifetime: 1,
		DamageType: DamageFrigid, CannotTarget: ModCamo,
		Effect: &Effect{Kind: EffectSpeed, Strength: 0.5, Duration: 2},
	},
	"LASER": {
		ID: "LASER", Name: "Laser", Movement: MoveStraight,
		Damage: 2, Pierce: 8, Radius: 5, Speed: 900, Lifetime: 1,
		DamageType: DamageEnergy,
	},
	"GLUE": {
		ID: "GLUE", Name: "Glue puddle", Movement: MoveStatic,
		Damage: 0, Pierce: 6, Radius: 30, Speed: 300, Lifetime: 6, Range: 120,
		DamageType: DamageNormal, CannotTarget: ModCamo,
		Effect: &Effect{Kind: EffectSpeed, Strength: 0.4, Duration: 3},
	},
}

// Projectile returns the preset with the given ID.
func Projectile(id string) (ProjectileDefinition, error) {
	def, ok := ProjectileLibrary[id]
	if !ok {
		return ProjectileDefinition{}, fmt.Errorf("unknown projectile preset %q", id)
	}
	return def, nil
}
