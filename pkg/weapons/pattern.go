package weapons

// MaxPatternLevel is the highest weapon level with its own fire pattern.
// Higher levels reuse it.
const MaxPatternLevel = 3

// SpreadStep is the angle between adjacent barrels, in radians.
const SpreadStep = 0.2

// Shot is one barrel of a fire pattern.
type Shot struct {
	AngleOffset float64 // radians relative to the aim angle
	Damage      int     // base damage before the player's multiplier
}

// Pattern returns the barrels fired at a weapon level.
//
//	level 1: one shot, 10 damage
//	level 2: aim and aim+0.2, 10 damage each
//	level 3+: aim-0.2, aim and aim+0.2, 15 damage each
func Pattern(level int) []Shot {
	switch {
	case level <= 1:
		return []Shot{{AngleOffset: 0, Damage: 10}}
	case level == 2:
		return []Shot{
			{AngleOffset: 0, Damage: 10},
			{AngleOffset: SpreadStep, Damage: 10},
		}
	default:
		return []Shot{
			{AngleOffset: -SpreadStep, Damage: 15},
			{AngleOffset: 0, Damage: 15},
			{AngleOffset: SpreadStep, Damage: 15},
		}
	}
}
