package components

import "github.com/decker502/powershooter/pkg/types"

// BlockComponent marks a level block.
// Breakable blocks also carry a HealthComponent.
type BlockComponent struct {
	Type             types.BlockType
	Breakable        bool
	DestructionScore int // score granted when a projectile destroys the block
}

// BouncerComponent pushes an overlapping player away from the block center.
type BouncerComponent struct {
	BounceStrength float64
}

// PortalComponent teleports an overlapping player to the target point.
type PortalComponent struct {
	TargetX           float64
	TargetY           float64
	Cooldown          float64 // ms between teleports
	CooldownRemaining float64 // ms
}
