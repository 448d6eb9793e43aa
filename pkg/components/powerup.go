package components

import "github.com/decker502/powershooter/pkg/types"

// PowerUpComponent marks a shootable pickup. It always carries a
// HealthComponent and a BlockComponent of type powerup.
type PowerUpComponent struct {
	Type           types.PowerUpType
	AnimationTimer float64 // ms, drives the hover bob
	HoverOffset    float64 // pixels, render only
}
