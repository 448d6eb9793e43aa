package components

import "github.com/decker502/powershooter/pkg/utils"

// PositionComponent stores the entity's top-left corner in playfield pixels.
type PositionComponent struct {
	X float64
	Y float64
}

// Bounds combines a position and a collision box into a world rectangle.
func Bounds(pos *PositionComponent, col *CollisionComponent) utils.Rect {
	return utils.NewRect(pos.X, pos.Y, col.Width, col.Height)
}
