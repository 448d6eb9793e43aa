package components

// CollisionComponent is the entity's axis-aligned box, anchored at its position.
type CollisionComponent struct {
	Width  float64 // pixels
	Height float64 // pixels
}
