package components

import "image/color"

// Shape picks the primitive a renderer uses for the entity.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// RenderComponent is the opaque draw descriptor handed to the renderer.
type RenderComponent struct {
	Color   color.RGBA
	Shape   Shape
	Pattern string // optional texture hint, e.g. "brick", "hazard", "hedge"
	Layer   int    // lower layers draw first
	Hidden  bool
}
