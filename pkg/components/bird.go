package components

import "image/color"

// BirdComponent is a caged bird on the birds theme. Shooting the cage frees
// it; a freed bird flies upward until it leaves the screen.
type BirdComponent struct {
	Caged          bool
	Color          color.RGBA
	ScoreValue     int
	FlySpeed       float64 // pixels per frame once freed
	FlyAngle       float64 // radians, horizontal drift
	AnimationTimer float64 // ms
	WingState      int     // 0..2, advances every 200ms
}
