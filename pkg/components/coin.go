package components

// CoinComponent is a collectible coin sliding to a stop.
type CoinComponent struct {
	Value          int
	VelocityX      float64 // pixels per frame
	VelocityY      float64
	Friction       float64 // velocity multiplier per frame
	AnimationTimer float64 // ms
	FloatOffset    float64 // pixels, render only
}
