// Package input abstracts the player's controls.
//
// The simulation only sees the Input interface: named actions, a pointer
// position and taps. EbitenInput binds them to keyboard, mouse and touch;
// Snapshot is a plain value for scripted runs.
package input

// Action is a logical control.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	// ActionFire is the primary pointer button; held fires continuously.
	ActionFire
	// ActionInteract uses a key on a door.
	ActionInteract
	ActionShop
	ActionPause
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionInteract:
		return "interact"
	case ActionShop:
		return "shop"
	case ActionPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Input is what the simulation reads each frame.
type Input interface {
	// IsActionHeld reports whether the action is currently down.
	IsActionHeld(a Action) bool
	// IsActionPressed reports whether the action went down this frame.
	IsActionPressed(a Action) bool
	// PointerPosition returns the aim point in playfield pixels.
	PointerPosition() (x, y float64)
	// WasTapped reports a short press-and-release completed this frame.
	WasTapped() bool
	// Consume drops this frame's presses and any tap still in progress, so
	// the click that changed a screen does not also act on the next one.
	Consume()
}
