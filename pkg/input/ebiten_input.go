package input

import (
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[Action][]ebiten.Key{
	ActionUp:       {ebiten.KeyW, ebiten.KeyArrowUp},
	ActionDown:     {ebiten.KeyS, ebiten.KeyArrowDown},
	ActionLeft:     {ebiten.KeyA, ebiten.KeyArrowLeft},
	ActionRight:    {ebiten.KeyD, ebiten.KeyArrowRight},
	ActionFire:     {ebiten.KeySpace},
	ActionInteract: {ebiten.KeyE},
	ActionShop:     {ebiten.KeyB},
	ActionPause:    {ebiten.KeyEscape},
}

// EbitenInput reads keyboard, mouse and touch through ebiten.
// Poll must run once at the start of every Update.
type EbitenInput struct {
	tap             *TapDetector
	lastTouchX      int
	lastTouchY      int
	pointerX        float64
	pointerY        float64
	pointerDown     bool
	pointerJustDown bool
	consumed        bool
}

// NewEbitenInput creates the adapter. clock times taps.
func NewEbitenInput(clock utils.Clock) *EbitenInput {
	return &EbitenInput{tap: NewTapDetector(clock)}
}

// Poll samples the pointer for this frame. Touch wins over the mouse.
func (in *EbitenInput) Poll() {
	in.tap.Reset()
	in.consumed = false

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		in.lastTouchX, in.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		in.pointerX, in.pointerY = float64(in.lastTouchX), float64(in.lastTouchY)
		in.pointerDown = true
	} else {
		x, y := ebiten.CursorPosition()
		in.pointerX, in.pointerY = float64(x), float64(y)
		in.pointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	in.pointerJustDown = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if in.pointerJustDown {
		in.tap.Press()
	}

	released := len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if released {
		if len(touchIDs) == 0 {
			// the touch is gone; aim at where it lifted
			in.pointerX, in.pointerY = float64(in.lastTouchX), float64(in.lastTouchY)
		}
		in.tap.Release()
	}
}

// IsActionHeld implements Input.
func (in *EbitenInput) IsActionHeld(a Action) bool {
	if a == ActionFire && in.pointerDown {
		return true
	}
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsActionPressed implements Input.
func (in *EbitenInput) IsActionPressed(a Action) bool {
	if in.consumed {
		return false
	}
	if a == ActionFire && in.pointerJustDown {
		return true
	}
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// PointerPosition implements Input.
func (in *EbitenInput) PointerPosition() (float64, float64) {
	return in.pointerX, in.pointerY
}

// WasTapped implements Input.
func (in *EbitenInput) WasTapped() bool {
	return in.tap.Tapped()
}

// Consume implements Input. Presses stay dropped until the next Poll.
func (in *EbitenInput) Consume() {
	in.consumed = true
	in.pointerJustDown = false
	in.tap.Cancel()
}
