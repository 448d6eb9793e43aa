package input

// Snapshot is an Input frozen to fixed values.
type Snapshot struct {
	Held     map[Action]bool
	Pressed  map[Action]bool
	PointerX float64
	PointerY float64
	Tap      bool
}

// NewSnapshot returns an idle snapshot aiming at (x, y).
func NewSnapshot(x, y float64) *Snapshot {
	return &Snapshot{
		Held:     make(map[Action]bool),
		Pressed:  make(map[Action]bool),
		PointerX: x,
		PointerY: y,
	}
}

// Hold marks actions as held and returns the snapshot for chaining.
func (s *Snapshot) Hold(actions ...Action) *Snapshot {
	for _, a := range actions {
		s.Held[a] = true
	}
	return s
}

// Press marks actions as pressed this frame. Pressed actions are also held.
func (s *Snapshot) Press(actions ...Action) *Snapshot {
	for _, a := range actions {
		s.Pressed[a] = true
		s.Held[a] = true
	}
	return s
}

// Release clears held actions.
func (s *Snapshot) Release(actions ...Action) *Snapshot {
	for _, a := range actions {
		delete(s.Held, a)
	}
	return s
}

// IsActionHeld implements Input.
func (s *Snapshot) IsActionHeld(a Action) bool { return s.Held[a] }

// IsActionPressed implements Input.
func (s *Snapshot) IsActionPressed(a Action) bool { return s.Pressed[a] }

// PointerPosition implements Input.
func (s *Snapshot) PointerPosition() (float64, float64) { return s.PointerX, s.PointerY }

// WasTapped implements Input.
func (s *Snapshot) WasTapped() bool { return s.Tap }

// Consume implements Input.
func (s *Snapshot) Consume() {
	clear(s.Pressed)
	s.Tap = false
}
