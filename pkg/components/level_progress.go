package components

// LevelProgressComponent is the per-level objective state. Each level owns
// exactly one, attached to a singleton entity.
type LevelProgressComponent struct {
	BiochemDestroyed int
	BiochemTarget    int
	BirdsFreed       int
	BirdTarget       int
	KeysCollected    int
	KeyTarget        int

	TimeLimit     float64 // ms, 0 when the level is not timed
	TimeRemaining float64 // ms

	ObjectiveComplete bool
	DoorHintShown     bool
}
