package components

// DoorComponent marks a level exit.
type DoorComponent struct {
	Locked bool
}
