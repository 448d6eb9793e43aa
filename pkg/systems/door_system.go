package systems

import (
	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/player"
)

// Door hints.
const (
	msgDoorNeedsKey = "You need a key to unlock this door!"
	msgDoorUseKey   = "Press E to use a key and unlock the door"
	msgDoorUnlocked = "Door unlocked!"
)

// DoorSystem handles the player touching doors.
type DoorSystem struct {
	entityManager *ecs.EntityManager
	rules         LevelRules
	messages      Messenger
	duration      float64
}

// NewDoorSystem creates the system. duration is how long hints stay up, in ms.
func NewDoorSystem(em *ecs.EntityManager, rules LevelRules, messages Messenger, duration float64) *DoorSystem {
	return &DoorSystem{
		entityManager: em,
		rules:         rules,
		messages:      messages,
		duration:      duration,
	}
}

// Update checks every door the player overlaps, in creation order, and
// reports whether the player walked through an unlocked one. The first
// such door ends the pass.
//
// A hint shows once per contact. The flag clears on the first frame the
// player touches no door at all.
func (s *DoorSystem) Update(p *player.Player, in input.Input) bool {
	em := s.entityManager
	progress := LevelProgress(em)
	if progress == nil {
		progress = &components.LevelProgressComponent{}
	}

	touching := false
	for _, id := range ecs.GetEntitiesWith2[*components.DoorComponent, *components.PositionComponent](em) {
		bounds, ok := entityBounds(em, id)
		if !ok || !bounds.Overlaps(p.Bounds()) {
			continue
		}
		touching = true
		door, _ := ecs.GetComponent[*components.DoorComponent](em, id)

		if s.rules != nil {
			if hint, blocked := s.rules.DoorGate(); blocked {
				if !progress.DoorHintShown {
					s.show(hint)
					progress.DoorHintShown = true
				}
				continue
			}
		}

		if door.Locked && !progress.DoorHintShown {
			if p.Keys > 0 {
				s.show(msgDoorUseKey)
			} else {
				s.show(msgDoorNeedsKey)
			}
			progress.DoorHintShown = true
		}

		if door.Locked {
			if p.Keys > 0 && in != nil && in.IsActionHeld(input.ActionInteract) && p.UseKey() {
				door.Locked = false
				s.show(msgDoorUnlocked)
			}
			continue
		}
		return true
	}

	if !touching {
		progress.DoorHintShown = false
	}
	return false
}

func (s *DoorSystem) show(text string) {
	if s.messages != nil {
		s.messages.ShowMessage(text, s.duration)
	}
}
