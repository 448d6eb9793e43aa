package systems

import (
	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// Messenger shows a transient message to the player.
type Messenger interface {
	ShowMessage(text string, durationMs float64)
}

// LevelRules are the theme hooks the systems call into. The level owns the
// implementation; systems never branch on the theme themselves.
type LevelRules interface {
	// OnBlockDestroyed runs after a projectile destroys a level block.
	OnBlockDestroyed(block *components.BlockComponent)
	// OnPowerUpCollected runs after a power-up's effect has been applied.
	OnPowerUpCollected(powerUp types.PowerUpType)
	// OnBirdFreed runs after a caged bird has been freed.
	OnBirdFreed()
	// DoorGate reports whether the theme objective still bars every door,
	// and the hint to show when it does.
	DoorGate() (hint string, blocked bool)
}

// entityBounds returns the world rectangle of an entity with a position and
// a collision box.
func entityBounds(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return components.Bounds(pos, col), true
}

// LevelProgress returns the level's objective singleton, or nil when the
// level has none.
func LevelProgress(em *ecs.EntityManager) *components.LevelProgressComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.LevelProgressComponent](em) {
		progress, _ := ecs.GetComponent[*components.LevelProgressComponent](em, id)
		return progress
	}
	return nil
}

// UnlockAllDoors unlocks every door in the level.
func UnlockAllDoors(em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith1[*components.DoorComponent](em) {
		door, _ := ecs.GetComponent[*components.DoorComponent](em, id)
		door.Locked = false
	}
}
