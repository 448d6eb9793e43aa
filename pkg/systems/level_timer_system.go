package systems

import (
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
)

// LevelTimerSystem counts down timed levels.
type LevelTimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewLevelTimerSystem creates the countdown system.
func NewLevelTimerSystem(em *ecs.EntityManager) *LevelTimerSystem {
	return &LevelTimerSystem{entityManager: em}
}

// Update advances the countdown and reports whether time has run out.
// Once it has, every call inflicts the player's remaining health; the
// caller sees the death through the player's Active flag.
func (s *LevelTimerSystem) Update(deltaTime float64, p *player.Player) bool {
	progress := LevelProgress(s.entityManager)
	if progress == nil || progress.TimeLimit <= 0 {
		return false
	}
	progress.TimeRemaining -= deltaTime
	if progress.TimeRemaining > 0 {
		return false
	}
	progress.TimeRemaining = 0
	p.TakeDamage(p.Health)
	return true
}

// Reset restarts the countdown from the full time limit.
func (s *LevelTimerSystem) Reset() {
	if progress := LevelProgress(s.entityManager); progress != nil {
		progress.TimeRemaining = progress.TimeLimit
	}
}
