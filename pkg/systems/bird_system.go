package systems

import (
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
)

// wingFlapInterval is the time between wing states, in ms.
const wingFlapInterval = 200

// BirdSystem animates birds, frees caged ones hit by projectiles and
// removes freed ones once they leave the screen.
type BirdSystem struct {
	entityManager *ecs.EntityManager
	rules         LevelRules
	xpReward      int
	escapeY       float64
}

// NewBirdSystem creates the system.
//
// Parameters:
//   - xpReward: experience granted per freed bird
//   - escapeY: freed birds above this line are removed
func NewBirdSystem(em *ecs.EntityManager, rules LevelRules, xpReward int, escapeY float64) *BirdSystem {
	return &BirdSystem{
		entityManager: em,
		rules:         rules,
		xpReward:      xpReward,
		escapeY:       escapeY,
	}
}

// Update runs one frame for every bird.
func (s *BirdSystem) Update(deltaTime float64, p *player.Player) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.BirdComponent, *components.PositionComponent](em) {
		bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		bird.AnimationTimer += deltaTime
		if bird.AnimationTimer > wingFlapInterval {
			bird.WingState = (bird.WingState + 1) % 3
			bird.AnimationTimer = 0
		}

		if !bird.Caged {
			pos.X += math.Cos(bird.FlyAngle) * bird.FlySpeed
			pos.Y -= bird.FlySpeed * 1.5
			if pos.Y < s.escapeY {
				em.DestroyEntity(id)
			}
			continue
		}

		bounds, ok := entityBounds(em, id)
		if !ok {
			continue
		}
		for _, proj := range p.Projectiles {
			if !proj.Active || !bounds.Overlaps(proj.Bounds()) {
				continue
			}
			proj.Active = false
			if !bird.Caged {
				continue
			}
			bird.Caged = false
			p.AddScore(bird.ScoreValue)
			p.AddXP(s.xpReward)
			if s.rules != nil {
				s.rules.OnBirdFreed()
			}
		}
	}
}
