package systems

import (
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/utils"
)

// ContactBlockSystem handles blocks that act on the player by touch:
// bouncers shove the player away and portals teleport it.
type ContactBlockSystem struct {
	entityManager *ecs.EntityManager
}

// NewContactBlockSystem creates the system.
func NewContactBlockSystem(em *ecs.EntityManager) *ContactBlockSystem {
	return &ContactBlockSystem{entityManager: em}
}

// Update ticks portal cooldowns and applies contact effects.
func (s *ContactBlockSystem) Update(deltaTime float64, p *player.Player, levelBounds utils.Rect) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith1[*components.PortalComponent](em) {
		portal, _ := ecs.GetComponent[*components.PortalComponent](em, id)
		if portal.CooldownRemaining > 0 {
			portal.CooldownRemaining -= deltaTime
		}
		bounds, ok := entityBounds(em, id)
		if !ok || !bounds.Overlaps(p.Bounds()) || portal.CooldownRemaining > 0 {
			continue
		}
		p.X, p.Y = portal.TargetX, portal.TargetY
		p.ClampTo(levelBounds)
		portal.CooldownRemaining = portal.Cooldown
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BouncerComponent](em) {
		bouncer, _ := ecs.GetComponent[*components.BouncerComponent](em, id)
		bounds, ok := entityBounds(em, id)
		if !ok || !bounds.Overlaps(p.Bounds()) {
			continue
		}
		bx, by := bounds.Center()
		px, py := p.Center()
		dx, dy := px-bx, py-by
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dx, dy, dist = 0, -1, 1
		}
		p.X += dx / dist * bouncer.BounceStrength
		p.Y += dy / dist * bouncer.BounceStrength
		p.ClampTo(levelBounds)
	}
}
