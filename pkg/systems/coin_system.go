package systems

import (
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
)

// CoinSystem slides dropped coins to a stop and credits the player on
// contact.
type CoinSystem struct {
	entityManager *ecs.EntityManager
}

// NewCoinSystem creates the system.
func NewCoinSystem(em *ecs.EntityManager) *CoinSystem {
	return &CoinSystem{entityManager: em}
}

// Update moves every coin one step, then collects the ones the player touches.
func (s *CoinSystem) Update(p *player.Player) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.CoinComponent, *components.PositionComponent](em) {
		coin, _ := ecs.GetComponent[*components.CoinComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		pos.X += coin.VelocityX
		pos.Y += coin.VelocityY
		coin.VelocityX *= coin.Friction
		coin.VelocityY *= coin.Friction
		coin.AnimationTimer += 0.1
		coin.FloatOffset = math.Sin(coin.AnimationTimer) * 2

		bounds, ok := entityBounds(em, id)
		if ok && bounds.Overlaps(p.Bounds()) {
			p.AddCoins(coin.Value)
			em.DestroyEntity(id)
		}
	}
}
