package systems

import (
	"math/rand"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/player"
)

// EnemyCombatSystem resolves the player's projectiles against enemies and
// pays out kills.
type EnemyCombatSystem struct {
	entityManager *ecs.EntityManager
	coins         *config.CoinConfig
	rng           *rand.Rand
}

// NewEnemyCombatSystem creates the system.
func NewEnemyCombatSystem(em *ecs.EntityManager, coins *config.CoinConfig, rng *rand.Rand) *EnemyCombatSystem {
	return &EnemyCombatSystem{
		entityManager: em,
		coins:         coins,
		rng:           rng,
	}
}

// Update damages enemies hit this frame. A kill grants score and XP and
// may drop the enemy's coins where it stood.
func (s *EnemyCombatSystem) Update(p *player.Player) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
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
			if !hp.TakeDamage(proj.Damage) {
				continue
			}

			p.AddScore(enemy.ScoreValue)
			p.AddXP(enemy.XPValue)
			if s.rng.Float64() < enemy.CoinDropChance {
				entities.NewCoinEntity(em, s.coins, s.rng, entities.CoinOptions{X: pos.X, Y: pos.Y, Value: enemy.CoinValue})
			}
			em.DestroyEntity(id)
			break
		}
	}
}
