package systems

import (
	"math/rand"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/player"
)

// BlockCombatSystem resolves player projectiles against level blocks.
// Power-up blocks are left to PowerUpSystem.
type BlockCombatSystem struct {
	entityManager *ecs.EntityManager
	rules         LevelRules
	coins         *config.CoinConfig
	rng           *rand.Rand
}

// NewBlockCombatSystem creates the system. rules may be nil for levels
// without theme hooks.
func NewBlockCombatSystem(em *ecs.EntityManager, rules LevelRules, coins *config.CoinConfig, rng *rand.Rand) *BlockCombatSystem {
	return &BlockCombatSystem{
		entityManager: em,
		rules:         rules,
		coins:         coins,
		rng:           rng,
	}
}

// Update damages blocks hit by the player's projectiles. Every projectile
// that touches a block is spent, whether or not the block can break.
func (s *BlockCombatSystem) Update(p *player.Player) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.BlockComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		if ecs.HasComponent[*components.PowerUpComponent](em, id) {
			continue
		}
		block, _ := ecs.GetComponent[*components.BlockComponent](em, id)
		bounds, _ := entityBounds(em, id)

		for _, proj := range p.Projectiles {
			if !proj.Active || !bounds.Overlaps(proj.Bounds()) {
				continue
			}
			proj.Active = false
			if !block.Breakable {
				continue
			}
			hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
			if !ok || !hp.TakeDamage(proj.Damage) {
				continue
			}

			p.AddScore(block.DestructionScore)
			if s.rules != nil {
				s.rules.OnBlockDestroyed(block)
			}
			s.maybeDropCoin(bounds.Center())
			em.DestroyEntity(id)
			break
		}
	}
}

func (s *BlockCombatSystem) maybeDropCoin(x, y float64) {
	if s.rng.Float64() >= s.coins.BlockDropChance {
		return
	}
	span := s.coins.BlockMaxValue - s.coins.BlockMinValue + 1
	value := s.coins.BlockMinValue + s.rng.Intn(span)
	entities.NewCoinEntity(s.entityManager, s.coins, s.rng, entities.CoinOptions{X: x, Y: y, Value: value})
}
