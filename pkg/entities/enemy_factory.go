package entities

import (
	"fmt"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
)

// NewEnemyEntity creates an enemy of the given type at (x, y).
//
// Parameters:
//   - em: the level's EntityManager
//   - stats: enemy table
//   - enemyType: basic, fast, tank, shooter or boss
//   - x, y: spawn position (top-left)
//
// Returns the entity ID, or an error for types missing from the table.
// Shooters also get a ShooterComponent and the boss a BossComponent.
func NewEnemyEntity(em *ecs.EntityManager, stats *config.EnemyStatsConfig, enemyType types.EnemyType, x, y float64) (ecs.EntityID, error) {
	s, ok := stats.Stats(enemyType)
	if !ok {
		return 0, fmt.Errorf("no stats for enemy type %q", enemyType)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: s.Size, Height: s.Size})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: s.Health, MaxHealth: s.Health})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Type:           enemyType,
		Speed:          s.Speed,
		ScoreValue:     s.Score,
		XPValue:        s.XP,
		CoinValue:      s.Coins,
		CoinDropChance: s.CoinDropChance,
	})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   s.RGBA(),
		Pattern: string(enemyType),
		Layer:   LayerEnemy,
	})

	switch enemyType {
	case types.EnemyShooter:
		ecs.AddComponent(em, id, &components.ShooterComponent{
			ShootDelay:       stats.Shooter.ShootDelay,
			ShootRange:       stats.Shooter.ShootRange,
			ProjectileSpeed:  stats.Shooter.ProjectileSpeed,
			ProjectileDamage: stats.Shooter.ProjectileDamage,
		})
	case types.EnemyBoss:
		ecs.AddComponent(em, id, &components.BossComponent{
			Phase:          1,
			Pattern:        types.AttackChase,
			AttackCooldown: stats.Boss.AttackCooldown,
			ShotsPerVolley: stats.Boss.ShotsPerVolley,
		})
	}
	return id, nil
}
