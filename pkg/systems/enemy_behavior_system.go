package systems

import (
	"math/rand"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

// EnemyBehaviorSystem runs enemy AI: straight-line pursuit, shooter fire
// and the boss phase machine. It never grants rewards; whoever kills an
// enemy does that.
type EnemyBehaviorSystem struct {
	entityManager *ecs.EntityManager
	stats         *config.EnemyStatsConfig
	projectile    weapons.Spec
	rng           *rand.Rand
}

// NewEnemyBehaviorSystem creates the AI system.
//
// Parameters:
//   - stats: enemy table, used for boss phases and colors
//   - projectile: enemy projectile size and range
//   - rng: drives the boss's attack pattern choice
func NewEnemyBehaviorSystem(em *ecs.EntityManager, stats *config.EnemyStatsConfig, projectile weapons.Spec, rng *rand.Rand) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		entityManager: em,
		stats:         stats,
		projectile:    projectile,
		rng:           rng,
	}
}

// UpdateEnemy runs one enemy for one frame and advances its projectiles.
func (s *EnemyBehaviorSystem) UpdateEnemy(id ecs.EntityID, deltaTime float64) {
	em := s.entityManager
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}

	if boss, isBoss := ecs.GetComponent[*components.BossComponent](em, id); isBoss {
		s.updateBoss(id, enemy, boss, pos, deltaTime)
	} else {
		s.chase(enemy, pos)
	}

	enemy.Projectiles = weapons.UpdateAll(enemy.Projectiles)

	if shooter, ok := ecs.GetComponent[*components.ShooterComponent](em, id); ok {
		s.updateShooter(enemy, shooter, pos, deltaTime)
	}
}

// chase moves the enemy straight at its target's corner.
func (s *EnemyBehaviorSystem) chase(enemy *components.EnemyComponent, pos *components.PositionComponent) {
	if enemy.Target == nil {
		return
	}
	target := enemy.Target.Bounds()
	dist := utils.Distance(pos.X, pos.Y, target.X, target.Y)
	if dist <= 0 {
		return
	}
	pos.X += (target.X - pos.X) / dist * enemy.Speed
	pos.Y += (target.Y - pos.Y) / dist * enemy.Speed
}

func (s *EnemyBehaviorSystem) updateShooter(enemy *components.EnemyComponent, shooter *components.ShooterComponent, pos *components.PositionComponent, deltaTime float64) {
	if enemy.Target != nil && shooter.ShootCooldown <= 0 {
		target := enemy.Target.Bounds()
		if utils.Distance(pos.X, pos.Y, target.X, target.Y) < shooter.ShootRange {
			angle := utils.AngleTo(pos.X, pos.Y, target.X, target.Y)
			enemy.Projectiles = append(enemy.Projectiles, weapons.New(weapons.OwnerEnemy, s.projectile,
				pos.X, pos.Y, angle, shooter.ProjectileSpeed, shooter.ProjectileDamage))
			shooter.ShootCooldown = shooter.ShootDelay
		}
	}
	if shooter.ShootCooldown > 0 {
		shooter.ShootCooldown -= deltaTime
	}
}

// updateBoss advances the phase machine, then either chases or fires one
// burst of the current volley.
func (s *EnemyBehaviorSystem) updateBoss(id ecs.EntityID, enemy *components.EnemyComponent, boss *components.BossComponent, pos *components.PositionComponent, deltaTime float64) {
	bs := &s.stats.Boss
	s.advancePhase(id, enemy, boss)

	boss.AttackTimer += deltaTime
	if boss.AttackTimer >= boss.AttackCooldown {
		boss.Pattern = s.pickPattern(boss.Phase)
		boss.ShotCount = 0
		boss.AttackTimer = 0
	}

	switch {
	case boss.Pattern == types.AttackChase:
		s.chase(enemy, pos)
	case boss.ShotCount < boss.ShotsPerVolley:
		s.fireBurst(enemy, pos, bs.Burst(boss.Phase))
		boss.ShotCount++
		if boss.ShotCount >= boss.ShotsPerVolley {
			boss.Pattern = types.AttackChase
			boss.ShotCount = 0
		}
	}
}

// advancePhase moves the boss to phase 2 at 60% health and to phase 3 at
// 30%, at most one phase per frame. Phases never go back.
func (s *EnemyBehaviorSystem) advancePhase(id ecs.EntityID, enemy *components.EnemyComponent, boss *components.BossComponent) {
	hp, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return
	}
	bs := &s.stats.Boss
	ratio := hp.Ratio()
	changed := false
	if boss.Phase == 1 && ratio <= bs.Phase2Threshold {
		boss.Phase = 2
		enemy.Speed = bs.Phase2Speed
		changed = true
	} else if boss.Phase == 2 && ratio <= bs.Phase3Threshold {
		boss.Phase = 3
		enemy.Speed = bs.Phase3Speed
		boss.AttackCooldown = bs.Phase3Cooldown
		changed = true
	}
	if !changed {
		return
	}
	if render, ok := ecs.GetComponent[*components.RenderComponent](s.entityManager, id); ok {
		base := render.Color
		if stats, ok := s.stats.Stats(types.EnemyBoss); ok {
			base = stats.RGBA()
		}
		render.Color = bs.PhaseColor(boss.Phase, base)
	}
}

func (s *EnemyBehaviorSystem) pickPattern(phase int) types.AttackPattern {
	if phase >= 3 {
		if s.rng.Float64() < s.stats.Boss.Phase3ShootWeight {
			return types.AttackShoot
		}
		return types.AttackChase
	}
	if s.rng.Intn(2) == 0 {
		return types.AttackChase
	}
	return types.AttackShoot
}

// fireBurst fires a fan of shots centered on the aim angle.
func (s *EnemyBehaviorSystem) fireBurst(enemy *components.EnemyComponent, pos *components.PositionComponent, burst config.BurstStats) {
	if enemy.Target == nil {
		return
	}
	target := enemy.Target.Bounds()
	angle := utils.AngleTo(pos.X, pos.Y, target.X, target.Y)
	mid := float64(burst.Shots-1) / 2
	for i := 0; i < burst.Shots; i++ {
		offset := (float64(i) - mid) * burst.Spread
		enemy.Projectiles = append(enemy.Projectiles, weapons.New(weapons.OwnerEnemy, s.projectile,
			pos.X, pos.Y, angle+offset, burst.Speed, burst.Damage))
	}
}
