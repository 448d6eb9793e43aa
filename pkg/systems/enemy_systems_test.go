package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

func newBehavior(em *ecs.EntityManager, stats *config.EnemyStatsConfig) *EnemyBehaviorSystem {
	return NewEnemyBehaviorSystem(em, stats, weapons.EnemySpec, rand.New(rand.NewSource(1)))
}

func spawnEnemy(t *testing.T, em *ecs.EntityManager, stats *config.EnemyStatsConfig, enemyType types.EnemyType, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(em, stats, enemyType, x, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity(%s): %v", enemyType, err)
	}
	return id
}

func TestEnemyChasesTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.DefaultEnemyStats()
	sys := newBehavior(em, stats)
	id := spawnEnemy(t, em, stats, types.EnemyBasic, 0, 0)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	enemy.Target = newTestPlayer(300, 400)

	sys.UpdateEnemy(id, 16)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-0.9) > 1e-9 || math.Abs(pos.Y-1.2) > 1e-9 {
		t.Errorf("step: got (%v, %v), want (0.9, 1.2)", pos.X, pos.Y)
	}
}

func TestShooterFiresInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.DefaultEnemyStats()
	sys := newBehavior(em, stats)
	id := spawnEnemy(t, em, stats, types.EnemyShooter, 100, 100)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	shooter, _ := ecs.GetComponent[*components.ShooterComponent](em, id)
	enemy.Target = newTestPlayer(200, 100)

	sys.UpdateEnemy(id, 16)
	if len(enemy.Projectiles) != 1 {
		t.Fatalf("projectiles: got %d, want 1", len(enemy.Projectiles))
	}
	if shooter.ShootCooldown != 1984 {
		t.Errorf("cooldown: got %v, want 1984", shooter.ShootCooldown)
	}
	if enemy.Projectiles[0].Damage != 10 || enemy.Projectiles[0].Owner != weapons.OwnerEnemy {
		t.Errorf("projectile: %+v", enemy.Projectiles[0])
	}

	sys.UpdateEnemy(id, 16)
	if len(enemy.Projectiles) != 1 {
		t.Errorf("fired during cooldown: %d projectiles", len(enemy.Projectiles))
	}
}

func TestShooterHoldsFireOutOfRange(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.DefaultEnemyStats()
	sys := newBehavior(em, stats)
	id := spawnEnemy(t, em, stats, types.EnemyShooter, 0, 0)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	enemy.Target = newTestPlayer(700, 500)

	sys.UpdateEnemy(id, 16)
	if len(enemy.Projectiles) != 0 {
		t.Errorf("projectiles: got %d, want 0", len(enemy.Projectiles))
	}
}

func TestBossPhasesStepAndNeverRevert(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.DefaultEnemyStats()
	sys := newBehavior(em, stats)
	id := spawnEnemy(t, em, stats, types.EnemyBoss, 400, 300)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
	hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	render, _ := ecs.GetComponent[*components.RenderComponent](em, id)
	enemy.Target = newTestPlayer(100, 300)

	hp.CurrentHealth = 170
	sys.UpdateEnemy(id, 16)
	if boss.Phase != 2 || enemy.Speed != 0.8 {
		t.Errorf("at 57%%: phase %d speed %v, want 2 and 0.8", boss.Phase, enemy.Speed)
	}

	em2 := ecs.NewEntityManager()
	sys2 := newBehavior(em2, stats)
	id2 := spawnEnemy(t, em2, stats, types.EnemyBoss, 400, 300)
	boss2, _ := ecs.GetComponent[*components.BossComponent](em2, id2)
	hp2, _ := ecs.GetComponent[*components.HealthComponent](em2, id2)
	hp2.CurrentHealth = 50
	sys2.UpdateEnemy(id2, 16)
	if boss2.Phase != 2 {
		t.Errorf("first frame at 17%%: phase %d, want 2 (one step per frame)", boss2.Phase)
	}
	sys2.UpdateEnemy(id2, 16)
	if boss2.Phase != 3 || boss2.AttackCooldown != 2000 {
		t.Errorf("second frame at 17%%: phase %d cooldown %v, want 3 and 2000", boss2.Phase, boss2.AttackCooldown)
	}

	hp.CurrentHealth = 60
	sys.UpdateEnemy(id, 16)
	if boss.Phase != 3 {
		t.Fatalf("at 20%%: phase %d, want 3", boss.Phase)
	}
	want := utils.MustHexColor("#7f0000")
	if render.Color != want {
		t.Errorf("phase 3 color: got %v, want %v", render.Color, want)
	}

	hp.CurrentHealth = hp.MaxHealth
	sys.UpdateEnemy(id, 16)
	if boss.Phase != 3 {
		t.Errorf("phase went back to %d after healing", boss.Phase)
	}
}

func TestBossVolley(t *testing.T) {
	tests := []struct {
		name   string
		health int
		shots  int
	}{
		{"phase 1", 300, 1},
		{"phase 2", 170, 3},
		{"phase 3", 60, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			stats := config.DefaultEnemyStats()
			sys := newBehavior(em, stats)
			id := spawnEnemy(t, em, stats, types.EnemyBoss, 400, 300)
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
			boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
			hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			enemy.Target = newTestPlayer(100, 300)
			hp.CurrentHealth = tt.health
			boss.AttackCooldown = 1e9
			boss.Pattern = types.AttackShoot

			for i := 0; i < 3; i++ {
				sys.UpdateEnemy(id, 16)
			}
			if got := len(enemy.Projectiles); got != 3*tt.shots {
				t.Errorf("projectiles: got %d, want %d", got, 3*tt.shots)
			}
			if boss.Pattern != types.AttackChase || boss.ShotCount != 0 {
				t.Errorf("after volley: pattern %v shots %d, want chase and 0", boss.Pattern, boss.ShotCount)
			}
		})
	}
}

func newSpawner(em *ecs.EntityManager, difficulty int, clock utils.Clock) *EnemySpawnSystem {
	cfg := config.DefaultGameConfig()
	stats := config.DefaultEnemyStats()
	rng := rand.New(rand.NewSource(7))
	behavior := NewEnemyBehaviorSystem(em, stats, weapons.EnemySpec, rng)
	areas := []utils.Rect{utils.NewRect(600, 50, 100, 100)}
	return NewEnemySpawnSystem(em, behavior, stats, cfg.Spawner, areas, difficulty, rng, clock)
}

func TestSpawnerInactiveUntilStart(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 1, clock)

	clock.AdvanceMs(10000)
	sys.Update(16, nil)
	if sys.IsActive() || sys.EnemyCount() != 0 {
		t.Fatalf("spawned before Start: %d enemies", sys.EnemyCount())
	}

	sys.Start()
	clock.AdvanceMs(2999)
	sys.Update(16, nil)
	if sys.EnemyCount() != 0 {
		t.Error("first enemy arrived early")
	}
	clock.AdvanceMs(1)
	sys.Update(16, nil)
	if sys.EnemyCount() != 1 {
		t.Errorf("enemies: got %d, want 1", sys.EnemyCount())
	}

	sys.Stop()
	clock.AdvanceMs(10000)
	sys.Update(16, nil)
	if sys.EnemyCount() != 1 {
		t.Errorf("spawned after Stop: %d enemies", sys.EnemyCount())
	}
}

func TestSpawnIntervalShrinksWithDifficulty(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 3, clock)
	sys.Start()
	clock.AdvanceMs(3000)
	sys.Update(16, nil)

	// 3000 / sqrt(3) ~= 1732ms
	clock.AdvanceMs(1700)
	sys.Update(16, nil)
	if sys.EnemyCount() != 1 {
		t.Errorf("enemies at +1700ms: got %d, want 1", sys.EnemyCount())
	}
	clock.AdvanceMs(40)
	sys.Update(16, nil)
	if sys.EnemyCount() != 2 {
		t.Errorf("enemies at +1740ms: got %d, want 2", sys.EnemyCount())
	}
}

func TestSpawnerCapsEnemies(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 1, clock)
	sys.Start()

	for i := 0; i < 10; i++ {
		clock.AdvanceMs(3000)
		sys.Update(16, nil)
	}
	if sys.EnemyCount() != 5 {
		t.Errorf("enemies: got %d, want 5", sys.EnemyCount())
	}
	for _, id := range sys.enemies() {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Type != types.EnemyBasic {
			t.Errorf("difficulty 1 spawned %s", enemy.Type)
		}
	}
}

func TestBossSpawnsOncePerLevel(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 4, clock)
	sys.Start()

	countBosses := func() int {
		return len(ecs.GetEntitiesWith1[*components.BossComponent](em))
	}

	clock.AdvanceMs(3000)
	sys.Update(16, nil)
	if !sys.BossSpawned() || countBosses() != 1 {
		t.Fatalf("first spawn at difficulty 4 should be the boss")
	}
	for i := 0; i < 6; i++ {
		clock.AdvanceMs(1500)
		sys.Update(16, nil)
	}
	if countBosses() != 1 {
		t.Errorf("bosses: got %d, want 1", countBosses())
	}

	sys.ClearEnemies()
	if sys.EnemyCount() != 0 || sys.BossSpawned() {
		t.Fatalf("after clear: %d enemies, boss spawned %v", sys.EnemyCount(), sys.BossSpawned())
	}
	em.RemoveMarkedEntities()
	clock.AdvanceMs(1500)
	sys.Update(16, nil)
	if countBosses() != 1 {
		t.Error("boss should return after ClearEnemies")
	}
}

func TestAvailableEnemyTypes(t *testing.T) {
	tests := []struct {
		difficulty int
		want       []types.EnemyType
	}{
		{1, []types.EnemyType{types.EnemyBasic}},
		{2, []types.EnemyType{types.EnemyBasic, types.EnemyFast}},
		{3, []types.EnemyType{types.EnemyBasic, types.EnemyFast, types.EnemyShooter}},
		{6, []types.EnemyType{types.EnemyBasic, types.EnemyFast, types.EnemyShooter, types.EnemyTank}},
	}
	for _, tt := range tests {
		got := AvailableEnemyTypes(tt.difficulty)
		if len(got) != len(tt.want) {
			t.Errorf("difficulty %d: got %v, want %v", tt.difficulty, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("difficulty %d: got %v, want %v", tt.difficulty, got, tt.want)
				break
			}
		}
	}
}

func TestEnemyContactHurtsBothSides(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 1, clock)
	id := spawnEnemy(t, em, config.DefaultEnemyStats(), types.EnemyBasic, 100, 100)
	p := newTestPlayer(100, 100)

	sys.Update(16, p)

	if p.Health != 90 {
		t.Errorf("player health: got %d, want 90", p.Health)
	}
	hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if hp.CurrentHealth != 20 {
		t.Errorf("enemy health: got %d, want 20", hp.CurrentHealth)
	}
	if p.Score != 0 {
		t.Errorf("contact should not score, got %d", p.Score)
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewManualClock(time.Unix(0, 0))
	sys := newSpawner(em, 1, clock)
	id := spawnEnemy(t, em, config.DefaultEnemyStats(), types.EnemyBasic, 700, 500)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	proj := weapons.New(weapons.OwnerEnemy, weapons.EnemySpec, 100, 110, 0, 0, 15)
	enemy.Projectiles = append(enemy.Projectiles, proj)
	p := newTestPlayer(100, 100)

	sys.Update(16, p)

	if p.Health != 85 {
		t.Errorf("player health: got %d, want 85", p.Health)
	}
	if proj.Active || len(enemy.Projectiles) != 0 {
		t.Error("projectile should be spent and pruned")
	}
}

func TestEnemyKillRewards(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	stats := config.DefaultEnemyStats()
	stats.Enemies[types.EnemyBasic].CoinDropChance = 1
	sys := NewEnemyCombatSystem(em, &cfg.Coins, rand.New(rand.NewSource(2)))
	id := spawnEnemy(t, em, stats, types.EnemyBasic, 300, 300)
	p := newTestPlayer(0, 0)

	fire(p, 305, 305, 20)
	sys.Update(p)
	if !em.IsAlive(id) {
		t.Fatal("enemy should survive 20 damage")
	}

	fire(p, 305, 305, 20)
	second := fire(p, 305, 305, 20)
	sys.Update(p)
	if em.IsAlive(id) {
		t.Fatal("enemy should be dead")
	}
	if p.Score != 10 || p.XP != 10 {
		t.Errorf("reward: score %d xp %d, want 10 and 10", p.Score, p.XP)
	}
	if !second.Active {
		t.Error("projectiles after the kill should fly on")
	}

	coins := ecs.GetEntitiesWith1[*components.CoinComponent](em)
	if len(coins) != 1 {
		t.Fatalf("coins: got %d, want 1", len(coins))
	}
	coin, _ := ecs.GetComponent[*components.CoinComponent](em, coins[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, coins[0])
	if coin.Value != 3 || pos.X != 300 || pos.Y != 300 {
		t.Errorf("coin: value %d at (%v, %v), want 3 at (300, 300)", coin.Value, pos.X, pos.Y)
	}
}
