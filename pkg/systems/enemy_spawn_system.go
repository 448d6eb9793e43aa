package systems

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

// EnemySpawnSystem owns a level's enemies: it spawns them on a wall-clock
// schedule, runs their AI and resolves their contact with the player.
//
// Spawning is inactive until Start and stops again at Stop. The interval
// after each spawn is baseDelay / sqrt(difficulty), measured on the clock
// rather than accumulated from frame times.
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	behavior      *EnemyBehaviorSystem
	stats         *config.EnemyStatsConfig
	cfg           config.SpawnerConfig
	rng           *rand.Rand
	clock         utils.Clock

	spawnAreas  []utils.Rect
	difficulty  int
	active      bool
	nextSpawn   time.Time
	bossSpawned bool
}

// NewEnemySpawnSystem creates an inactive spawner.
//
// Parameters:
//   - behavior: AI run on every enemy each frame
//   - spawnAreas: rectangles enemies appear in, picked uniformly
//   - difficulty: at least 1; widens the enemy pool and shortens the interval
//   - clock: wall clock for the spawn schedule
func NewEnemySpawnSystem(em *ecs.EntityManager, behavior *EnemyBehaviorSystem, stats *config.EnemyStatsConfig, cfg config.SpawnerConfig,
	spawnAreas []utils.Rect, difficulty int, rng *rand.Rand, clock utils.Clock) *EnemySpawnSystem {
	if difficulty < 1 {
		difficulty = 1
	}
	return &EnemySpawnSystem{
		entityManager: em,
		behavior:      behavior,
		stats:         stats,
		cfg:           cfg,
		rng:           rng,
		clock:         clock,
		spawnAreas:    spawnAreas,
		difficulty:    difficulty,
	}
}

// Start begins spawning; the first enemy arrives one base delay from now.
func (s *EnemySpawnSystem) Start() {
	s.active = true
	s.nextSpawn = s.clock.Now().Add(msToDuration(s.cfg.BaseDelay))
}

// Stop halts spawning. Existing enemies stay.
func (s *EnemySpawnSystem) Stop() {
	s.active = false
}

// IsActive reports whether the spawner is running.
func (s *EnemySpawnSystem) IsActive() bool { return s.active }

// Difficulty returns the spawner's difficulty level.
func (s *EnemySpawnSystem) Difficulty() int { return s.difficulty }

// BossSpawned reports whether this level's boss has appeared.
func (s *EnemySpawnSystem) BossSpawned() bool { return s.bossSpawned }

// ClearEnemies removes every enemy and re-arms the boss.
func (s *EnemySpawnSystem) ClearEnemies() {
	ids := s.enemies()
	log.Printf("[EnemySpawner] Clearing %d enemies", len(ids))
	for _, id := range ids {
		s.entityManager.DestroyEntity(id)
	}
	s.bossSpawned = false
}

// EnemyCount returns the number of live enemies.
func (s *EnemySpawnSystem) EnemyCount() int {
	return len(s.enemies())
}

func (s *EnemySpawnSystem) enemies() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)
}

// Update runs one frame: AI and contact for every enemy, enemy projectiles
// against the player, then at most one new spawn.
func (s *EnemySpawnSystem) Update(deltaTime float64, p *player.Player) {
	em := s.entityManager

	for _, id := range s.enemies() {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if p != nil {
			enemy.Target = p
		} else {
			enemy.Target = nil
		}
		s.behavior.UpdateEnemy(id, deltaTime)

		hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if ok && hp.CurrentHealth <= 0 {
			em.DestroyEntity(id)
			continue
		}
		if p == nil {
			continue
		}
		bounds, ok := entityBounds(em, id)
		if ok && bounds.Overlaps(p.Bounds()) {
			p.TakeDamage(s.cfg.ContactDamage)
			if hp != nil && hp.TakeDamage(s.cfg.ContactDamage) {
				// rams that kill the enemy give no reward
				em.DestroyEntity(id)
			}
		}
	}

	if p != nil {
		for _, id := range s.enemies() {
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
			for _, proj := range enemy.Projectiles {
				if proj.Active && proj.Bounds().Overlaps(p.Bounds()) {
					p.TakeDamage(proj.Damage)
					proj.Active = false
				}
			}
			enemy.Projectiles = weapons.Prune(enemy.Projectiles)
		}
	}

	now := s.clock.Now()
	if s.active && !now.Before(s.nextSpawn) && s.EnemyCount() < s.cfg.MaxEnemies {
		s.spawn()
		delay := s.cfg.BaseDelay / math.Sqrt(float64(s.difficulty))
		s.nextSpawn = now.Add(msToDuration(delay))
	}
}

// AvailableEnemyTypes returns the regular enemy pool for a difficulty.
func AvailableEnemyTypes(difficulty int) []types.EnemyType {
	pool := []types.EnemyType{types.EnemyBasic}
	if difficulty >= 2 {
		pool = append(pool, types.EnemyFast)
	}
	if difficulty >= 3 {
		pool = append(pool, types.EnemyShooter)
	}
	if difficulty >= 4 {
		pool = append(pool, types.EnemyTank)
	}
	return pool
}

func (s *EnemySpawnSystem) spawn() {
	if len(s.spawnAreas) == 0 {
		return
	}
	area := s.spawnAreas[s.rng.Intn(len(s.spawnAreas))]
	x := area.X + s.rng.Float64()*area.W
	y := area.Y + s.rng.Float64()*area.H

	var enemyType types.EnemyType
	if s.difficulty >= s.cfg.BossMinDifficulty && !s.bossSpawned && s.EnemyCount() < s.cfg.BossMaxPresent {
		enemyType = types.EnemyBoss
		s.bossSpawned = true
	} else {
		pool := AvailableEnemyTypes(s.difficulty)
		enemyType = pool[s.rng.Intn(len(pool))]
	}

	if _, err := entities.NewEnemyEntity(s.entityManager, s.stats, enemyType, x, y); err != nil {
		log.Printf("[EnemySpawner] Failed to spawn %s: %v", enemyType, err)
		return
	}
	if enemyType == types.EnemyBoss {
		log.Printf("[EnemySpawner] Boss spawned at (%.0f, %.0f)", x, y)
	}
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
