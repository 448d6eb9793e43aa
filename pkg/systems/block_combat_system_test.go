package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/types"
)

func newBlockCombat(em *ecs.EntityManager, rules LevelRules, dropChance float64) (*BlockCombatSystem, *config.GameConfig) {
	cfg := config.DefaultGameConfig()
	cfg.Coins.BlockDropChance = dropChance
	return NewBlockCombatSystem(em, rules, &cfg.Coins, rand.New(rand.NewSource(1))), cfg
}

func TestBreakableBlockTakesTwoHits(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, cfg := newBlockCombat(em, nil, 0)
	id := entities.NewBlockEntity(em, &cfg.Rules, entities.BlockOptions{X: 100, Y: 100, Type: types.BlockBreakable, Health: 2})
	p := newTestPlayer(0, 0)

	first := fire(p, 110, 110, 1)
	sys.Update(p)
	if first.Active {
		t.Error("projectile should be spent on impact")
	}
	if !em.IsAlive(id) {
		t.Fatal("block should survive the first hit")
	}

	fire(p, 110, 110, 1)
	sys.Update(p)
	if em.IsAlive(id) {
		t.Error("block should be destroyed by the second hit")
	}
	if p.Score != 10 {
		t.Errorf("score: got %d, want 10", p.Score)
	}
}

func TestSolidBlockNeverBreaks(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, cfg := newBlockCombat(em, nil, 0)
	id := entities.NewBlockEntity(em, &cfg.Rules, entities.BlockOptions{X: 100, Y: 100, Type: types.BlockSolid})
	p := newTestPlayer(0, 0)

	for i := 0; i < 10; i++ {
		proj := fire(p, 110, 110, 1000)
		sys.Update(p)
		if proj.Active {
			t.Fatalf("hit %d: projectile should be absorbed", i)
		}
	}
	if !em.IsAlive(id) {
		t.Error("solid block was destroyed")
	}
	if p.Score != 0 {
		t.Errorf("score: got %d, want 0", p.Score)
	}
}

func TestMissDoesNotSpendProjectile(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, cfg := newBlockCombat(em, nil, 0)
	entities.NewBlockEntity(em, &cfg.Rules, entities.BlockOptions{X: 100, Y: 100, Type: types.BlockBreakable})
	p := newTestPlayer(0, 0)

	// touching edges do not overlap
	proj := fire(p, 150, 110, 1)
	sys.Update(p)
	if !proj.Active {
		t.Error("projectile at the block's right edge should not hit")
	}
}

func TestBiochemBlockNotifiesRules(t *testing.T) {
	em := ecs.NewEntityManager()
	rules := &stubRules{}
	sys, cfg := newBlockCombat(em, rules, 0)
	entities.NewBlockEntity(em, &cfg.Rules, entities.BlockOptions{X: 100, Y: 100, Width: 60, Height: 60, Type: types.BlockBiochem, Health: 2})
	p := newTestPlayer(0, 0)

	fire(p, 110, 110, 5)
	sys.Update(p)

	if len(rules.destroyed) != 1 || rules.destroyed[0] != types.BlockBiochem {
		t.Errorf("rules hook: got %v", rules.destroyed)
	}
	if p.Score != 25 {
		t.Errorf("score: got %d, want 25", p.Score)
	}
}

func TestBlockCoinDrop(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, cfg := newBlockCombat(em, nil, 1)
	entities.NewBlockEntity(em, &cfg.Rules, entities.BlockOptions{X: 100, Y: 100, Type: types.BlockBreakable})
	p := newTestPlayer(0, 0)

	fire(p, 110, 110, 1)
	sys.Update(p)

	coins := ecs.GetEntitiesWith1[*components.CoinComponent](em)
	if len(coins) != 1 {
		t.Fatalf("coins: got %d, want 1", len(coins))
	}
	coin, _ := ecs.GetComponent[*components.CoinComponent](em, coins[0])
	if coin.Value < 3 || coin.Value > 7 {
		t.Errorf("coin value %d outside [3, 7]", coin.Value)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, coins[0])
	if pos.X != 125 || pos.Y != 125 {
		t.Errorf("coin position: got (%v, %v), want block center (125, 125)", pos.X, pos.Y)
	}
}

func TestBlockCombatSkipsPowerUps(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, cfg := newBlockCombat(em, nil, 0)
	id := entities.NewPowerUpEntity(em, &cfg.Rules, 100, 100, types.PowerUpKey)
	p := newTestPlayer(0, 0)

	proj := fire(p, 105, 105, 10)
	sys.Update(p)

	if !em.IsAlive(id) || !proj.Active {
		t.Error("power-ups belong to PowerUpSystem")
	}
}
