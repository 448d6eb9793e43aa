package systems

import (
	"math"
	"testing"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/types"
)

func TestPowerUpCollectedWhenShot(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	rules := &stubRules{}
	msgs := &recordingMessenger{}
	sys := NewPowerUpSystem(em, rules, msgs, cfg)
	id := entities.NewPowerUpEntity(em, &cfg.Rules, 200, 300, types.PowerUpKey)
	p := newTestPlayer(0, 0)

	proj := fire(p, 205, 305, 10)
	sys.Update(16, p)

	if em.IsAlive(id) {
		t.Error("power-up should be removed")
	}
	if proj.Active {
		t.Error("projectile should be spent")
	}
	if p.Keys != 1 {
		t.Errorf("keys: got %d, want 1", p.Keys)
	}
	if p.Score != 5 {
		t.Errorf("score: got %d, want 5", p.Score)
	}
	if msgs.last() != "+1 Key" {
		t.Errorf("message: got %q", msgs.last())
	}
	if len(rules.collected) != 1 || rules.collected[0] != types.PowerUpKey {
		t.Errorf("rules hook: got %v", rules.collected)
	}
}

func TestPowerUpHover(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	sys := NewPowerUpSystem(em, nil, nil, cfg)
	id := entities.NewPowerUpEntity(em, &cfg.Rules, 200, 300, types.PowerUpScore)
	p := newTestPlayer(0, 0)

	sys.Update(100, p)

	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
	want := math.Sin(0.5) * 3
	if math.Abs(pu.HoverOffset-want) > 1e-9 {
		t.Errorf("hover offset: got %v, want %v", pu.HoverOffset, want)
	}
}

func TestApplyPowerUp(t *testing.T) {
	effects := &config.DefaultGameConfig().PowerUps

	p := newTestPlayer(0, 0)
	p.Health = 10
	if msg := ApplyPowerUp(p, types.PowerUpHealth, effects); msg != "+25 Health" {
		t.Errorf("health message: got %q", msg)
	}
	if p.Health != 35 {
		t.Errorf("health: got %d, want 35", p.Health)
	}

	if msg := ApplyPowerUp(p, types.PowerUpWeapon, effects); msg != "Weapon Upgraded to Level 2" {
		t.Errorf("weapon message: got %q", msg)
	}
	ApplyPowerUp(p, types.PowerUpWeapon, effects)
	if msg := ApplyPowerUp(p, types.PowerUpWeapon, effects); msg != "Weapon already at max level! +25 Score" {
		t.Errorf("maxed weapon message: got %q", msg)
	}
	if p.WeaponLevel != 3 || p.Score != 25 {
		t.Errorf("after overflow: weapon %d score %d", p.WeaponLevel, p.Score)
	}

	p.Level = 2
	if msg := ApplyPowerUp(p, types.PowerUpScore, effects); msg != "+100 Score" {
		t.Errorf("score message: got %q", msg)
	}
	if msg := ApplyPowerUp(p, types.PowerUpSpeed, effects); msg != "+0.5 Speed" {
		t.Errorf("speed message: got %q", msg)
	}
	if p.Speed != 5.5 {
		t.Errorf("speed: got %v, want 5.5", p.Speed)
	}
}
