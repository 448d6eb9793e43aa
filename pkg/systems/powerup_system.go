package systems

import (
	"fmt"
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/types"
)

// PowerUpSystem animates power-up blocks and applies them when shot.
type PowerUpSystem struct {
	entityManager *ecs.EntityManager
	rules         LevelRules
	messages      Messenger
	effects       *config.PowerUpConfig
	duration      float64 // ms each pickup message stays up
}

// NewPowerUpSystem creates the system.
func NewPowerUpSystem(em *ecs.EntityManager, rules LevelRules, messages Messenger, cfg *config.GameConfig) *PowerUpSystem {
	return &PowerUpSystem{
		entityManager: em,
		rules:         rules,
		messages:      messages,
		effects:       &cfg.PowerUps,
		duration:      cfg.Rules.MessageDuration,
	}
}

// Update bobs every power-up and collects the ones destroyed this frame.
func (s *PowerUpSystem) Update(deltaTime float64, p *player.Player) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.PositionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		pu.AnimationTimer += deltaTime * 0.005
		pu.HoverOffset = math.Sin(pu.AnimationTimer) * 3

		bounds, ok := entityBounds(em, id)
		if !ok {
			continue
		}
		for _, proj := range p.Projectiles {
			if !proj.Active || !bounds.Overlaps(proj.Bounds()) {
				continue
			}
			proj.Active = false

			hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
			if !ok || !hp.TakeDamage(proj.Damage) {
				continue
			}
			s.collect(id, pu.Type, p)
			break
		}
	}
}

func (s *PowerUpSystem) collect(id ecs.EntityID, powerUp types.PowerUpType, p *player.Player) {
	msg := ApplyPowerUp(p, powerUp, s.effects)
	if s.messages != nil {
		s.messages.ShowMessage(msg, s.duration)
	}
	if block, ok := ecs.GetComponent[*components.BlockComponent](s.entityManager, id); ok {
		p.AddScore(block.DestructionScore)
	}
	s.entityManager.DestroyEntity(id)
	if s.rules != nil {
		s.rules.OnPowerUpCollected(powerUp)
	}
}

// ApplyPowerUp gives the player a power-up's effect and returns the
// message describing it.
func ApplyPowerUp(p *player.Player, powerUp types.PowerUpType, effects *config.PowerUpConfig) string {
	switch powerUp {
	case types.PowerUpHealth:
		amount := effects.HealthBase + effects.HealthPerLevel*p.Level
		p.Heal(amount)
		return fmt.Sprintf("+%d Health", amount)
	case types.PowerUpWeapon:
		if p.UpgradeWeapon() {
			return fmt.Sprintf("Weapon Upgraded to Level %d", p.WeaponLevel)
		}
		p.AddScore(effects.WeaponOverflowScore)
		return fmt.Sprintf("Weapon already at max level! +%d Score", effects.WeaponOverflowScore)
	case types.PowerUpKey:
		p.AddKey()
		return "+1 Key"
	case types.PowerUpScore:
		bonus := effects.ScorePerLevel * p.Level
		p.AddScore(bonus)
		return fmt.Sprintf("+%d Score", bonus)
	case types.PowerUpSpeed:
		p.Speed += effects.SpeedBonus
		return fmt.Sprintf("+%g Speed", effects.SpeedBonus)
	default:
		return "Unknown Power-up"
	}
}
