// Package player implements the player ship that persists across levels
// within one playthrough.
package player

import (
	"log"
	"math"
	"time"

	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

// Player is the ship the user controls.
//
// The UI reads the exported stats directly; gameplay code mutates them only
// through the methods below.
type Player struct {
	X, Y          float64
	Width, Height float64
	Active        bool

	Speed            float64 // pixels per frame per axis
	MoveSpeedBonus   float64 // flat bonus from upgrades and speed power-ups
	SpeedMultiplier  float64 // shop speed boosts
	Health           int
	MaxHealth        int
	WeaponLevel      int
	ShootCooldown    float64 // ms
	ShootDelay       float64 // ms
	Projectiles      []*weapons.Projectile
	Score            int
	Keys             int
	Invulnerable     bool
	InvulnerableTime float64 // ms left

	XP            int
	Level         int
	XPToNextLevel int
	Coins         int

	DamageMultiplier float64
	HealthRegenRate  int // health per regen tick

	cfg            config.PlayerConfig
	projectileSpec weapons.Spec
	clock          utils.Clock
	lastRegen      time.Time
}

// New creates a fresh player at (x, y).
//
// Parameters:
//
//	cfg - game tunables, nil uses the defaults
//	x, y - top-left spawn position
//	clock - wall clock for health regeneration, nil uses the system clock
func New(cfg *config.GameConfig, x, y float64, clock utils.Clock) *Player {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	pc := cfg.Player
	return &Player{
		X:                x,
		Y:                y,
		Width:            pc.Width,
		Height:           pc.Height,
		Active:           true,
		Speed:            pc.Speed,
		SpeedMultiplier:  1,
		Health:           pc.Health,
		MaxHealth:        pc.Health,
		WeaponLevel:      1,
		ShootDelay:       pc.ShootDelay,
		XPToNextLevel:    pc.XPToNextLevel,
		Level:            1,
		DamageMultiplier: 1,
		cfg:              pc,
		projectileSpec:   cfg.Projectiles.Player,
		clock:            clock,
	}
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Center returns the middle of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// EffectiveSpeed is the per-axis movement per frame after upgrades.
func (p *Player) EffectiveSpeed() float64 {
	return (p.Speed + p.MoveSpeedBonus) * p.SpeedMultiplier
}

// Update runs one frame: movement, shooting, projectiles, invulnerability
// and regeneration.
//
// Parameters:
//
//	deltaTime - frame duration in milliseconds
//	in - current input, nil skips the frame
//	bounds - rectangle the player is clamped into
func (p *Player) Update(deltaTime float64, in input.Input, bounds utils.Rect) {
	if in == nil {
		log.Printf("[Player] Update called without input, skipping frame")
		return
	}

	// Diagonal movement is not normalized.
	speed := p.EffectiveSpeed()
	if in.IsActionHeld(input.ActionUp) {
		p.Y -= speed
	}
	if in.IsActionHeld(input.ActionDown) {
		p.Y += speed
	}
	if in.IsActionHeld(input.ActionLeft) {
		p.X -= speed
	}
	if in.IsActionHeld(input.ActionRight) {
		p.X += speed
	}
	p.ClampTo(bounds)

	if p.ShootCooldown > 0 {
		p.ShootCooldown -= deltaTime
	}
	if in.IsActionHeld(input.ActionFire) && p.ShootCooldown <= 0 {
		p.Shoot(in.PointerPosition())
		p.ShootCooldown = p.ShootDelay
	}

	p.Projectiles = weapons.UpdateAll(p.Projectiles)

	if p.Invulnerable {
		p.InvulnerableTime -= deltaTime
		if p.InvulnerableTime <= 0 {
			p.Invulnerable = false
		}
	}

	p.regenerate()
}

// ClampTo keeps the player's box inside bounds.
func (p *Player) ClampTo(bounds utils.Rect) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	if p.X < bounds.X {
		p.X = bounds.X
	}
	if p.X+p.Width > bounds.Right() {
		p.X = bounds.Right() - p.Width
	}
	if p.Y < bounds.Y {
		p.Y = bounds.Y
	}
	if p.Y+p.Height > bounds.Bottom() {
		p.Y = bounds.Bottom() - p.Height
	}
}

func (p *Player) regenerate() {
	if p.HealthRegenRate <= 0 {
		return
	}
	now := p.clock.Now()
	interval := time.Duration(p.cfg.RegenInterval * float64(time.Millisecond))
	if now.Sub(p.lastRegen) < interval {
		return
	}
	p.Heal(p.HealthRegenRate)
	p.lastRegen = now
}

// Shoot fires the current weapon pattern from the player's center toward
// (targetX, targetY).
func (p *Player) Shoot(targetX, targetY float64) {
	cx, cy := p.Center()
	angle := utils.AngleTo(cx, cy, targetX, targetY)
	for _, shot := range weapons.Pattern(p.WeaponLevel) {
		proj := weapons.New(weapons.OwnerPlayer, p.projectileSpec, cx, cy,
			angle+shot.AngleOffset, 0, p.OutgoingDamage(shot.Damage))
		p.Projectiles = append(p.Projectiles, proj)
	}
}

// OutgoingDamage scales base damage by the player's damage multiplier.
func (p *Player) OutgoingDamage(base int) int {
	return int(math.Round(float64(base) * p.DamageMultiplier))
}

// TakeDamage hurts the player unless invulnerable. Every hit that lands
// starts a new invulnerability window. Health floors at zero, which
// deactivates the player.
func (p *Player) TakeDamage(amount int) {
	if p.Invulnerable {
		return
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		p.Active = false
	}
	p.Invulnerable = true
	p.InvulnerableTime = p.cfg.Invulnerability
}

// Heal restores health up to MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// UpgradeWeapon raises the weapon level by one up to the power-up cap.
// Returns false when already at the cap.
func (p *Player) UpgradeWeapon() bool {
	if p.WeaponLevel >= p.cfg.MaxWeaponPowerUp {
		return false
	}
	p.WeaponLevel++
	return true
}

// AddKey gives the player one key.
func (p *Player) AddKey() { p.Keys++ }

// UseKey consumes one key. Returns false when the player has none.
func (p *Player) UseKey() bool {
	if p.Keys <= 0 {
		return false
	}
	p.Keys--
	return true
}

// AddScore adds points to the score.
func (p *Player) AddScore(points int) { p.Score += points }

// AddXP grants experience and resolves every level-up it pays for.
func (p *Player) AddXP(amount int) {
	p.XP += amount
	for p.XPToNextLevel > 0 && p.XP >= p.XPToNextLevel {
		p.levelUp()
	}
}

func (p *Player) levelUp() {
	p.Level++
	p.XP -= p.XPToNextLevel
	p.XPToNextLevel = int(math.Floor(float64(p.XPToNextLevel) * p.cfg.XPGrowth))
	p.MaxHealth += p.cfg.LevelUpHealth
	p.Health = p.MaxHealth
	p.DamageMultiplier += p.cfg.LevelUpDamage
	log.Printf("[Player] Level up to %d (next at %d XP)", p.Level, p.XPToNextLevel)
}

// AddCoins credits coins.
func (p *Player) AddCoins(amount int) { p.Coins += amount }

// SpendCoins debits amount. Returns false and leaves the balance unchanged
// when the player cannot afford it.
func (p *Player) SpendCoins(amount int) bool {
	if p.Coins < amount {
		return false
	}
	p.Coins -= amount
	return true
}

// ResetProjectiles drops every in-flight projectile, used between levels.
func (p *Player) ResetProjectiles() {
	p.Projectiles = p.Projectiles[:0]
}

// MoveTo places the player and clears transient combat state.
func (p *Player) MoveTo(x, y float64) {
	p.X, p.Y = x, y
	p.ShootCooldown = 0
	p.ResetProjectiles()
}
