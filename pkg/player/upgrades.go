package player

// Effects of the permanent upgrades sold in the shop. The shop charges for
// them; these methods only apply the effect.
const (
	VitalityAmount = 25   // max health
	PowerAmount    = 0.25 // damage multiplier
	FireRateStep   = 50   // ms removed from the shoot delay
	MinShootDelay  = 100  // ms
	RegenAmount    = 5    // health per regen tick
	AgilityAmount  = 1    // px per frame
)

// UpgradeVitality raises max health and current health by 25.
func (p *Player) UpgradeVitality() {
	p.MaxHealth += VitalityAmount
	p.Health += VitalityAmount
}

// UpgradePower raises the damage multiplier by 0.25.
func (p *Player) UpgradePower() {
	p.DamageMultiplier += PowerAmount
}

// UpgradeFireRate shortens the shoot delay by 50ms, never below 100ms. It
// reports false when the delay is already at the floor.
func (p *Player) UpgradeFireRate() bool {
	if p.FireRateMaxed() {
		return false
	}
	p.ShootDelay = max(MinShootDelay, p.ShootDelay-FireRateStep)
	return true
}

// FireRateMaxed reports whether the shoot delay is at its floor.
func (p *Player) FireRateMaxed() bool {
	return p.ShootDelay <= MinShootDelay
}

// UpgradeRegen adds 5 health per regeneration tick.
func (p *Player) UpgradeRegen() {
	p.HealthRegenRate += RegenAmount
}

// UpgradeAgility adds one pixel per frame of movement.
func (p *Player) UpgradeAgility() {
	p.MoveSpeedBonus += AgilityAmount
}

// BuyWeaponLevel raises the weapon one level up to the shop cap, which is
// higher than what power-ups reach. Levels above the last fire pattern
// reuse it.
func (p *Player) BuyWeaponLevel() bool {
	if p.WeaponMaxed() {
		return false
	}
	p.WeaponLevel++
	return true
}

// WeaponMaxed reports whether the shop can no longer upgrade the weapon.
func (p *Player) WeaponMaxed() bool {
	return p.WeaponLevel >= p.cfg.MaxWeaponPurchase
}
