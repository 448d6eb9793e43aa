package components

import (
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

// Targetable is anything an enemy can chase. Enemies hold the reference only
// for the current frame; the spawner re-targets every tick.
type Targetable interface {
	Bounds() utils.Rect
}

// EnemyComponent stores the stats shared by every enemy type.
type EnemyComponent struct {
	Type           types.EnemyType
	Speed          float64 // pixels per frame
	ScoreValue     int
	XPValue        int
	CoinValue      int
	CoinDropChance float64
	Target         Targetable
	Projectiles    []*weapons.Projectile
}

// ShooterComponent lets an enemy fire at its target when in range.
type ShooterComponent struct {
	ShootCooldown    float64 // ms
	ShootDelay       float64 // ms
	ShootRange       float64 // pixels
	ProjectileSpeed  float64
	ProjectileDamage int
}

// BossComponent holds the boss phase machine.
type BossComponent struct {
	Phase          int
	Pattern        types.AttackPattern
	AttackTimer    float64 // ms
	AttackCooldown float64 // ms
	ShotCount      int
	ShotsPerVolley int
}
