package render

import (
	"image/color"
	"time"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

var (
	playerColor     = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	enemyShotColor  = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	healthGreen     = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	enemyHealthFill = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

// shotColors are the player's projectile colors by weapon level.
var shotColors = []color.RGBA{
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
}

// ShotColor returns the projectile color for a weapon level.
func ShotColor(weaponLevel int) color.RGBA {
	return shotColors[utils.ClampInt(weaponLevel-1, 0, len(shotColors)-1)]
}

// DrawPlayer draws the player, its health bar and its projectiles. An
// invulnerable player blinks every 100ms of wall-clock time.
func DrawPlayer(r Renderer, p *player.Player, now time.Time) {
	if p == nil {
		return
	}
	DrawProjectiles(r, p.Projectiles, ShotColor(p.WeaponLevel))
	if p.Invulnerable && (now.UnixMilli()/100)%2 == 0 {
		return
	}
	b := p.Bounds()
	r.DrawSprite(Sprite{Bounds: b, Color: playerColor, Pattern: "player"})
	HealthBar(r, utils.NewRect(b.X-5, b.Y-10, 50, 5), float64(p.Health)/float64(p.MaxHealth), Red, healthGreen)
}

// DrawEnemy draws an enemy with its health bar and projectiles.
func DrawEnemy(r Renderer, s Sprite, hp *components.HealthComponent, shots []*weapons.Projectile) {
	r.DrawSprite(s)
	if hp != nil {
		b := s.Bounds
		HealthBar(r, utils.NewRect(b.X+b.W/2-15, b.Y-10, 30, 4), hp.Ratio(), Gray, enemyHealthFill)
	}
	DrawProjectiles(r, shots, enemyShotColor)
}

// DrawProjectiles draws active projectiles as small circles.
func DrawProjectiles(r Renderer, shots []*weapons.Projectile, c color.RGBA) {
	for _, p := range shots {
		if !p.Active {
			continue
		}
		r.DrawSprite(Sprite{Bounds: p.Bounds(), Color: c, Shape: components.ShapeCircle})
	}
}

// HealthBar draws a background bar and a fill proportional to ratio.
func HealthBar(r Renderer, bar utils.Rect, ratio float64, bg, fg color.RGBA) {
	r.FillRect(bar, bg)
	ratio = utils.Clamp(ratio, 0, 1)
	if ratio > 0 {
		r.FillRect(utils.NewRect(bar.X, bar.Y, bar.W*ratio, bar.H), fg)
	}
}
