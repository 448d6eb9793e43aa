// Package weapons holds the projectile contract shared by the player and
// enemies, and the player's weapon fire patterns.
package weapons

import (
	"math"

	"github.com/decker502/powershooter/pkg/utils"
)

// Owner tells which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// DefaultPlayfield is the area outside of which projectiles expire.
var DefaultPlayfield = utils.NewRect(0, 0, 800, 600)

// Spec describes a projectile family.
type Spec struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Range float64 `yaml:"range"`
}

var (
	// PlayerSpec is the player's bullet.
	PlayerSpec = Spec{Size: 10, Speed: 10, Range: 800}
	// EnemySpec is the enemy bullet; speed is set per shooter.
	EnemySpec = Spec{Size: 8, Speed: 5, Range: 600}
)

// Projectile moves in a straight line a fixed distance per update call.
// Motion is not scaled by frame time.
type Projectile struct {
	X, Y     float64
	Size     float64
	Angle    float64 // radians
	Speed    float64 // pixels per update
	Damage   int
	Range    float64
	Traveled float64
	Active   bool
	Owner    Owner
	Field    utils.Rect
}

// New creates an active projectile at (x, y) heading along angle.
// A non-positive speed falls back to spec.Speed.
func New(owner Owner, spec Spec, x, y, angle, speed float64, damage int) *Projectile {
	if speed <= 0 {
		speed = spec.Speed
	}
	return &Projectile{
		X:      x,
		Y:      y,
		Size:   spec.Size,
		Angle:  angle,
		Speed:  speed,
		Damage: damage,
		Range:  spec.Range,
		Active: true,
		Owner:  owner,
		Field:  DefaultPlayfield,
	}
}

// Update advances the projectile one step and expires it once it has
// travelled past its range or left the playfield.
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle) * p.Speed
	p.Traveled += p.Speed

	if p.Traveled > p.Range {
		p.Active = false
		return
	}
	if p.X < p.Field.X || p.X > p.Field.Right() || p.Y < p.Field.Y || p.Y > p.Field.Bottom() {
		p.Active = false
	}
}

// Bounds returns the projectile's collision box.
func (p *Projectile) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.Size, p.Size)
}

// UpdateAll advances every projectile and drops the inactive ones, reusing
// the backing array.
func UpdateAll(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}

// Prune drops inactive projectiles without moving the rest.
func Prune(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}
