package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
)

// PowerUpSize is the side of a power-up block.
const PowerUpSize = 30

// powerUpColors maps each power-up to its block color.
var powerUpColors = map[types.PowerUpType]string{
	types.PowerUpHealth: "#2ecc71",
	types.PowerUpWeapon: "#3498db",
	types.PowerUpKey:    "#f1c40f",
	types.PowerUpScore:  "#9b59b6",
	types.PowerUpSpeed:  "#e67e22",
}

// PowerUpColor returns the block color of a power-up type.
func PowerUpColor(t types.PowerUpType) string {
	if c, ok := powerUpColors[t]; ok {
		return c
	}
	return "#95a5a6"
}

// NewPowerUpEntity creates a one-hit power-up block at (x, y).
func NewPowerUpEntity(em *ecs.EntityManager, rules *config.RulesConfig, x, y float64, powerUpType types.PowerUpType) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: PowerUpSize, Height: PowerUpSize})
	ecs.AddComponent(em, id, &components.BlockComponent{
		Type:             types.BlockPowerUp,
		Breakable:        true,
		DestructionScore: rules.PowerUpScore,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: 1, MaxHealth: 1})
	ecs.AddComponent(em, id, &components.PowerUpComponent{Type: powerUpType})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   hexColor(PowerUpColor(powerUpType)),
		Pattern: string(powerUpType),
		Layer:   LayerPowerUp,
	})
	return id
}

// CoinOptions describes a dropped coin.
type CoinOptions struct {
	X, Y  float64
	Value int
}

// NewCoinEntity drops a coin at (x, y) with a random scatter velocity.
func NewCoinEntity(em *ecs.EntityManager, coins *config.CoinConfig, rng *rand.Rand, opts CoinOptions) ecs.EntityID {
	angle := rng.Float64() * math.Pi * 2
	speed := coins.MinSpeed + rng.Float64()*(coins.MaxSpeed-coins.MinSpeed)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: coins.Size, Height: coins.Size})
	ecs.AddComponent(em, id, &components.CoinComponent{
		Value:     opts.Value,
		VelocityX: math.Cos(angle) * speed,
		VelocityY: math.Sin(angle) * speed,
		Friction:  coins.Friction,
	})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color: hexColor("#FFD700"),
		Shape: components.ShapeCircle,
		Layer: LayerCoin,
	})
	return id
}

// BirdSize is the side of a small bird.
const BirdSize = 25

// BirdColors are the cage colors in placement order.
var BirdColors = []string{"#4FC3F7", "#81D4FA", "#29B6F6", "#03A9F4", "#039BE5"}

// NewBirdEntity creates a caged bird. rng picks its escape flight.
func NewBirdEntity(em *ecs.EntityManager, rules *config.RulesConfig, rng *rand.Rand, x, y float64, hex string) ecs.EntityID {
	c := hexColor(hex)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: BirdSize, Height: BirdSize})
	ecs.AddComponent(em, id, &components.BirdComponent{
		Caged:      true,
		Color:      c,
		ScoreValue: rules.BirdScore,
		FlySpeed:   2 + rng.Float64(),
		FlyAngle:   rng.Float64() * math.Pi * 2,
	})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   c,
		Pattern: "bird",
		Layer:   LayerBird,
	})
	return id
}
