package entities

import (
	"image/color"
	"log"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// Default sizes and colors of level pieces.
const (
	DefaultBlockSize         = 50
	DefaultDestructibleColor = "#8B4513"
	DefaultDestructibleHP    = 3
	DefaultBouncerColor      = "#00FFFF"
	DefaultPortalColor       = "#9932CC"
	DefaultPortalSize        = 50
	DefaultDoorWidth         = 60
	DefaultDoorHeight        = 100
	DefaultDoorColor         = "#8B4513"
	fallbackColor            = "#808080"
)

// Render layers, lowest first.
const (
	LayerBlock = iota
	LayerDoor
	LayerPowerUp
	LayerCoin
	LayerBird
	LayerTrain
	LayerEnemy
)

// BlockOptions describes a block to place in a level.
type BlockOptions struct {
	X, Y          float64
	Width, Height float64 // zero means 50
	Type          types.BlockType
	Health        int    // breakable blocks only; zero means 1, or 3 for destructible
	Color         string // hex; empty picks the type default
	Pattern       string // render hint
}

// NewBlockEntity creates a block.
//
// Breakable types get a HealthComponent; solid, bouncing and portal blocks
// never break. Biochem blocks score more than ordinary ones.
func NewBlockEntity(em *ecs.EntityManager, rules *config.RulesConfig, opts BlockOptions) ecs.EntityID {
	if opts.Type == "" {
		opts.Type = types.BlockSolid
	}
	if opts.Width <= 0 {
		opts.Width = DefaultBlockSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultBlockSize
	}
	if opts.Color == "" {
		switch opts.Type {
		case types.BlockDestructible:
			opts.Color = DefaultDestructibleColor
		case types.BlockBouncing:
			opts.Color = DefaultBouncerColor
		case types.BlockPortal:
			opts.Color = DefaultPortalColor
		default:
			opts.Color = fallbackColor
		}
	}
	if opts.Pattern == "" {
		switch opts.Type {
		case types.BlockSolid:
			opts.Pattern = "block"
		case types.BlockBiochem:
			opts.Pattern = "biochem"
		}
	}

	score := rules.BlockScore
	if opts.Type == types.BlockBiochem {
		score = rules.BiochemScore
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: opts.Width, Height: opts.Height})
	ecs.AddComponent(em, id, &components.BlockComponent{
		Type:             opts.Type,
		Breakable:        opts.Type.Breakable(),
		DestructionScore: score,
	})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   hexColor(opts.Color),
		Pattern: opts.Pattern,
		Layer:   LayerBlock,
	})

	if opts.Type.Breakable() {
		hp := opts.Health
		if hp <= 0 {
			hp = 1
			if opts.Type == types.BlockDestructible {
				hp = DefaultDestructibleHP
			}
		}
		ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: hp, MaxHealth: hp})
	}
	return id
}

// NewBouncerEntity creates a solid block that shoves the player away.
func NewBouncerEntity(em *ecs.EntityManager, rules *config.RulesConfig, x, y, width, height float64, hex string) ecs.EntityID {
	id := NewBlockEntity(em, rules, BlockOptions{
		X: x, Y: y, Width: width, Height: height,
		Type:    types.BlockBouncing,
		Color:   hex,
		Pattern: "hedge",
	})
	ecs.AddComponent(em, id, &components.BouncerComponent{BounceStrength: rules.BounceStrength})
	return id
}

// NewPortalEntity creates a portal that sends the player to (targetX, targetY).
func NewPortalEntity(em *ecs.EntityManager, rules *config.RulesConfig, x, y, targetX, targetY float64) ecs.EntityID {
	id := NewBlockEntity(em, rules, BlockOptions{
		X: x, Y: y, Width: DefaultPortalSize, Height: DefaultPortalSize,
		Type: types.BlockPortal,
	})
	if render, ok := ecs.GetComponent[*components.RenderComponent](em, id); ok {
		render.Shape = components.ShapeCircle
	}
	ecs.AddComponent(em, id, &components.PortalComponent{
		TargetX:  targetX,
		TargetY:  targetY,
		Cooldown: rules.PortalCooldown,
	})
	return id
}

// DoorOptions describes a level exit.
type DoorOptions struct {
	X, Y          float64
	Width, Height float64 // zero means 60x100
	Color         string
	Unlocked      bool
}

// NewDoorEntity creates a door, locked unless opts.Unlocked.
func NewDoorEntity(em *ecs.EntityManager, opts DoorOptions) ecs.EntityID {
	if opts.Width <= 0 {
		opts.Width = DefaultDoorWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultDoorHeight
	}
	if opts.Color == "" {
		opts.Color = DefaultDoorColor
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: opts.Width, Height: opts.Height})
	ecs.AddComponent(em, id, &components.DoorComponent{Locked: !opts.Unlocked})
	ecs.AddComponent(em, id, &components.RenderComponent{
		Color:   hexColor(opts.Color),
		Pattern: "door",
		Layer:   LayerDoor,
	})
	return id
}

// NewLevelProgressEntity creates the singleton that tracks a level's
// objective counters. timeLimit is in milliseconds, zero for untimed levels.
func NewLevelProgressEntity(em *ecs.EntityManager, rules *config.RulesConfig, timeLimit float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LevelProgressComponent{
		BiochemTarget: rules.BiochemTarget,
		BirdTarget:    rules.BirdTarget,
		KeyTarget:     rules.KeyTarget,
		TimeLimit:     timeLimit,
		TimeRemaining: timeLimit,
	})
	return id
}

func hexColor(hex string) color.RGBA {
	c, err := utils.ParseHexColor(hex)
	if err != nil {
		log.Printf("[Entities] %v, using gray", err)
		return utils.MustHexColor(fallbackColor)
	}
	return c
}
