package types

import "fmt"

// EnemyType is the enemy variant tag.
type EnemyType string

const (
	EnemyBasic   EnemyType = "basic"
	EnemyFast    EnemyType = "fast"
	EnemyTank    EnemyType = "tank"
	EnemyShooter EnemyType = "shooter"
	EnemyBoss    EnemyType = "boss"
)

// AllEnemyTypes lists every enemy variant in a stable order.
var AllEnemyTypes = []EnemyType{EnemyBasic, EnemyFast, EnemyTank, EnemyShooter, EnemyBoss}

// ParseEnemyType validates an enemy type name.
func ParseEnemyType(s string) (EnemyType, error) {
	for _, e := range AllEnemyTypes {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown enemy type %q", s)
}

// BlockType is the level block variant tag.
type BlockType string

const (
	BlockSolid        BlockType = "solid"
	BlockBreakable    BlockType = "breakable"
	BlockDestructible BlockType = "destructible"
	BlockBiochem      BlockType = "biochem"
	BlockBouncing     BlockType = "bouncing"
	BlockPortal       BlockType = "portal"
	BlockPowerUp      BlockType = "powerup"
)

// Breakable reports whether projectiles can destroy blocks of this type.
func (b BlockType) Breakable() bool {
	switch b {
	case BlockBreakable, BlockDestructible, BlockBiochem, BlockPowerUp:
		return true
	default:
		return false
	}
}

// PowerUpType is the power-up effect tag.
type PowerUpType string

const (
	PowerUpHealth PowerUpType = "health"
	PowerUpWeapon PowerUpType = "weapon"
	PowerUpKey    PowerUpType = "key"
	PowerUpScore  PowerUpType = "score"
	PowerUpSpeed  PowerUpType = "speed"
)

// TrainPath selects how a train moves.
type TrainPath int

const (
	// TrainHorizontal bounces left and right between two x bounds.
	TrainHorizontal TrainPath = iota
	// TrainVertical bounces up and down between two y bounds.
	TrainVertical
	// TrainWaypoints follows a closed list of points.
	TrainWaypoints
)

// String returns the path name.
func (p TrainPath) String() string {
	switch p {
	case TrainHorizontal:
		return "horizontal"
	case TrainVertical:
		return "vertical"
	case TrainWaypoints:
		return "waypoints"
	default:
		return "unknown"
	}
}

// ParseTrainPath parses a path name as written by String.
func ParseTrainPath(s string) (TrainPath, error) {
	for _, p := range []TrainPath{TrainHorizontal, TrainVertical, TrainWaypoints} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown train path %q", s)
}

// TrainKind is the car style, used for color and size only.
type TrainKind string

const (
	TrainFreight   TrainKind = "freight"
	TrainPassenger TrainKind = "passenger"
	TrainEngine    TrainKind = "engine"
)

// AttackPattern is the boss's current behavior.
type AttackPattern int

const (
	AttackChase AttackPattern = iota
	AttackShoot
)

// String returns the pattern name.
func (a AttackPattern) String() string {
	if a == AttackShoot {
		return "shoot"
	}
	return "chase"
}
