package config

import (
	"fmt"

	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/weapons"
	"gopkg.in/yaml.v3"
)

// GameConfigPath is the default location of the gameplay tunables.
const GameConfigPath = "data/game.yaml"

// PlayfieldConfig is the logical screen size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig holds the player's starting stats.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`           // pixels per frame per axis
	Health            int     `yaml:"health"`          // starting and max health
	ShootDelay        float64 `yaml:"shootDelay"`      // ms between volleys
	Invulnerability   float64 `yaml:"invulnerability"` // ms after each hit
	XPToNextLevel     int     `yaml:"xpToNextLevel"`
	XPGrowth          float64 `yaml:"xpGrowth"`          // threshold multiplier per level
	LevelUpHealth     int     `yaml:"levelUpHealth"`     // max health gained per level
	LevelUpDamage     float64 `yaml:"levelUpDamage"`     // damage multiplier gained per level
	MaxWeaponPowerUp  int     `yaml:"maxWeaponPowerUp"`  // highest level reachable with pickups
	MaxWeaponPurchase int     `yaml:"maxWeaponPurchase"` // highest level reachable in the shop
	RegenInterval     float64 `yaml:"regenInterval"`     // wall-clock ms between regen ticks
}

// ProjectilesConfig holds both projectile families.
type ProjectilesConfig struct {
	Player weapons.Spec `yaml:"player"`
	Enemy  weapons.Spec `yaml:"enemy"`
}

// SpawnerConfig tunes enemy spawning.
type SpawnerConfig struct {
	BaseDelay         float64 `yaml:"baseDelay"`         // wall-clock ms, divided by sqrt(difficulty)
	MaxEnemies        int     `yaml:"maxEnemies"`        // regular spawns stop at this many
	BossMinDifficulty int     `yaml:"bossMinDifficulty"` // difficulty at which the boss may appear
	BossMaxPresent    int     `yaml:"bossMaxPresent"`    // boss waits until fewer enemies are alive
	ContactDamage     int     `yaml:"contactDamage"`     // dealt both ways when an enemy touches the player
}

// CoinConfig tunes dropped coins.
type CoinConfig struct {
	Size            float64 `yaml:"size"`
	Friction        float64 `yaml:"friction"`
	MinSpeed        float64 `yaml:"minSpeed"`
	MaxSpeed        float64 `yaml:"maxSpeed"`
	BlockDropChance float64 `yaml:"blockDropChance"`
	BlockMinValue   int     `yaml:"blockMinValue"`
	BlockMaxValue   int     `yaml:"blockMaxValue"`
}

// RulesConfig holds the level-pass constants.
type RulesConfig struct {
	StartDelay      float64 `yaml:"startDelay"` // ms between level load and spawning
	TrainKnockback  float64 `yaml:"trainKnockback"`
	PowerUpScore    int     `yaml:"powerUpScore"`
	BirdScore       int     `yaml:"birdScore"`
	BirdXP          int     `yaml:"birdXP"`
	BiochemTarget   int     `yaml:"biochemTarget"`
	BirdTarget      int     `yaml:"birdTarget"`
	KeyTarget       int     `yaml:"keyTarget"`
	BiochemScore    int     `yaml:"biochemScore"`
	BlockScore      int     `yaml:"blockScore"`
	PortalCooldown  float64 `yaml:"portalCooldown"`
	BounceStrength  float64 `yaml:"bounceStrength"`
	BirdEscapeY     float64 `yaml:"birdEscapeY"`
	MessageDuration float64 `yaml:"messageDuration"`
}

// PowerUpConfig holds power-up effect sizes.
type PowerUpConfig struct {
	HealthBase          int     `yaml:"healthBase"`
	HealthPerLevel      int     `yaml:"healthPerLevel"`
	WeaponOverflowScore int     `yaml:"weaponOverflowScore"`
	ScorePerLevel       int     `yaml:"scorePerLevel"`
	SpeedBonus          float64 `yaml:"speedBonus"`
}

// GameConfig is the root of data/game.yaml.
type GameConfig struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Player      PlayerConfig      `yaml:"player"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Coins       CoinConfig        `yaml:"coins"`
	Rules       RulesConfig       `yaml:"rules"`
	PowerUps    PowerUpConfig     `yaml:"powerUps"`
}

// DefaultGameConfig returns the built-in tunables. Missing YAML fields are
// filled from these values.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:             40,
			Height:            40,
			Speed:             5,
			Health:            100,
			ShootDelay:        300,
			Invulnerability:   1000,
			XPToNextLevel:     100,
			XPGrowth:          1.5,
			LevelUpHealth:     10,
			LevelUpDamage:     0.1,
			MaxWeaponPowerUp:  3,
			MaxWeaponPurchase: 5,
			RegenInterval:     1000,
		},
		Projectiles: ProjectilesConfig{
			Player: weapons.PlayerSpec,
			Enemy:  weapons.EnemySpec,
		},
		Spawner: SpawnerConfig{
			BaseDelay:         3000,
			MaxEnemies:        5,
			BossMinDifficulty: 4,
			BossMaxPresent:    3,
			ContactDamage:     10,
		},
		Coins: CoinConfig{
			Size:            15,
			Friction:        0.95,
			MinSpeed:        2,
			MaxSpeed:        5,
			BlockDropChance: 0.4,
			BlockMinValue:   3,
			BlockMaxValue:   7,
		},
		Rules: RulesConfig{
			StartDelay:      2000,
			TrainKnockback:  20,
			PowerUpScore:    5,
			BirdScore:       25,
			BirdXP:          10,
			BiochemTarget:   3,
			BirdTarget:      5,
			KeyTarget:       3,
			BiochemScore:    25,
			BlockScore:      10,
			PortalCooldown:  1000,
			BounceStrength:  10,
			BirdEscapeY:     -50,
			MessageDuration: 2000,
		},
		PowerUps: PowerUpConfig{
			HealthBase:          20,
			HealthPerLevel:      5,
			WeaponOverflowScore: 25,
			ScorePerLevel:       50,
			SpeedBonus:          0.5,
		},
	}
}

// LoadGameConfig reads and validates data/game.yaml.
//
// Parameters:
//
//	path - file path, must start with "data/"
//
// Returns:
//
//	*GameConfig - the decoded config with defaults applied
//	error - when the file cannot be read, parsed or fails validation
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	return ParseGameConfig(data, path)
}

// ParseGameConfig decodes game config YAML. source only labels errors.
func ParseGameConfig(data []byte, source string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", source, err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", source, err)
	}
	return cfg, nil
}

func validateGameConfig(cfg *GameConfig) error {
	if cfg.Playfield.Width <= 0 || cfg.Playfield.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %vx%v", cfg.Playfield.Width, cfg.Playfield.Height)
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Health <= 0 {
		return fmt.Errorf("player health must be positive, got %d", cfg.Player.Health)
	}
	if cfg.Player.XPToNextLevel <= 0 {
		return fmt.Errorf("player xpToNextLevel must be positive, got %d", cfg.Player.XPToNextLevel)
	}
	if cfg.Player.XPGrowth < 1 {
		return fmt.Errorf("player xpGrowth must be at least 1, got %v", cfg.Player.XPGrowth)
	}
	if cfg.Player.MaxWeaponPowerUp < 1 || cfg.Player.MaxWeaponPurchase < cfg.Player.MaxWeaponPowerUp {
		return fmt.Errorf("weapon caps invalid: maxWeaponPowerUp=%d maxWeaponPurchase=%d",
			cfg.Player.MaxWeaponPowerUp, cfg.Player.MaxWeaponPurchase)
	}
	for name, spec := range map[string]weapons.Spec{"player": cfg.Projectiles.Player, "enemy": cfg.Projectiles.Enemy} {
		if spec.Size <= 0 || spec.Speed <= 0 || spec.Range <= 0 {
			return fmt.Errorf("projectile %s: size, speed and range must be positive, got %+v", name, spec)
		}
	}
	if cfg.Spawner.BaseDelay <= 0 {
		return fmt.Errorf("spawner baseDelay must be positive, got %v", cfg.Spawner.BaseDelay)
	}
	if cfg.Spawner.MaxEnemies < 1 {
		return fmt.Errorf("spawner maxEnemies must be at least 1, got %d", cfg.Spawner.MaxEnemies)
	}
	if cfg.Coins.Friction <= 0 || cfg.Coins.Friction > 1 {
		return fmt.Errorf("coin friction must be in (0, 1], got %v", cfg.Coins.Friction)
	}
	if cfg.Coins.MaxSpeed < cfg.Coins.MinSpeed {
		return fmt.Errorf("coin maxSpeed %v below minSpeed %v", cfg.Coins.MaxSpeed, cfg.Coins.MinSpeed)
	}
	if cfg.Coins.BlockDropChance < 0 || cfg.Coins.BlockDropChance > 1 {
		return fmt.Errorf("coin blockDropChance must be in [0, 1], got %v", cfg.Coins.BlockDropChance)
	}
	if cfg.Coins.BlockMaxValue < cfg.Coins.BlockMinValue {
		return fmt.Errorf("coin blockMaxValue %d below blockMinValue %d", cfg.Coins.BlockMaxValue, cfg.Coins.BlockMinValue)
	}
	if cfg.Rules.BiochemTarget < 1 || cfg.Rules.BirdTarget < 1 || cfg.Rules.KeyTarget < 1 {
		return fmt.Errorf("objective targets must be at least 1")
	}
	return nil
}
