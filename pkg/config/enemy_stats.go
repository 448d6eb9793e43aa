package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"gopkg.in/yaml.v3"
)

// EnemyStatsPath is the default location of the enemy table.
const EnemyStatsPath = "data/enemies.yaml"

// EnemyStats describes one enemy type.
type EnemyStats struct {
	Size           float64 `yaml:"size"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"` // pixels per frame
	Score          int     `yaml:"score"`
	XP             int     `yaml:"xp"`
	Coins          int     `yaml:"coins"`
	CoinDropChance float64 `yaml:"coinDropChance"`
	Color          string  `yaml:"color"`

	color color.RGBA
}

// RGBA returns the parsed color.
func (s *EnemyStats) RGBA() color.RGBA { return s.color }

// ShooterStats tunes the ranged enemy.
type ShooterStats struct {
	ShootDelay       float64 `yaml:"shootDelay"` // ms
	ShootRange       float64 `yaml:"shootRange"`
	ProjectileSpeed  float64 `yaml:"projectileSpeed"`
	ProjectileDamage int     `yaml:"projectileDamage"`
}

// BurstStats is one boss phase's volley.
type BurstStats struct {
	Shots  int     `yaml:"shots"`
	Spread float64 `yaml:"spread"` // radians between adjacent shots
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// BossStats tunes the boss phase machine.
type BossStats struct {
	AttackCooldown    float64      `yaml:"attackCooldown"` // ms
	Phase2Threshold   float64      `yaml:"phase2Threshold"`
	Phase3Threshold   float64      `yaml:"phase3Threshold"`
	Phase2Speed       float64      `yaml:"phase2Speed"`
	Phase3Speed       float64      `yaml:"phase3Speed"`
	Phase3Cooldown    float64      `yaml:"phase3Cooldown"`
	ShotsPerVolley    int          `yaml:"shotsPerVolley"`
	Phase3ShootWeight float64      `yaml:"phase3ShootWeight"`
	Phase2Color       string       `yaml:"phase2Color"`
	Phase3Color       string       `yaml:"phase3Color"`
	Bursts            []BurstStats `yaml:"bursts"` // index 0 is phase 1

	phase2Color color.RGBA
	phase3Color color.RGBA
}

// PhaseColor returns the boss color for a phase, or base for phase 1.
func (b *BossStats) PhaseColor(phase int, base color.RGBA) color.RGBA {
	switch phase {
	case 2:
		return b.phase2Color
	case 3:
		return b.phase3Color
	default:
		return base
	}
}

// Burst returns the volley for a phase, clamped to the configured phases.
func (b *BossStats) Burst(phase int) BurstStats {
	idx := utils.ClampInt(phase-1, 0, len(b.Bursts)-1)
	return b.Bursts[idx]
}

// EnemyStatsConfig is the root of data/enemies.yaml.
type EnemyStatsConfig struct {
	Enemies map[types.EnemyType]*EnemyStats `yaml:"enemies"`
	Shooter ShooterStats                    `yaml:"shooter"`
	Boss    BossStats                       `yaml:"boss"`
}

// DefaultEnemyStats returns the built-in enemy table.
func DefaultEnemyStats() *EnemyStatsConfig {
	cfg := &EnemyStatsConfig{
		Enemies: map[types.EnemyType]*EnemyStats{
			types.EnemyBasic:   {Size: 30, Health: 30, Speed: 1.5, Score: 10, XP: 10, Coins: 3, CoinDropChance: 0.3, Color: "#e74c3c"},
			types.EnemyFast:    {Size: 20, Health: 15, Speed: 3, Score: 15, XP: 8, Coins: 2, CoinDropChance: 0.3, Color: "#f39c12"},
			types.EnemyTank:    {Size: 40, Health: 80, Speed: 0.8, Score: 30, XP: 25, Coins: 7, CoinDropChance: 0.5, Color: "#8e44ad"},
			types.EnemyShooter: {Size: 25, Health: 40, Speed: 1, Score: 20, XP: 15, Coins: 5, CoinDropChance: 0.3, Color: "#2ecc71"},
			types.EnemyBoss:    {Size: 60, Health: 300, Speed: 0.5, Score: 100, XP: 100, Coins: 25, CoinDropChance: 1, Color: "#e74c3c"},
		},
		Shooter: ShooterStats{ShootDelay: 2000, ShootRange: 300, ProjectileSpeed: 5, ProjectileDamage: 10},
		Boss: BossStats{
			AttackCooldown:    3000,
			Phase2Threshold:   0.6,
			Phase3Threshold:   0.3,
			Phase2Speed:       0.8,
			Phase3Speed:       1.2,
			Phase3Cooldown:    2000,
			ShotsPerVolley:    3,
			Phase3ShootWeight: 0.7,
			Phase2Color:       "#c0392b",
			Phase3Color:       "#7f0000",
			Bursts: []BurstStats{
				{Shots: 1, Spread: 0, Speed: 6, Damage: 15},
				{Shots: 3, Spread: 0.2, Speed: 6, Damage: 15},
				{Shots: 5, Spread: 0.15, Speed: 7, Damage: 20},
			},
		},
	}
	if err := validateEnemyStats(cfg); err != nil {
		panic(fmt.Sprintf("built-in enemy stats invalid: %v", err))
	}
	return cfg
}

// LoadEnemyStats reads and validates data/enemies.yaml.
func LoadEnemyStats(path string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", path, err)
	}
	return ParseEnemyStats(data, path)
}

// ParseEnemyStats decodes enemy stats YAML. Enemy types missing from the
// file keep their built-in stats.
func ParseEnemyStats(data []byte, source string) (*EnemyStatsConfig, error) {
	cfg := DefaultEnemyStats()
	var file EnemyStatsConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", source, err)
	}
	for enemyType, stats := range file.Enemies {
		cfg.Enemies[enemyType] = stats
	}
	if file.Shooter != (ShooterStats{}) {
		cfg.Shooter = file.Shooter
	}
	if len(file.Boss.Bursts) > 0 {
		cfg.Boss = file.Boss
	}
	if err := validateEnemyStats(cfg); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", source, err)
	}
	return cfg, nil
}

// validateEnemyStats checks every type and caches parsed colors.
func validateEnemyStats(cfg *EnemyStatsConfig) error {
	for _, enemyType := range types.AllEnemyTypes {
		stats, ok := cfg.Enemies[enemyType]
		if !ok || stats == nil {
			return fmt.Errorf("enemy %s: missing stats", enemyType)
		}
		if stats.Size <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %v", enemyType, stats.Size)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative, got %v", enemyType, stats.Speed)
		}
		if stats.CoinDropChance < 0 || stats.CoinDropChance > 1 {
			return fmt.Errorf("enemy %s: coinDropChance must be in [0, 1], got %v", enemyType, stats.CoinDropChance)
		}
		c, err := utils.ParseHexColor(stats.Color)
		if err != nil {
			return fmt.Errorf("enemy %s: %w", enemyType, err)
		}
		stats.color = c
	}
	for enemyType := range cfg.Enemies {
		if _, err := types.ParseEnemyType(string(enemyType)); err != nil {
			return err
		}
	}

	if cfg.Shooter.ShootDelay <= 0 || cfg.Shooter.ShootRange <= 0 {
		return fmt.Errorf("shooter: shootDelay and shootRange must be positive")
	}

	boss := &cfg.Boss
	if boss.AttackCooldown <= 0 || boss.Phase3Cooldown <= 0 {
		return fmt.Errorf("boss: attack cooldowns must be positive")
	}
	if !(0 < boss.Phase3Threshold && boss.Phase3Threshold < boss.Phase2Threshold && boss.Phase2Threshold < 1) {
		return fmt.Errorf("boss: thresholds must satisfy 0 < phase3 < phase2 < 1, got %v and %v",
			boss.Phase3Threshold, boss.Phase2Threshold)
	}
	if boss.ShotsPerVolley < 1 {
		return fmt.Errorf("boss: shotsPerVolley must be at least 1, got %d", boss.ShotsPerVolley)
	}
	if len(boss.Bursts) != 3 {
		return fmt.Errorf("boss: exactly 3 bursts required, got %d", len(boss.Bursts))
	}
	for i, b := range boss.Bursts {
		if b.Shots < 1 {
			return fmt.Errorf("boss burst %d: shots must be at least 1", i+1)
		}
	}
	var err error
	if boss.phase2Color, err = utils.ParseHexColor(boss.Phase2Color); err != nil {
		return fmt.Errorf("boss phase2Color: %w", err)
	}
	if boss.phase3Color, err = utils.ParseHexColor(boss.Phase3Color); err != nil {
		return fmt.Errorf("boss phase3Color: %w", err)
	}
	return nil
}

// Stats returns the stats for an enemy type.
func (c *EnemyStatsConfig) Stats(enemyType types.EnemyType) (*EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	return stats, ok
}
