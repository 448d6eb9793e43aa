package config

import (
	"fmt"

	"github.com/decker502/powershooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ShopPath is the default location of the shop catalogue.
const ShopPath = "data/shop.yaml"

// ShopItemID names a shop effect.
type ShopItemID string

const (
	ShopHealth ShopItemID = "health"
	ShopDamage ShopItemID = "damage"
	ShopSpeed  ShopItemID = "speed"
	ShopKey    ShopItemID = "key"
	ShopWeapon ShopItemID = "weapon"

	// Permanent upgrades.
	ShopVitality ShopItemID = "vitality"
	ShopPower    ShopItemID = "power"
	ShopFireRate ShopItemID = "fireRate"
	ShopRegen    ShopItemID = "regen"
	ShopAgility  ShopItemID = "agility"
)

// ShopItem is one purchasable upgrade.
type ShopItem struct {
	ID          ShopItemID `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cost        int        `yaml:"cost"`
}

// ShopConfig is the root of data/shop.yaml. Items keep their file order,
// which is the order they are listed in the shop.
type ShopConfig struct {
	Items []ShopItem `yaml:"items"`
}

// DefaultShop returns the built-in catalogue.
func DefaultShop() *ShopConfig {
	return &ShopConfig{Items: []ShopItem{
		{ID: ShopHealth, Name: "Health Boost", Description: "+20 Max Health", Cost: 30},
		{ID: ShopDamage, Name: "Damage Boost", Description: "+15% Damage", Cost: 40},
		{ID: ShopSpeed, Name: "Speed Boost", Description: "+10% Speed", Cost: 35},
		{ID: ShopKey, Name: "Level Key", Description: "Opens locked doors", Cost: 50},
		{ID: ShopWeapon, Name: "Weapon Upgrade", Description: "Advanced projectiles", Cost: 75},
		{ID: ShopVitality, Name: "Vitality", Description: "+25 Max Health", Cost: 50},
		{ID: ShopPower, Name: "Power", Description: "+25% Damage", Cost: 75},
		{ID: ShopFireRate, Name: "Rapid Fire", Description: "-50ms between shots", Cost: 60},
		{ID: ShopRegen, Name: "Regeneration", Description: "+5 Health per second", Cost: 80},
		{ID: ShopAgility, Name: "Agility", Description: "+1 Move Speed", Cost: 70},
	}}
}

// LoadShop reads and validates data/shop.yaml.
func LoadShop(path string) (*ShopConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shop file %s: %w", path, err)
	}
	return ParseShop(data, path)
}

// ParseShop decodes shop YAML.
func ParseShop(data []byte, source string) (*ShopConfig, error) {
	var cfg ShopConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shop YAML from %s: %w", source, err)
	}
	if err := validateShop(&cfg); err != nil {
		return nil, fmt.Errorf("invalid shop in %s: %w", source, err)
	}
	return &cfg, nil
}

func validateShop(cfg *ShopConfig) error {
	seen := make(map[ShopItemID]bool)
	for _, item := range cfg.Items {
		switch item.ID {
		case ShopHealth, ShopDamage, ShopSpeed, ShopKey, ShopWeapon,
			ShopVitality, ShopPower, ShopFireRate, ShopRegen, ShopAgility:
		default:
			return fmt.Errorf("unknown shop item %q", item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("shop item %q listed twice", item.ID)
		}
		seen[item.ID] = true
		if item.Cost <= 0 {
			return fmt.Errorf("shop item %q: cost must be positive, got %d", item.ID, item.Cost)
		}
	}
	return nil
}

// Item looks up an item by id.
func (c *ShopConfig) Item(id ShopItemID) (ShopItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
