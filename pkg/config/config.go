// Package config loads the game's YAML data: gameplay tunables, the enemy
// table, campaign metadata, the level layouts and the shop catalogue.
//
// Every loader follows the same pipeline: read through pkg/embedded, decode
// with yaml.v3 on top of the built-in defaults, then validate.
package config

import "fmt"

// Config bundles every data file the game needs.
type Config struct {
	Game     *GameConfig
	Enemies  *EnemyStatsConfig
	Campaign *CampaignConfig
	Shop     *ShopConfig
	// Layouts by level id. Only files provide them.
	Layouts  map[int]*Layout
}

// Default returns the built-in configuration without touching any file. It
// has no layouts, so its levels are empty arenas.
func Default() *Config {
	return &Config{
		Game:     DefaultGameConfig(),
		Enemies:  DefaultEnemyStats(),
		Campaign: DefaultCampaign(),
		Shop:     DefaultShop(),
		Layouts:  map[int]*Layout{},
	}
}

// Load reads all data files from their default paths.
func Load() (*Config, error) {
	game, err := LoadGameConfig(GameConfigPath)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemyStats(EnemyStatsPath)
	if err != nil {
		return nil, err
	}
	campaign, err := LoadCampaign(CampaignPath)
	if err != nil {
		return nil, err
	}
	shop, err := LoadShop(ShopPath)
	if err != nil {
		return nil, err
	}
	layouts, err := LoadLayouts(LayoutsPattern)
	if err != nil {
		return nil, err
	}
	for _, lvl := range campaign.Levels {
		if _, ok := layouts[lvl.ID]; !ok {
			return nil, fmt.Errorf("level %d %q has no layout file", lvl.ID, lvl.Name)
		}
	}
	return &Config{Game: game, Enemies: enemies, Campaign: campaign, Shop: shop, Layouts: layouts}, nil
}

// String summarizes the loaded config for logs.
func (c *Config) String() string {
	return fmt.Sprintf("playfield=%vx%v levels=%d enemyTypes=%d shopItems=%d",
		c.Game.Playfield.Width, c.Game.Playfield.Height,
		len(c.Campaign.Levels), len(c.Enemies.Enemies), len(c.Shop.Items))
}
