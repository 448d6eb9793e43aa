package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"gopkg.in/yaml.v3"
)

// CampaignPath is the default location of the level metadata.
const CampaignPath = "data/levels.yaml"

// ErrUnknownLevel is returned when a level id is not in the campaign.
var ErrUnknownLevel = errors.New("unknown level")

// LevelInfo is the metadata of one level. What is placed in it lives in
// the level's layout file.
type LevelInfo struct {
	ID          int          `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Theme       types.Theme  `yaml:"theme"`
	Background  string       `yaml:"background"`
	NextLevel   int          `yaml:"nextLevel"` // 0 marks the final level
	TimeLimit   float64      `yaml:"timeLimit"` // ms, timed theme only
	PlayerStart *utils.Point `yaml:"playerStart"`

	background color.RGBA
}

// BackgroundColor returns the parsed background color.
func (l *LevelInfo) BackgroundColor() color.RGBA { return l.background }

// IsFinal reports whether finishing this level finishes the campaign.
func (l *LevelInfo) IsFinal() bool { return l.NextLevel == 0 }

// CampaignConfig is the root of data/levels.yaml.
type CampaignConfig struct {
	Levels []*LevelInfo `yaml:"levels"`

	byID map[int]*LevelInfo
}

// DefaultCampaign returns the built-in eleven-level campaign.
func DefaultCampaign() *CampaignConfig {
	cfg := &CampaignConfig{Levels: []*LevelInfo{
		{ID: 1, Name: "Training Ground", Description: "Find the key to unlock the door", Theme: types.ThemeStandard, Background: "#111111", NextLevel: 2},
		{ID: 2, Name: "Obstacles Course", Description: "Navigate through obstacles to find the key", Theme: types.ThemeStandard, Background: "#111122", NextLevel: 3},
		{ID: 3, Name: "Biochemistry Lab", Description: "Neutralize biochemical compounds to destabilize the door", Theme: types.ThemeBiochemistry, Background: "#111133", NextLevel: 4},
		{ID: 4, Name: "Bird Sanctuary", Description: "Free the caged birds!", Theme: types.ThemeBirds, Background: "#071f44", NextLevel: 5},
		{ID: 5, Name: "Runaway Train", Description: "Avoid the trains, collect the control keys and make it to the engine room!", Theme: types.ThemeTrain, Background: "#111122", NextLevel: 6, PlayerStart: &utils.Point{X: 50, Y: 150}},
		{ID: 6, Name: "Racing Against Time", Description: "Reach the exit before time runs out!", Theme: types.ThemeTimed, Background: "#330000", NextLevel: 7, TimeLimit: 45000},
		{ID: 7, Name: "Laser Field", Description: "Navigate through lasers to reach the exit", Theme: types.ThemeLasers, Background: "#000033", NextLevel: 8},
		{ID: 8, Name: "Fortress", Description: "Break through the fortress walls", Theme: types.ThemeFortress, Background: "#333333", NextLevel: 9},
		{ID: 9, Name: "Rainbow Gardens", Description: "A colorful but dangerous garden", Theme: types.ThemeGarden, Background: "#005500", NextLevel: 10},
		{ID: 10, Name: "Space Station", Description: "Navigate the space station modules", Theme: types.ThemeSpace, Background: "#000011", NextLevel: 11},
		{ID: 11, Name: "Final Challenge", Description: "Survive the final challenge!", Theme: types.ThemeFinal, Background: "#300030", NextLevel: 0},
	}}
	if err := validateCampaign(cfg); err != nil {
		panic(fmt.Sprintf("built-in campaign invalid: %v", err))
	}
	return cfg
}

// LoadCampaign reads and validates data/levels.yaml.
func LoadCampaign(path string) (*CampaignConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file %s: %w", path, err)
	}
	return ParseCampaign(data, path)
}

// ParseCampaign decodes campaign YAML.
func ParseCampaign(data []byte, source string) (*CampaignConfig, error) {
	var cfg CampaignConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse campaign YAML from %s: %w", source, err)
	}
	if err := validateCampaign(&cfg); err != nil {
		return nil, fmt.Errorf("invalid campaign in %s: %w", source, err)
	}
	return &cfg, nil
}

func validateCampaign(cfg *CampaignConfig) error {
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	cfg.byID = make(map[int]*LevelInfo, len(cfg.Levels))
	for _, lvl := range cfg.Levels {
		if lvl == nil {
			return fmt.Errorf("empty level entry")
		}
		if lvl.ID < 1 {
			return fmt.Errorf("level id must be at least 1, got %d", lvl.ID)
		}
		if _, dup := cfg.byID[lvl.ID]; dup {
			return fmt.Errorf("level %d defined twice", lvl.ID)
		}
		if _, err := types.ParseTheme(string(lvl.Theme)); err != nil {
			return fmt.Errorf("level %d: %w", lvl.ID, err)
		}
		if lvl.Theme == types.ThemeTimed && lvl.TimeLimit <= 0 {
			return fmt.Errorf("level %d: timed level needs a positive timeLimit", lvl.ID)
		}
		c, err := utils.ParseHexColor(lvl.Background)
		if err != nil {
			return fmt.Errorf("level %d background: %w", lvl.ID, err)
		}
		lvl.background = c
		cfg.byID[lvl.ID] = lvl
	}

	finals := 0
	for _, lvl := range cfg.Levels {
		if lvl.IsFinal() {
			finals++
			continue
		}
		if _, ok := cfg.byID[lvl.NextLevel]; !ok {
			return fmt.Errorf("level %d: nextLevel %d does not exist", lvl.ID, lvl.NextLevel)
		}
	}
	if finals == 0 {
		return fmt.Errorf("campaign has no final level")
	}
	return nil
}

// Level looks up a level by id.
func (c *CampaignConfig) Level(id int) (*LevelInfo, error) {
	lvl, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	return lvl, nil
}

// FirstLevelID returns the id the campaign starts at.
func (c *CampaignConfig) FirstLevelID() int {
	return c.Levels[0].ID
}
