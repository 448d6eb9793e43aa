package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := validateGameConfig(cfg.Game); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
	if len(cfg.Campaign.Levels) != 11 {
		t.Errorf("default campaign: got %d levels, want 11", len(cfg.Campaign.Levels))
	}
	if len(cfg.Shop.Items) != 10 {
		t.Errorf("default shop: got %d items, want 10", len(cfg.Shop.Items))
	}
}

func TestParseGameConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("player:\n  speed: 7\n"), "test")
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("speed: got %v, want 7", cfg.Player.Speed)
	}
	if cfg.Player.Health != 100 {
		t.Errorf("health should keep its default, got %d", cfg.Player.Health)
	}
	if cfg.Spawner.MaxEnemies != 5 {
		t.Errorf("maxEnemies should keep its default, got %d", cfg.Spawner.MaxEnemies)
	}
}

func TestParseGameConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative health", "player:\n  health: -1\n"},
		{"friction above one", "coins:\n  friction: 1.5\n"},
		{"inverted coin values", "coins:\n  blockMinValue: 9\n  blockMaxValue: 3\n"},
		{"zero spawn delay", "spawner:\n  baseDelay: 0\n"},
		{"malformed yaml", "player: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGameConfig([]byte(tt.yaml), "test"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseEnemyStatsOverridesOneType(t *testing.T) {
	yaml := `
enemies:
  fast:
    size: 22
    health: 18
    speed: 3.5
    score: 15
    xp: 8
    coins: 2
    coinDropChance: 0.3
    color: "#ffffff"
`
	cfg, err := ParseEnemyStats([]byte(yaml), "test")
	if err != nil {
		t.Fatalf("ParseEnemyStats failed: %v", err)
	}
	fast, _ := cfg.Stats(types.EnemyFast)
	if fast.Health != 18 || fast.RGBA().R != 0xff {
		t.Errorf("fast override not applied: %+v", fast)
	}
	basic, _ := cfg.Stats(types.EnemyBasic)
	if basic.Health != 30 {
		t.Errorf("basic should keep its default health, got %d", basic.Health)
	}
	if b := cfg.Boss.Burst(3); b.Shots != 5 || b.Spread != 0.15 {
		t.Errorf("phase 3 burst: got %+v", b)
	}
	if b := cfg.Boss.Burst(9); b.Shots != 5 {
		t.Errorf("burst should clamp to the last phase, got %+v", b)
	}
}

func TestParseEnemyStatsRejectsUnknownType(t *testing.T) {
	yaml := "enemies:\n  dragon:\n    size: 10\n    health: 10\n    color: \"#000000\"\n"
	if _, err := ParseEnemyStats([]byte(yaml), "test"); err == nil {
		t.Error("expected an error for an unknown enemy type")
	}
}

func TestCampaignLookup(t *testing.T) {
	c := DefaultCampaign()
	lvl, err := c.Level(5)
	if err != nil {
		t.Fatalf("Level(5) failed: %v", err)
	}
	if lvl.NextLevel != 6 {
		t.Errorf("level 5 should continue to 6, got %d", lvl.NextLevel)
	}
	if lvl.PlayerStart == nil || lvl.PlayerStart.Y != 150 {
		t.Errorf("level 5 player start: got %+v", lvl.PlayerStart)
	}
	final, _ := c.Level(11)
	if !final.IsFinal() {
		t.Error("level 11 should be final")
	}
	if _, err := c.Level(42); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Level(42): got %v, want ErrUnknownLevel", err)
	}
}

func TestParseCampaignValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"dangling next", "levels:\n  - {id: 1, theme: standard, background: \"#000000\", nextLevel: 7}\n", "does not exist"},
		{"duplicate", "levels:\n  - {id: 1, theme: standard, background: \"#000000\"}\n  - {id: 1, theme: standard, background: \"#000000\"}\n", "twice"},
		{"bad theme", "levels:\n  - {id: 1, theme: maze, background: \"#000000\"}\n", "unknown theme"},
		{"untimed timer", "levels:\n  - {id: 1, theme: timed, background: \"#000000\"}\n", "timeLimit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCampaign([]byte(tt.yaml), "test")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestParseShopValidation(t *testing.T) {
	if _, err := ParseShop([]byte("items:\n  - {id: laser, cost: 5}\n"), "test"); err == nil {
		t.Error("unknown item should be rejected")
	}
	if _, err := ParseShop([]byte("items:\n  - {id: key, cost: 0}\n"), "test"); err == nil {
		t.Error("zero cost should be rejected")
	}
	cfg, err := ParseShop([]byte("items:\n  - {id: key, name: Key, cost: 10}\n"), "test")
	if err != nil {
		t.Fatalf("ParseShop failed: %v", err)
	}
	if item, ok := cfg.Item(ShopKey); !ok || item.Cost != 10 {
		t.Errorf("Item(key): got (%+v, %v)", item, ok)
	}
}

func TestLoadFromEmbedded(t *testing.T) {
	embedded.InitFS(fstest.MapFS{
		"game.yaml":           {Data: []byte("playfield: {width: 640, height: 480}\n")},
		"enemies.yaml":        {Data: []byte("{}\n")},
		"levels.yaml":         {Data: []byte("levels:\n  - {id: 1, name: Solo, theme: final, background: \"#101010\"}\n")},
		"shop.yaml":           {Data: []byte("items: []\n")},
		"levels/level-1.yaml": {Data: []byte(soloLayout)},
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Playfield.Width != 640 {
		t.Errorf("playfield width: got %v, want 640", cfg.Game.Playfield.Width)
	}
	if cfg.Campaign.FirstLevelID() != 1 {
		t.Errorf("first level: got %d, want 1", cfg.Campaign.FirstLevelID())
	}
	if !strings.Contains(cfg.String(), "levels=1") {
		t.Errorf("String: got %q", cfg.String())
	}
	if l := cfg.Layouts[1]; l == nil || len(l.Doors) != 1 {
		t.Errorf("layout of level 1: got %+v", l)
	}
}

const soloLayout = `
level: 1
doors: [{x: 700, y: 250}]
spawns: [{x: 600, y: 50, w: 150, h: 150}]
`

func TestLoadRequiresALayoutPerLevel(t *testing.T) {
	embedded.InitFS(fstest.MapFS{
		"game.yaml":           {Data: []byte("{}\n")},
		"enemies.yaml":        {Data: []byte("{}\n")},
		"levels.yaml":         {Data: []byte("levels:\n  - {id: 1, name: A, theme: standard, background: \"#101010\", nextLevel: 2}\n  - {id: 2, name: B, theme: final, background: \"#101010\"}\n")},
		"shop.yaml":           {Data: []byte("items: []\n")},
		"levels/level-1.yaml": {Data: []byte(soloLayout)},
	})
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "level 2") {
		t.Errorf("got %v, want a missing layout error for level 2", err)
	}
}

func TestLayoutCells(t *testing.T) {
	l, err := ParseLayout([]byte(`
level: 3
openings: [{x: 100, y: 100, w: 50, h: 50}]
blocks:
  - {x: 0, y: 0, repeat: {count: 3, dx: 50}}
  - {x: 0, y: 0, shape: outline, repeat: {count: 3, dx: 50}, rows: {count: 3, dy: 50}}
  - {x: 0, y: 0, shape: diamond, repeat: {count: 5, dx: 50}, rows: {count: 5, dy: 50}}
  - {x: 0, y: 0, repeat: {count: 2, dx: 10}, rows: {count: 2, dy: 10}, skip: [[1, 0]]}
  - {type: breakable, x: 100, y: 100, ring: {count: 4, radius: 80}}
  - {type: biochem, x: 5, y: 5}
doors: [{x: 1, y: 1}]
spawns: [{x: 0, y: 0, w: 10, h: 10, repeat: {count: 3, dx: 100}}]
`), "test")
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	wantCounts := []int{3, 8, 13, 3, 4, 1}
	for i, want := range wantCounts {
		if got := len(l.Blocks[i].Cells()); got != want {
			t.Errorf("block %d: got %d cells, want %d", i, got, want)
		}
	}
	if got := l.Blocks[0].Cells()[2]; got != (utils.Point{X: 100, Y: 0}) {
		t.Errorf("third cell of the line: got %+v", got)
	}
	ring := l.Blocks[4].Cells()
	if math.Abs(ring[0].X-180) > 1e-9 || math.Abs(ring[1].Y-180) > 1e-9 {
		t.Errorf("ring should start to the right and turn clockwise, got %+v", ring)
	}
	if b := l.Blocks[0]; b.Type != types.BlockSolid || b.W != 50 || b.H != 50 {
		t.Errorf("block defaults: got %+v", b)
	}
	if b := l.Blocks[5]; b.HP != 2 {
		t.Errorf("biochem hp default: got %d, want 2", b.HP)
	}
	if !l.Open(120, 120) || l.Open(150, 120) {
		t.Error("openings should cover their half-open area only")
	}
	if areas := l.Spawns[0].Areas(); len(areas) != 3 || areas[2].X != 200 {
		t.Errorf("spawn areas: got %+v", areas)
	}
}

func TestParseLayoutValidation(t *testing.T) {
	const tail = "doors: [{x: 1, y: 1}]\nspawns: [{x: 0, y: 0, w: 10, h: 10}]\n"
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no level", tail, "level id"},
		{"no door", "level: 1\nspawns: [{x: 0, y: 0, w: 10, h: 10}]\n", "door"},
		{"no spawn", "level: 1\ndoors: [{x: 1, y: 1}]\n", "spawn"},
		{"bad block type", "level: 1\nblocks: [{type: lava}]\n" + tail, "unsupported type"},
		{"bad shape", "level: 1\nblocks: [{shape: star}]\n" + tail, "unknown shape"},
		{"zero repeat", "level: 1\nblocks: [{repeat: {count: 0}}]\n" + tail, "repeat count"},
		{"bad color", "level: 1\nblocks: [{color: red}]\n" + tail, "block 0"},
		{"bad power-up", "level: 1\npowerUps: [{type: laser}]\n" + tail, "unknown type"},
		{"bad train path", "level: 1\ntrains: [{path: diagonal, w: 10, h: 10, speed: 1}]\n" + tail, "unknown train path"},
		{"short waypoints", "level: 1\ntrains: [{path: waypoints, w: 10, h: 10, speed: 1, waypoints: [{x: 1, y: 1}]}]\n" + tail, "at least 2 points"},
		{"ring with repeat", "level: 1\nblocks: [{ring: {count: 4, radius: 10}, repeat: {count: 2}}]\n" + tail, "ring"},
		{"empty scatter", "level: 1\nscatter: [{count: 3}]\n" + tail, "scatter 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.yaml), "test")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestShippedLayouts(t *testing.T) {
	if err := embedded.InitDir(filepath.Join("..", "..", "data")); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Layouts) != len(cfg.Campaign.Levels) {
		t.Errorf("got %d layouts for %d levels", len(cfg.Layouts), len(cfg.Campaign.Levels))
	}
	if n := len(cfg.Layouts[5].Trains); n != 6 {
		t.Errorf("level 5 trains: got %d, want 6", n)
	}
	if got := cfg.Layouts[5].Trains[5].TrainPath(); got != types.TrainWaypoints {
		t.Errorf("last train of level 5: got %v path", got)
	}
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(target, []byte("player: {}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Errorf("event path: got %s, want %s", got, target)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the YAML write")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestWatcherReportsABurstOnceAfterItSettles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "levels.yaml")
	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte(strings.Repeat("#", i+1)), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(debounceWindow / 4)
	}
	lastWrite := time.Now()

	select {
	case got := <-w.Events:
		if got != target {
			t.Errorf("event path: got %s, want %s", got, target)
		}
		if since := time.Since(lastWrite); since < debounceWindow-10*time.Millisecond {
			t.Errorf("reported %v after the last write, before the burst settled (burst took %v)", since, lastWrite.Sub(start))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the burst")
	}

	select {
	case got := <-w.Events:
		t.Errorf("burst reported twice, second event %s", got)
	case <-time.After(3 * debounceWindow):
	}
}
