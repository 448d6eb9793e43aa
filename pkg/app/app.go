// Package app wraps a game session as an ebiten.Game.
//
// main builds the App after pkg/embedded is initialized; the mobile binding
// builds the same App with default options.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/decker502/powershooter/pkg/game"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName is the gdata application name the high score is stored under.
const AppName = "power_shooter"

// maxFrameDelta caps one frame so a stall does not teleport everything.
const maxFrameDelta = 60.0 // ms

// Config holds the startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// Level is the level a new game starts on; 0 starts the campaign from the top.
	Level int
	// Watch reloads data files when they change. Needs an on-disk data
	// directory (embedded.InitDir).
	Watch bool
	// Seed drives layouts, spawns and drops; 0 seeds from the clock.
	Seed int64
}

// App implements ebiten.Game.
type App struct {
	session   *game.Session
	settings  *game.SettingsStore
	renderer  *render.EbitenRenderer
	input     *input.EbitenInput
	clock     utils.Clock
	watcher   *config.Watcher
	lastFrame time.Time
	width     int
	height    int
	verbose   bool
}

// NewApp loads the data files and creates the session.
//
// embedded.Init or embedded.InitDir must run first.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load game data: %w", err)
	}
	log.Printf("[Config] loaded %s", gameCfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := utils.SystemClock{}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable, scores and settings kept in memory: %v", err)
		gdataManager = nil
	}

	w, h := gameCfg.Game.Playfield.Width, gameCfg.Game.Playfield.Height
	renderer := render.NewEbitenRenderer(w, h)
	session := game.NewSession(game.SessionOptions{
		Config:     gameCfg,
		Scores:     game.NewHighScoreStore(gdataManager),
		Clock:      clock,
		Rand:       rand.New(rand.NewSource(seed)),
		Surface:    renderer,
		FirstLevel: cfg.Level,
	})

	settings := game.NewSettingsStore(gdataManager)
	ebiten.SetFullscreen(settings.Settings().Fullscreen)

	a := &App{
		session:  session,
		settings: settings,
		renderer: renderer,
		input:    input.NewEbitenInput(clock),
		clock:    clock,
		width:    int(w),
		height:   int(h),
		verbose:  cfg.Verbose,
	}

	if cfg.Watch {
		a.startWatcher()
	}
	log.Printf("[App] run %s ready (seed %d, first level %d)", session.RunID, seed, cfg.Level)
	return a, nil
}

func (a *App) startWatcher() {
	dir := embedded.Dir()
	if dir == "" {
		log.Printf("[App] -watch needs an on-disk data directory, hot reload disabled")
		return
	}
	w, err := config.NewWatcher(dir)
	if err != nil {
		log.Printf("[App] Warning: cannot watch %s: %v", dir, err)
		return
	}
	a.watcher = w
	log.Printf("[App] watching %s for changes", dir)
}

// Update runs one tick.
func (a *App) Update() error {
	now := a.clock.Now()
	deltaTime := frameDelta(a.lastFrame, now)
	a.lastFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.reloadChanged()
	a.input.Poll()
	a.session.Update(deltaTime, a.input)
	return nil
}

// toggleFullscreen flips fullscreen and remembers the choice for the next run.
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if err := a.settings.SetFullscreen(fullscreen); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// frameDelta is the time since the previous frame in milliseconds, capped at
// maxFrameDelta. The first frame counts as one 60 Hz tick.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1000.0 / 60
	}
	d := float64(now.Sub(prev)) / float64(time.Millisecond)
	return utils.Clamp(d, 0, maxFrameDelta)
}

// reloadChanged applies data file changes picked up by the watcher. A bad
// file is logged and the current data stays.
func (a *App) reloadChanged() {
	if a.watcher == nil {
		return
	}
	changed, errs := a.watcher.Drain()
	for _, err := range errs {
		log.Printf("[App] watcher error: %v", err)
	}
	if len(changed) == 0 {
		return
	}
	log.Printf("[App] data changed: %v", changed)
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[App] reload failed, keeping current data: %v", err)
		return
	}
	a.session.SetConfig(cfg)
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.session.Draw(a.renderer)
}

// DrawFinalScreen letterboxes the game in black when fullscreen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Session returns the running session.
func (a *App) Session() *game.Session { return a.session }

// IsVerbose reports whether logging is on.
func (a *App) IsVerbose() bool { return a.verbose }

// Close stops the config watcher.
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}
