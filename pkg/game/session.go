// Package game runs a playthrough: the screen state machine around the
// current level, the shop and the persisted high score.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/level"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/google/uuid"
)

// State is the screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateShop
	StateLevelComplete
	StateGameOver
	StateGameComplete
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateShop:
		return "shop"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

const readyMessageDuration = 2000

var (
	titleColor   = utils.MustHexColor("#3498db")
	startColor   = utils.MustHexColor("#2ecc71")
	gameOverRed  = utils.MustHexColor("#e74c3c")
	victoryGold  = utils.MustHexColor("#f1c40f")
	menuBack     = utils.MustHexColor("#111111")
	overlayDark  = color.RGBA{A: 0xcc}
	overlayLight = render.Shade
)

// SessionOptions configures NewSession. Zero values pick defaults.
type SessionOptions struct {
	Config     *config.Config  // nil uses config.Default()
	Scores     *HighScoreStore // nil keeps scores in memory
	Clock      utils.Clock     // nil uses the system clock
	Rand       *rand.Rand      // nil seeds from 1
	Surface    render.Renderer // handed to every level's Init
	FirstLevel int             // level a new game starts on; 0 means the campaign's first
}

// Session is one running game: menu, the level being played, the
// between-level screens and the end screens.
type Session struct {
	RunID uuid.UUID

	width, height float64
	cfg           *config.Config
	factory       *level.Factory
	scores        *HighScoreStore
	shop          *Shop
	messages      *render.MessageOverlay
	clock         utils.Clock
	surface       render.Renderer

	state      State
	player     *player.Player
	level      *level.Level
	levelID    int
	firstLevel int
	completed  int     // level just finished, for the summary screen
	startDelay float64 // ms until the loaded level starts spawning

	newHighScore bool
}

// NewSession creates a session on the menu screen.
func NewSession(opts SessionOptions) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = utils.SystemClock{}
	}
	scores := opts.Scores
	if scores == nil {
		scores = NewHighScoreStore(nil)
	}
	first := opts.FirstLevel
	if first == 0 {
		first = cfg.Campaign.FirstLevelID()
	}

	messages := render.NewMessageOverlay(clock)
	s := &Session{
		RunID:      uuid.New(),
		width:      cfg.Game.Playfield.Width,
		height:     cfg.Game.Playfield.Height,
		cfg:        cfg,
		factory:    level.NewFactory(cfg, messages, opts.Rand, clock),
		scores:     scores,
		shop:       NewShop(cfg.Shop, messages),
		messages:   messages,
		clock:      clock,
		surface:    opts.Surface,
		state:      StateMenu,
		firstLevel: first,
	}
	s.player = s.newPlayer()
	log.Printf("[Session] run %s created, first level %d", s.RunID, first)
	return s
}

// SetConfig applies reloaded data. The running level keeps its entities;
// the next level built uses cfg.
func (s *Session) SetConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s.cfg = cfg
	s.factory.SetConfig(cfg)
	s.shop.SetCatalogue(cfg.Shop)
	log.Printf("[Session] config reloaded: %s", cfg)
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Player returns the player of this playthrough.
func (s *Session) Player() *player.Player { return s.player }

// Level returns the loaded level, nil before the first game starts.
func (s *Session) Level() *level.Level { return s.level }

// LevelID returns the id of the loaded level.
func (s *Session) LevelID() int { return s.levelID }

// Shop returns the shop.
func (s *Session) Shop() *Shop { return s.shop }

// Messages returns the transient message overlay.
func (s *Session) Messages() *render.MessageOverlay { return s.messages }

// HighScore returns the best score on record.
func (s *Session) HighScore() int { return s.scores.LoadHighScore() }

// Update advances the session by one frame of deltaTime milliseconds.
//
// Whenever the screen changes, the input is consumed so that the press (and
// the tap its release completes) acts on one screen only.
func (s *Session) Update(deltaTime float64, in input.Input) {
	if in == nil {
		log.Printf("[Session] update without input, skipping frame")
		return
	}
	before := s.state
	defer func() {
		if s.state != before {
			in.Consume()
		}
	}()

	switch s.state {
	case StateMenu:
		if clicked(in) {
			s.loadLevel(s.firstLevel)
			s.state = StatePlaying
		}
	case StatePlaying:
		if in.IsActionPressed(input.ActionPause) {
			s.state = StatePaused
			return
		}
		if in.IsActionPressed(input.ActionShop) {
			s.state = StateShop
			return
		}
		s.play(deltaTime, in)
	case StatePaused:
		if in.IsActionPressed(input.ActionPause) {
			s.state = StatePlaying
		}
	case StateShop:
		if in.IsActionPressed(input.ActionPause) || in.IsActionPressed(input.ActionShop) {
			s.shop.Reset()
			s.state = StatePlaying
			return
		}
		s.shop.Update(s.player, in)
	case StateLevelComplete:
		if clicked(in) {
			s.loadLevel(s.levelID)
			s.state = StatePlaying
		}
	case StateGameOver, StateGameComplete:
		if clicked(in) {
			s.reset()
		}
	}
}

func (s *Session) play(deltaTime float64, in input.Input) {
	if s.level == nil {
		log.Printf("[Session] playing without a level, skipping frame")
		return
	}

	if !s.level.Started() && s.startDelay > 0 {
		s.startDelay -= deltaTime
		if s.startDelay <= 0 {
			s.level.StartLevel()
		}
	}

	s.player.Update(deltaTime, in, s.level.Bounds())
	out := s.level.Update(deltaTime, s.player, in)

	// a player who dies on the frame they reach the exit does not leave
	if !s.player.Active {
		s.state = StateGameOver
		s.recordScore()
		log.Printf("[Session] game over on level %d with score %d", s.levelID, s.player.Score)
		return
	}

	switch out.Kind {
	case level.OutcomeAdvance:
		s.completed = s.levelID
		s.levelID = out.NextLevel
		s.state = StateLevelComplete
		log.Printf("[Session] level %d complete, next %d", s.completed, s.levelID)
	case level.OutcomeFinished:
		s.completed = s.levelID
		s.state = StateGameComplete
		s.recordScore()
		log.Printf("[Session] campaign complete with score %d", s.player.Score)
	}
}

// loadLevel ends the current level and builds id in its place.
func (s *Session) loadLevel(id int) {
	if s.level != nil {
		s.level.EndLevel()
	}
	s.level = s.factory.Build(id, s.width, s.height)
	s.levelID = s.level.Info.ID
	s.level.Init(s.surface)

	start := s.level.PlayerStart()
	s.player.MoveTo(start.X, start.Y)
	s.messages.ShowMessage(fmt.Sprintf("Level %d - Get Ready!", s.levelID), readyMessageDuration)
	s.startDelay = s.cfg.Game.Rules.StartDelay
	if s.startDelay <= 0 {
		s.level.StartLevel()
	}
}

// recordScore submits the final score.
func (s *Session) recordScore() {
	beaten, err := s.scores.Submit(s.player.Score, s.RunID)
	if err != nil {
		log.Printf("[Session] failed to save high score: %v", err)
	}
	s.newHighScore = s.newHighScore || beaten
}

// reset starts a new playthrough on the menu screen.
func (s *Session) reset() {
	if s.level != nil {
		s.level.EndLevel()
	}
	s.level = nil
	s.levelID = 0
	s.completed = 0
	s.newHighScore = false
	s.player = s.newPlayer()
	s.shop.Reset()
	s.messages.Clear()
	s.RunID = uuid.New()
	s.state = StateMenu
	log.Printf("[Session] reset, new run %s", s.RunID)
}

func (s *Session) newPlayer() *player.Player {
	return player.New(s.cfg.Game, 50, s.height/2-20, s.clock)
}

func clicked(in input.Input) bool {
	return in.IsActionPressed(input.ActionFire) || in.WasTapped()
}

// Draw renders the current screen.
func (s *Session) Draw(r render.Renderer) {
	if r == nil {
		log.Printf("[Session] draw without a surface, skipping")
		return
	}

	switch s.state {
	case StateMenu:
		s.drawMenu(r)
	case StatePlaying, StatePaused, StateShop:
		s.drawPlay(r)
		if s.state == StatePaused {
			s.drawPause(r)
		}
		if s.state == StateShop {
			s.shop.Draw(r, s.player)
		}
	case StateLevelComplete:
		s.drawLevelComplete(r)
	case StateGameOver:
		s.drawGameOver(r)
	case StateGameComplete:
		s.drawGameComplete(r)
	}
}

func (s *Session) drawPlay(r render.Renderer) {
	if s.level != nil {
		s.level.Draw(r)
	}
	render.DrawPlayer(r, s.player, s.clock.Now())
	render.DrawPlayerHUD(r, s.player, s.levelID)
	s.messages.Draw(r)
}

func centered(c color.RGBA, scale float64) render.TextStyle {
	return render.TextStyle{Color: c, Align: render.AlignCenter, Scale: scale}
}

func (s *Session) drawMenu(r render.Renderer) {
	w := s.width
	r.Clear(menuBack)
	r.DrawText("POWER SHOOTER", w/2, 150, centered(titleColor, 4))
	r.DrawText("Shoot blocks, collect power-ups, defeat enemies!", w/2, 220, centered(render.White, 1.5))
	for i, line := range []string{
		"WASD or Arrow Keys to move",
		"Mouse to aim and shoot",
		"E to use keys on doors",
		"B to open shop",
		"ESC to pause game",
	} {
		r.DrawText(line, w/2, 290+float64(i)*30, centered(render.White, 1.3))
	}
	r.DrawText(clickVerb()+" anywhere to start", w/2, 470, centered(startColor, 2))
	if best := s.scores.Record(); best.Score > 0 {
		r.DrawText(bestRunLine(best), w/2, 530, centered(render.Gold, 1.3))
	}
}

func bestRunLine(best HighScoreRecord) string {
	return fmt.Sprintf("Best: %d on %s", best.Score, best.SavedAt.Format("2006-01-02"))
}

func (s *Session) drawPause(r render.Renderer) {
	w, h := s.width, s.height
	r.FillRect(utils.NewRect(0, 0, w, h), overlayLight)
	r.DrawText("GAME PAUSED", w/2, h/2-50, centered(render.White, 3))
	r.DrawText("Press ESC to resume", w/2, h/2+50, centered(render.White, 1.8))
}

func (s *Session) drawLevelComplete(r render.Renderer) {
	w, h := s.width, s.height
	r.FillRect(utils.NewRect(0, 0, w, h), overlayLight)
	r.DrawText(fmt.Sprintf("LEVEL %d COMPLETE!", s.completed), w/2, h/2-80, centered(startColor, 3))
	r.DrawText(fmt.Sprintf("Score: %d", s.player.Score), w/2, h/2-20, centered(render.White, 1.8))
	r.DrawText(fmt.Sprintf("Coins: %d", s.player.Coins), w/2, h/2+20, centered(render.White, 1.8))
	r.DrawText(fmt.Sprintf("Player Level: %d", s.player.Level), w/2, h/2+60, centered(render.White, 1.8))
	r.DrawText(clickVerb()+" to continue to next level", w/2, h/2+120, centered(render.White, 1.6))
}

func (s *Session) drawGameOver(r render.Renderer) {
	w, h := s.width, s.height
	r.FillRect(utils.NewRect(0, 0, w, h), overlayDark)
	r.DrawText("GAME OVER", w/2, h/2-70, centered(gameOverRed, 3.5))
	r.DrawText(fmt.Sprintf("Your Score: %d", s.player.Score), w/2, h/2, centered(render.White, 2.2))
	s.drawHighScore(r, h/2+50)
	r.DrawText(clickVerb()+" to play again", w/2, h/2+120, centered(titleColor, 1.9))
}

func (s *Session) drawGameComplete(r render.Renderer) {
	w, h := s.width, s.height
	r.FillRect(utils.NewRect(0, 0, w, h), overlayDark)
	r.DrawText("CONGRATULATIONS!", w/2, h/2-100, centered(victoryGold, 3.5))
	r.DrawText("YOU WIN!", w/2, h/2-30, centered(victoryGold, 3.5))
	r.DrawText(fmt.Sprintf("Final Score: %d", s.player.Score), w/2, h/2+50, centered(render.White, 2.2))
	r.DrawText(fmt.Sprintf("Player Level: %d", s.player.Level), w/2, h/2+90, centered(render.White, 1.8))
	r.DrawText(fmt.Sprintf("Coins Collected: %d", s.player.Coins), w/2, h/2+130, centered(render.White, 1.8))
	s.drawHighScore(r, h/2+180)
	r.DrawText(clickVerb()+" to play again", w/2, h/2+230, centered(titleColor, 1.9))
}

func (s *Session) drawHighScore(r render.Renderer, y float64) {
	if s.newHighScore {
		r.DrawText("New High Score!", s.width/2, y, centered(victoryGold, 2.2))
		return
	}
	r.DrawText(fmt.Sprintf("High Score: %d", s.scores.LoadHighScore()), s.width/2, y, centered(render.White, 2.2))
}

// clickVerb is what the screens ask the player to do: tap on phones, click
// everywhere else.
func clickVerb() string {
	if utils.IsMobile() {
		return "Tap"
	}
	return "Click"
}
