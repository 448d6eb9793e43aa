package level

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/entities"
	"github.com/decker502/powershooter/pkg/systems"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// Factory builds levels from the campaign metadata and the layout files.
type Factory struct {
	cfg      *config.Config
	messages systems.Messenger
	rng      *rand.Rand
	clock    utils.Clock
}

// NewFactory creates a level factory.
//
// Parameters:
//   - cfg: game data; nil uses the built-in defaults
//   - messages: where levels show transient messages; nil logs them
//   - rng: shared by layouts, spawns and drops; nil seeds from 1
//   - clock: wall clock for spawning; nil uses the system clock
func NewFactory(cfg *config.Config, messages systems.Messenger, rng *rand.Rand, clock utils.Clock) *Factory {
	if cfg == nil {
		cfg = config.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Factory{cfg: cfg, messages: messages, rng: rng, clock: clock}
}

// SetConfig swaps the data used for levels built from now on.
func (f *Factory) SetConfig(cfg *config.Config) {
	if cfg != nil {
		f.cfg = cfg
	}
}

// Config returns the data levels are built from.
func (f *Factory) Config() *config.Config { return f.cfg }

// Build creates level id on a width x height playfield. Unknown ids, and
// campaign entries without a layout, fall back to level 1; with no layout
// for level 1 either the level is an empty arena.
func (f *Factory) Build(id int, width, height float64) *Level {
	info, layout := f.lookup(id)
	game := f.cfg.Game

	em := ecs.NewEntityManager()
	timeLimit := 0.0
	if info.Theme == types.ThemeTimed {
		timeLimit = info.TimeLimit
	}
	entities.NewLevelProgressEntity(em, &game.Rules, timeLimit)

	b := &builder{
		entityManager: em,
		game:          game,
		rng:           f.rng,
		width:         width,
		height:        height,
	}
	b.place(layout)

	start := utils.Point{X: 50, Y: height / 2}
	if info.PlayerStart != nil {
		start = *info.PlayerStart
	}
	difficulty := int(math.Ceil(float64(info.ID) / 2))

	l := &Level{
		Info:          info,
		Width:         width,
		Height:        height,
		Difficulty:    difficulty,
		entityManager: em,
		messages:      f.messages,
		playerStart:   start,
		spawnAreas:    b.spawnAreas,
	}
	duration := game.Rules.MessageDuration
	l.rules = newRules(info.Theme, em, l, duration)

	l.timer = systems.NewLevelTimerSystem(em)
	l.blocks = systems.NewBlockCombatSystem(em, l.rules, &game.Coins, f.rng)
	l.trains = systems.NewTrainSystem(em, l, game.Rules.TrainKnockback)
	l.contacts = systems.NewContactBlockSystem(em)
	l.powerUps = systems.NewPowerUpSystem(em, l.rules, l, game)
	l.birds = systems.NewBirdSystem(em, l.rules, game.Rules.BirdXP, game.Rules.BirdEscapeY)
	l.coins = systems.NewCoinSystem(em)
	l.doors = systems.NewDoorSystem(em, l.rules, l, duration)
	behavior := systems.NewEnemyBehaviorSystem(em, f.cfg.Enemies, game.Projectiles.Enemy, f.rng)
	l.spawner = systems.NewEnemySpawnSystem(em, behavior, f.cfg.Enemies, game.Spawner, b.spawnAreas, difficulty, f.rng, f.clock)
	l.combat = systems.NewEnemyCombatSystem(em, &game.Coins, f.rng)

	log.Printf("[LevelFactory] built level %d %q: %d entities, %d spawn areas", info.ID, info.Name, em.Count(), len(b.spawnAreas))
	return l
}

func (f *Factory) lookup(id int) (*config.LevelInfo, *config.Layout) {
	info, err := f.cfg.Campaign.Level(id)
	layout, ok := f.cfg.Layouts[id]
	if err == nil && ok {
		return info, layout
	}
	if err != nil {
		log.Printf("[LevelFactory] %v, falling back to level 1", err)
	} else {
		log.Printf("[LevelFactory] level %d has no layout, falling back to level 1", id)
	}

	info, err = f.cfg.Campaign.Level(1)
	if err != nil {
		info, _ = f.cfg.Campaign.Level(f.cfg.Campaign.FirstLevelID())
	}
	layout, ok = f.cfg.Layouts[info.ID]
	if !ok {
		log.Printf("[LevelFactory] Warning: level %d has no layout either, building an empty arena", info.ID)
		layout = &config.Layout{Level: info.ID}
	}
	return info, layout
}

// biochemColor is used when a biochem block has no color of its own.
const biochemColor = "#FF00FF"

// builder turns a layout into entities.
type builder struct {
	entityManager *ecs.EntityManager
	game          *config.GameConfig
	rng           *rand.Rand
	width         float64
	height        float64
	spawnAreas    []utils.Rect
}

func (b *builder) place(layout *config.Layout) {
	for i := range layout.Blocks {
		p := &layout.Blocks[i]
		for _, at := range p.Cells() {
			if layout.Open(at.X, at.Y) {
				continue
			}
			b.block(p.Type, at.X, at.Y, p.W, p.H, p.Color, p.HP)
		}
	}
	for _, s := range layout.Scatter {
		b.scatter(layout, s)
	}

	em, rules := b.entityManager, &b.game.Rules
	for _, p := range layout.PowerUps {
		entities.NewPowerUpEntity(em, rules, p.X, p.Y, p.Type)
	}
	for _, d := range layout.Doors {
		entities.NewDoorEntity(em, entities.DoorOptions{X: d.X, Y: d.Y, Color: d.Color})
	}
	for i, bird := range layout.Birds {
		hex := bird.Color
		if hex == "" {
			hex = entities.BirdColors[i%len(entities.BirdColors)]
		}
		entities.NewBirdEntity(em, rules, b.rng, bird.X, bird.Y, hex)
	}
	for i := range layout.Trains {
		t := &layout.Trains[i]
		entities.NewTrainEntity(em, entities.TrainOptions{
			X: t.X, Y: t.Y, Width: t.W, Height: t.H,
			Speed: t.Speed, Damage: t.Damage, Kind: t.Kind, Path: t.TrainPath(),
			MinBound: t.MinBound, MaxBound: t.MaxBound, Direction: t.Direction,
			Waypoints: t.Waypoints,
		})
	}
	for _, bn := range layout.Bouncers {
		entities.NewBouncerEntity(em, rules, bn.X, bn.Y, bn.W, bn.H, bn.Color)
	}
	for _, p := range layout.Portals {
		entities.NewPortalEntity(em, rules, p.X, p.Y, p.TargetX, p.TargetY)
	}
	for i := range layout.Spawns {
		b.spawnAreas = append(b.spawnAreas, layout.Spawns[i].Areas()...)
	}
}

func (b *builder) block(t types.BlockType, x, y, w, h float64, hex string, hp int) {
	if t == types.BlockBiochem && hex == "" {
		hex = biochemColor
	}
	if !t.Breakable() {
		hp = 0
	}
	entities.NewBlockEntity(b.entityManager, &b.game.Rules, entities.BlockOptions{
		X: x, Y: y, Width: w, Height: h, Type: t, Color: hex, Health: hp,
	})
}

// scatter drops breakable blocks at random spots of the area, skipping the
// layout's openings.
func (b *builder) scatter(layout *config.Layout, s config.ScatterPlacement) {
	for i := 0; i < s.Count; i++ {
		size := s.MinSize
		if s.MaxSize > s.MinSize {
			size += b.rng.Intn(s.MaxSize - s.MinSize)
		}
		x := s.Area.X + b.rng.Float64()*s.Area.W
		y := s.Area.Y + b.rng.Float64()*s.Area.H
		if layout.Open(x, y) {
			continue
		}
		b.block(types.BlockBreakable, x, y, float64(size), float64(size), s.Color, s.HP)
	}
}
