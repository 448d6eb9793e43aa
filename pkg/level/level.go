// Package level runs one level of the campaign: it owns the level's
// entities, runs the per-frame pass over them and reports when the player
// takes the exit.
package level

import (
	"fmt"
	"log"
	"runtime/debug"
	"sort"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/config"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/systems"
	"github.com/decker502/powershooter/pkg/utils"
)

// Level is one playable level.
//
// The frame pass runs in a fixed order: timer, blocks, trains and contact
// blocks, power-ups, birds, coins, doors, then enemies. A step that panics
// is logged and skipped; the rest of the frame still runs.
type Level struct {
	Info       *config.LevelInfo
	Width      float64
	Height     float64
	Difficulty int

	entityManager *ecs.EntityManager
	rules         Rules
	messages      systems.Messenger
	playerStart   utils.Point
	spawnAreas    []utils.Rect
	surface       render.Renderer
	started       bool

	timer    *systems.LevelTimerSystem
	blocks   *systems.BlockCombatSystem
	trains   *systems.TrainSystem
	contacts *systems.ContactBlockSystem
	powerUps *systems.PowerUpSystem
	birds    *systems.BirdSystem
	coins    *systems.CoinSystem
	doors    *systems.DoorSystem
	spawner  *systems.EnemySpawnSystem
	combat   *systems.EnemyCombatSystem
}

// Init attaches the surface the level draws on. A nil surface is logged and
// leaves drawing disabled until a later Init.
func (l *Level) Init(surface render.Renderer) {
	if surface == nil {
		log.Printf("[Level] level %d: init without a surface, drawing disabled", l.Info.ID)
	}
	l.surface = surface
}

// StartLevel starts enemy spawning and restarts the countdown.
func (l *Level) StartLevel() {
	l.spawner.Start()
	l.timer.Reset()
	l.started = true
	log.Printf("[Level] level %d started (difficulty %d)", l.Info.ID, l.Difficulty)
}

// EndLevel stops spawning and removes every enemy.
func (l *Level) EndLevel() {
	l.spawner.Stop()
	l.spawner.ClearEnemies()
	l.entityManager.RemoveMarkedEntities()
	l.started = false
}

// Started reports whether StartLevel has run since the last EndLevel.
func (l *Level) Started() bool { return l.started }

// PlayerStart is where the player is placed when the level loads.
func (l *Level) PlayerStart() utils.Point { return l.playerStart }

// Bounds is the playfield rectangle.
func (l *Level) Bounds() utils.Rect { return utils.NewRect(0, 0, l.Width, l.Height) }

// EntityManager exposes the level's entities to tools and tests.
func (l *Level) EntityManager() *ecs.EntityManager { return l.entityManager }

// Progress returns the level's objective counters.
func (l *Level) Progress() *components.LevelProgressComponent {
	return systems.LevelProgress(l.entityManager)
}

// EnemyCount is the number of live enemies.
func (l *Level) EnemyCount() int { return l.spawner.EnemyCount() }

// ShowMessage forwards to the level's messenger, or logs when it has none.
func (l *Level) ShowMessage(text string, durationMs float64) {
	if l.messages == nil {
		log.Printf("[Level] message: %s", text)
		return
	}
	l.messages.ShowMessage(text, durationMs)
}

// Update runs one frame and reports whether the player left the level.
//
// Parameters:
//
//	deltaTime - frame duration in milliseconds
//	p - the player; nil skips the frame
//	in - input for this frame; nil means nothing is pressed
//
// Player death is not reported here: callers check p.Active.
func (l *Level) Update(deltaTime float64, p *player.Player, in input.Input) Outcome {
	if p == nil {
		log.Printf("[Level] level %d: update without a player, skipping frame", l.Info.ID)
		return Continue()
	}
	defer l.entityManager.RemoveMarkedEntities()
	bounds := l.Bounds()

	expired := false
	l.step("timer", func() { expired = l.timer.Update(deltaTime, p) })
	if expired {
		return Continue()
	}

	l.step("blocks", func() { l.blocks.Update(p) })
	l.step("trains", func() {
		l.trains.Update(p, bounds)
		l.contacts.Update(deltaTime, p, bounds)
	})
	l.step("powerups", func() { l.powerUps.Update(deltaTime, p) })
	l.step("birds", func() { l.birds.Update(deltaTime, p) })
	l.step("coins", func() { l.coins.Update(p) })

	exited := false
	l.step("doors", func() { exited = l.doors.Update(p, in) })
	if exited {
		return l.exitOutcome()
	}

	l.step("enemies", func() {
		l.spawner.Update(deltaTime, p)
		l.combat.Update(p)
	})
	return Continue()
}

func (l *Level) exitOutcome() Outcome {
	if l.Info.IsFinal() {
		log.Printf("[Level] level %d: final exit taken", l.Info.ID)
		return Finished()
	}
	log.Printf("[Level] level %d: exit to level %d", l.Info.ID, l.Info.NextLevel)
	return Advance(l.Info.NextLevel)
}

// step runs one part of the frame, turning a panic into a log line.
func (l *Level) step(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Level] level %d: %s step failed: %v\n%s", l.Info.ID, name, r, debug.Stack())
		}
	}()
	fn()
}

// Draw renders the background, every entity by layer and the level HUD.
// With no surface passed to Init, it draws on r; with neither, it does
// nothing.
func (l *Level) Draw(r render.Renderer) {
	if r == nil {
		r = l.surface
	}
	if r == nil {
		log.Printf("[Level] level %d: draw without a surface, skipping", l.Info.ID)
		return
	}
	r.Clear(l.Info.BackgroundColor())

	for _, item := range l.sprites() {
		l.step("draw", func() { l.drawItem(r, item) })
	}
	render.DrawLines(r, l.HUDLines())
}

type drawItem struct {
	id     ecs.EntityID
	sprite render.Sprite
}

// sprites collects every visible entity, ordered by layer then creation.
func (l *Level) sprites() []drawItem {
	em := l.entityManager
	var items []drawItem
	for _, id := range ecs.GetEntitiesWith3[*components.RenderComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		rc, _ := ecs.GetComponent[*components.RenderComponent](em, id)
		if rc.Hidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		bounds := components.Bounds(pos, col)
		if pu, ok := ecs.GetComponent[*components.PowerUpComponent](em, id); ok {
			bounds.Y += pu.HoverOffset
		}
		if coin, ok := ecs.GetComponent[*components.CoinComponent](em, id); ok {
			bounds.Y += coin.FloatOffset
		}
		items = append(items, drawItem{id: id, sprite: render.Sprite{
			Bounds:  bounds,
			Color:   rc.Color,
			Shape:   rc.Shape,
			Pattern: rc.Pattern,
			Layer:   rc.Layer,
		}})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].sprite.Layer < items[j].sprite.Layer })
	return items
}

func (l *Level) drawItem(r render.Renderer, item drawItem) {
	em := l.entityManager
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, item.id)
	if !ok {
		r.DrawSprite(item.sprite)
		return
	}
	hp, _ := ecs.GetComponent[*components.HealthComponent](em, item.id)
	render.DrawEnemy(r, item.sprite, hp, enemy.Projectiles)
}

// HUDLines returns the level name and the theme's status lines.
func (l *Level) HUDLines() []render.HUDLine {
	var lines []render.HUDLine
	if l.Info.Name != "" {
		lines = append(lines, render.HUDLine{Text: fmt.Sprintf("Level %d: %s", l.Info.ID, l.Info.Name), X: 20, Y: 150})
	}
	return append(lines, l.rules.StatusLines(l.Width)...)
}
