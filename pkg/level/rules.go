package level

import (
	"fmt"
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/systems"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
)

// destabilizedDoorColor is the door color once the biochem objective is met.
const destabilizedDoorColor = "#34A853"

// Rules is a theme's rule set: the hooks the systems call plus the theme's
// own HUD lines.
type Rules interface {
	systems.LevelRules
	StatusLines(width float64) []render.HUDLine
}

// baseRules is the standard theme: no objective, no extra HUD.
type baseRules struct {
	entityManager *ecs.EntityManager
	messages      systems.Messenger
	duration      float64
}

func (r *baseRules) OnBlockDestroyed(*components.BlockComponent) {}
func (r *baseRules) OnPowerUpCollected(types.PowerUpType)       {}
func (r *baseRules) OnBirdFreed()                               {}
func (r *baseRules) DoorGate() (string, bool)                   { return "", false }

func (r *baseRules) StatusLines(float64) []render.HUDLine { return nil }

func (r *baseRules) progress() *components.LevelProgressComponent {
	if p := systems.LevelProgress(r.entityManager); p != nil {
		return p
	}
	return &components.LevelProgressComponent{}
}

func (r *baseRules) show(text string) {
	if r.messages != nil {
		r.messages.ShowMessage(text, r.duration)
	}
}

// counterLine is the theme objective counter shown under the level name.
func counterLine(label string, n, target int) render.HUDLine {
	return render.HUDLine{Text: fmt.Sprintf("%s: %d/%d", label, n, target), X: 20, Y: 180}
}

// biochemRules gate every door until enough biochem blocks are destroyed.
// Meeting the target recolors the doors; they still need a key.
type biochemRules struct {
	baseRules
}

func (r *biochemRules) OnBlockDestroyed(block *components.BlockComponent) {
	if block.Type != types.BlockBiochem {
		return
	}
	p := r.progress()
	p.BiochemDestroyed++
	r.show(fmt.Sprintf("Biochemical compound neutralized! (%d/%d)", p.BiochemDestroyed, p.BiochemTarget))
	if p.BiochemDestroyed < p.BiochemTarget || p.ObjectiveComplete {
		return
	}
	p.ObjectiveComplete = true
	r.show("Door molecular structure destabilized! Now you can open it with a key.")

	c := utils.MustHexColor(destabilizedDoorColor)
	for _, id := range ecs.GetEntitiesWith2[*components.DoorComponent, *components.RenderComponent](r.entityManager) {
		rc, _ := ecs.GetComponent[*components.RenderComponent](r.entityManager, id)
		rc.Color = c
	}
}

func (r *biochemRules) DoorGate() (string, bool) {
	p := r.progress()
	if p.BiochemDestroyed >= p.BiochemTarget {
		return "", false
	}
	return fmt.Sprintf("You need to neutralize %d biochemical compounds to destabilize the door!", p.BiochemTarget), true
}

func (r *biochemRules) StatusLines(float64) []render.HUDLine {
	p := r.progress()
	return []render.HUDLine{counterLine("Biochemical Compounds", p.BiochemDestroyed, p.BiochemTarget)}
}

// birdRules unlock every door once enough birds are freed.
type birdRules struct {
	baseRules
}

func (r *birdRules) OnBirdFreed() {
	p := r.progress()
	p.BirdsFreed++
	r.show(fmt.Sprintf("Bird freed! (%d/%d)", p.BirdsFreed, p.BirdTarget))
	if p.BirdsFreed >= p.BirdTarget && !p.ObjectiveComplete {
		p.ObjectiveComplete = true
		systems.UnlockAllDoors(r.entityManager)
		r.show("All birds freed! The exit is now unlocked!")
	}
}

func (r *birdRules) DoorGate() (string, bool) {
	p := r.progress()
	if p.BirdsFreed >= p.BirdTarget {
		return "", false
	}
	return fmt.Sprintf("Free all %d birds to unlock the exit!", p.BirdTarget), true
}

func (r *birdRules) StatusLines(float64) []render.HUDLine {
	p := r.progress()
	return []render.HUDLine{counterLine("Birds Freed", p.BirdsFreed, p.BirdTarget)}
}

// trainRules count control keys; collecting all of them unlocks the exit.
type trainRules struct {
	baseRules
}

func (r *trainRules) OnPowerUpCollected(powerUp types.PowerUpType) {
	if powerUp != types.PowerUpKey {
		return
	}
	p := r.progress()
	p.KeysCollected++
	if p.KeysCollected < p.KeyTarget {
		r.show(fmt.Sprintf("Control key found! (%d/%d)", p.KeysCollected, p.KeyTarget))
		return
	}
	if !p.ObjectiveComplete {
		p.ObjectiveComplete = true
		systems.UnlockAllDoors(r.entityManager)
		r.show("All control keys found! The exit is now unlocked!")
	}
}

func (r *trainRules) StatusLines(width float64) []render.HUDLine {
	p := r.progress()
	return []render.HUDLine{
		counterLine("Control Keys Found", p.KeysCollected, p.KeyTarget),
		{Text: "WARNING: Avoid moving trains!", X: width - 250, Y: 150, Color: render.Warn},
	}
}

// timedRules show the countdown; LevelTimerSystem enforces it.
type timedRules struct {
	baseRules
}

func (r *timedRules) StatusLines(width float64) []render.HUDLine {
	seconds := int(math.Max(0, math.Floor(r.progress().TimeRemaining/1000)))
	c := render.White
	if seconds < 10 {
		c = render.Red
	}
	return []render.HUDLine{{Text: fmt.Sprintf("Time: %ds", seconds), X: width / 2, Y: 30, Color: c, Align: render.AlignCenter}}
}

// newRules picks the rule set for a theme. Themes without an objective of
// their own use the standard rules.
func newRules(theme types.Theme, em *ecs.EntityManager, messages systems.Messenger, duration float64) Rules {
	base := baseRules{entityManager: em, messages: messages, duration: duration}
	switch theme {
	case types.ThemeBiochemistry:
		return &biochemRules{base}
	case types.ThemeBirds:
		return &birdRules{base}
	case types.ThemeTrain:
		return &trainRules{base}
	case types.ThemeTimed:
		return &timedRules{base}
	default:
		return &base
	}
}
