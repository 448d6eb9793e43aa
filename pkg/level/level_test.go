package level

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/ecs"
	"github.com/decker502/powershooter/pkg/input"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/render"
	"github.com/decker502/powershooter/pkg/systems"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

type recordingMessenger struct {
	messages []string
}

func (m *recordingMessenger) ShowMessage(text string, durationMs float64) {
	m.messages = append(m.messages, text)
}

func (m *recordingMessenger) saw(substr string) bool {
	for _, msg := range m.messages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func newTestFactory() (*Factory, *recordingMessenger, *utils.ManualClock) {
	msgs := &recordingMessenger{}
	clock := utils.NewManualClock(time.Unix(0, 0))
	return NewFactory(testConfig, msgs, rand.New(rand.NewSource(42)), clock), msgs, clock
}

func newTestPlayer(x, y float64) *player.Player {
	return player.New(nil, x, y, utils.NewManualClock(time.Unix(0, 0)))
}

func doors(em *ecs.EntityManager) []*components.DoorComponent {
	var out []*components.DoorComponent
	for _, id := range ecs.GetEntitiesWith1[*components.DoorComponent](em) {
		d, _ := ecs.GetComponent[*components.DoorComponent](em, id)
		out = append(out, d)
	}
	return out
}

func interact() *input.Snapshot {
	return input.NewSnapshot(0, 0).Press(input.ActionInteract)
}

func TestFactoryBuildsEveryLevel(t *testing.T) {
	f, _, _ := newTestFactory()
	for id := 1; id <= 11; id++ {
		l := f.Build(id, 800, 600)
		if l.Info.ID != id {
			t.Errorf("level %d: built id %d", id, l.Info.ID)
		}
		if n := len(doors(l.EntityManager())); n != 1 {
			t.Errorf("level %d: got %d doors, want 1", id, n)
		}
		if len(l.spawnAreas) == 0 {
			t.Errorf("level %d: no spawn areas", id)
		}
		if l.Progress() == nil {
			t.Errorf("level %d: missing objective counters", id)
		}
		if want := (id + 1) / 2; l.Difficulty != want {
			t.Errorf("level %d difficulty: got %d, want %d", id, l.Difficulty, want)
		}
	}
}

func TestLayoutPlacementCounts(t *testing.T) {
	f, _, _ := newTestFactory()
	blocks := func(id int) map[types.BlockType]int {
		em := f.Build(id, 800, 600).EntityManager()
		counts := make(map[types.BlockType]int)
		for _, e := range ecs.GetEntitiesWith1[*components.BlockComponent](em) {
			b, _ := ecs.GetComponent[*components.BlockComponent](em, e)
			counts[b.Type]++
		}
		return counts
	}

	// ring of eight plus two columns of five
	if got := blocks(2)[types.BlockSolid]; got != 18 {
		t.Errorf("level 2 solid blocks: got %d, want 18", got)
	}
	// four beams rows of six, every third vertical beam left out
	if got := blocks(7); got[types.BlockBreakable] != 24+14 || got[types.BlockSolid] != 18+14 {
		t.Errorf("level 7 beams: got %v", got)
	}
	// arena ring without corners, four diamonds of 13
	if got := blocks(11); got[types.BlockSolid] != 24 || got[types.BlockBreakable] != 52 {
		t.Errorf("level 11 blocks: got %v", got)
	}
}

func TestEmptyArenaWithoutLayouts(t *testing.T) {
	f := NewFactory(nil, nil, rand.New(rand.NewSource(1)), utils.NewManualClock(time.Unix(0, 0)))
	l := f.Build(1, 800, 600)
	if l.Info.ID != 1 || len(doors(l.EntityManager())) != 0 {
		t.Errorf("built-in config has no layouts: got level %d with %d doors", l.Info.ID, len(doors(l.EntityManager())))
	}
	if l.Progress() == nil {
		t.Error("an empty arena still tracks objectives")
	}
}

func TestUnknownLevelFallsBackToFirst(t *testing.T) {
	f, _, _ := newTestFactory()
	l := f.Build(42, 800, 600)
	if l.Info.ID != 1 {
		t.Errorf("fallback level: got %d, want 1", l.Info.ID)
	}
}

func TestPlayerStart(t *testing.T) {
	f, _, _ := newTestFactory()
	if got := f.Build(1, 800, 600).PlayerStart(); got != (utils.Point{X: 50, Y: 300}) {
		t.Errorf("default start: got %+v", got)
	}
	if got := f.Build(5, 800, 600).PlayerStart(); got != (utils.Point{X: 50, Y: 150}) {
		t.Errorf("train start: got %+v, want (50, 150)", got)
	}
}

func TestSpecialBlocksPlaced(t *testing.T) {
	f, _, _ := newTestFactory()
	if n := len(ecs.GetEntitiesWith1[*components.BirdComponent](f.Build(4, 800, 600).EntityManager())); n != 5 {
		t.Errorf("birds: got %d, want 5", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.TrainComponent](f.Build(5, 800, 600).EntityManager())); n != 6 {
		t.Errorf("trains: got %d, want 6", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.BouncerComponent](f.Build(9, 800, 600).EntityManager())); n != 2 {
		t.Errorf("bouncers: got %d, want 2", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.PortalComponent](f.Build(10, 800, 600).EntityManager())); n != 2 {
		t.Errorf("portals: got %d, want 2", n)
	}
}

func TestBiochemGateHoldsKeyedDoor(t *testing.T) {
	f, msgs, _ := newTestFactory()
	l := f.Build(3, 800, 600)
	p := newTestPlayer(380, 220) // on the door at (370, 200)
	p.AddKey()

	if out := l.Update(16, p, interact()); out.Kind != OutcomeContinue {
		t.Fatalf("gated door: got %v", out)
	}
	if p.Keys != 1 || !doors(l.EntityManager())[0].Locked {
		t.Fatal("gated door must not take the key")
	}
	if !msgs.saw("neutralize 3 biochemical compounds") {
		t.Errorf("missing gate hint, got %v", msgs.messages)
	}

	// one shot per compound; each has 2 hp
	for _, at := range []utils.Point{{X: 170, Y: 220}, {X: 620, Y: 220}, {X: 390, Y: 440}} {
		p.Projectiles = append(p.Projectiles, weapons.New(weapons.OwnerPlayer, weapons.PlayerSpec, at.X, at.Y, 0, 0, 10))
	}
	if out := l.Update(16, p, interact()); out.Kind != OutcomeContinue {
		t.Fatalf("unlock frame: got %v", out)
	}
	progress := l.Progress()
	if progress.BiochemDestroyed != 3 || !progress.ObjectiveComplete {
		t.Fatalf("biochem: got %d destroyed, complete=%v", progress.BiochemDestroyed, progress.ObjectiveComplete)
	}
	if !msgs.saw("Door molecular structure destabilized!") {
		t.Error("missing objective message")
	}
	if p.Keys != 0 || doors(l.EntityManager())[0].Locked {
		t.Fatal("door should take the key once the objective is met")
	}

	id := ecs.GetEntitiesWith1[*components.DoorComponent](l.EntityManager())[0]
	rc, _ := ecs.GetComponent[*components.RenderComponent](l.EntityManager(), id)
	if rc.Color != utils.MustHexColor(destabilizedDoorColor) {
		t.Errorf("door color: got %v", rc.Color)
	}

	for i := 0; i < 2; i++ {
		if out := l.Update(16, p, nil); out != Advance(4) {
			t.Errorf("frame %d on unlocked door: got %v, want advance(4)", i, out)
		}
	}
}

func TestBirdsUnlockExit(t *testing.T) {
	f, msgs, _ := newTestFactory()
	l := f.Build(4, 800, 600)

	if _, blocked := l.rules.DoorGate(); !blocked {
		t.Fatal("door should be gated until the birds are freed")
	}
	for i := 0; i < 5; i++ {
		l.rules.OnBirdFreed()
	}
	if _, blocked := l.rules.DoorGate(); blocked {
		t.Error("gate should lift after 5 birds")
	}
	if doors(l.EntityManager())[0].Locked {
		t.Error("freeing every bird should unlock the exit")
	}
	if !msgs.saw("Bird freed! (5/5)") || !msgs.saw("All birds freed!") {
		t.Errorf("messages: got %v", msgs.messages)
	}
}

func TestTrainKeysUnlockExit(t *testing.T) {
	f, msgs, _ := newTestFactory()
	l := f.Build(5, 800, 600)

	l.rules.OnPowerUpCollected(types.PowerUpHealth)
	l.rules.OnPowerUpCollected(types.PowerUpKey)
	l.rules.OnPowerUpCollected(types.PowerUpKey)
	if !doors(l.EntityManager())[0].Locked {
		t.Fatal("two keys should not unlock the exit")
	}
	l.rules.OnPowerUpCollected(types.PowerUpKey)
	if doors(l.EntityManager())[0].Locked {
		t.Error("three control keys should unlock the exit")
	}
	if !msgs.saw("Control key found! (2/3)") || !msgs.saw("All control keys found!") {
		t.Errorf("messages: got %v", msgs.messages)
	}
	if got := l.Progress().KeysCollected; got != 3 {
		t.Errorf("keys collected: got %d, want 3", got)
	}
}

func TestFinalLevelExitFinishes(t *testing.T) {
	f, _, _ := newTestFactory()
	l := f.Build(11, 800, 600)
	systems.UnlockAllDoors(l.EntityManager())

	p := newTestPlayer(380, 60) // door at (370, 50)
	if out := l.Update(16, p, nil); out != Finished() {
		t.Errorf("final exit: got %v, want finished", out)
	}
}

func TestTimedLevelExpiry(t *testing.T) {
	f, _, _ := newTestFactory()
	l := f.Build(6, 800, 600)
	l.StartLevel()
	p := newTestPlayer(50, 300)

	l.Update(40000, p, nil)
	lines := l.HUDLines()
	last := lines[len(lines)-1]
	if last.Text != "Time: 5s" || last.Color != render.Red {
		t.Errorf("timer line: got %+v", last)
	}

	if out := l.Update(5000, p, nil); out.Kind != OutcomeContinue {
		t.Errorf("expiry outcome: got %v", out)
	}
	if p.Active || p.Health != 0 {
		t.Errorf("player should die when time runs out, health %d", p.Health)
	}
}

func TestUpdateWithoutPlayer(t *testing.T) {
	f, _, _ := newTestFactory()
	if out := f.Build(1, 800, 600).Update(16, nil, nil); out != Continue() {
		t.Errorf("nil player: got %v", out)
	}
}

func TestUpdateSurvivesFailingStep(t *testing.T) {
	f, _, _ := newTestFactory()
	l := f.Build(1, 800, 600)
	l.blocks = nil // the blocks step now panics
	systems.UnlockAllDoors(l.EntityManager())

	p := newTestPlayer(710, 260) // door at (700, 250)
	if out := l.Update(16, p, nil); out != Advance(2) {
		t.Errorf("later steps should still run: got %v", out)
	}
}

func TestEndLevelClearsEnemies(t *testing.T) {
	f, _, clock := newTestFactory()
	l := f.Build(1, 800, 600)
	p := newTestPlayer(50, 300)

	l.StartLevel()
	clock.AdvanceMs(3001)
	l.Update(16, p, nil)
	if l.EnemyCount() != 1 {
		t.Fatalf("enemies after first interval: got %d, want 1", l.EnemyCount())
	}

	l.EndLevel()
	if l.EnemyCount() != 0 || l.Started() {
		t.Errorf("after EndLevel: %d enemies, started=%v", l.EnemyCount(), l.Started())
	}
}

func TestDrawLevel(t *testing.T) {
	f, _, _ := newTestFactory()
	l := f.Build(3, 800, 600)
	r := render.NewRecorder(800, 600)

	l.Draw(r)

	if r.Background != l.Info.BackgroundColor() {
		t.Errorf("background: got %v", r.Background)
	}
	if len(r.Sprites) == 0 {
		t.Fatal("no sprites drawn")
	}
	for i := 1; i < len(r.Sprites); i++ {
		if r.Sprites[i].Layer < r.Sprites[i-1].Layer {
			t.Fatalf("sprite %d drawn out of layer order", i)
		}
	}
	for _, want := range []string{"Level 3: Biochemistry Lab", "Biochemical Compounds: 0/3"} {
		if !r.HasText(want) {
			t.Errorf("missing HUD line %q", want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	cases := []struct {
		out  Outcome
		want string
	}{
		{Continue(), "continue"},
		{Advance(7), "advance(7)"},
		{Finished(), "finished"},
	}
	for _, c := range cases {
		if got := c.out.String(); got != c.want {
			t.Errorf("String: got %q, want %q", got, c.want)
		}
	}
}
