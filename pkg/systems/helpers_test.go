package systems

import (
	"time"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/types"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/decker502/powershooter/pkg/weapons"
)

var testField = utils.NewRect(0, 0, 800, 600)

type recordingMessenger struct {
	messages []string
}

func (m *recordingMessenger) ShowMessage(text string, durationMs float64) {
	m.messages = append(m.messages, text)
}

func (m *recordingMessenger) last() string {
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

type stubRules struct {
	destroyed []types.BlockType
	collected []types.PowerUpType
	birds     int
	gateHint  string
	gated     bool
}

func (r *stubRules) OnBlockDestroyed(block *components.BlockComponent) {
	r.destroyed = append(r.destroyed, block.Type)
}

func (r *stubRules) OnPowerUpCollected(powerUp types.PowerUpType) {
	r.collected = append(r.collected, powerUp)
}

func (r *stubRules) OnBirdFreed() { r.birds++ }

func (r *stubRules) DoorGate() (string, bool) { return r.gateHint, r.gated }

func newTestPlayer(x, y float64) *player.Player {
	return player.New(nil, x, y, utils.NewManualClock(time.Unix(0, 0)))
}

// fire places a stationary player projectile at (x, y).
func fire(p *player.Player, x, y float64, damage int) *weapons.Projectile {
	proj := weapons.New(weapons.OwnerPlayer, weapons.PlayerSpec, x, y, 0, 0, damage)
	p.Projectiles = append(p.Projectiles, proj)
	return proj
}
