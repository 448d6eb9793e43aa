package render

import (
	"fmt"
	"image/color"

	"github.com/decker502/powershooter/pkg/player"
	"github.com/decker502/powershooter/pkg/utils"
)

// HUDLine is one line of overlay text.
type HUDLine struct {
	Text  string
	X, Y  float64
	Color color.RGBA
	Align Align
}

// DrawLines draws HUD lines at their own positions.
func DrawLines(r Renderer, lines []HUDLine) {
	for _, l := range lines {
		c := l.Color
		if c == (color.RGBA{}) {
			c = White
		}
		r.DrawText(l.Text, l.X, l.Y, TextStyle{Color: c, Align: l.Align})
	}
}

// PlayerHUD returns the player stat lines: score, health, keys and weapon on
// the left; coins, level and XP on the right.
func PlayerHUD(p *player.Player, levelID int, width float64) []HUDLine {
	return []HUDLine{
		{Text: fmt.Sprintf("Score: %d", p.Score), X: 20, Y: 30},
		{Text: fmt.Sprintf("Health: %d/%d", p.Health, p.MaxHealth), X: 20, Y: 60},
		{Text: fmt.Sprintf("Keys: %d", p.Keys), X: 20, Y: 90},
		{Text: fmt.Sprintf("Weapon Level: %d", p.WeaponLevel), X: 20, Y: 120},
		{Text: fmt.Sprintf("Coins: %d", p.Coins), X: width - 150, Y: 60, Color: Gold},
		{Text: fmt.Sprintf("Level: %d", levelID), X: width - 20, Y: 30, Align: AlignRight},
		{Text: fmt.Sprintf("XP: %d/%d (Level %d)", p.XP, p.XPToNextLevel, p.Level), X: width - 20, Y: 120, Align: AlignRight},
		{Text: "Press B to open shop", X: width - 110, Y: 140, Color: Gold, Align: AlignCenter},
	}
}

// DrawPlayerHUD draws the stat lines and the XP bar.
func DrawPlayerHUD(r Renderer, p *player.Player, levelID int) {
	if p == nil {
		return
	}
	w, _ := r.Size()
	DrawLines(r, PlayerHUD(p, levelID, w))

	const barW, barH = 200, 10
	bar := utils.NewRect(w-220, 90, barW, barH)
	r.FillRect(bar, Gray)
	if p.XPToNextLevel > 0 {
		progress := utils.Clamp(float64(p.XP)/float64(p.XPToNextLevel), 0, 1)
		r.FillRect(utils.NewRect(bar.X, bar.Y, barW*progress, barH), Purple)
	}
}
