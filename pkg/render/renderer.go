// Package render draws the simulation.
//
// The level and the session describe what to draw with plain values
// (Sprite, TextStyle, HUDLine) and hand them to a Renderer. Only
// EbitenRenderer touches ebiten; Recorder keeps the calls for headless runs
// and tests.
package render

import (
	"image/color"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/utils"
)

// Align is the horizontal anchor of a text line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a line of text is drawn.
type TextStyle struct {
	Color color.RGBA
	Align Align
	Scale float64 // 0 means 1
}

// Sprite is the draw descriptor of one entity.
type Sprite struct {
	Bounds  utils.Rect
	Color   color.RGBA
	Shape   components.Shape
	Pattern string
	Layer   int
}

// Renderer is the drawing surface the game writes to.
type Renderer interface {
	// Size returns the surface size in pixels.
	Size() (w, h float64)
	// Clear fills the whole surface.
	Clear(bg color.RGBA)
	// FillRect fills a rectangle; alpha is honored.
	FillRect(r utils.Rect, c color.RGBA)
	// DrawSprite draws one entity.
	DrawSprite(s Sprite)
	// DrawText draws one line with its baseline at y.
	DrawText(s string, x, y float64, style TextStyle)
}

// Common colors.
var (
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Gold   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	Red    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Warn   = color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}
	Shade  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb3}
	Purple = color.RGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff}
	Gray   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Fade scales c's opacity by k in [0, 1]. color.RGBA is premultiplied, so
// every channel scales.
func Fade(c color.RGBA, k float64) color.RGBA {
	if k >= 1 {
		return c
	}
	if k <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
