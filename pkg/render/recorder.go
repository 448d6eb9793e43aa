package render

import (
	"image/color"

	"github.com/decker502/powershooter/pkg/utils"
)

// TextCall is one recorded DrawText.
type TextCall struct {
	Text  string
	X, Y  float64
	Style TextStyle
}

// Recorder is a Renderer that remembers what it was asked to draw.
type Recorder struct {
	Width, Height float64

	Background color.RGBA
	Rects      []utils.Rect
	Sprites    []Sprite
	Texts      []TextCall
}

// NewRecorder creates a recorder of the given surface size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Rects = r.Rects[:0]
	r.Sprites = r.Sprites[:0]
	r.Texts = r.Texts[:0]
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(bg color.RGBA) { r.Background = bg }

func (r *Recorder) FillRect(rect utils.Rect, c color.RGBA) { r.Rects = append(r.Rects, rect) }

func (r *Recorder) DrawSprite(s Sprite) { r.Sprites = append(r.Sprites, s) }

func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	r.Texts = append(r.Texts, TextCall{Text: s, X: x, Y: y, Style: style})
}

// HasText reports whether a line with exactly this text was drawn.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}
