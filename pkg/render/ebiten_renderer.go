package render

import (
	"image/color"
	"math"

	"github.com/decker502/powershooter/pkg/components"
	"github.com/decker502/powershooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	outline   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	handle    = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	beak      = color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	powerCore = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// EbitenRenderer draws onto an ebiten image. Call Begin with the frame's
// screen before drawing.
type EbitenRenderer struct {
	target *ebiten.Image
	face   text.Face
	width  float64
	height float64
}

// NewEbitenRenderer creates a renderer for a w x h logical screen using the
// built-in bitmap font.
func NewEbitenRenderer(w, h float64) *EbitenRenderer {
	return &EbitenRenderer{
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  w,
		height: h,
	}
}

// Begin sets the image the following calls draw on.
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.target = screen
}

func (r *EbitenRenderer) Size() (float64, float64) { return r.width, r.height }

func (r *EbitenRenderer) Clear(bg color.RGBA) {
	if r.target == nil {
		return
	}
	r.target.Fill(bg)
}

func (r *EbitenRenderer) FillRect(rect utils.Rect, c color.RGBA) {
	if r.target == nil {
		return
	}
	vector.DrawFilledRect(r.target, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// DrawSprite draws the base shape, then a few pattern details.
func (r *EbitenRenderer) DrawSprite(s Sprite) {
	if r.target == nil {
		return
	}
	b := s.Bounds
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	if s.Shape == components.ShapeCircle {
		vector.DrawFilledCircle(r.target, x+w/2, y+h/2, min(w, h)/2, s.Color, true)
	} else {
		vector.DrawFilledRect(r.target, x, y, w, h, s.Color, false)
	}

	switch s.Pattern {
	case "block", "hedge", "train":
		vector.StrokeRect(r.target, x+2, y+2, w-4, h-4, 2, outline, false)
	case "door":
		vector.DrawFilledRect(r.target, x+w*0.4, y+h*0.1, w*0.2, h*0.1, handle, false)
		vector.StrokeRect(r.target, x+2, y+2, w-4, h-4, 2, outline, false)
	case "biochem":
		vector.StrokeRect(r.target, x+2, y+2, w-4, h-4, 2, White, false)
		cx, cy := x+w/2, y+h/2
		vector.DrawFilledCircle(r.target, cx, cy, w/4, White, true)
		vector.DrawFilledCircle(r.target, cx, cy, w/6, s.Color, true)
		for i := 0; i < 3; i++ {
			a := float64(i) * math.Pi * 2 / 3
			px := cx + float32(math.Cos(a))*w/3
			py := cy + float32(math.Sin(a))*h/3
			vector.DrawFilledCircle(r.target, px, py, w/8, White, true)
		}
	case "health", "weapon", "key", "score", "speed":
		vector.DrawFilledCircle(r.target, x+w/2, y+h/2, min(w, h)/4, powerCore, true)
	case "bird":
		vector.DrawFilledCircle(r.target, x+w*0.7, y+h*0.3, w*0.1, White, true)
		vector.DrawFilledRect(r.target, x+w*0.9, y+h*0.3, w*0.1, h*0.2, beak, false)
	case "player":
		vector.DrawFilledRect(r.target, x+w*0.35, y+h*0.2, w*0.3, h*0.2, White, false)
		vector.DrawFilledRect(r.target, x+w*0.4, y+h*0.5, w*0.2, h*0.3, White, false)
	case "basic", "fast", "tank", "shooter", "boss":
		vector.DrawFilledRect(r.target, x+w*0.2, y+h*0.2, w*0.2, h*0.2, Red, false)
		vector.DrawFilledRect(r.target, x+w*0.6, y+h*0.2, w*0.2, h*0.2, Red, false)
		vector.DrawFilledRect(r.target, x+w*0.3, y+h*0.6, w*0.4, h*0.2, Red, false)
	}
}

func (r *EbitenRenderer) DrawText(s string, x, y float64, style TextStyle) {
	if r.target == nil {
		return
	}
	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	switch style.Align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	// text/v2 positions by the top of the line; callers give a baseline
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-r.face.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(style.Color)
	text.Draw(r.target, s, r.face, op)
}
