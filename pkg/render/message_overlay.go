package render

import (
	"log"
	"time"

	"github.com/decker502/powershooter/pkg/utils"
)

// DefaultMessageDuration is used when a caller passes a non-positive duration.
const DefaultMessageDuration = 2000

const (
	messageBoxWidth  = 300
	messageBoxHeight = 60
	messageFadeMs    = 400
)

type message struct {
	text  string
	until time.Time
}

// MessageOverlay holds transient messages. Expiry is measured on the wall
// clock, so a message stays up for its duration even while the game is
// paused.
type MessageOverlay struct {
	clock    utils.Clock
	messages []message
}

// NewMessageOverlay creates an empty overlay. A nil clock uses the system clock.
func NewMessageOverlay(clock utils.Clock) *MessageOverlay {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &MessageOverlay{clock: clock}
}

// ShowMessage queues text for durationMs milliseconds.
func (o *MessageOverlay) ShowMessage(text string, durationMs float64) {
	if durationMs <= 0 {
		durationMs = DefaultMessageDuration
	}
	log.Printf("[Message] %s (%.0fms)", text, durationMs)
	until := o.clock.Now().Add(time.Duration(durationMs * float64(time.Millisecond)))
	o.messages = append(o.messages, message{text: text, until: until})
}

// Active drops expired messages and returns the rest, oldest first.
func (o *MessageOverlay) Active() []string {
	kept := o.prune()
	texts := make([]string, len(kept))
	for i, m := range kept {
		texts[i] = m.text
	}
	return texts
}

func (o *MessageOverlay) prune() []message {
	now := o.clock.Now()
	kept := o.messages[:0]
	for _, m := range o.messages {
		if now.Before(m.until) {
			kept = append(kept, m)
		}
	}
	o.messages = kept
	return kept
}

// Clear removes every message.
func (o *MessageOverlay) Clear() {
	o.messages = o.messages[:0]
}

// Draw shows the newest message in a box at the center of the surface and
// stacks older ones above it. A message fades out over its last 400ms.
func (o *MessageOverlay) Draw(r Renderer) {
	msgs := o.prune()
	if len(msgs) == 0 {
		return
	}
	now := o.clock.Now()
	w, h := r.Size()
	for i := len(msgs) - 1; i >= 0; i-- {
		row := float64(len(msgs) - 1 - i)
		cy := h/2 - row*(messageBoxHeight+10)
		if cy < messageBoxHeight/2 {
			break
		}
		left := float64(msgs[i].until.Sub(now)) / float64(time.Millisecond)
		alpha := utils.EaseOutQuad(utils.Progress(left, messageFadeMs))
		r.FillRect(utils.NewRect(w/2-messageBoxWidth/2, cy-messageBoxHeight/2, messageBoxWidth, messageBoxHeight), Fade(Shade, alpha))
		r.DrawText(msgs[i].text, w/2, cy+6, TextStyle{Color: Fade(White, alpha), Align: AlignCenter, Scale: 1.5})
	}
}
