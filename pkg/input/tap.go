package input

import (
	"time"

	"github.com/decker502/powershooter/pkg/utils"
)

// TapThreshold is the longest press that still counts as a tap.
const TapThreshold = 300 * time.Millisecond

// TapDetector turns pointer down/up edges into taps using the wall clock.
type TapDetector struct {
	clock  utils.Clock
	down   bool
	downAt time.Time
	tapped bool
}

// NewTapDetector creates a detector reading clock.
func NewTapDetector(clock utils.Clock) *TapDetector {
	return &TapDetector{clock: clock}
}

// Press records the pointer going down.
func (d *TapDetector) Press() {
	d.down = true
	d.downAt = d.clock.Now()
}

// Release records the pointer going up and reports whether it was a tap.
func (d *TapDetector) Release() bool {
	if !d.down {
		return false
	}
	d.down = false
	d.tapped = d.clock.Now().Sub(d.downAt) < TapThreshold
	return d.tapped
}

// Tapped reports the result of the last Release until Reset.
func (d *TapDetector) Tapped() bool { return d.tapped }

// Reset clears the tap flag. Called at the start of each frame.
func (d *TapDetector) Reset() { d.tapped = false }

// Cancel forgets a press in progress; its release will not count as a tap.
func (d *TapDetector) Cancel() {
	d.down = false
	d.tapped = false
}
