package level

import "fmt"

// OutcomeKind says what the caller should do after a level update.
type OutcomeKind int

const (
	// OutcomeContinue keeps playing the current level.
	OutcomeContinue OutcomeKind = iota
	// OutcomeAdvance moves on to Outcome.NextLevel.
	OutcomeAdvance
	// OutcomeFinished means the final level's exit was taken.
	OutcomeFinished
)

// Outcome is the result of one Level.Update call.
type Outcome struct {
	Kind      OutcomeKind
	NextLevel int // set only for OutcomeAdvance
}

// Continue stays on the level.
func Continue() Outcome { return Outcome{Kind: OutcomeContinue} }

// Advance transitions to level id.
func Advance(id int) Outcome { return Outcome{Kind: OutcomeAdvance, NextLevel: id} }

// Finished ends the campaign.
func Finished() Outcome { return Outcome{Kind: OutcomeFinished} }

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeAdvance:
		return fmt.Sprintf("advance(%d)", o.NextLevel)
	case OutcomeFinished:
		return "finished"
	default:
		return "continue"
	}
}
