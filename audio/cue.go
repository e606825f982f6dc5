package audio

import "github.com/COMOCO0102/Game-plan/engine"

// Cue identifies a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueBump
	CueTrapped
	CueWin
	CueLoss
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueBump:
		return "bump"
	case CueTrapped:
		return "trapped"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	default:
		return "none"
	}
}

// CueForEvent maps a game event to its sound, CueNone for silent events
func CueForEvent(ev engine.Event) Cue {
	switch ev.Type {
	case engine.EventMoveRejected:
		return CueBump
	case engine.EventTrapped:
		return CueTrapped
	case engine.EventWon:
		return CueWin
	case engine.EventLost:
		return CueLoss
	default:
		return CueNone
	}
}
