package engine

import (
	"github.com/google/uuid"
)

// EventType represents the type of game event.
// Events are informational: the session has already applied the change when it dispatches them.
type EventType int

const (
	// EventRestart signals a new episode with a fresh board
	// Trigger: Session start, auto restart after win/loss | Message: difficulty summary
	EventRestart EventType = iota

	// EventDifficultySelected signals the adversary tick period for the new episode
	// Trigger: Restart after the prompt | Message: confirmation text
	EventDifficultySelected

	// EventPlayerMoved signals a successful player step
	// Position: new player cell
	EventPlayerMoved

	// EventMoveRejected signals a move into a wall, the adversary or off the grid
	// Consumer: audio bump cue
	EventMoveRejected

	// EventWallPlaced signals a wall on the player's previous cell
	// Position: the new wall
	EventWallPlaced

	// EventAdversaryMoved signals one adversary step
	// Position: new adversary cell
	EventAdversaryMoved

	// EventTrapped signals entry into PhaseTrapped, once per episode
	// Trigger: adversary tick or wall placement | Consumer: audio, status
	EventTrapped

	// EventBoundaryTouched signals a newly touched edge during the trapped race
	EventBoundaryTouched

	// EventCountdown signals one countdown step
	// Countdown: seconds remaining
	EventCountdown

	// EventWon signals all four edges touched in time
	EventWon

	// EventLost signals countdown expiry with edges missing
	EventLost
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventRestart:
		return "Restart"
	case EventDifficultySelected:
		return "DifficultySelected"
	case EventPlayerMoved:
		return "PlayerMoved"
	case EventMoveRejected:
		return "MoveRejected"
	case EventWallPlaced:
		return "WallPlaced"
	case EventAdversaryMoved:
		return "AdversaryMoved"
	case EventTrapped:
		return "Trapped"
	case EventBoundaryTouched:
		return "BoundaryTouched"
	case EventCountdown:
		return "Countdown"
	case EventWon:
		return "Won"
	case EventLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Event is one game signal
type Event struct {
	Type      EventType
	SessionID uuid.UUID
	Episode   int
	Phase     GamePhase
	Countdown int
	Position  int
	Message   string
}

// EventHandler receives game events on the session goroutine; handlers must not block
type EventHandler interface {
	HandleEvent(ev Event)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ev Event)

// HandleEvent calls f(ev)
func (f EventHandlerFunc) HandleEvent(ev Event) {
	f(ev)
}
