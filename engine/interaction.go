package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/COMOCO0102/Game-plan/board"
)

// UserInteraction is the render/input collaborator the session drives.
// Alert and PromptDifficulty block the session until the player answers.
type UserInteraction interface {
	Render(snap Snapshot)
	Alert(message string) error
	PromptDifficulty(prompt string) (string, error)
}

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	SessionID  uuid.UUID
	Episode    int
	Size       int
	Cells      []board.CellState
	Player     int
	Adversary  int
	Phase      GamePhase
	Countdown  int
	Touched    BoundaryTouchSet
	Difficulty Difficulty
	Status     string
}

// WinMessage is the alert shown when every edge was touched in time
const WinMessage = "Congratulations! The blue cell is trapped and the red cell touched every edge. You win!"

// Status line texts for the terminal phases
const (
	StatusWon  = "Victory!"
	StatusLost = "Time's up! You lose."
)

// TrappedMessage is the one-time alert on entering the boundary race
func TrappedMessage(seconds int) string {
	return fmt.Sprintf("The blue cell is trapped! Now touch all four edges (top, bottom, left, right) with the red cell. You only have %d seconds!", seconds)
}

// LossMessage is the alert shown when the countdown runs out
func LossMessage(seconds int) string {
	return fmt.Sprintf("Time's up! The red cell did not touch every edge within %d seconds. You lose.", seconds)
}

// CountdownStatus is the status line while the boundary race runs
func CountdownStatus(remaining int) string {
	return fmt.Sprintf("Countdown: %d s", remaining)
}
