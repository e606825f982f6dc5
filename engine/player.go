package engine

import (
	"github.com/COMOCO0102/Game-plan/board"
	"github.com/COMOCO0102/Game-plan/core"
)

// PlayerController moves the player cell and remembers the cell it just left
type PlayerController struct {
	board *board.Board
	pos   int
	last  int
}

// NewPlayerController creates a controller for a player already placed at pos
func NewPlayerController(b *board.Board, pos int) *PlayerController {
	return &PlayerController{
		board: b,
		pos:   pos,
		last:  board.NoPosition,
	}
}

// Position returns the player's current cell
func (p *PlayerController) Position() int {
	return p.pos
}

// LastPosition returns the previously occupied cell, board.NoPosition when unset
func (p *PlayerController) LastPosition() int {
	return p.last
}

// Move steps the player one cell in dir.
// Leaving the grid or entering a wall or the adversary is rejected and changes nothing.
func (p *PlayerController) Move(dir core.Direction) bool {
	next, err := p.board.Step(p.pos, dir)
	if err != nil {
		return false
	}
	state, err := p.board.State(next)
	if err != nil || state == board.Blocked || state == board.Adversary {
		return false
	}

	_ = p.board.Place(p.pos, board.Empty)
	_ = p.board.Place(next, board.Player)
	p.last = p.pos
	p.pos = next
	return true
}

// PlaceWall turns the last position into a wall.
// Ignored when the player has not moved yet or the adversary stands on that cell.
// The last position is kept; the caller clears it once the placement is settled.
func (p *PlayerController) PlaceWall(adversary int) bool {
	if p.last == board.NoPosition || p.last == adversary {
		return false
	}
	return p.board.Place(p.last, board.Blocked) == nil
}

// ClearLastPosition forgets the previously occupied cell
func (p *PlayerController) ClearLastPosition() {
	p.last = board.NoPosition
}
