// Package board holds the square grid of cell states the game is played on.
//
// Positions are flat indices in row-major order: index = row*size + col.
// Horizontal neighbours must share a row; the grid never wraps.
package board

import (
	"errors"
	"fmt"

	"github.com/COMOCO0102/Game-plan/constants"
	"github.com/COMOCO0102/Game-plan/core"
)

// CellState is the content of a single grid cell
type CellState uint8

const (
	Empty CellState = iota
	Blocked
	Player
	Adversary
)

// String returns the state name
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Player:
		return "player"
	case Adversary:
		return "adversary"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// NoPosition marks an unset position
const NoPosition = -1

var (
	ErrInvalidPosition = errors.New("position out of range")
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidState    = errors.New("invalid cell state")
)

// Board is a size×size grid of cell states
type Board struct {
	size  int
	cells []CellState
}

// New creates an empty board with the given side length
func New(size int) (*Board, error) {
	if size < constants.MinGridSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]CellState, size*size),
	}, nil
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// Len returns the total number of cells
func (b *Board) Len() int {
	return len(b.cells)
}

// InBounds reports whether pos is a valid index
func (b *Board) InBounds(pos int) bool {
	return pos >= 0 && pos < len(b.cells)
}

// RowCol converts a flat index to row and column
func (b *Board) RowCol(pos int) (row, col int) {
	return pos / b.size, pos % b.size
}

// Index converts row and column to a flat index, NoPosition when outside the grid
func (b *Board) Index(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return NoPosition
	}
	return row*b.size + col
}

// State returns the cell state at pos
func (b *Board) State(pos int) (CellState, error) {
	if !b.InBounds(pos) {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return b.cells[pos], nil
}

// Place sets the state of the cell at pos
func (b *Board) Place(pos int, state CellState) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	if state > Adversary {
		return fmt.Errorf("%w: %d", ErrInvalidState, state)
	}
	b.cells[pos] = state
	return nil
}

// IsBlocked reports whether pos holds a wall; out-of-range positions are not walls
func (b *Board) IsBlocked(pos int) bool {
	return b.InBounds(pos) && b.cells[pos] == Blocked
}

// Step returns the position reached by moving one cell in dir
func (b *Board) Step(pos int, dir core.Direction) (int, error) {
	if !b.InBounds(pos) {
		return NoPosition, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	row, col := b.RowCol(pos)
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return NoPosition, fmt.Errorf("%w: no direction", ErrInvalidPosition)
	}
	next := b.Index(row+dr, col+dc)
	if next == NoPosition {
		return NoPosition, fmt.Errorf("%w: %d moving %s", ErrInvalidPosition, pos, dir)
	}
	return next, nil
}

// Neighbors returns the existing orthogonal neighbours of pos in up, down, left, right order
func (b *Board) Neighbors(pos int) []int {
	if !b.InBounds(pos) {
		return nil
	}
	result := make([]int, 0, len(core.Directions))
	for _, dir := range core.Directions {
		if next, err := b.Step(pos, dir); err == nil {
			result = append(result, next)
		}
	}
	return result
}

// Find returns the first position holding state, NoPosition if none
func (b *Board) Find(state CellState) int {
	for i, s := range b.cells {
		if s == state {
			return i
		}
	}
	return NoPosition
}

// Count returns how many cells hold state
func (b *Board) Count(state CellState) int {
	n := 0
	for _, s := range b.cells {
		if s == state {
			n++
		}
	}
	return n
}

// Cells returns a copy of all cell states in index order
func (b *Board) Cells() []CellState {
	out := make([]CellState, len(b.cells))
	copy(out, b.cells)
	return out
}
