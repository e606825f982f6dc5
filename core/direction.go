package core

// Direction is one of the four orthogonal moves on the grid
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the orthogonal moves in neighbour order (up, down, left, right)
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the row/column offset for the direction
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the move stays within the current row
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}
