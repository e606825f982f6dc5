package engine

import (
	"math/rand/v2"

	"github.com/COMOCO0102/Game-plan/board"
)

// LegalMoves returns the neighbours of pos the adversary may step onto:
// cells that are neither walls nor occupied by the player
func LegalMoves(b *board.Board, pos int) []int {
	neighbors := b.Neighbors(pos)
	moves := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		state, err := b.State(n)
		if err != nil {
			continue
		}
		if state != board.Blocked && state != board.Player {
			moves = append(moves, n)
		}
	}
	return moves
}

// IsTrapped reports whether every existing neighbour of pos is a wall.
// Off-grid directions are ignored and, unlike LegalMoves, a player-occupied
// neighbour keeps the adversary free.
func IsTrapped(b *board.Board, pos int) bool {
	neighbors := b.Neighbors(pos)
	if len(neighbors) == 0 {
		return false
	}
	for _, n := range neighbors {
		if !b.IsBlocked(n) {
			return false
		}
	}
	return true
}

// ChooseMove picks one move uniformly at random; false when there is nothing to choose
func ChooseMove(moves []int, rng *rand.Rand) (int, bool) {
	if len(moves) == 0 {
		return board.NoPosition, false
	}
	return moves[rng.IntN(len(moves))], true
}
