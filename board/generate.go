package board

import (
	"fmt"
	"math/rand/v2"
)

// Layout is a freshly generated board with the two agents placed
type Layout struct {
	Board     *Board
	Player    int
	Adversary int
}

// Generate builds a board where each cell is blocked with probability density,
// then places the player and the adversary on distinct random cells, clearing
// any wall beneath them
func Generate(size int, density float64, rng *rand.Rand) (Layout, error) {
	b, err := New(size)
	if err != nil {
		return Layout{}, err
	}
	if density < 0 || density >= 1 {
		return Layout{}, fmt.Errorf("wall density %.2f outside [0,1)", density)
	}

	for i := range b.cells {
		if rng.Float64() < density {
			b.cells[i] = Blocked
		}
	}

	player := rng.IntN(b.Len())
	b.cells[player] = Player

	adversary := player
	for adversary == player {
		adversary = rng.IntN(b.Len())
	}
	b.cells[adversary] = Adversary

	return Layout{
		Board:     b,
		Player:    player,
		Adversary: adversary,
	}, nil
}
