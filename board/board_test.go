package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMOCO0102/Game-plan/core"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	b := newTestBoard(t, 10)
	assert.Equal(t, 10, b.Size())
	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 100, b.Count(Empty))

	_, err := New(1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = New(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestPlaceAndState(t *testing.T) {
	b := newTestBoard(t, 10)

	require.NoError(t, b.Place(42, Blocked))
	state, err := b.State(42)
	require.NoError(t, err)
	assert.Equal(t, Blocked, state)
	assert.True(t, b.IsBlocked(42))

	require.NoError(t, b.Place(42, Empty))
	assert.False(t, b.IsBlocked(42))

	t.Run("out of range is rejected", func(t *testing.T) {
		before := b.Cells()
		assert.ErrorIs(t, b.Place(-1, Blocked), ErrInvalidPosition)
		assert.ErrorIs(t, b.Place(100, Blocked), ErrInvalidPosition)
		_, err := b.State(100)
		assert.ErrorIs(t, err, ErrInvalidPosition)
		assert.Equal(t, before, b.Cells())
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		assert.ErrorIs(t, b.Place(3, CellState(9)), ErrInvalidState)
	})

	t.Run("out of range is never blocked", func(t *testing.T) {
		assert.False(t, b.IsBlocked(-5))
		assert.False(t, b.IsBlocked(1000))
	})
}

func TestRowColIndex(t *testing.T) {
	b := newTestBoard(t, 10)

	row, col := b.RowCol(55)
	assert.Equal(t, 5, row)
	assert.Equal(t, 5, col)

	row, col = b.RowCol(9)
	assert.Equal(t, 0, row)
	assert.Equal(t, 9, col)

	assert.Equal(t, 37, b.Index(3, 7))
	assert.Equal(t, NoPosition, b.Index(-1, 0))
	assert.Equal(t, NoPosition, b.Index(0, 10))
	assert.Equal(t, NoPosition, b.Index(10, 0))
}

func TestNeighbors(t *testing.T) {
	b := newTestBoard(t, 10)

	tests := []struct {
		name     string
		pos      int
		expected []int
	}{
		{"interior", 55, []int{45, 65, 54, 56}},
		{"top-left corner", 0, []int{10, 1}},
		{"top-right corner", 9, []int{19, 8}},
		{"bottom-left corner", 90, []int{80, 91}},
		{"bottom-right corner", 99, []int{89, 98}},
		{"right edge does not wrap", 19, []int{9, 29, 18}},
		{"left edge does not wrap", 20, []int{10, 30, 21}},
		{"top edge", 4, []int{14, 3, 5}},
		{"out of range", 100, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Neighbors(tc.pos))
		})
	}
}

func TestNeighborsShareRowHorizontally(t *testing.T) {
	b := newTestBoard(t, 7)
	for pos := 0; pos < b.Len(); pos++ {
		row, col := b.RowCol(pos)
		for _, n := range b.Neighbors(pos) {
			nr, nc := b.RowCol(n)
			manhattan := abs(nr-row) + abs(nc-col)
			assert.Equal(t, 1, manhattan, "pos %d neighbour %d is not adjacent", pos, n)
		}
	}
}

func TestStep(t *testing.T) {
	b := newTestBoard(t, 10)

	next, err := b.Step(55, core.DirUp)
	require.NoError(t, err)
	assert.Equal(t, 45, next)

	next, err = b.Step(55, core.DirRight)
	require.NoError(t, err)
	assert.Equal(t, 56, next)

	_, err = b.Step(9, core.DirRight)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.Step(90, core.DirDown)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.Step(10, core.DirLeft)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.Step(5, core.DirNone)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestFindAndCount(t *testing.T) {
	b := newTestBoard(t, 4)
	assert.Equal(t, NoPosition, b.Find(Player))

	require.NoError(t, b.Place(5, Player))
	require.NoError(t, b.Place(9, Adversary))
	require.NoError(t, b.Place(1, Blocked))
	require.NoError(t, b.Place(2, Blocked))

	assert.Equal(t, 5, b.Find(Player))
	assert.Equal(t, 9, b.Find(Adversary))
	assert.Equal(t, 2, b.Count(Blocked))
	assert.Equal(t, 12, b.Count(Empty))
}

func TestCellsIsACopy(t *testing.T) {
	b := newTestBoard(t, 3)
	cells := b.Cells()
	cells[0] = Blocked
	assert.False(t, b.IsBlocked(0))
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 50; i++ {
		layout, err := Generate(10, 0.2, rng)
		require.NoError(t, err)

		b := layout.Board
		assert.Equal(t, 1, b.Count(Player))
		assert.Equal(t, 1, b.Count(Adversary))
		assert.NotEqual(t, layout.Player, layout.Adversary)
		assert.Equal(t, layout.Player, b.Find(Player))
		assert.Equal(t, layout.Adversary, b.Find(Adversary))
	}
}

func TestGenerateDensity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	layout, err := Generate(10, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, 0, layout.Board.Count(Blocked))

	_, err = Generate(10, 1, rng)
	assert.Error(t, err)

	_, err = Generate(1, 0.2, rng)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "blocked", Blocked.String())
	assert.Equal(t, "player", Player.String())
	assert.Equal(t, "adversary", Adversary.String())
	assert.Equal(t, "CellState(7)", CellState(7).String())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
