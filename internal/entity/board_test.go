package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, rows, columns int) *Board {
	t.Helper()

	board, err := NewBoard(rows, columns)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	t.Run("Every cell empty", func(t *testing.T) {
		for _, size := range [][2]int{{1, 1}, {3, 7}, {15, 15}, {19, 4}} {
			// Given: a freshly constructed board
			board := newTestBoard(t, size[0], size[1])

			// Then: dimensions are as requested
			rows, columns := board.Dimensions()
			require.Equal(t, size[0], rows)
			require.Equal(t, size[1], columns)

			// Then: every in-bounds cell is empty
			for r := 0; r < rows; r++ {
				for c := 0; c < columns; c++ {
					require.True(t, board.Get(r, c).IsEmpty())
				}
			}

			// Then: every cell is an empty position
			require.Len(t, board.EmptyPositions(), rows*columns)
			require.False(t, board.IsFull())
		}
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, size := range [][2]int{
			{0, 5}, {5, 0}, {-1, 3}, {0, 0},
			{MaxDimension + 1, 5},
			{5, MaxDimension + 1},
			{100000, 100000},
			{1 << 32, 1 << 32},
		} {
			// When: a board with a non-positive or oversized dimension is requested
			board, err := NewBoard(size[0], size[1])

			// Then: ErrInvalidDimensions is returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			require.Nil(t, board)
		}
	})

	t.Run("Largest allowed board", func(t *testing.T) {
		board := newTestBoard(t, MaxDimension, MaxDimension)

		require.Len(t, board.EmptyPositions(), MaxDimension*MaxDimension)
		require.True(t, board.ApplyMove(NewMove(MaxDimension-1, MaxDimension-1), OwnerB))
	})
}

func TestBoard_IsInBounds(t *testing.T) {
	board := newTestBoard(t, 3, 4)

	assert.True(t, board.IsInBounds(0, 0))
	assert.True(t, board.IsInBounds(2, 3))
	assert.False(t, board.IsInBounds(3, 0))
	assert.False(t, board.IsInBounds(0, 4))
	assert.False(t, board.IsInBounds(-1, 0))
	assert.False(t, board.IsInBounds(0, -1))
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("Set overwrites unconditionally", func(t *testing.T) {
		// Given: a board with a mark
		board := newTestBoard(t, 5, 5)
		board.Set(2, 2, Mark(OwnerA))

		// When: the same cell is overwritten with the other owner
		board.Set(2, 2, Mark(OwnerB))

		// Then: the new value is stored
		require.Equal(t, Mark(OwnerB), board.Get(2, 2))

		// When: the cell is overwritten with empty
		board.Set(2, 2, EmptyCell)

		// Then: the cell is empty again
		require.True(t, board.Get(2, 2).IsEmpty())
	})

	t.Run("Out of bounds", func(t *testing.T) {
		// Given: an empty board
		board := newTestBoard(t, 5, 5)
		before := board.Clone()

		// When: writing outside the board
		board.Set(5, 0, Mark(OwnerA))
		board.Set(-1, 2, Mark(OwnerB))

		// Then: nothing changes and reads outside the board are empty
		require.Equal(t, before, board)
		require.True(t, board.Get(5, 0).IsEmpty())
		require.True(t, board.Get(-1, 2).IsEmpty())
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Legal move", func(t *testing.T) {
		// Given: an empty board
		board := newTestBoard(t, 15, 15)
		emptyBefore := len(board.EmptyPositions())

		// When: owner A plays (7, 7)
		ok := board.ApplyMove(NewMove(7, 7), OwnerA)

		// Then: the cell holds A's mark and one fewer position is empty
		require.True(t, ok)
		require.Equal(t, Mark(OwnerA), board.Get(7, 7))
		require.Len(t, board.EmptyPositions(), emptyBefore-1)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: a board where (3, 3) is taken
		board := newTestBoard(t, 15, 15)
		require.True(t, board.ApplyMove(NewMove(3, 3), OwnerA))
		before := board.Clone()

		// When: either owner plays the same cell
		okB := board.ApplyMove(NewMove(3, 3), OwnerB)
		okA := board.ApplyMove(NewMove(3, 3), OwnerA)

		// Then: both are rejected and the board is unchanged
		require.False(t, okB)
		require.False(t, okA)
		require.Equal(t, before, board)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		board := newTestBoard(t, 15, 15)
		before := board.Clone()

		for _, move := range []Move{NewMove(15, 0), NewMove(0, 15), NewMove(-1, 4), NewMove(4, -1)} {
			require.False(t, board.IsLegalMove(move, OwnerA))
			require.False(t, board.ApplyMove(move, OwnerA))
		}

		require.Equal(t, before, board)
	})

	t.Run("Not a player", func(t *testing.T) {
		board := newTestBoard(t, 15, 15)
		before := board.Clone()

		for _, owner := range []Owner{0, 3} {
			require.False(t, board.IsLegalMove(NewMove(2, 2), owner))
			require.False(t, board.ApplyMove(NewMove(2, 2), owner))
		}

		require.True(t, board.Get(2, 2).IsEmpty())
		require.Equal(t, before, board)
	})
}

func TestBoard_EmptyPositions(t *testing.T) {
	// Given: a 2x3 board with (0, 1) and (1, 0) taken
	board := newTestBoard(t, 2, 3)
	board.Set(0, 1, Mark(OwnerA))
	board.Set(1, 0, Mark(OwnerB))

	// When: listing the empty positions
	moves := board.EmptyPositions()

	// Then: they come in row-major order
	expected := []Move{NewMove(0, 0), NewMove(0, 2), NewMove(1, 1), NewMove(1, 2)}
	require.Equal(t, expected, moves)
}

func TestBoard_IsFullAndClear(t *testing.T) {
	// Given: a fully occupied board
	board := newTestBoard(t, 2, 2)
	board.Set(0, 0, Mark(OwnerA))
	board.Set(0, 1, Mark(OwnerB))
	board.Set(1, 0, Mark(OwnerB))
	require.False(t, board.IsFull())
	board.Set(1, 1, Mark(OwnerA))

	// Then: it reports full and offers no positions
	require.True(t, board.IsFull())
	require.Empty(t, board.EmptyPositions())

	// When: cleared
	board.Clear()

	// Then: dimensions are kept and every cell is empty
	rows, columns := board.Dimensions()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, columns)
	require.Len(t, board.EmptyPositions(), 4)
}

func TestBoard_FindWinner(t *testing.T) {
	lines := map[string][]Move{
		"horizontal": {NewMove(4, 2), NewMove(4, 3), NewMove(4, 4), NewMove(4, 5), NewMove(4, 6)},
		"vertical":   {NewMove(1, 9), NewMove(2, 9), NewMove(3, 9), NewMove(4, 9), NewMove(5, 9)},
		"diagonal":   {NewMove(6, 6), NewMove(7, 7), NewMove(8, 8), NewMove(9, 9), NewMove(10, 10)},
		"anti-diagonal": {
			NewMove(0, 4), NewMove(1, 3), NewMove(2, 2), NewMove(3, 1), NewMove(4, 0),
		},
		"edge anti-diagonal": {
			NewMove(10, 14), NewMove(11, 13), NewMove(12, 12), NewMove(13, 11), NewMove(14, 10),
		},
	}

	for name, line := range lines {
		t.Run(name+" of exactly line length", func(t *testing.T) {
			// Given: owner B holding five in a row
			board := newTestBoard(t, 15, 15)
			for _, m := range line {
				board.Set(m.Row, m.Column, Mark(OwnerB))
			}

			// When: looking for a winner
			owner, winning, ok := board.FindWinningLine(DefaultLineLength)

			// Then: B wins with exactly that line
			require.True(t, ok)
			require.Equal(t, OwnerB, owner)
			require.ElementsMatch(t, line, winning)
		})

		t.Run(name+" one short", func(t *testing.T) {
			// Given: only four of the five cells
			board := newTestBoard(t, 15, 15)
			for _, m := range line[:len(line)-1] {
				board.Set(m.Row, m.Column, Mark(OwnerA))
			}

			// Then: nobody wins
			_, ok := board.FindWinner(DefaultLineLength)
			require.False(t, ok)
		})
	}

	t.Run("Longer than line length", func(t *testing.T) {
		board := newTestBoard(t, 15, 15)
		for c := 0; c < 8; c++ {
			board.Set(12, c, Mark(OwnerA))
		}

		owner, ok := board.FindWinner(DefaultLineLength)
		require.True(t, ok)
		require.Equal(t, OwnerA, owner)
	})

	t.Run("Broken line", func(t *testing.T) {
		// Given: X X X X O X on a row
		board := newTestBoard(t, 15, 15)
		for c := 0; c < 6; c++ {
			board.Set(0, c, Mark(OwnerA))
		}
		board.Set(0, 4, Mark(OwnerB))

		// Then: no winner
		_, ok := board.FindWinner(DefaultLineLength)
		require.False(t, ok)
	})

	t.Run("Configurable line length", func(t *testing.T) {
		board := newTestBoard(t, 3, 3)
		board.Set(0, 0, Mark(OwnerA))
		board.Set(1, 1, Mark(OwnerA))
		board.Set(2, 2, Mark(OwnerA))

		owner, ok := board.FindWinner(3)
		require.True(t, ok)
		require.Equal(t, OwnerA, owner)

		_, ok = board.FindWinner(4)
		require.False(t, ok)
	})

	t.Run("Line length below one", func(t *testing.T) {
		board := newTestBoard(t, 3, 3)

		_, ok := board.FindWinner(0)
		require.False(t, ok)

		board.Set(1, 2, Mark(OwnerB))
		owner, ok := board.FindWinner(0)
		require.True(t, ok)
		require.Equal(t, OwnerB, owner)
	})

	t.Run("Empty board", func(t *testing.T) {
		board := newTestBoard(t, 15, 15)

		_, ok := board.FindWinner(DefaultLineLength)
		require.False(t, ok)
	})
}

func TestBoard_FindWinner_TieBreak(t *testing.T) {
	t.Run("Earlier row wins", func(t *testing.T) {
		// Given: an edited board where A holds row 5 and B holds row 2
		board := newTestBoard(t, 15, 15)
		for c := 0; c < 5; c++ {
			board.Set(5, c, Mark(OwnerA))
			board.Set(2, c+3, Mark(OwnerB))
		}

		// Then: B's line is reached first in row-major order
		owner, ok := board.FindWinner(DefaultLineLength)
		require.True(t, ok)
		require.Equal(t, OwnerB, owner)
	})

	t.Run("Line start decides, not line extent", func(t *testing.T) {
		// Given: A's vertical line starts at (0, 10), B's horizontal line sits on row 1
		board := newTestBoard(t, 15, 15)
		for i := 0; i < 5; i++ {
			board.Set(i, 10, Mark(OwnerA))
			board.Set(1, i, Mark(OwnerB))
		}

		// Then: A is reported, its starting cell comes first
		owner, ok := board.FindWinner(DefaultLineLength)
		require.True(t, ok)
		require.Equal(t, OwnerA, owner)
	})

	t.Run("Same row, lower column wins", func(t *testing.T) {
		// Given: B's down-left diagonal starts at (0, 4), A's vertical starts at (0, 6)
		board := newTestBoard(t, 15, 15)
		for i := 0; i < 5; i++ {
			board.Set(i, 4-i, Mark(OwnerB))
			board.Set(i, 6, Mark(OwnerA))
		}

		owner, ok := board.FindWinner(DefaultLineLength)
		require.True(t, ok)
		require.Equal(t, OwnerB, owner)
	})
}

func TestBoard_Clone(t *testing.T) {
	board := newTestBoard(t, 4, 4)
	board.Set(1, 1, Mark(OwnerA))

	clone := board.Clone()
	clone.Set(2, 2, Mark(OwnerB))

	require.True(t, board.Get(2, 2).IsEmpty())
	require.Equal(t, Mark(OwnerA), clone.Get(1, 1))
}
