package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Board(t *testing.T) {
	t.Run("Rebuilds cells", func(t *testing.T) {
		// Given: a board with a few marks
		board := newTestBoard(t, 6, 8)
		board.Set(0, 7, Mark(OwnerA))
		board.Set(5, 0, Mark(OwnerB))
		board.Set(3, 3, Mark(OwnerA))

		snapshot := Snapshot{Rows: 6, Columns: 8, CurrentOwner: OwnerB, MoveCount: 3, Cells: CellRecords(board)}

		// When: the board is rebuilt from its records
		rebuilt, err := snapshot.Board()

		// Then: it is identical
		require.NoError(t, err)
		require.Equal(t, board, rebuilt)
		require.Len(t, snapshot.Cells, 3)
		require.Equal(t, CellRecord{Row: 0, Column: 7, Owner: OwnerA}, snapshot.Cells[0])
	})

	corrupt := map[string]Snapshot{
		"zero rows":     {Rows: 0, Columns: 5, CurrentOwner: OwnerA},
		"too many rows": {Rows: MaxDimension + 1, Columns: 5, CurrentOwner: OwnerA},
		"huge board":    {Rows: 1 << 32, Columns: 1 << 32, CurrentOwner: OwnerA},
		"bad owner":     {Rows: 5, Columns: 5, CurrentOwner: 0},
		"negative move": {Rows: 5, Columns: 5, CurrentOwner: OwnerA, MoveCount: -1},
		"out of bounds": {Rows: 5, Columns: 5, CurrentOwner: OwnerA, Cells: []CellRecord{{Row: 5, Column: 0, Owner: OwnerA}}},
		"bad cell":      {Rows: 5, Columns: 5, CurrentOwner: OwnerA, Cells: []CellRecord{{Row: 1, Column: 1, Owner: 7}}},
		"duplicate": {Rows: 5, Columns: 5, CurrentOwner: OwnerA, Cells: []CellRecord{
			{Row: 1, Column: 1, Owner: OwnerA},
			{Row: 1, Column: 1, Owner: OwnerB},
		}},
	}

	for name, snapshot := range corrupt {
		t.Run(name, func(t *testing.T) {
			board, err := snapshot.Board()

			require.ErrorIs(t, err, apperror.ErrCorruptSnapshot)
			require.Nil(t, board)
		})
	}
}
