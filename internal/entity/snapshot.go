package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Snapshot - the persisted form of a game: one metadata record plus one
// record per non-empty cell. It carries no outcome; the outcome is always
// recomputed from the cells on load.
type Snapshot struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Rows         int          `json:"rows"`
	Columns      int          `json:"columns"`
	CurrentOwner Owner        `json:"current_owner"`
	MoveCount    int          `json:"move_count"`
	SavedAt      time.Time    `json:"saved_at"`
	Cells        []CellRecord `json:"cells"`
}

// CellRecord - a non-empty cell of a saved game.
type CellRecord struct {
	Row    int   `json:"row"`
	Column int   `json:"column"`
	Owner  Owner `json:"owner"`
}

// Validate - checks that the snapshot describes a board that can be rebuilt.
func (that *Snapshot) Validate() error {
	if !ValidDimensions(that.Rows, that.Columns) {
		return fmt.Errorf("%w: dimensions %dx%d", apperror.ErrCorruptSnapshot, that.Rows, that.Columns)
	}

	if !that.CurrentOwner.IsValid() {
		return fmt.Errorf("%w: current owner %d", apperror.ErrCorruptSnapshot, that.CurrentOwner)
	}

	if that.MoveCount < 0 {
		return fmt.Errorf("%w: move count %d", apperror.ErrCorruptSnapshot, that.MoveCount)
	}

	seen := make(map[Move]struct{}, len(that.Cells))
	for _, rec := range that.Cells {
		if rec.Row < 0 || rec.Row >= that.Rows || rec.Column < 0 || rec.Column >= that.Columns {
			return fmt.Errorf("%w: cell (%d, %d) out of bounds", apperror.ErrCorruptSnapshot, rec.Row, rec.Column)
		}

		if !rec.Owner.IsValid() {
			return fmt.Errorf("%w: cell (%d, %d) owner %d", apperror.ErrCorruptSnapshot, rec.Row, rec.Column, rec.Owner)
		}

		pos := NewMove(rec.Row, rec.Column)
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("%w: duplicate cell (%d, %d)", apperror.ErrCorruptSnapshot, rec.Row, rec.Column)
		}
		seen[pos] = struct{}{}
	}

	return nil
}

// Board - rebuilds the board described by the snapshot.
func (that *Snapshot) Board() (*Board, error) {
	if err := that.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(that.Rows, that.Columns)
	if err != nil {
		return nil, err
	}

	for _, rec := range that.Cells {
		board.Set(rec.Row, rec.Column, Mark(rec.Owner))
	}

	return board, nil
}

// CellRecords - the non-empty cells of board in row-major order.
func CellRecords(board *Board) []CellRecord {
	var records []CellRecord
	board.Cells(func(row, col int, cell Cell) {
		if owner, ok := cell.Owner(); ok {
			records = append(records, CellRecord{Row: row, Column: col, Owner: owner})
		}
	})
	return records
}
