package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	DefaultRows       = 15
	DefaultColumns    = 15
	DefaultLineLength = 5

	// MaxDimension - upper bound for rows and for columns.
	MaxDimension = 1024
)

// scan directions checked from every occupied cell, in priority order:
// right, down, down-right, down-left.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board - a fixed rows x columns grid of cells. It knows nothing about turns
// or game outcomes.
type Board struct {
	rows    int
	columns int
	cells   []Cell
}

// NewBoard - creates a board with every cell empty.
func NewBoard(rows, columns int) (*Board, error) {
	if !ValidDimensions(rows, columns) {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, rows, columns)
	}

	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}, nil
}

// ValidDimensions - both sides in 1..MaxDimension.
func ValidDimensions(rows, columns int) bool {
	return rows > 0 && rows <= MaxDimension && columns > 0 && columns <= MaxDimension
}

func (that *Board) Dimensions() (int, int) {
	return that.rows, that.columns
}

func (that *Board) IsInBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.columns
}

// Get - returns the cell at (row, col). Out-of-bounds coordinates read as
// EmptyCell; write paths must check IsInBounds instead of relying on this.
func (that *Board) Get(row, col int) Cell {
	if !that.IsInBounds(row, col) {
		return EmptyCell
	}
	return that.cells[that.index(row, col)]
}

// Set - overwrites the cell at (row, col) without any turn or occupancy check.
// It is the editing and loading path; out-of-bounds coordinates are ignored.
func (that *Board) Set(row, col int, cell Cell) {
	if !that.IsInBounds(row, col) {
		return
	}
	that.cells[that.index(row, col)] = cell
}

// IsLegalMove - true if owner is a real player, the move is on the board and
// its target is empty. Either owner may play any empty cell.
func (that *Board) IsLegalMove(move Move, owner Owner) bool {
	return owner.IsValid() &&
		that.IsInBounds(move.Row, move.Column) &&
		that.cells[that.index(move.Row, move.Column)].IsEmpty()
}

// ApplyMove - marks the target cell for owner. An illegal move leaves the
// board untouched and returns false.
func (that *Board) ApplyMove(move Move, owner Owner) bool {
	if !that.IsLegalMove(move, owner) {
		return false
	}

	that.cells[that.index(move.Row, move.Column)] = Mark(owner)

	return true
}

// EmptyPositions - every empty cell in row-major order. Deterministic
// consumers (seeded strategies) depend on this order.
func (that *Board) EmptyPositions() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell.IsEmpty() {
			moves = append(moves, that.position(i))
		}
	}
	return moves
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// Clear - resets every cell to empty.
func (that *Board) Clear() {
	clear(that.cells)
}

// FindWinner - the owner of the first qualifying line found, see FindWinningLine.
func (that *Board) FindWinner(lineLength int) (Owner, bool) {
	owner, _, ok := that.FindWinningLine(lineLength)
	return owner, ok
}

// FindWinningLine - scans occupied cells in row-major order and, for each,
// counts same-owner cells right, down, down-right and down-left starting at
// that cell. The first direction reaching lineLength wins, so when both owners
// hold a line the one whose line starts first in scan order is reported.
// A lineLength below 1 is treated as 1.
func (that *Board) FindWinningLine(lineLength int) (Owner, []Move, bool) {
	if lineLength < 1 {
		lineLength = 1
	}

	for i, cell := range that.cells {
		owner, occupied := cell.Owner()
		if !occupied {
			continue
		}

		start := that.position(i)
		for _, dir := range directions {
			if that.runLength(start, dir, owner, lineLength) == lineLength {
				line := make([]Move, lineLength)
				for k := range line {
					line[k] = NewMove(start.Row+k*dir[0], start.Column+k*dir[1])
				}
				return owner, line, true
			}
		}
	}

	return 0, nil, false
}

// Cells - calls fn for every position in row-major order.
func (that *Board) Cells(fn func(row, col int, cell Cell)) {
	for i, cell := range that.cells {
		pos := that.position(i)
		fn(pos.Row, pos.Column, cell)
	}
}

func (that *Board) Clone() *Board {
	clone := &Board{rows: that.rows, columns: that.columns}
	clone.cells = make([]Cell, len(that.cells))
	copy(clone.cells, that.cells)
	return clone
}

// runLength - consecutive cells held by owner from start along dir, capped at limit.
func (that *Board) runLength(start Move, dir [2]int, owner Owner, limit int) int {
	count := 0
	row, col := start.Row, start.Column
	for count < limit && that.IsInBounds(row, col) && that.cells[that.index(row, col)].HeldBy(owner) {
		count++
		row += dir[0]
		col += dir[1]
	}
	return count
}

func (that *Board) index(row, col int) int {
	return row*that.columns + col
}

func (that *Board) position(index int) Move {
	return NewMove(index/that.columns, index%that.columns)
}
