package entity

import "fmt"

// Move - a candidate placement. It carries no validity guarantee; legality
// is always checked against a specific Board.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewMove(row, column int) Move {
	return Move{Row: row, Column: column}
}

func (that Move) String() string {
	return fmt.Sprintf("Move(%d, %d)", that.Row, that.Column)
}
