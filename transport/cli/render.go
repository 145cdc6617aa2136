package cli

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// RenderBoard - column header, then one labelled line per row with X, O or . per cell.
func RenderBoard(board *entity.Board) string {
	rows, columns := board.Dimensions()

	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < columns; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < rows; row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < columns; col++ {
			sb.WriteString("  ")
			sb.WriteRune(board.Get(row, col).Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
