package gomoku

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// GameController - owns one board plus turn, outcome and move counter.
// SubmitMove is the only way a move reaches the board; it validates, applies,
// evaluates and advances the turn as one step.
//
// A controller is not safe for concurrent use; each game owns its own.
type GameController struct {
	logger *slog.Logger

	board        *entity.Board
	lineLength   int
	currentOwner entity.Owner
	outcome      entity.Outcome
	moveCount    int
}

// NewGameController - creates a game on an empty rows x columns board with owner A to move.
func NewGameController(logger *slog.Logger, rows, columns, lineLength int) (*GameController, error) {
	if lineLength <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidLineLength, lineLength)
	}

	board, err := entity.NewBoard(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &GameController{
		logger:       logger.With("component", "game_controller"),
		board:        board,
		lineLength:   lineLength,
		currentOwner: entity.OwnerA,
		outcome:      entity.InProgress(),
	}, nil
}

// SubmitMove - plays move for the current owner.
// Returns apperror.ErrGameFinished if the game is over and apperror.ErrIllegalMove
// if the target is out of bounds or occupied; in both cases nothing changes.
func (that *GameController) SubmitMove(move entity.Move) error {
	if that.outcome.IsTerminal() {
		that.logger.Warn("move rejected, game is over", "move", move.String(), "outcome", that.outcome.String())
		return apperror.ErrGameFinished
	}

	if !that.board.ApplyMove(move, that.currentOwner) {
		that.logger.Warn("move rejected", "move", move.String(), "owner", that.currentOwner.Tag())
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move)
	}

	that.moveCount++
	that.updateOutcome()

	that.logger.Debug("move accepted", "move", move.String(), "owner", that.currentOwner.Tag(), "move_count", that.moveCount)

	if that.outcome.IsInProgress() {
		that.currentOwner = that.currentOwner.Opponent()
	}

	return nil
}

// Reset - clears the board and restores the initial turn, outcome and counter.
func (that *GameController) Reset() {
	that.board.Clear()
	that.currentOwner = entity.OwnerA
	that.outcome = entity.InProgress()
	that.moveCount = 0

	that.logger.Info("game reset")
}

// EditCell - writes cell directly, bypassing turn and occupancy rules.
// Out-of-bounds coordinates are ignored. The outcome is recomputed afterwards.
func (that *GameController) EditCell(row, col int, cell entity.Cell) {
	that.board.Set(row, col, cell)
	that.updateOutcome()
}

// ClearBoard - empties the board without touching turn or move counter.
func (that *GameController) ClearBoard() {
	that.board.Clear()
	that.updateOutcome()
}

// Snapshot - captures the game for persistence.
func (that *GameController) Snapshot(name string, savedAt time.Time) entity.Snapshot {
	rows, columns := that.board.Dimensions()

	return entity.Snapshot{
		Name:         name,
		Rows:         rows,
		Columns:      columns,
		CurrentOwner: that.currentOwner,
		MoveCount:    that.moveCount,
		SavedAt:      savedAt,
		Cells:        entity.CellRecords(that.board),
	}
}

// Restore - replaces the board, turn owner and counter with the snapshot's.
// The replacement board is fully built before anything is swapped, so a
// corrupt snapshot leaves the game as it was. The outcome is recomputed
// from the restored cells.
func (that *GameController) Restore(snapshot entity.Snapshot) error {
	board, err := snapshot.Board()
	if err != nil {
		return fmt.Errorf("failed to restore game %q: %w", snapshot.Name, err)
	}

	that.board = board
	that.currentOwner = snapshot.CurrentOwner
	that.moveCount = snapshot.MoveCount
	that.updateOutcome()

	that.logger.Info("game restored", "name", snapshot.Name, "rows", snapshot.Rows, "columns", snapshot.Columns,
		"move_count", that.moveCount, "outcome", that.outcome.String())

	return nil
}

// Board - a copy of the current board for rendering and move selection.
func (that *GameController) Board() *entity.Board {
	return that.board.Clone()
}

func (that *GameController) CurrentOwner() entity.Owner {
	return that.currentOwner
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) IsGameOver() bool {
	return that.outcome.IsTerminal()
}

func (that *GameController) MoveCount() int {
	return that.moveCount
}

func (that *GameController) LineLength() int {
	return that.lineLength
}

// WinningLine - the cells of the winning line, nil unless the game is won.
func (that *GameController) WinningLine() []entity.Move {
	if _, won := that.outcome.Winner(); !won {
		return nil
	}

	_, line, _ := that.board.FindWinningLine(that.lineLength)
	return line
}

// updateOutcome - derives the outcome from the board alone.
func (that *GameController) updateOutcome() {
	previous := that.outcome

	switch winner, ok := that.board.FindWinner(that.lineLength); {
	case ok:
		that.outcome = entity.Win(winner)
	case that.board.IsFull():
		that.outcome = entity.Draw()
	default:
		that.outcome = entity.InProgress()
	}

	if that.outcome != previous && that.outcome.IsTerminal() {
		that.logger.Info("game ended", "outcome", that.outcome.String(), "move_count", that.moveCount)
	}
}
