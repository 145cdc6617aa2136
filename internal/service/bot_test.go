package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

type fixedStrategy struct {
	move entity.Move
}

func (that fixedStrategy) ChooseMove(*entity.Board) (entity.Move, error) {
	return that.move, nil
}

func (that fixedStrategy) Name() string {
	return "fixed"
}

func newBoard(t *testing.T, rows, columns int) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(rows, columns)
	require.NoError(t, err)

	return board
}

func TestRandomStrategy_ChooseMove(t *testing.T) {
	t.Run("Chooses a legal move", func(t *testing.T) {
		// Given: a board with most cells taken
		board := newBoard(t, 4, 4)
		for _, m := range board.EmptyPositions()[:13] {
			board.Set(m.Row, m.Column, entity.Mark(entity.OwnerA))
		}
		strategy := NewRandomStrategy(42)

		for i := 0; i < 50; i++ {
			// When: the strategy chooses
			move, err := strategy.ChooseMove(board)

			// Then: the move is always legal
			require.NoError(t, err)
			require.True(t, board.IsLegalMove(move, entity.OwnerB))
		}
	})

	t.Run("Same seed, same moves", func(t *testing.T) {
		board := newBoard(t, 15, 15)
		first := NewRandomStrategy(7)
		second := NewRandomStrategy(7)

		for i := 0; i < 20; i++ {
			a, err := first.ChooseMove(board)
			require.NoError(t, err)
			b, err := second.ChooseMove(board)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		// Given: a full board
		board := newBoard(t, 1, 2)
		board.Set(0, 0, entity.Mark(entity.OwnerA))
		board.Set(0, 1, entity.Mark(entity.OwnerB))

		// When: the strategy chooses
		_, err := NewRandomStrategy(1).ChooseMove(board)

		// Then: no move is possible
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestNewStrategy(t *testing.T) {
	strategy, err := NewStrategy("random", 3)
	require.NoError(t, err)
	require.Equal(t, RandomStrategyName, strategy.Name())

	_, err = NewStrategy("minimax", 3)
	require.Error(t, err)
}

func TestBot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := newBoard(t, 3, 3)

	// Given: a bot with the random strategy
	bot := NewBot(logger, NewRandomStrategy(11))
	require.Equal(t, RandomStrategyName, bot.StrategyName())

	// When: the strategy is swapped
	bot.SetStrategy(fixedStrategy{move: entity.NewMove(2, 1)})

	// Then: the new strategy is used
	move, err := bot.ChooseMove(board)
	require.NoError(t, err)
	require.Equal(t, entity.NewMove(2, 1), move)
	require.Equal(t, "fixed", bot.StrategyName())

	// When: no move is available
	bot.SetStrategy(NewRandomStrategy(11))
	full := newBoard(t, 1, 1)
	full.Set(0, 0, entity.Mark(entity.OwnerA))
	_, err = bot.ChooseMove(full)

	// Then: the error is surfaced
	require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
}
