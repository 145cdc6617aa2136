package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const RandomStrategyName = "random"

// Strategy - picks the next move for a board. Implementations must return
// apperror.ErrNoAvailableMoves instead of a made-up move when the board is full.
type Strategy interface {
	ChooseMove(board *entity.Board) (entity.Move, error)
	Name() string
}

type randomStrategy struct {
	rnd *rand.Rand
}

// NewRandomStrategy - a strategy picking uniformly among empty cells.
// The same seed on the same board yields the same move; seed 0 uses the clock.
func NewRandomStrategy(seed int64) Strategy {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomStrategy{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *randomStrategy) ChooseMove(board *entity.Board) (entity.Move, error) {
	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}

func (that *randomStrategy) Name() string {
	return RandomStrategyName
}

// NewStrategy - builds a strategy by its configured name.
func NewStrategy(name string, seed int64) (Strategy, error) {
	switch name {
	case RandomStrategyName, "":
		return NewRandomStrategy(seed), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", name)
	}
}

// Bot - a computer move source. The strategy can be swapped at any time.
type Bot struct {
	logger   *slog.Logger
	strategy Strategy
}

func NewBot(logger *slog.Logger, strategy Strategy) *Bot {
	return &Bot{
		logger:   logger.With("component", "bot"),
		strategy: strategy,
	}
}

func (that *Bot) SetStrategy(strategy Strategy) {
	that.strategy = strategy
}

func (that *Bot) StrategyName() string {
	return that.strategy.Name()
}

func (that *Bot) ChooseMove(board *entity.Board) (entity.Move, error) {
	move, err := that.strategy.ChooseMove(board)
	if err != nil {
		that.logger.Warn("bot could not choose a move", "strategy", that.strategy.Name(), "error", err)
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	that.logger.Debug("bot chose move", "strategy", that.strategy.Name(), "move", move.String())

	return move, nil
}
