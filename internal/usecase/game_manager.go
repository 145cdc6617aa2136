package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
)

// GameView - read-only access to the running game.
type GameView interface {
	Board() *entity.Board
	CurrentOwner() entity.Owner
	Outcome() entity.Outcome
	IsGameOver() bool
	MoveCount() int
	LineLength() int
	WinningLine() []entity.Move
}

type GameManager struct {
	logger     *slog.Logger
	rootLogger *slog.Logger

	gameRepo   repository.GameRepository
	bot        *service.Bot
	controller *gomoku.GameController
	lineLength int

	now func() time.Time
}

// NewGameManager - starts with a fresh rows x columns game.
func NewGameManager(
	logger *slog.Logger,
	gameRepo repository.GameRepository,
	bot *service.Bot,
	rows, columns, lineLength int,
) (*GameManager, error) {
	that := &GameManager{
		logger:     logger.With("component", "game_manager"),
		rootLogger: logger,
		gameRepo:   gameRepo,
		bot:        bot,
		lineLength: lineLength,
		now:        time.Now,
	}

	controller, err := gomoku.NewGameController(logger, rows, columns, lineLength)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}
	that.controller = controller

	return that, nil
}

// Game - the running game.
func (that *GameManager) Game() GameView {
	return that.controller
}

// NewGame - replaces the running game with a fresh one. The old game is kept
// if the dimensions are invalid.
func (that *GameManager) NewGame(rows, columns int) error {
	controller, err := gomoku.NewGameController(that.rootLogger, rows, columns, that.lineLength)
	if err != nil {
		return fmt.Errorf("failed create game: %w", err)
	}

	that.controller = controller
	that.logger.Info("new game started", "rows", rows, "columns", columns, "line_length", that.lineLength)

	return nil
}

func (that *GameManager) Reset() {
	that.controller.Reset()
}

// SubmitMove - plays move for the current owner.
func (that *GameManager) SubmitMove(move entity.Move) error {
	if err := that.controller.SubmitMove(move); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}
	return nil
}

// PlayBot - lets the bot choose and play a move for the current owner.
func (that *GameManager) PlayBot() (entity.Move, error) {
	if that.controller.IsGameOver() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	move, err := that.bot.ChooseMove(that.controller.Board())
	if err != nil {
		return entity.Move{}, err
	}

	if err = that.SubmitMove(move); err != nil {
		return entity.Move{}, err
	}

	return move, nil
}

func (that *GameManager) SetStrategy(strategy service.Strategy) {
	that.bot.SetStrategy(strategy)
}

func (that *GameManager) StrategyName() string {
	return that.bot.StrategyName()
}

// EditCell - board editor write, bypasses turn and occupancy rules.
func (that *GameManager) EditCell(row, col int, cell entity.Cell) error {
	board := that.controller.Board()
	if !board.IsInBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) is off the board", apperror.ErrIllegalMove, row, col)
	}

	that.controller.EditCell(row, col, cell)

	return nil
}

func (that *GameManager) ClearBoard() {
	that.controller.ClearBoard()
}

// Save - stores the running game under name. The running game is not modified.
func (that *GameManager) Save(ctx context.Context, name string) error {
	snapshot := that.controller.Snapshot(name, that.now().UTC())

	if err := that.gameRepo.Save(ctx, snapshot); err != nil {
		that.logger.Error("could not save game", "name", name, "error", err)
		return fmt.Errorf("failed save game: %w", err)
	}

	that.logger.Info("game saved", "name", name, "move_count", snapshot.MoveCount, "cells", len(snapshot.Cells))

	return nil
}

// Load - replaces the running game with the saved one. On any error the
// running game is left as it was.
func (that *GameManager) Load(ctx context.Context, name string) error {
	snapshot, err := that.gameRepo.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, apperror.ErrGameNotFound) {
			that.logger.Error("could not load game", "name", name, "error", err)
		}
		return fmt.Errorf("failed load game: %w", err)
	}

	if err = that.controller.Restore(*snapshot); err != nil {
		that.logger.Error("could not restore game", "name", name, "error", err)
		return fmt.Errorf("failed load game: %w", err)
	}

	return nil
}

func (that *GameManager) ListSaved(ctx context.Context) ([]string, error) {
	names, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed list games: %w", err)
	}
	return names, nil
}

func (that *GameManager) DeleteSaved(ctx context.Context, name string) error {
	if err := that.gameRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("saved game deleted", "name", name)

	return nil
}
