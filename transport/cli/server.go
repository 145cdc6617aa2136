package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

var errExit = errors.New("exit requested")

type uGame interface {
	Game() usecase.GameView
	NewGame(rows, columns int) error

	SubmitMove(move entity.Move) error
	PlayBot() (entity.Move, error)

	EditCell(row, col int, cell entity.Cell) error
	ClearBoard()

	Save(ctx context.Context, name string) error
	Load(ctx context.Context, name string) error
	ListSaved(ctx context.Context) ([]string, error)
	DeleteSaved(ctx context.Context, name string) error
}

type Options struct {
	Input  io.Reader
	Output io.Writer

	DefaultRows    int
	DefaultColumns int

	// BotOpponent - owner B is played by the bot instead of a second human.
	BotOpponent bool
}

// Server - interactive text front end. One line of input per command.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	opts   Options

	lines    <-chan string
	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, uGame uGame, opts Options) *Server {
	server := &Server{
		logger: logger.With("component", "cli"),
		uGame:  uGame,
		opts:   opts,

		handlers: make(map[string]func(context.Context) error),
	}

	server.handlers["1"] = server.handleNewGame
	server.handlers["2"] = server.handleEditor
	server.handlers["3"] = server.handleSave
	server.handlers["4"] = server.handleLoad
	server.handlers["5"] = server.handleList
	server.handlers["6"] = server.handleDelete
	server.handlers["7"] = server.handleExit

	return server
}

// Start - runs the main menu until the user exits, the input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	that.lines = readLines(ctx, that.logger, that.opts.Input)

	that.printf("\n=== GOMOKU (Five in a Row) ===\n")

	for {
		that.printMenu()

		choice, err := that.readLine(ctx)
		if err != nil {
			return that.stopped(ctx, err)
		}

		handler, ok := that.handlers[choice]
		if !ok {
			that.printf("Invalid choice. Please try again.\n")
			continue
		}

		if err = handler(ctx); err != nil {
			return that.stopped(ctx, err)
		}
	}
}

func (that *Server) stopped(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, errExit):
		that.printf("\nThank you for playing Gomoku!\n")
		return nil
	case errors.Is(err, io.EOF):
		that.logger.Info("input closed, stopping")
		return nil
	case ctx.Err() != nil:
		that.logger.Info("context canceled, stopping")
		return nil
	default:
		return err
	}
}

func (that *Server) printMenu() {
	that.printf("\n=== MAIN MENU ===\n")
	that.printf("1. New Game\n")
	that.printf("2. Board Editor\n")
	that.printf("3. Save Game\n")
	that.printf("4. Load Game\n")
	that.printf("5. List Saved Games\n")
	that.printf("6. Delete Saved Game\n")
	that.printf("7. Exit\n")
	that.printf("Choose an option: ")
}

func (that *Server) handleNewGame(ctx context.Context) error {
	that.printf("\n=== NEW GAME ===\n")
	that.printf("Enter board size (rows columns, default %d %d): ", that.opts.DefaultRows, that.opts.DefaultColumns)

	line, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	rows, columns := that.opts.DefaultRows, that.opts.DefaultColumns
	if line != "" {
		if r, c, ok := parsePair(line); ok {
			rows, columns = r, c
		} else {
			that.printf("Invalid input. Using default %dx%d board.\n", rows, columns)
		}
	}

	if err = that.uGame.NewGame(rows, columns); err != nil {
		that.printf("Invalid board size: %v. Using default %dx%d board.\n", err, that.opts.DefaultRows, that.opts.DefaultColumns)

		if err = that.uGame.NewGame(that.opts.DefaultRows, that.opts.DefaultColumns); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
	}

	return that.playGame(ctx)
}

// playGame - alternates turns until the game ends or the user types "menu".
func (that *Server) playGame(ctx context.Context) error {
	showBoard := true

	for !that.uGame.Game().IsGameOver() {
		game := that.uGame.Game()
		if showBoard {
			that.printf("\n%s", RenderBoard(game.Board()))
		}
		showBoard = true

		owner := game.CurrentOwner()

		if that.opts.BotOpponent && owner == entity.OwnerB {
			that.printf("\n%s's turn - bot is thinking...\n", owner)

			move, err := that.uGame.PlayBot()
			if err != nil {
				that.logger.Error("bot failed to move", "error", err)
				that.printf("Bot could not move: %v\n", err)
				return nil
			}

			that.printf("Bot played at: %d %d\n", move.Row, move.Column)
			continue
		}

		that.printf("\n%s's turn\n", owner)
		that.printf("Enter move (row column) or 'menu' to return: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		if strings.EqualFold(line, "menu") {
			return nil
		}

		row, col, ok := parsePair(line)
		if !ok {
			that.printf("Invalid input format. Use: row column\n")
			showBoard = false
			continue
		}

		if err = that.uGame.SubmitMove(entity.NewMove(row, col)); err != nil {
			that.printf("Invalid move! Try again.\n")
			showBoard = false
			continue
		}
	}

	that.printOutcome()

	return nil
}

func (that *Server) printOutcome() {
	game := that.uGame.Game()

	that.printf("\n%s", RenderBoard(game.Board()))
	that.printf("\n*** %s ***\n", game.Outcome().Message())
}

func (that *Server) handleEditor(ctx context.Context) error {
	that.printf("\n=== BOARD EDITOR ===\n")
	that.printf("Commands:\n")
	that.printf("  set <row> <col> <player>  - Set cell (player: 1, 2, or 0 for empty)\n")
	that.printf("  show                      - Display board\n")
	that.printf("  clear                     - Clear board\n")
	that.printf("  done                      - Finish editing\n")

	for {
		that.printf("\nEditor> ")

		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "set":
			that.editorSet(fields[1:])
		case "show":
			that.printf("\n%s", RenderBoard(that.uGame.Game().Board()))
		case "clear":
			that.uGame.ClearBoard()
			that.printf("Board cleared.\n")
		case "done":
			if that.uGame.Game().IsGameOver() {
				that.printf("\n*** %s ***\n", that.uGame.Game().Outcome().Message())
			}
			return nil
		default:
			that.printf("Unknown command.\n")
		}
	}
}

func (that *Server) editorSet(args []string) {
	if len(args) != 3 {
		that.printf("Usage: set <row> <col> <player>\n")
		return
	}

	values := make([]int, 0, len(args))
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			that.printf("Invalid input.\n")
			return
		}
		values = append(values, value)
	}

	cell, ok := cellFromCode(values[2])
	if !ok {
		that.printf("Invalid input. Player must be 0, 1 or 2.\n")
		return
	}

	if err := that.uGame.EditCell(values[0], values[1], cell); err != nil {
		that.printf("Invalid input. Cell is off the board.\n")
		return
	}

	that.printf("Cell updated.\n")
}

func (that *Server) handleSave(ctx context.Context) error {
	that.printf("\nEnter name for saved game: ")

	name, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	if name == "" {
		that.printf("Invalid name.\n")
		return nil
	}

	if err = that.uGame.Save(ctx, name); err != nil {
		that.printf("Failed to save game.\n")
		return nil
	}

	that.printf("Game saved successfully!\n")

	return nil
}

func (that *Server) handleLoad(ctx context.Context) error {
	that.printf("\nEnter name of game to load: ")

	name, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	if err = that.uGame.Load(ctx, name); err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			that.printf("No saved game named %q.\n", name)
		} else {
			that.printf("Failed to load game.\n")
		}
		return nil
	}

	that.printf("Game loaded successfully!\n")

	if that.uGame.Game().IsGameOver() {
		that.printOutcome()
		return nil
	}

	return that.playGame(ctx)
}

func (that *Server) handleList(ctx context.Context) error {
	names, err := that.uGame.ListSaved(ctx)
	if err != nil {
		that.printf("Failed to list saved games.\n")
		return nil
	}

	that.printf("\n=== SAVED GAMES ===\n")
	if len(names) == 0 {
		that.printf("No saved games found.\n")
		return nil
	}

	for i, name := range names {
		that.printf("%d. %s\n", i+1, name)
	}

	return nil
}

func (that *Server) handleDelete(ctx context.Context) error {
	that.printf("\nEnter name of game to delete: ")

	name, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	if err = that.uGame.DeleteSaved(ctx, name); err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			that.printf("No saved game named %q.\n", name)
		} else {
			that.printf("Failed to delete game.\n")
		}
		return nil
	}

	that.printf("Game deleted.\n")

	return nil
}

func (that *Server) handleExit(_ context.Context) error {
	return errExit
}

func (that *Server) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.opts.Output, format, args...)
}

// readLine - next trimmed input line, io.EOF when input ends or ctx.Err() when canceled.
func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func readLines(ctx context.Context, logger *slog.Logger, input io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func parsePair(line string) (int, int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}

	first, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}

	second, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return first, second, true
}

func cellFromCode(code int) (entity.Cell, bool) {
	switch code {
	case 0:
		return entity.EmptyCell, true
	case 1:
		return entity.Mark(entity.OwnerA), true
	case 2:
		return entity.Mark(entity.OwnerB), true
	default:
		return entity.Cell{}, false
	}
}
