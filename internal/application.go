package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/cli"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires storage, game and bot together and serves the CLI on in and out
// until the user exits, the input ends or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	botOpponent, err := isBotOpponent(conf.Game.Opponent)
	if err != nil {
		return err
	}

	strategy, err := service.NewStrategy(conf.Bot.Strategy, conf.Bot.Seed)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	gameRepo, closeStorage, err := openGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("could not close storage", "driver", conf.Storage.Driver, "error", err)
		}
	}()

	bot := service.NewBot(logger, strategy)

	gameManager, err := usecase.NewGameManager(logger, gameRepo, bot, conf.Game.Rows, conf.Game.Columns, conf.Game.LineLength)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting CLI",
		"storage", conf.Storage.Driver,
		"opponent", conf.Game.Opponent,
		"rows", conf.Game.Rows,
		"columns", conf.Game.Columns,
		"line_length", conf.Game.LineLength,
	)

	server := cli.New(logger, gameManager, cli.Options{
		Input:          in,
		Output:         out,
		DefaultRows:    conf.Game.Rows,
		DefaultColumns: conf.Game.Columns,
		BotOpponent:    botOpponent,
	})

	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("CLI error: %w", err)
	}

	log.Info("CLI stopped")

	return nil
}

// openGameRepository - connects the configured storage driver. The returned
// func releases the connection.
func openGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverSQLite, "":
		sqliteStorage, err := storage.NewSQLite(ctx, conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		return repository.NewSQLiteGameRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.DriverRedis:
		redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisGameRepository(redisStorage), redisStorage.Close, nil

	case config.DriverPostgres:
		db, err := storage.NewPostgres(ctx, conf.Postgres.GetDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		gameRepo, err := repository.NewGormGameRepository(ctx, db)
		if err != nil {
			_ = storage.ClosePostgres(db)
			return nil, nil, fmt.Errorf("could not prepare postgres storage: %w", err)
		}

		return gameRepo, func() error { return storage.ClosePostgres(db) }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageType, conf.Storage.Driver)
	}
}

func isBotOpponent(opponent string) (bool, error) {
	switch opponent {
	case config.OpponentBot, "":
		return true, nil
	case config.OpponentHuman:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", apperror.ErrUnknownOpponent, opponent)
	}
}
