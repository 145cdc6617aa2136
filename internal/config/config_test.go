package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("From file", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
game:
  rows: 10
  columns: 12
  opponent: human
storage:
  driver: redis
redis:
  host: cache
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values and defaults are combined
		require.NoError(t, err)
		require.Equal(t, "debug", conf.LogLevel)
		require.Equal(t, 10, conf.Game.Rows)
		require.Equal(t, 12, conf.Game.Columns)
		require.Equal(t, 5, conf.Game.LineLength)
		require.Equal(t, OpponentHuman, conf.Game.Opponent)
		require.Equal(t, DriverRedis, conf.Storage.Driver)
		require.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		require.Equal(t, "random", conf.Bot.Strategy)
	})

	t.Run("Missing file uses defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		require.Equal(t, "info", conf.LogLevel)
		require.Equal(t, 15, conf.Game.Rows)
		require.Equal(t, 15, conf.Game.Columns)
		require.Equal(t, OpponentBot, conf.Game.Opponent)
		require.Equal(t, DriverSQLite, conf.Storage.Driver)
		require.Equal(t, "gomoku.db", conf.Storage.SQLitePath)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("GAME_LINE_LENGTH", "4")
		t.Setenv("BOT_SEED", "99")

		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		require.Equal(t, 4, conf.Game.LineLength)
		require.Equal(t, int64(99), conf.Bot.Seed)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		require.Panics(t, func() { MustLoad(path) })
	})
}

func TestPostgres_GetDSN(t *testing.T) {
	conf := Postgres{Host: "db", Port: "5433", User: "u", Password: "p@ss", DBName: "games"}

	require.Equal(t, "postgres://u:p%40ss@db:5433/games?sslmode=disable", conf.GetDSN())
}
