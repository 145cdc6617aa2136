package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"

	OpponentBot   = "bot"
	OpponentHuman = "human"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"LOG_FILE"`
	Game     Game     `yaml:"game"`
	Bot      Bot      `yaml:"bot"`
	Storage  Storage  `yaml:"storage"`
	Redis    Redis    `yaml:"redis"`
	Postgres Postgres `yaml:"postgres"`
}

type Game struct {
	Rows       int    `yaml:"rows" env:"GAME_ROWS" env-default:"15"`
	Columns    int    `yaml:"columns" env:"GAME_COLUMNS" env-default:"15"`
	LineLength int    `yaml:"line-length" env:"GAME_LINE_LENGTH" env-default:"5"`
	Opponent   string `yaml:"opponent" env:"GAME_OPPONENT" env-default:"bot"`
}

type Bot struct {
	Strategy string `yaml:"strategy" env:"BOT_STRATEGY" env-default:"random"`
	Seed     int64  `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"gomoku.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"gomoku"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:""`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB" env-default:"gomoku"`
}

// MustLoad - load all configurations in the config file, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetDSN - the postgres connection URL.
func (that *Postgres) GetDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(that.User, that.Password),
		Host:     net.JoinHostPort(that.Host, that.Port),
		Path:     that.DBName,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
