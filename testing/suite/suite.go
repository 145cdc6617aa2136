package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"gorm.io/gorm"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

const (
	postgresPort     = "5432/tcp"
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresUser     = "gomoku"
	postgresPassword = "gomoku"
	postgresDB       = "gomoku"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// container - a running dockertest resource, purged when the test ends.
type container struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

func newContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	return ctx
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// startContainer - pulls an image, runs it and registers the purge on cleanup.
func startContainer(t *testing.T, options *dockertest.RunOptions) *container {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(options, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration) // Tell docker to hard kill the container in 120 seconds

	pool.MaxWait = maxWaitDuration

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	})

	return &container{pool: pool, resource: resource}
}

// retry - exponential backoff-retry, because the application in the container
// might not be ready to accept connections yet.
func (that *container) retry(t *testing.T, what string, connect func() error) {
	t.Helper()

	if err := that.pool.Retry(connect); err != nil {
		t.Fatalf("could not connect to %s: %v", what, err)
	}
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx := newContext(t)

	redisContainer := startContainer(t, &dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	})

	var redisClient *redis.Client
	redisContainer.retry(t, "redis", func() error {
		var err error
		redisClient, err = storage.NewRedis(ctx, redisContainer.resource.GetHostPort(redisPort))
		return err
	})

	t.Cleanup(func() { _ = redisClient.Close() })

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  newLogger(),
		Storage: redisClient,
	}
}

type PostgresSuite struct {
	*testing.T
	Logger *slog.Logger

	DB *gorm.DB
}

// NewPostgres - starts a throwaway postgres container and connects gorm to it.
func NewPostgres(t *testing.T) (context.Context, *PostgresSuite) {
	t.Helper()

	ctx := newContext(t)

	postgresContainer := startContainer(t, &dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	})

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresContainer.resource.GetHostPort(postgresPort), postgresDB)

	var db *gorm.DB
	postgresContainer.retry(t, "postgres", func() error {
		var err error
		db, err = storage.NewPostgres(ctx, dsn)
		return err
	})

	t.Cleanup(func() { _ = storage.ClosePostgres(db) })

	return ctx, &PostgresSuite{
		T:      t,
		Logger: newLogger(),
		DB:     db,
	}
}
