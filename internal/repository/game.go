package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// GameRepository - stores named game snapshots. Save replaces any game with
// the same name together with its cells in one atomic step.
type GameRepository interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context, name string) (*entity.Snapshot, error)
	Delete(ctx context.Context, name string) error
	// List returns saved game names, most recently saved first.
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.ErrInvalidGameName
	}
	return nil
}

func newGameID() string {
	return uuid.NewString()
}

func savedAtOrNow(snapshot entity.Snapshot) time.Time {
	if snapshot.SavedAt.IsZero() {
		return time.Now().UTC()
	}
	return snapshot.SavedAt.UTC()
}

func parseOwner(tag string) (entity.Owner, error) {
	owner, err := entity.ParseOwner(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrCorruptSnapshot, err)
	}
	return owner, nil
}
