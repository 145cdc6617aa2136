package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// gamesIndexKey - sorted set of game names scored by save time.
const gamesIndexKey = "games"

type dbGame struct {
	client *redis.Client
}

// NewRedisGameRepository - stores each game as a metadata hash "game:<name>"
// and a cell hash "game:<name>:cells" keyed by "row:column".
func NewRedisGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(name string) string {
	return "game:" + name
}

func cellsKey(name string) string {
	return "game:" + name + ":cells"
}

func (that *dbGame) Save(ctx context.Context, snapshot entity.Snapshot) error {
	if err := checkName(snapshot.Name); err != nil {
		return err
	}

	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("failed to save game %q: %w", snapshot.Name, err)
	}

	savedAt := savedAtOrNow(snapshot)

	meta := map[string]interface{}{
		"id":             newGameID(),
		"name":           snapshot.Name,
		"rows":           snapshot.Rows,
		"columns":        snapshot.Columns,
		"current_player": snapshot.CurrentOwner.Tag(),
		"move_count":     snapshot.MoveCount,
		"saved_at":       savedAt.UnixNano(),
	}

	cells := make(map[string]interface{}, len(snapshot.Cells))
	for _, cell := range snapshot.Cells {
		cells[cellField(cell.Row, cell.Column)] = cell.Owner.Tag()
	}

	// MULTI/EXEC: metadata and cells become visible together or not at all
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, gameKey(snapshot.Name), cellsKey(snapshot.Name))
		pipe.HSet(ctx, gameKey(snapshot.Name), meta)
		if len(cells) > 0 {
			pipe.HSet(ctx, cellsKey(snapshot.Name), cells)
		}
		pipe.ZAdd(ctx, gamesIndexKey, redis.Z{Score: float64(savedAt.UnixMilli()), Member: snapshot.Name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) Load(ctx context.Context, name string) (*entity.Snapshot, error) {
	var metaCmd, cellsCmd *redis.MapStringStringCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		metaCmd = pipe.HGetAll(ctx, gameKey(name))
		cellsCmd = pipe.HGetAll(ctx, cellsKey(name))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	meta := metaCmd.Val()
	if len(meta) == 0 {
		return nil, apperror.ErrGameNotFound
	}

	snapshot, err := snapshotFromHash(meta)
	if err != nil {
		return nil, err
	}

	for field, tag := range cellsCmd.Val() {
		row, col, err := parseCellField(field)
		if err != nil {
			return nil, err
		}

		owner, err := parseOwner(tag)
		if err != nil {
			return nil, err
		}

		snapshot.Cells = append(snapshot.Cells, entity.CellRecord{Row: row, Column: col, Owner: owner})
	}

	return snapshot, nil
}

func (that *dbGame) Delete(ctx context.Context, name string) error {
	var delCmd *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		delCmd = pipe.Del(ctx, gameKey(name), cellsKey(name))
		pipe.ZRem(ctx, gamesIndexKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game by name: %w", err)
	}

	if delCmd.Val() == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *dbGame) List(ctx context.Context) ([]string, error) {
	names, err := that.client.ZRevRange(ctx, gamesIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return names, nil
}

func (that *dbGame) Exists(ctx context.Context, name string) (bool, error) {
	count, err := that.client.Exists(ctx, gameKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check game: %w", err)
	}
	return count > 0, nil
}

func cellField(row, col int) string {
	return strconv.Itoa(row) + ":" + strconv.Itoa(col)
}

func parseCellField(field string) (int, int, error) {
	rowPart, colPart, found := strings.Cut(field, ":")
	if !found {
		return 0, 0, fmt.Errorf("%w: cell key %q", apperror.ErrCorruptSnapshot, field)
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cell key %q", apperror.ErrCorruptSnapshot, field)
	}

	col, err := strconv.Atoi(colPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cell key %q", apperror.ErrCorruptSnapshot, field)
	}

	return row, col, nil
}

func snapshotFromHash(meta map[string]string) (*entity.Snapshot, error) {
	ints := map[string]int64{}
	for _, field := range []string{"rows", "columns", "move_count", "saved_at"} {
		value, err := strconv.ParseInt(meta[field], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s", apperror.ErrCorruptSnapshot, field)
		}
		ints[field] = value
	}

	owner, err := parseOwner(meta["current_player"])
	if err != nil {
		return nil, err
	}

	return &entity.Snapshot{
		ID:           meta["id"],
		Name:         meta["name"],
		Rows:         int(ints["rows"]),
		Columns:      int(ints["columns"]),
		CurrentOwner: owner,
		MoveCount:    int(ints["move_count"]),
		SavedAt:      time.Unix(0, ints["saved_at"]).UTC(),
	}, nil
}
