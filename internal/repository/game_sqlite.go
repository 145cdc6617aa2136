package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type sqlGame struct {
	db *sql.DB
}

// NewSQLiteGameRepository - a repository over the saved_games and board_cells tables.
func NewSQLiteGameRepository(db *sql.DB) GameRepository {
	return &sqlGame{
		db: db,
	}
}

func (that *sqlGame) Save(ctx context.Context, snapshot entity.Snapshot) error {
	if err := checkName(snapshot.Name); err != nil {
		return err
	}

	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("failed to save game %q: %w", snapshot.Name, err)
	}

	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = deleteSQLGame(ctx, tx, snapshot.Name); err != nil {
		return err
	}

	gameID := newGameID()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO saved_games (id, game_name, row_count, column_count, current_player, move_count, save_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, snapshot.Name, snapshot.Rows, snapshot.Columns, snapshot.CurrentOwner.Tag(), snapshot.MoveCount,
		savedAtOrNow(snapshot).UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO board_cells (game_id, row_index, col_index, cell_state) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for _, cell := range snapshot.Cells {
		if _, err = stmt.ExecContext(ctx, gameID, cell.Row, cell.Column, cell.Owner.Tag()); err != nil {
			return fmt.Errorf("failed to insert cell (%d, %d): %w", cell.Row, cell.Column, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	return nil
}

func (that *sqlGame) Load(ctx context.Context, name string) (*entity.Snapshot, error) {
	var (
		snapshot   entity.Snapshot
		playerTag  string
		savedNanos int64
	)

	err := that.db.QueryRowContext(ctx,
		`SELECT id, game_name, row_count, column_count, current_player, move_count, save_date
		 FROM saved_games WHERE game_name = ?`, name,
	).Scan(&snapshot.ID, &snapshot.Name, &snapshot.Rows, &snapshot.Columns, &playerTag, &snapshot.MoveCount, &savedNanos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	if snapshot.CurrentOwner, err = parseOwner(playerTag); err != nil {
		return nil, err
	}
	snapshot.SavedAt = time.Unix(0, savedNanos).UTC()

	rows, err := that.db.QueryContext(ctx,
		`SELECT row_index, col_index, cell_state FROM board_cells
		 WHERE game_id = ? ORDER BY row_index, col_index`, snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cell     entity.CellRecord
			stateTag string
		)
		if err = rows.Scan(&cell.Row, &cell.Column, &stateTag); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		if cell.Owner, err = parseOwner(stateTag); err != nil {
			return nil, err
		}
		snapshot.Cells = append(snapshot.Cells, cell)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cells: %w", err)
	}

	return &snapshot, nil
}

func (that *sqlGame) Delete(ctx context.Context, name string) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleted, err := deleteSQLGame(ctx, tx, name)
	if err != nil {
		return err
	}

	if !deleted {
		return apperror.ErrGameNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

func (that *sqlGame) List(ctx context.Context) ([]string, error) {
	rows, err := that.db.QueryContext(ctx, `SELECT game_name FROM saved_games ORDER BY save_date DESC, game_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan game name: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return names, nil
}

func (that *sqlGame) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := that.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_games WHERE game_name = ?`, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check game: %w", err)
	}
	return count > 0, nil
}

// deleteSQLGame - removes a game and its cells inside tx, reporting whether it existed.
func deleteSQLGame(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM board_cells WHERE game_id IN (SELECT id FROM saved_games WHERE game_name = ?)`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete cells: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM saved_games WHERE game_name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}

	return affected > 0, nil
}
