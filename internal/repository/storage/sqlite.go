package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Storage struct {
	Connection *sql.DB
}

// NewSQLite - opens the database file at path and creates the schema.
func NewSQLite(ctx context.Context, path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// one writer at a time, saves run inside a single transaction
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	st := &Storage{Connection: conn}
	if err = st.Init(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return st, nil
}

func (that *Storage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS saved_games (
			id             TEXT PRIMARY KEY,
			game_name      TEXT NOT NULL UNIQUE,
			row_count      INTEGER NOT NULL,
			column_count   INTEGER NOT NULL,
			current_player TEXT NOT NULL,
			move_count     INTEGER NOT NULL,
			save_date      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS board_cells (
			game_id    TEXT NOT NULL REFERENCES saved_games(id) ON DELETE CASCADE,
			row_index  INTEGER NOT NULL,
			col_index  INTEGER NOT NULL,
			cell_state TEXT NOT NULL,
			PRIMARY KEY (game_id, row_index, col_index)
		)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
