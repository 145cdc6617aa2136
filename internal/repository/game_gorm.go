package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"gorm.io/gorm"
)

// SavedGameModel - one row per saved game.
type SavedGameModel struct {
	ID            string           `gorm:"primaryKey;type:uuid"`
	Name          string           `gorm:"column:game_name;uniqueIndex;not null"`
	RowCount      int              `gorm:"not null"`
	ColumnCount   int              `gorm:"not null"`
	CurrentPlayer string           `gorm:"not null"`
	MoveCount     int              `gorm:"not null"`
	SavedAt       time.Time        `gorm:"column:save_date;index;not null"`
	Cells         []BoardCellModel `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (SavedGameModel) TableName() string {
	return "saved_games"
}

// BoardCellModel - one row per non-empty cell of a saved game.
type BoardCellModel struct {
	GameID    string `gorm:"primaryKey;type:uuid"`
	RowIndex  int    `gorm:"primaryKey;autoIncrement:false"`
	ColIndex  int    `gorm:"primaryKey;autoIncrement:false"`
	CellState string `gorm:"not null"`
}

func (BoardCellModel) TableName() string {
	return "board_cells"
}

type gormGame struct {
	db *gorm.DB
}

// NewGormGameRepository - migrates the schema and returns a repository over db.
func NewGormGameRepository(ctx context.Context, db *gorm.DB) (GameRepository, error) {
	if err := db.WithContext(ctx).AutoMigrate(&SavedGameModel{}, &BoardCellModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &gormGame{
		db: db,
	}, nil
}

func (that *gormGame) Save(ctx context.Context, snapshot entity.Snapshot) error {
	if err := checkName(snapshot.Name); err != nil {
		return err
	}

	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("failed to save game %q: %w", snapshot.Name, err)
	}

	model := SavedGameModel{
		ID:            newGameID(),
		Name:          snapshot.Name,
		RowCount:      snapshot.Rows,
		ColumnCount:   snapshot.Columns,
		CurrentPlayer: snapshot.CurrentOwner.Tag(),
		MoveCount:     snapshot.MoveCount,
		SavedAt:       savedAtOrNow(snapshot),
		Cells:         make([]BoardCellModel, 0, len(snapshot.Cells)),
	}
	for _, cell := range snapshot.Cells {
		model.Cells = append(model.Cells, BoardCellModel{
			GameID:    model.ID,
			RowIndex:  cell.Row,
			ColIndex:  cell.Column,
			CellState: cell.Owner.Tag(),
		})
	}

	err := that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := deleteGormGame(tx, snapshot.Name); err != nil {
			return err
		}
		return tx.Create(&model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *gormGame) Load(ctx context.Context, name string) (*entity.Snapshot, error) {
	var model SavedGameModel

	err := that.db.WithContext(ctx).
		Preload("Cells", func(db *gorm.DB) *gorm.DB {
			return db.Order("row_index, col_index")
		}).
		Where("game_name = ?", name).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	owner, err := parseOwner(model.CurrentPlayer)
	if err != nil {
		return nil, err
	}

	snapshot := &entity.Snapshot{
		ID:           model.ID,
		Name:         model.Name,
		Rows:         model.RowCount,
		Columns:      model.ColumnCount,
		CurrentOwner: owner,
		MoveCount:    model.MoveCount,
		SavedAt:      model.SavedAt.UTC(),
	}

	for _, cell := range model.Cells {
		cellOwner, err := parseOwner(cell.CellState)
		if err != nil {
			return nil, err
		}
		snapshot.Cells = append(snapshot.Cells, entity.CellRecord{Row: cell.RowIndex, Column: cell.ColIndex, Owner: cellOwner})
	}

	return snapshot, nil
}

func (that *gormGame) Delete(ctx context.Context, name string) error {
	var deleted bool

	err := that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = deleteGormGame(tx, name)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if !deleted {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *gormGame) List(ctx context.Context) ([]string, error) {
	names := []string{}

	err := that.db.WithContext(ctx).
		Model(&SavedGameModel{}).
		Order("save_date DESC, game_name").
		Pluck("game_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return names, nil
}

func (that *gormGame) Exists(ctx context.Context, name string) (bool, error) {
	var count int64

	if err := that.db.WithContext(ctx).Model(&SavedGameModel{}).Where("game_name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check game: %w", err)
	}

	return count > 0, nil
}

func deleteGormGame(tx *gorm.DB, name string) (bool, error) {
	var ids []string
	if err := tx.Model(&SavedGameModel{}).Where("game_name = ?", name).Pluck("id", &ids).Error; err != nil {
		return false, err
	}

	if len(ids) == 0 {
		return false, nil
	}

	if err := tx.Where("game_id IN ?", ids).Delete(&BoardCellModel{}).Error; err != nil {
		return false, err
	}

	if err := tx.Where("id IN ?", ids).Delete(&SavedGameModel{}).Error; err != nil {
		return false, err
	}

	return true, nil
}
