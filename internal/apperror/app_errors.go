package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidDimensions  = errors.New("board dimensions must be positive")
	ErrInvalidLineLength  = errors.New("line length must be positive")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidGameName    = errors.New("game name is empty")
	ErrCorruptSnapshot    = errors.New("saved game is corrupt")
	ErrUnknownStorageType = errors.New("unknown storage driver")
	ErrUnknownOpponent    = errors.New("unknown opponent mode")
)
