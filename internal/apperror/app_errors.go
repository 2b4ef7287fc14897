package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("position is out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)
