package minichess

import "errors"

var (
	// ErrOutOfBounds is returned for a cell outside the board.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidMoveRequest is returned when ApplyMove is called with an invalid cell or an empty source.
	ErrInvalidMoveRequest = errors.New("invalid move request")
	// ErrInvalidLayout is returned by ParseBoard for malformed layout text.
	ErrInvalidLayout = errors.New("invalid board layout")
)
