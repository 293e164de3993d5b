package movegen

import "errors"

// Sentinel errors. Callers match them with errors.Is; the wrapping error
// carries the offending input.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidSquare indicates a square name or index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrSquareOccupied is returned when placing a piece on a non-empty square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrInvalidBoard indicates that the occupancy masks contradict each other.
	ErrInvalidBoard = errors.New("invalid board")
)
