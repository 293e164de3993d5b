package movegen

import "fmt"

// Square is a board index in 0..63, row-major from the top-left corner:
// a8 is 0, h8 is 7, a1 is 56 and h1 is 63.
type Square int

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare returns the square at file (0 = a) and row (0 = rank 8).
func NewSquare(file, row int) Square { return Square(row*8 + file) }

// File returns 0 for the a-file through 7 for the h-file.
func (s Square) File() int { return int(s) % 8 }

// Row returns 0 for rank 8 through 7 for rank 1.
func (s Square) Row() int { return int(s) / 8 }

// Rank returns the rank number, 1..8.
func (s Square) Rank() int { return 8 - s.Row() }

// Valid reports whether s lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// String returns algebraic coordinates such as "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '0' + byte(s.Rank())})
}

// ParseSquare converts algebraic coordinates to a square: "a8" is 0, "e4" is 36.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", str, ErrInvalidSquare)
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%q out of range: %w", str, ErrInvalidSquare)
	}
	return NewSquare(int(file-'a'), int('8'-rank)), nil
}
