package movegen

import (
	"fmt"
	"strings"
)

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type. The order is fixed and doubles as the
// index into Board's per-kind masks.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Bishop
	Knight
	King
	Queen
)

// NumPieceKinds is the number of piece kinds.
const NumPieceKinds = 6

// PieceKinds lists every kind in index order.
var PieceKinds = [NumPieceKinds]PieceKind{Pawn, Rook, Bishop, Knight, King, Queen}

var kindNames = [NumPieceKinds]string{"pawn", "rook", "bishop", "knight", "king", "queen"}

// FEN letters, white case.
var kindLetters = [NumPieceKinds]byte{'P', 'R', 'B', 'N', 'K', 'Q'}

func (k PieceKind) String() string {
	if int(k) < NumPieceKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", uint8(k))
}

// Letter returns the FEN letter of the kind for the given side.
func (k PieceKind) Letter(c Color) byte {
	l := kindLetters[k]
	if c == Black {
		l += 'a' - 'A'
	}
	return l
}

// pieceFromLetter decodes a FEN piece letter.
func pieceFromLetter(ch byte) (PieceKind, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == ch {
			return PieceKind(k), c, true
		}
	}
	return 0, White, false
}

// ParsePieceKind accepts a kind name ("knight") or letter ("n"), case-insensitive.
func ParsePieceKind(s string) (PieceKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if s == name {
			return PieceKind(k), nil
		}
	}
	if len(s) == 1 {
		if k, _, ok := pieceFromLetter(s[0]); ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}
