package movegen

import "fmt"

// Castling holds the four castling-right flags.
type Castling struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Any reports whether at least one right is held.
func (c Castling) Any() bool {
	return c.WhiteKingSide || c.WhiteQueenSide || c.BlackKingSide || c.BlackQueenSide
}

// GameState is the non-placement part of a position.
type GameState struct {
	ActiveColor Color
	Castling    Castling
	EnPassant   Square // NoSquare when absent
	HalfMoves   int
	FullMoves   int
}

// Board stores a position as per-kind masks plus per-color occupancy.
//
// A square set in pieces[k] is set in exactly one of white or black, the kind
// masks are pairwise disjoint, and every occupied square belongs to one kind.
// Generators only read a Board; it is populated through PlacePiece or ParseFEN.
type Board struct {
	pieces [NumPieceKinds]Bitboard
	white  Bitboard
	black  Bitboard
	state  GameState
}

// NewBoard returns an empty board with white to move.
func NewBoard() *Board {
	return &Board{state: GameState{ActiveColor: White, EnPassant: NoSquare, FullMoves: 1}}
}

// PlacePiece puts a piece of the given kind and color on an empty square.
func (b *Board) PlacePiece(kind PieceKind, c Color, sq Square) error {
	if !sq.Valid() {
		return fmt.Errorf("place %s on %d: %w", kind, int(sq), ErrInvalidSquare)
	}
	if int(kind) >= NumPieceKinds {
		return fmt.Errorf("place %s on %s: %w", kind, sq, ErrInvalidBoard)
	}
	if b.Occupied().Has(sq) {
		return fmt.Errorf("place %s on %s: %w", kind, sq, ErrSquareOccupied)
	}
	b.pieces[kind] = b.pieces[kind].Toggle(sq)
	if c == White {
		b.white = b.white.Toggle(sq)
	} else {
		b.black = b.black.Toggle(sq)
	}
	return nil
}

// SetState replaces the game state.
func (b *Board) SetState(st GameState) { b.state = st }

// State returns a copy of the game state.
func (b *Board) State() GameState { return b.state }

// SideToMove returns the active color.
func (b *Board) SideToMove() Color { return b.state.ActiveColor }

// Pieces returns the squares holding the given kind, both colors.
func (b *Board) Pieces(kind PieceKind) Bitboard { return b.pieces[kind] }

// PiecesOf returns the squares holding the given kind and color.
func (b *Board) PiecesOf(kind PieceKind, c Color) Bitboard { return b.pieces[kind] & b.Occupancy(c) }

// Occupancy returns every square held by c.
func (b *Board) Occupancy(c Color) Bitboard {
	if c == White {
		return b.white
	}
	return b.black
}

// Occupied returns every non-empty square.
func (b *Board) Occupied() Bitboard { return b.white | b.black }

// Empty returns every empty square.
func (b *Board) Empty() Bitboard { return ^b.Occupied() }

// PieceAt reports the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (kind PieceKind, c Color, ok bool) {
	if !sq.Valid() || !b.Occupied().Has(sq) {
		return 0, White, false
	}
	c = White
	if b.black.Has(sq) {
		c = Black
	}
	for k := range b.pieces {
		if b.pieces[k].Has(sq) {
			return PieceKind(k), c, true
		}
	}
	return 0, c, false
}

// Validate checks the occupancy invariants and returns the first violation.
func (b *Board) Validate() error {
	if both := b.white & b.black; both != 0 {
		return fmt.Errorf("%s held by both colors: %w", both.LSB(), ErrInvalidBoard)
	}
	var union Bitboard
	for k, bb := range b.pieces {
		if overlap := union & bb; overlap != 0 {
			return fmt.Errorf("%s holds %s and another kind: %w", overlap.LSB(), PieceKind(k), ErrInvalidBoard)
		}
		union |= bb
	}
	if stray := union &^ b.Occupied(); stray != 0 {
		return fmt.Errorf("%s has a piece but no color: %w", stray.LSB(), ErrInvalidBoard)
	}
	if stray := b.Occupied() &^ union; stray != 0 {
		return fmt.Errorf("%s has a color but no piece: %w", stray.LSB(), ErrInvalidBoard)
	}
	if ep := b.state.EnPassant; ep != NoSquare && !ep.Valid() {
		return fmt.Errorf("en passant %d: %w", int(ep), ErrInvalidSquare)
	}
	return nil
}
