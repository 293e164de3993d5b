package movegen_test

import (
	"errors"
	"testing"

	"chess-movegen/movegen"
)

func TestPlacePiece(t *testing.T) {
	b := movegen.NewBoard()
	if err := b.PlacePiece(movegen.Knight, movegen.White, movegen.G1); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}
	if err := b.PlacePiece(movegen.Queen, movegen.Black, movegen.D8); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	kind, color, ok := b.PieceAt(movegen.G1)
	if !ok || kind != movegen.Knight || color != movegen.White {
		t.Errorf("PieceAt(g1) = %v %v %v", kind, color, ok)
	}
	if _, _, ok := b.PieceAt(movegen.E4); ok {
		t.Errorf("PieceAt(e4) reported a piece on an empty square")
	}
	if got := b.PiecesOf(movegen.Queen, movegen.Black); got != bb(movegen.D8) {
		t.Errorf("black queens:\n%s", got.Draw())
	}
	if got := b.PiecesOf(movegen.Queen, movegen.White); got != 0 {
		t.Errorf("white queens:\n%s", got.Draw())
	}
	if b.Occupied().PopCount() != 2 || b.Empty().PopCount() != 62 {
		t.Errorf("occupied %d, empty %d", b.Occupied().PopCount(), b.Empty().PopCount())
	}
}

func TestPlacePieceRejectsOccupiedSquare(t *testing.T) {
	b := movegen.NewBoard()
	if err := b.PlacePiece(movegen.Rook, movegen.White, movegen.A1); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}
	err := b.PlacePiece(movegen.Bishop, movegen.Black, movegen.A1)
	if !errors.Is(err, movegen.ErrSquareOccupied) {
		t.Fatalf("second PlacePiece error = %v, want ErrSquareOccupied", err)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("board corrupted by rejected placement: %v", err)
	}
	if err := b.PlacePiece(movegen.Pawn, movegen.White, movegen.Square(64)); !errors.Is(err, movegen.ErrInvalidSquare) {
		t.Fatalf("off-board PlacePiece error = %v, want ErrInvalidSquare", err)
	}
}

func TestBoardInvariantsOnFixtures(t *testing.T) {
	for _, fen := range []string{movegen.FENStartPos, fenMixed, fenRooks, fenKiwi, fenPos6, fenEmpty} {
		b := mustParse(t, fen)
		if err := b.Validate(); err != nil {
			t.Errorf("%s: %v", fen, err)
		}
		if b.Occupancy(movegen.White)&b.Occupancy(movegen.Black) != 0 {
			t.Errorf("%s: colors overlap", fen)
		}
		var union movegen.Bitboard
		for _, k := range movegen.PieceKinds {
			if union&b.Pieces(k) != 0 {
				t.Errorf("%s: %v overlaps another kind", fen, k)
			}
			union |= b.Pieces(k)
		}
		if union != b.Occupied() {
			t.Errorf("%s: kind masks do not cover occupancy", fen)
		}
	}
}

func TestNewBoardState(t *testing.T) {
	st := movegen.NewBoard().State()
	if st.ActiveColor != movegen.White || st.EnPassant != movegen.NoSquare || st.FullMoves != 1 || st.Castling.Any() {
		t.Fatalf("unexpected initial state %+v", st)
	}
}

func TestParsePieceKind(t *testing.T) {
	tests := map[string]movegen.PieceKind{
		"pawn": movegen.Pawn, "P": movegen.Pawn, "rook": movegen.Rook, "b": movegen.Bishop,
		"Knight": movegen.Knight, "n": movegen.Knight, "king": movegen.King, "q": movegen.Queen,
	}
	for in, want := range tests {
		got, err := movegen.ParsePieceKind(in)
		if err != nil || got != want {
			t.Errorf("ParsePieceKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := movegen.ParsePieceKind("dragon"); err == nil {
		t.Errorf("ParsePieceKind(dragon) succeeded")
	}
}
