package movegen_test

import (
	"testing"

	"chess-movegen/movegen"
)

func TestRookMovesBlockedPosition(t *testing.T) {
	b := mustParse(t, fenRooks)

	var want []movegen.Move
	// b2: north blocked by the own king on b3, east up to the own rook on h2.
	want = append(want, movesFrom(movegen.Rook, 49, 50, 51, 52, 53, 54)...)
	want = append(want, movesFrom(movegen.Rook, 49, 57)...)
	want = append(want, movesFrom(movegen.Rook, 49, 48)...)
	// h2: the whole h-file north, the enemy rook on h1, west up to the own rook.
	want = append(want, movesFrom(movegen.Rook, 55, 7, 15, 23, 31, 39, 47)...)
	want = append(want, movesFrom(movegen.Rook, 55, 63)...)
	want = append(want, movesFrom(movegen.Rook, 55, 50, 51, 52, 53, 54)...)

	got := movegen.RookMoves(b, movegen.White)
	assertMoves(t, want, got)

	var h2 int
	for _, m := range got {
		if m.From == 55 {
			h2++
		}
	}
	if h2 != 12 {
		t.Fatalf("rook on h2: %d moves, want 12", h2)
	}
}

func TestBishopAndQueenMovesBlockedPosition(t *testing.T) {
	b := mustParse(t, fenRooks)

	var want []movegen.Move
	want = append(want, movesFrom(movegen.Bishop, movegen.G5, movegen.H6)...)             // NE
	want = append(want, movesFrom(movegen.Bishop, movegen.G5, movegen.H4)...)             // SE
	want = append(want, movesFrom(movegen.Bishop, movegen.G5, movegen.F4, movegen.E3)...) // SW, enemy pawn
	want = append(want, movesFrom(movegen.Bishop, movegen.G5, movegen.D8, movegen.E7, movegen.F6)...)
	assertMoves(t, want, movegen.BishopMoves(b, movegen.White))

	want = want[:0]
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.G4)...)             // N, own bishop on g5
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.H4)...)             // NE
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.H3)...)             // E
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.G2, movegen.G1)...) // S; SE blocked by own rook
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.F2, movegen.E1)...) // SW
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.E3, movegen.F3)...) // W, enemy pawn
	want = append(want, movesFrom(movegen.Queen, movegen.G3, movegen.F4)...)             // NW, own knight on e5
	assertMoves(t, want, movegen.QueenMoves(b, movegen.White))

	// Black's bishop on f1: NE to the edge, NW up to its own king on b5.
	want = want[:0]
	want = append(want, movesFrom(movegen.Bishop, movegen.F1, movegen.H3, movegen.G2)...)
	want = append(want, movesFrom(movegen.Bishop, movegen.F1, movegen.C4, movegen.D3, movegen.E2)...)
	assertMoves(t, want, movegen.BishopMoves(b, movegen.Black))
}

// Every generated slider move must stay on one ray of its origin, land on an
// empty or enemy square, and have only empty squares strictly in between.
func TestSliderMovesRespectBlockers(t *testing.T) {
	for _, fen := range []string{movegen.FENStartPos, fenMixed, fenRooks, fenKiwi, fenPos6} {
		b := mustParse(t, fen)
		for _, side := range []movegen.Color{movegen.White, movegen.Black} {
			own := b.Occupancy(side)
			for _, kind := range []movegen.PieceKind{movegen.Rook, movegen.Bishop, movegen.Queen} {
				for _, m := range movegen.Generate(b, side, kind) {
					if own.Has(m.To) {
						t.Fatalf("%s: %v lands on own piece", fen, m)
					}
					onRay := false
					for d := movegen.Direction(0); d < movegen.NumDirections; d++ {
						ray := movegen.Ray(m.From, d)
						if !ray.Has(m.To) {
							continue
						}
						onRay = true
						between := ray &^ movegen.Ray(m.To, d) &^ movegen.SquareBB(m.To)
						if between&b.Occupied() != 0 {
							t.Fatalf("%s: %v jumps over a piece", fen, m)
						}
					}
					if !onRay {
						t.Fatalf("%s: %v is not on any ray from its origin", fen, m)
					}
				}
			}
		}
	}
}

func TestSlidingTargetsIncludeFirstBlocker(t *testing.T) {
	// Rook on d4 with blockers on d6 and f4.
	occ := bb(movegen.D4, movegen.D6, movegen.F4)
	got := movegen.RookTargets(movegen.D4, occ)
	want := bb(movegen.D5, movegen.D6, movegen.E4, movegen.F4,
		movegen.D3, movegen.D2, movegen.D1,
		movegen.C4, movegen.B4, movegen.A4)
	if got != want {
		t.Fatalf("RookTargets(d4):\n%s\nwant:\n%s", got.Draw(), want.Draw())
	}
	if q := movegen.QueenTargets(movegen.D4, occ); q != got|movegen.BishopTargets(movegen.D4, occ) {
		t.Fatalf("queen targets are not rook | bishop targets")
	}
}

func TestSliderOrdering(t *testing.T) {
	// Two rooks: moves are grouped by origin ascending, then N, E, S, W.
	b := mustParse(t, "8/8/8/8/8/8/8/R6R w - - 0 1")
	got := movegen.RookMoves(b, movegen.White)
	if len(got) != 26 {
		t.Fatalf("got %d moves, want 26", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].From < got[i-1].From {
			t.Fatalf("origin order broken at %d: %v after %v", i, got[i], got[i-1])
		}
	}
	if got[0].To != movegen.A8 || got[7].To != movegen.B1 || got[12].To != movegen.G1 {
		t.Fatalf("unexpected direction order: %v", got[:13])
	}
}
