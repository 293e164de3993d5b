package movegen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chess-movegen/movegen"
)

// Positions shared across tests.
const (
	fenMixed  = "r1bk3r/p2pBpNp/n4n2/1p1NP2P/6P1/3P4/P1P1K3/q5b1 w KQkq - 0 1"
	fenRooks  = "8/8/8/1k2N1B1/3p4/1K2p1Q1/1R5R/5b1r w - - 0 1"
	fenKiwi   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fenPos6   = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	fenEmpty  = "8/8/8/8/8/8/8/8 w - - 0 1"
	fenBlack  = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	fenCorner = "N6N/8/8/8/8/8/8/N6N w - - 0 1"
)

func mustParse(t testing.TB, fen string) *movegen.Board {
	t.Helper()
	b, err := movegen.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// movesFrom builds the expected moves of one piece, destinations in the given order.
func movesFrom(kind movegen.PieceKind, from movegen.Square, to ...movegen.Square) []movegen.Move {
	out := make([]movegen.Move, 0, len(to))
	for _, sq := range to {
		out = append(out, movegen.Move{From: from, To: sq, Piece: kind})
	}
	return out
}

func assertMoves(t *testing.T, want, got []movegen.Move) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func bb(squares ...movegen.Square) movegen.Bitboard {
	var out movegen.Bitboard
	for _, sq := range squares {
		out = out.Set(sq)
	}
	return out
}
