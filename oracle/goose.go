package oracle

import (
	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-movegen/movegen"
)

var gooseKinds = map[goosemg.PieceType]movegen.PieceKind{
	goosemg.PieceTypePawn:   movegen.Pawn,
	goosemg.PieceTypeKnight: movegen.Knight,
	goosemg.PieceTypeKing:   movegen.King,
}

// checkGoose compares knight, king and pawn-push destinations of the side to
// move with goosemg's pseudo-legal generator. Castling, pawn captures and en
// passant are not generated by movegen and are filtered out; the four
// promotion moves of one push collapse into a single destination.
func checkGoose(b *movegen.Board, fen string) ([]Mismatch, error) {
	gb, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	side := b.SideToMove()

	want := make(map[movegen.PieceKind]map[movegen.Square]movegen.Bitboard, len(gooseKinds))
	for _, kind := range gooseKinds {
		want[kind] = make(map[movegen.Square]movegen.Bitboard)
	}
	for _, m := range gb.GeneratePseudoMoves() {
		kind, ok := gooseKinds[m.MovedPiece().Type()]
		if !ok || m.Flags() == goosemg.FlagCastle {
			continue
		}
		from, to := squareFromA1(int(m.From())), squareFromA1(int(m.To()))
		if kind == movegen.Pawn && (from.File() != to.File() || m.Flags() == goosemg.FlagEnPassant) {
			continue
		}
		want[kind][from] = want[kind][from].Set(to)
	}

	var out []Mismatch
	for _, kind := range []movegen.PieceKind{movegen.Pawn, movegen.Knight, movegen.King} {
		got := targetsByOrigin(movegen.Generate(b, side, kind))
		out = append(out, compareTargets(Goose, side, kind, want[kind], got)...)
	}
	return out, nil
}
