package oracle

import (
	"github.com/notnil/chess"

	"chess-movegen/movegen"
)

var notnilKinds = map[chess.PieceType]movegen.PieceKind{
	chess.Pawn:   movegen.Pawn,
	chess.Rook:   movegen.Rook,
	chess.Bishop: movegen.Bishop,
	chess.Knight: movegen.Knight,
	chess.King:   movegen.King,
	chess.Queen:  movegen.Queen,
}

// checkNotNil compares piece placement with notnil/chess's FEN decoder.
func checkNotNil(b *movegen.Board, fen string) ([]Mismatch, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	game := chess.NewGame(opt)

	var placed [2][movegen.NumPieceKinds]movegen.Bitboard
	for sq, p := range game.Position().Board().SquareMap() {
		kind, ok := notnilKinds[p.Type()]
		if !ok {
			continue
		}
		c := movegen.White
		if p.Color() == chess.Black {
			c = movegen.Black
		}
		placed[c][kind] = placed[c][kind].Set(squareFromA1(int(sq)))
	}
	return comparePlacement(NotNil, b, func(c movegen.Color, kind movegen.PieceKind) movegen.Bitboard {
		return placed[c][kind]
	}), nil
}
