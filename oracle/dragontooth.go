package oracle

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-movegen/movegen"
)

func dragontoothMask(bbs dragontoothmg.Bitboards, kind movegen.PieceKind) uint64 {
	switch kind {
	case movegen.Pawn:
		return bbs.Pawns
	case movegen.Rook:
		return bbs.Rooks
	case movegen.Bishop:
		return bbs.Bishops
	case movegen.Knight:
		return bbs.Knights
	case movegen.King:
		return bbs.Kings
	case movegen.Queen:
		return bbs.Queens
	}
	return 0
}

// checkDragontooth compares placement and, for both colors, every slider's
// destinations against dragontoothmg's magic-bitboard lookups.
func checkDragontooth(b *movegen.Board, fen string) (out []Mismatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ParseFen panicked: %v", r)
		}
	}()
	dt := dragontoothmg.ParseFen(fen)

	out = comparePlacement(Dragontooth, b, func(c movegen.Color, kind movegen.PieceKind) movegen.Bitboard {
		bbs := dt.White
		if c == movegen.Black {
			bbs = dt.Black
		}
		return fromA1(dragontoothMask(bbs, kind))
	})

	occ := toA1(b.Occupied())
	for _, side := range []movegen.Color{movegen.White, movegen.Black} {
		own := b.Occupancy(side)
		for _, kind := range []movegen.PieceKind{movegen.Rook, movegen.Bishop, movegen.Queen} {
			want := make(map[movegen.Square]movegen.Bitboard)
			for _, sq := range b.PiecesOf(kind, side).Squares() {
				var ref uint64
				if kind != movegen.Bishop {
					ref |= dragontoothmg.CalculateRookMoveBitboard(squareToA1(sq), occ)
				}
				if kind != movegen.Rook {
					ref |= dragontoothmg.CalculateBishopMoveBitboard(squareToA1(sq), occ)
				}
				want[sq] = fromA1(ref) &^ own
			}
			got := targetsByOrigin(movegen.Generate(b, side, kind))
			out = append(out, compareTargets(Dragontooth, side, kind, want, got)...)
		}
	}
	return out, nil
}
