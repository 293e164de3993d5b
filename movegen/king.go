package movegen

func kingAttacks(bb Bitboard) Bitboard {
	return bb<<8 | bb>>8 |
		(bb<<1|bb>>7|bb<<9)&NotFileA |
		(bb>>1|bb<<7|bb>>9)&NotFileH
}

// KingTargets returns the king pattern from sq on an empty board.
func KingTargets(sq Square) Bitboard { return kingAttacks(SquareBB(sq)) }

func appendKingMoves(dst []Move, b *Board, side Color) []Move {
	own := b.Occupancy(side)
	kings := b.PiecesOf(King, side)
	for kings != 0 {
		from := popLSB(&kings)
		dst = appendTargets(dst, from, KingTargets(from)&^own, King)
	}
	return dst
}

// KingMoves generates one-step king moves for side. Castling is not generated.
func KingMoves(b *Board, side Color) []Move {
	return appendKingMoves(make([]Move, 0, 8), b, side)
}
