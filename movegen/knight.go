package movegen

// knightAttacks shifts every knight in bb by the eight knight offsets. Each
// shift is masked with the files it would wrap onto.
func knightAttacks(bb Bitboard) Bitboard {
	return (bb<<17)&NotFileA |
		(bb<<15)&NotFileH |
		(bb<<10)&NotFileAB |
		(bb<<6)&NotFileGH |
		(bb>>17)&NotFileH |
		(bb>>15)&NotFileA |
		(bb>>10)&NotFileGH |
		(bb>>6)&NotFileAB
}

// KnightTargets returns the knight pattern from sq on an empty board.
func KnightTargets(sq Square) Bitboard { return knightAttacks(SquareBB(sq)) }

func appendKnightMoves(dst []Move, b *Board, side Color) []Move {
	own := b.Occupancy(side)
	knights := b.PiecesOf(Knight, side)
	for knights != 0 {
		from := popLSB(&knights)
		dst = appendTargets(dst, from, KnightTargets(from)&^own, Knight)
	}
	return dst
}

// KnightMoves generates the knight moves of side.
func KnightMoves(b *Board, side Color) []Move {
	return appendKnightMoves(make([]Move, 0, 16), b, side)
}
