package movegen

// ==========================
// Pawn pushes
// ==========================

// Destination rank of a double push, indexed by color.
var doublePushRank = [2]Bitboard{Rank4, Rank5}

// pushDelta is the index change of a single push: white moves toward rank 8.
func pushDelta(side Color) Square {
	if side == White {
		return -8
	}
	return 8
}

func pushOne(bb Bitboard, side Color) Bitboard {
	if side == White {
		return bb >> 8
	}
	return bb << 8
}

func singlePushTargets(b *Board, side Color) Bitboard {
	return pushOne(b.PiecesOf(Pawn, side), side) & b.Empty()
}

func doublePushTargets(b *Board, side Color) Bitboard {
	return pushOne(singlePushTargets(b, side), side) & b.Empty() & doublePushRank[side]
}

// appendPawnPushes maps each target back to its pawn. Targets are visited in
// ascending order, so the moves are ordered by origin too.
func appendPawnPushes(dst []Move, targets Bitboard, back Square) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		dst = append(dst, Move{From: to - back, To: to, Piece: Pawn})
	}
	return dst
}

// PawnSinglePushes generates one-square pawn advances onto empty squares.
func PawnSinglePushes(b *Board, side Color) []Move {
	return appendPawnPushes(make([]Move, 0, 8), singlePushTargets(b, side), pushDelta(side))
}

// PawnDoublePushes generates two-square advances. Both squares must be empty
// and the pawn must land on its fourth rank, i.e. start from its home rank.
func PawnDoublePushes(b *Board, side Color) []Move {
	return appendPawnPushes(make([]Move, 0, 8), doublePushTargets(b, side), 2*pushDelta(side))
}

// PawnMoves returns single pushes followed by double pushes.
func PawnMoves(b *Board, side Color) []Move {
	return appendPawnMoves(make([]Move, 0, 16), b, side)
}

func appendPawnMoves(dst []Move, b *Board, side Color) []Move {
	dst = appendPawnPushes(dst, singlePushTargets(b, side), pushDelta(side))
	return appendPawnPushes(dst, doublePushTargets(b, side), 2*pushDelta(side))
}
