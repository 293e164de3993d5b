package movegen

// AppendMoves appends the pseudo-legal moves of side's pieces of the given
// kind to dst and returns the extended slice. It does not check king safety.
func AppendMoves(dst []Move, b *Board, side Color, kind PieceKind) []Move {
	switch kind {
	case Pawn:
		return appendPawnMoves(dst, b, side)
	case Rook:
		return appendSliderMoves(dst, b, side, Rook, RookDirections[:])
	case Bishop:
		return appendSliderMoves(dst, b, side, Bishop, BishopDirections[:])
	case Knight:
		return appendKnightMoves(dst, b, side)
	case King:
		return appendKingMoves(dst, b, side)
	case Queen:
		return appendSliderMoves(dst, b, side, Queen, QueenDirections[:])
	}
	return dst
}

// Generate returns the pseudo-legal moves of side's pieces of one kind.
func Generate(b *Board, side Color, kind PieceKind) []Move {
	return AppendMoves(make([]Move, 0, 32), b, side, kind)
}

// GeneratePseudoMovesInto appends the pseudo-legal moves of every kind, in
// PieceKind order, to dst.
func GeneratePseudoMovesInto(dst []Move, b *Board, side Color) []Move {
	for _, kind := range PieceKinds {
		dst = AppendMoves(dst, b, side, kind)
	}
	return dst
}

// GeneratePseudoMoves returns the pseudo-legal moves of every kind for side.
func GeneratePseudoMoves(b *Board, side Color) []Move {
	return GeneratePseudoMovesInto(make([]Move, 0, 128), b, side)
}

// PseudoMoves generates for the side to move.
func (b *Board) PseudoMoves() []Move { return GeneratePseudoMoves(b, b.SideToMove()) }

// Targets returns the union of destinations of side's pieces of one kind.
func Targets(b *Board, side Color, kind PieceKind) Bitboard {
	own := b.Occupancy(side)
	occ := b.Occupied()
	pieces := b.PiecesOf(kind, side)
	var out Bitboard
	switch kind {
	case Pawn:
		return singlePushTargets(b, side) | doublePushTargets(b, side)
	case Knight:
		out = knightAttacks(pieces)
	case King:
		out = kingAttacks(pieces)
	default:
		dirs := RookDirections[:]
		if kind == Bishop {
			dirs = BishopDirections[:]
		} else if kind == Queen {
			dirs = QueenDirections[:]
		}
		for pieces != 0 {
			out |= SlidingTargets(popLSB(&pieces), dirs, occ)
		}
	}
	return out &^ own
}
