package movegen

// ==========================
// Sliding pieces
// ==========================

// slide returns the squares reachable from sq along d: every square up to
// and including the first occupied one.
func slide(sq Square, d Direction, occupied Bitboard) Bitboard {
	ray := Ray(sq, d)
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var nearest Square
	if d.Increasing() {
		nearest = blockers.LSB()
	} else {
		nearest = blockers.MSB()
	}
	return ray ^ Ray(nearest, d)
}

// SlidingTargets returns the union of slide over dirs. Blockers of either
// color are included; callers mask out their own pieces.
func SlidingTargets(sq Square, dirs []Direction, occupied Bitboard) Bitboard {
	var targets Bitboard
	for _, d := range dirs {
		targets |= slide(sq, d, occupied)
	}
	return targets
}

// RookTargets returns rook destinations from sq, own pieces included.
func RookTargets(sq Square, occupied Bitboard) Bitboard {
	return SlidingTargets(sq, RookDirections[:], occupied)
}

// BishopTargets returns bishop destinations from sq, own pieces included.
func BishopTargets(sq Square, occupied Bitboard) Bitboard {
	return SlidingTargets(sq, BishopDirections[:], occupied)
}

// QueenTargets returns queen destinations from sq, own pieces included.
func QueenTargets(sq Square, occupied Bitboard) Bitboard {
	return SlidingTargets(sq, QueenDirections[:], occupied)
}

// appendSliderMoves walks side's pieces of kind in ascending square order and,
// for each, the directions in list order, emitting destinations ascending.
func appendSliderMoves(dst []Move, b *Board, side Color, kind PieceKind, dirs []Direction) []Move {
	own := b.Occupancy(side)
	occ := b.Occupied()
	pieces := b.PiecesOf(kind, side)
	for pieces != 0 {
		from := popLSB(&pieces)
		for _, d := range dirs {
			dst = appendTargets(dst, from, slide(from, d, occ)&^own, kind)
		}
	}
	return dst
}

// RookMoves generates the rook moves of side.
func RookMoves(b *Board, side Color) []Move {
	return appendSliderMoves(make([]Move, 0, 28), b, side, Rook, RookDirections[:])
}

// BishopMoves generates the bishop moves of side.
func BishopMoves(b *Board, side Color) []Move {
	return appendSliderMoves(make([]Move, 0, 26), b, side, Bishop, BishopDirections[:])
}

// QueenMoves generates the queen moves of side.
func QueenMoves(b *Board, side Color) []Move {
	return appendSliderMoves(make([]Move, 0, 27), b, side, Queen, QueenDirections[:])
}
