package movegen

// Move is a pseudo-legal move: where a piece of a given kind starts and lands.
// Captures are implicit in the destination being enemy-occupied.
type Move struct {
	From  Square
	To    Square
	Piece PieceKind
}

// String returns coordinate notation, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }

// appendTargets emits one move per destination in ascending square order.
func appendTargets(dst []Move, from Square, targets Bitboard, kind PieceKind) []Move {
	for targets != 0 {
		dst = append(dst, Move{From: from, To: popLSB(&targets), Piece: kind})
	}
	return dst
}
