package movegen

import "math/rand"

// Zobrist keys, seeded so that hashes are stable across runs.
var (
	zobristPiece     [2][NumPieceKinds][64]uint64
	zobristCastle    [4]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the position. Positions that differ only in
// their move counters hash equal.
func (b *Board) Hash() uint64 {
	var key uint64
	for k := range b.pieces {
		for _, c := range [2]Color{White, Black} {
			bb := b.pieces[k] & b.Occupancy(c)
			for bb != 0 {
				key ^= zobristPiece[c][k][popLSB(&bb)]
			}
		}
	}

	st := b.state
	if st.ActiveColor == Black {
		key ^= zobristSide
	}
	for i, held := range [4]bool{
		st.Castling.WhiteKingSide, st.Castling.WhiteQueenSide,
		st.Castling.BlackKingSide, st.Castling.BlackQueenSide,
	} {
		if held {
			key ^= zobristCastle[i]
		}
	}
	if st.EnPassant.Valid() {
		key ^= zobristEnPassant[st.EnPassant.File()]
	}
	return key
}
