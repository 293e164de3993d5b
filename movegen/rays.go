package movegen

import "sync"

// rayTable holds, for every square and direction, the squares a slider would
// cross on an empty board. Built on first use and read-only afterwards.
var rayTable = sync.OnceValue(buildRays)

func buildRays() *[64][NumDirections]Bitboard {
	var t [64][NumDirections]Bitboard
	for sq := Square(0); sq < 64; sq++ {
		for d := Direction(0); d < NumDirections; d++ {
			df, dr := d.Step()
			var ray Bitboard
			for f, r := sq.File(), sq.Row(); f >= 0 && f < 8 && r >= 0 && r < 8; f, r = f+df, r+dr {
				ray = ray.Set(NewSquare(f, r))
			}
			t[sq][d] = ray.Clear(sq)
		}
	}
	return &t
}

// Ray returns the squares strictly beyond sq in direction d, up to the board edge.
func Ray(sq Square, d Direction) Bitboard { return rayTable()[sq][d] }
