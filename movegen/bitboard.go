package movegen

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy mask: bit i is set when square i is occupied.
// It is a plain value; every operation returns a new mask.
type Bitboard uint64

// File and rank masks. Square 0 is a8, so Rank8 occupies the low byte.
const (
	FileA Bitboard = 0x0101010101010101
	FileB          = FileA << 1
	FileC          = FileA << 2
	FileD          = FileA << 3
	FileE          = FileA << 4
	FileF          = FileA << 5
	FileG          = FileA << 6
	FileH          = FileA << 7

	Rank8 Bitboard = 0xFF
	Rank7          = Rank8 << 8
	Rank6          = Rank8 << 16
	Rank5          = Rank8 << 24
	Rank4          = Rank8 << 32
	Rank3          = Rank8 << 40
	Rank2          = Rank8 << 48
	Rank1          = Rank8 << 56

	NotFileA  = ^FileA
	NotFileH  = ^FileH
	NotFileAB = ^(FileA | FileB)
	NotFileGH = ^(FileG | FileH)
)

// SquareBB returns the mask with only sq set.
func SquareBB(sq Square) Bitboard { return 1 << uint(sq) }

// Toggle flips the bit of sq.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ SquareBB(sq) }

// Set returns b with sq occupied.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear returns b with sq empty.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Has reports whether sq is set.
func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare for an empty mask.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare for an empty mask.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Squares lists the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for b != 0 {
		out = append(out, popLSB(&b))
	}
	return out
}

// popLSB clears and returns the lowest set square. The mask must be non-empty.
func popLSB(b *Bitboard) Square {
	sq := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return Square(sq)
}

// Draw renders the mask as an 8x8 grid, rank 8 first, with '1' for set squares.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString(fileHeader)
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, row)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
