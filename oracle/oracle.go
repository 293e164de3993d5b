// Package oracle cross-checks movegen against independent chess libraries.
//
// The reference libraries number squares from a1 = 0, movegen from a8 = 0.
// The two orders differ by a vertical flip: a square maps with sq^56 and a
// whole mask with bits.ReverseBytes64.
package oracle

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"chess-movegen/movegen"
)

// ErrMismatch is returned by Report.Err when any reference disagrees.
var ErrMismatch = errors.New("reference mismatch")

// Source names a reference library.
type Source string

const (
	Dragontooth Source = "dragontoothmg"
	Goose       Source = "goosemg"
	NotNil      Source = "notnil/chess"
)

// Mismatch is one disagreement. Square is the piece's origin for move
// comparisons and NoSquare for placement comparisons.
type Mismatch struct {
	Source Source
	Color  movegen.Color
	Kind   movegen.PieceKind
	Square movegen.Square
	Want   movegen.Bitboard // reference
	Got    movegen.Bitboard // movegen
}

func (m Mismatch) String() string {
	what := "placement"
	if m.Square != movegen.NoSquare {
		what = "moves from " + m.Square.String()
	}
	return fmt.Sprintf("%s: %v %v %s: missing %v, extra %v",
		m.Source, m.Color, m.Kind, what, (m.Want &^ m.Got).Squares(), (m.Got &^ m.Want).Squares())
}

// Report collects the mismatches for one position.
type Report struct {
	FEN        string
	Mismatches []Mismatch
}

// OK reports whether every reference agreed.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Err returns nil for a clean report and an ErrMismatch otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		lines[i] = m.String()
	}
	return fmt.Errorf("%s: %d disagreements: %w\n%s", r.FEN, len(r.Mismatches), ErrMismatch, strings.Join(lines, "\n"))
}

// checker compares one board against one reference.
type checker func(b *movegen.Board, fen string) ([]Mismatch, error)

var checkers = []struct {
	source Source
	check  checker
}{
	{Dragontooth, checkDragontooth},
	{Goose, checkGoose},
	{NotNil, checkNotNil},
}

// Check runs every reference against b.
func Check(b *movegen.Board) (Report, error) {
	fen := b.FEN()
	r := Report{FEN: fen}
	for _, c := range checkers {
		ms, err := c.check(b, fen)
		if err != nil {
			return r, fmt.Errorf("%s: %w", c.source, err)
		}
		r.Mismatches = append(r.Mismatches, ms...)
	}
	return r, nil
}

// CheckFEN parses fen and runs Check.
func CheckFEN(fen string) (Report, error) {
	b, err := movegen.ParseFEN(fen)
	if err != nil {
		return Report{FEN: fen}, err
	}
	return Check(b)
}

// toA1 converts a movegen mask to a1-based numbering, fromA1 converts back.
func toA1(bb movegen.Bitboard) uint64   { return bits.ReverseBytes64(uint64(bb)) }
func fromA1(bb uint64) movegen.Bitboard { return movegen.Bitboard(bits.ReverseBytes64(bb)) }

func squareToA1(sq movegen.Square) uint8 { return uint8(sq) ^ 56 }

func squareFromA1(sq int) movegen.Square { return movegen.Square(sq ^ 56) }

// comparePlacement checks one reference's per-kind masks against b.
func comparePlacement(src Source, b *movegen.Board, ref func(movegen.Color, movegen.PieceKind) movegen.Bitboard) []Mismatch {
	var out []Mismatch
	for _, c := range []movegen.Color{movegen.White, movegen.Black} {
		for _, kind := range movegen.PieceKinds {
			want, got := ref(c, kind), b.PiecesOf(kind, c)
			if want != got {
				out = append(out, Mismatch{Source: src, Color: c, Kind: kind, Square: movegen.NoSquare, Want: want, Got: got})
			}
		}
	}
	return out
}

// compareTargets checks per-origin destination sets for one kind.
func compareTargets(src Source, side movegen.Color, kind movegen.PieceKind, want, got map[movegen.Square]movegen.Bitboard) []Mismatch {
	var out []Mismatch
	seen := make(map[movegen.Square]bool, len(want))
	for sq, w := range want {
		seen[sq] = true
		if g := got[sq]; g != w {
			out = append(out, Mismatch{Source: src, Color: side, Kind: kind, Square: sq, Want: w, Got: g})
		}
	}
	for sq, g := range got {
		if !seen[sq] && g != 0 {
			out = append(out, Mismatch{Source: src, Color: side, Kind: kind, Square: sq, Got: g})
		}
	}
	return out
}

// targetsByOrigin groups generated moves by origin square.
func targetsByOrigin(moves []movegen.Move) map[movegen.Square]movegen.Bitboard {
	out := make(map[movegen.Square]movegen.Bitboard)
	for _, m := range moves {
		out[m.From] = out[m.From].Set(m.To)
	}
	return out
}
