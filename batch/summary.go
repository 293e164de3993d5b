package batch

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/movegen"
)

// Summary aggregates a batch.
type Summary struct {
	Positions  int
	Unique     int
	Duplicates int
	Failed     int
	Mismatched int
	ByKind     map[movegen.PieceKind]int
}

// Kinds returns the kinds present in ByKind in index order.
func (s Summary) Kinds() []movegen.PieceKind {
	kinds := maps.Keys(s.ByKind)
	slices.Sort(kinds)
	return kinds
}

// Summarize counts moves per kind over generated positions, duplicates
// included. A position whose verification failed counts as mismatched.
func Summarize(results []Result) Summary {
	s := Summary{Positions: len(results), ByKind: make(map[movegen.PieceKind]int)}
	for _, r := range results {
		if r.Moves == nil {
			s.Failed++
			continue
		}
		if r.Err != nil {
			s.Mismatched++
		}
		if r.Duplicate {
			s.Duplicates++
		} else {
			s.Unique++
		}
		for kind, ms := range r.Moves {
			s.ByKind[kind] += len(ms)
		}
	}
	return s
}
