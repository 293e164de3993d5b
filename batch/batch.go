// Package batch generates moves for many positions concurrently.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"chess-movegen/movegen"
	"chess-movegen/oracle"
)

// Result is the outcome for one input position. Duplicates share Moves and
// Report with the first occurrence; treat both as read-only.
type Result struct {
	Index     int
	FEN       string
	Hash      uint64
	Side      movegen.Color
	Moves     map[movegen.PieceKind][]movegen.Move
	Report    *oracle.Report
	Duplicate bool
	Err       error
}

// Count returns the number of generated moves over all kinds.
func (r Result) Count() int {
	n := 0
	for _, ms := range r.Moves {
		n += len(ms)
	}
	return n
}

type config struct {
	workers int
	kinds   []movegen.PieceKind
	side    *movegen.Color
	verify  bool
	logger  log.Interface
}

// Option configures Run.
type Option func(*config)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithKinds restricts generation to the given kinds.
func WithKinds(kinds ...movegen.PieceKind) Option {
	return func(c *config) {
		ks := slices.Clone(kinds)
		slices.Sort(ks)
		c.kinds = slices.Compact(ks)
	}
}

// WithSide generates for side instead of each position's active color.
func WithSide(side movegen.Color) Option { return func(c *config) { c.side = &side } }

// WithVerify attaches an oracle report to every result.
func WithVerify(v bool) Option { return func(c *config) { c.verify = v } }

// WithLogger replaces the default apex logger.
func WithLogger(l log.Interface) Option { return func(c *config) { c.logger = l } }

// cacheEntry is filled once by the first worker to see a position; done is
// closed when it is ready.
type cacheEntry struct {
	done   chan struct{}
	moves  map[movegen.PieceKind][]movegen.Move
	report *oracle.Report
	err    error
}

type runner struct {
	cfg   config
	mu    sync.Mutex
	cache map[uint64]*cacheEntry
}

// Run generates moves for every FEN in positions and returns the results in
// input order. A position that fails to parse or verify carries the error in
// its Result; Run itself only fails when ctx is cancelled, in which case the
// results gathered so far are returned.
func Run(ctx context.Context, positions []string, opts ...Option) ([]Result, error) {
	cfg := config{
		workers: runtime.NumCPU(),
		kinds:   movegen.PieceKinds[:],
		logger:  log.Log,
	}
	for _, o := range opts {
		o(&cfg)
	}
	r := &runner{cfg: cfg, cache: make(map[uint64]*cacheEntry)}

	p := newPool(cfg.workers, 2*cfg.workers, r.process)
	p.start()
	cfg.logger.WithFields(log.Fields{"positions": len(positions), "workers": p.numWorkers}).Debug("batch started")

	go func() {
		defer p.close()
		for i, fen := range positions {
			select {
			case <-ctx.Done():
				p.stop()
				return
			default:
			}
			p.submit(workItem{index: i, fen: fen})
		}
	}()

	results := make([]Result, len(positions))
	filled := make([]bool, len(positions))
	for res := range p.results {
		results[res.Index] = res
		filled[res.Index] = true
	}
	if err := ctx.Err(); err != nil {
		for i, ok := range filled {
			if !ok {
				results[i] = Result{Index: i, FEN: positions[i], Err: err}
			}
		}
		return results, err
	}
	return results, nil
}

func (r *runner) process(item workItem) Result {
	res := Result{Index: item.index, FEN: item.fen}
	b, err := movegen.ParseFEN(item.fen)
	if err != nil {
		r.cfg.logger.WithField("index", item.index).WithError(err).Warn("skipping position")
		res.Err = err
		return res
	}
	res.Hash = b.Hash()
	res.Side = b.SideToMove()
	if r.cfg.side != nil {
		res.Side = *r.cfg.side
	}
	// The hash covers the active color, not an overridden side.
	key := res.Hash ^ uint64(res.Side)

	r.mu.Lock()
	e, seen := r.cache[key]
	if !seen {
		e = &cacheEntry{done: make(chan struct{})}
		r.cache[key] = e
	}
	r.mu.Unlock()

	if seen {
		<-e.done
		r.cfg.logger.WithField("index", item.index).Debug("duplicate position")
		res.Duplicate = true
	} else {
		r.fill(e, b, res.Side)
	}
	res.Moves, res.Report, res.Err = e.moves, e.report, e.err
	return res
}

func (r *runner) fill(e *cacheEntry, b *movegen.Board, side movegen.Color) {
	defer close(e.done)
	e.moves = make(map[movegen.PieceKind][]movegen.Move, len(r.cfg.kinds))
	for _, kind := range r.cfg.kinds {
		e.moves[kind] = movegen.Generate(b, side, kind)
	}
	if !r.cfg.verify {
		return
	}
	rep, err := oracle.Check(b)
	if err != nil {
		e.err = err
		return
	}
	e.report = &rep
	e.err = rep.Err()
}
