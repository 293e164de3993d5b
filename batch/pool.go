package batch

import (
	"sync"
	"sync/atomic"
)

// workItem is one position waiting to be generated.
type workItem struct {
	index int
	fen   string
}

type processFunc func(item workItem) Result

// pool runs processFunc on a fixed number of goroutines. Items submitted after
// Stop are drained without processing.
type pool struct {
	numWorkers int
	work       chan workItem
	results    chan Result
	process    processFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

func newPool(numWorkers, bufferSize int, process processFunc) *pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &pool{
		numWorkers: numWorkers,
		work:       make(chan workItem, bufferSize),
		results:    make(chan Result, bufferSize),
		process:    process,
	}
}

func (p *pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// submit blocks while the work buffer is full.
func (p *pool) submit(item workItem) { p.work <- item }

func (p *pool) stop() { p.stopped.Store(true) }

// close waits for the workers and then closes the result channel.
func (p *pool) close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}
