package docforge

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent generations; beyond this, batch
	// throughput is limited by zip compression, not worker count.
	MaxPoolSize = 16
)

// GeneratorPool bounds the number of concurrent generations during
// batch processing. Generators are cheap and stateless, so the pool
// exists for admission control rather than resource reuse; it keeps
// the acquire/release shape callers expect from worker pools.
// Generators are created lazily on first acquire.
type GeneratorPool struct {
	size       int
	opts       []Option
	sem        chan *Generator
	mu         sync.Mutex
	created    int
	generators []*Generator
}

// NewGeneratorPool creates a pool with capacity for n Generator
// instances, each configured with opts.
func NewGeneratorPool(n int, opts ...Option) *GeneratorPool {
	if n < 1 {
		n = 1
	}

	return &GeneratorPool{
		size:       n,
		opts:       opts,
		sem:        make(chan *Generator, n),
		generators: make([]*Generator, 0, n),
	}
}

// Acquire gets a generator from the pool, creating one if the pool is
// below capacity. Blocks if all generators are in use.
func (p *GeneratorPool) Acquire() *Generator {
	// Try to get an existing generator (non-blocking)
	select {
	case g := <-p.sem:
		return g
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the new generator outside the lock
		g := NewGenerator(p.opts...)

		p.mu.Lock()
		p.generators = append(p.generators, g)
		p.mu.Unlock()

		return g
	}
	p.mu.Unlock()

	// All generators created, wait for one to be released
	return <-p.sem
}

// Release returns a generator to the pool.
func (p *GeneratorPool) Release(g *Generator) {
	p.sem <- g
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size for batch conversion.
// An explicit worker count takes priority over the GOMAXPROCS-based
// default (adjusted by automaxprocs in container environments).
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
