// Package pool implements a size-classed pool of byte slabs for
// transient contiguous buffers.
package pool

import (
	"math/bits"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	minClassBits = 6  // 64 B
	maxClassBits = 20 // 1 MB
	classes      = maxClassBits - minClassBits + 1
)

// Pool hands out byte slabs in power-of-two size classes backed by
// sync.Pool. Requests above the largest class are allocated directly and
// not pooled.
type Pool struct {
	lg      *zap.Logger
	classes [classes]sync.Pool

	gets   atomic.Int64
	puts   atomic.Int64
	misses atomic.Int64
}

// Options for Pool.
type Options struct {
	Logger *zap.Logger
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// New returns initialized *Pool.
func New(opt Options) *Pool {
	opt.setDefaults()
	p := &Pool{lg: opt.Logger}
	for i := range p.classes {
		shift := minClassBits + i
		p.classes[i].New = func() any {
			b := make([]byte, 1<<shift)
			return &b
		}
	}
	return p
}

// classFor returns index of the smallest class that fits n, or -1 when n
// is above the largest class.
func classFor(n int) int {
	if n <= 1<<minClassBits {
		return 0
	}
	c := bits.Len(uint(n-1)) - minClassBits
	if c >= classes {
		return -1
	}
	return c
}

// Get returns a slab of length n.
//
// The slab contents are unspecified; callers must not assume zeroing.
func (p *Pool) Get(n int) []byte {
	p.gets.Inc()

	c := classFor(n)
	if c < 0 {
		p.misses.Inc()
		if ce := p.lg.Check(zap.DebugLevel, "Get above largest class"); ce != nil {
			ce.Write(zap.Int("len", n))
		}
		return make([]byte, n)
	}
	b := *p.classes[c].Get().(*[]byte)
	return b[:n]
}

// Put returns a slab obtained from Get to the pool.
//
// The slab must not be used after Put.
func (p *Pool) Put(b []byte) {
	c := classFor(cap(b))
	if c < 0 || cap(b) != 1<<(minClassBits+c) {
		// Not one of ours (or an oversized direct allocation).
		return
	}
	p.puts.Inc()
	b = b[:cap(b)]
	p.classes[c].Put(&b)
}

// Stats is a point-in-time pool counters snapshot.
type Stats struct {
	Gets   int64
	Puts   int64
	Misses int64
}

// Stats returns current counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Gets:   p.gets.Load(),
		Puts:   p.puts.Load(),
		Misses: p.misses.Load(),
	}
}
