package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"
)

func TestPool_Get(t *testing.T) {
	p := New(Options{Logger: zaptest.NewLogger(t)})

	t.Run("RoundsUpToClass", func(t *testing.T) {
		b := p.Get(100)
		require.Len(t, b, 100)
		require.Equal(t, 128, cap(b))
		p.Put(b)
	})
	t.Run("MinClass", func(t *testing.T) {
		b := p.Get(1)
		require.Len(t, b, 1)
		require.Equal(t, 64, cap(b))
		p.Put(b)
	})
	t.Run("AboveLargestClass", func(t *testing.T) {
		b := p.Get(2 << 20)
		require.Len(t, b, 2<<20)

		stats := p.Stats()
		require.NotZero(t, stats.Misses)

		// Oversized slabs are not pooled.
		puts := p.Stats().Puts
		p.Put(b)
		require.Equal(t, puts, p.Stats().Puts)
	})
	t.Run("ForeignSlab", func(t *testing.T) {
		puts := p.Stats().Puts
		p.Put(make([]byte, 100)) // cap not a class size
		require.Equal(t, puts, p.Stats().Puts)
	})
}

func TestPool_Reuse(t *testing.T) {
	p := New(Options{})

	b := p.Get(512)
	b[0] = 42
	p.Put(b)

	got := p.Get(512)
	require.Equal(t, 512, cap(got))
	// Contents are unspecified after reuse; only the size matters.
	p.Put(got)

	stats := p.Stats()
	require.Equal(t, int64(2), stats.Gets)
	require.Equal(t, int64(2), stats.Puts)
}

func TestPool_Concurrent(t *testing.T) {
	p := New(Options{})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				b := p.Get(1024)
				b[0] = byte(j)
				p.Put(b)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int64(8000), p.Stats().Gets)
}

func TestClassFor(t *testing.T) {
	for _, tt := range []struct {
		n     int
		class int
	}{
		{1, 0},
		{64, 0},
		{65, 1},
		{128, 1},
		{1 << 20, 14},
		{1<<20 + 1, -1},
	} {
		require.Equal(t, tt.class, classFor(tt.n), "n=%d", tt.n)
	}
}

func BenchmarkPool_GetPut(b *testing.B) {
	p := New(Options{})

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Get(4096)
			p.Put(buf)
		}
	})
}
