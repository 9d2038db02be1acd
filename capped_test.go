package contig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapped(t *testing.T) {
	t.Run("PushToCapacity", func(t *testing.T) {
		c := NewCapped[int](3)
		for i := 0; i < 3; i++ {
			require.NoError(t, c.Push(i))
		}
		require.True(t, c.Full())
		require.Equal(t, 0, c.Remaining())
		require.Equal(t, 3, c.Cap())
	})
	t.Run("ErrFull", func(t *testing.T) {
		c := NewCapped[int](1)
		require.NoError(t, c.Push(1))
		err := c.Push(2)
		require.ErrorIs(t, err, ErrFull)

		// Unchanged on failure.
		require.Equal(t, 1, c.Len())
		require.Equal(t, 1, c.At(0))
	})
	t.Run("TryPush", func(t *testing.T) {
		c := NewCapped[string](2)
		require.True(t, c.TryPush("a"))
		require.True(t, c.TryPush("b"))
		require.False(t, c.TryPush("c"))
		require.Equal(t, []string{"a", "b"}, c.Slice())
	})
	t.Run("ZeroCapacity", func(t *testing.T) {
		c := NewCapped[int](0)
		require.True(t, c.Full())
		require.ErrorIs(t, c.Push(1), ErrFull)
	})
	t.Run("PopReopens", func(t *testing.T) {
		c := NewCapped[int](1)
		require.NoError(t, c.Push(1))
		e, ok := c.Pop()
		require.True(t, ok)
		require.Equal(t, 1, e)
		require.False(t, c.Full())
		require.NoError(t, c.Push(2))
	})
	t.Run("StableBacking", func(t *testing.T) {
		c := NewCapped[int](16)
		require.NoError(t, c.Push(1))
		addr := &c.Slice()[0]
		for i := 0; i < 15; i++ {
			require.NoError(t, c.Push(i))
		}
		require.Same(t, addr, &c.Slice()[0])
	})
	t.Run("Truncate", func(t *testing.T) {
		c := NewCapped[int](4)
		for i := 0; i < 4; i++ {
			require.NoError(t, c.Push(i))
		}
		c.Truncate(2)
		require.Equal(t, []int{0, 1}, c.Slice())
		require.Equal(t, 4, c.Cap())
		c.Clear()
		require.Equal(t, 0, c.Len())
		require.Equal(t, 4, c.Cap())
	})
}
