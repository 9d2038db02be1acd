package zbytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	t.Run("From", func(t *testing.T) {
		v := From([]byte("hello"))
		require.Equal(t, 5, v.Len())
		require.Equal(t, byte('h'), v.At(0))
		require.Equal(t, "hello", v.String())
	})
	t.Run("Slice", func(t *testing.T) {
		v := FromString("hello, world")
		sub := v.Slice(7, 12)
		require.Equal(t, "world", sub.String())
	})
	t.Run("Split", func(t *testing.T) {
		left, right := FromString("headtail").Split(4)
		require.Equal(t, "head", left.String())
		require.Equal(t, "tail", right.String())

		t.Run("AtZero", func(t *testing.T) {
			l, r := FromString("x").Split(0)
			require.Equal(t, 0, l.Len())
			require.Equal(t, "x", r.String())
		})
		t.Run("AtLen", func(t *testing.T) {
			l, r := FromString("x").Split(1)
			require.Equal(t, "x", l.String())
			require.Equal(t, 0, r.Len())
		})
	})
	t.Run("Copy", func(t *testing.T) {
		backing := []byte("data")
		v := From(backing)
		c := v.Copy()
		c[0] = 'D'
		require.Equal(t, "data", v.String())
	})
	t.Run("Equal", func(t *testing.T) {
		require.True(t, FromString("a").Equal(FromString("a")))
		require.False(t, FromString("a").Equal(FromString("b")))
	})
	t.Run("Reader", func(t *testing.T) {
		var b Buffer
		b.PutString("payload")

		s, err := b.Split().Reader().Str()
		require.NoError(t, err)
		require.Equal(t, "payload", s)
	})
}

func TestBuffer_Split(t *testing.T) {
	t.Run("DetachesAll", func(t *testing.T) {
		var b Buffer
		b.Put([]byte("frame"))
		v := b.Split()
		require.Equal(t, "frame", v.String())
		require.Equal(t, 0, b.Len())

		// Later writes cannot touch the detached region.
		b.Put([]byte("next"))
		require.Equal(t, "frame", v.String())
	})
	t.Run("SplitAt", func(t *testing.T) {
		var b Buffer
		b.Put([]byte("headtail"))
		v := b.SplitAt(4)
		require.Equal(t, "head", v.String())
		require.Equal(t, 4, b.Len())
		require.Equal(t, []byte("tail"), b.Buf)

		// Appends to the retained tail stay out of the view.
		b.Put([]byte("more"))
		require.Equal(t, "head", v.String())
	})
	t.Run("Empty", func(t *testing.T) {
		var b Buffer
		v := b.Split()
		require.Equal(t, 0, v.Len())
	})
}
