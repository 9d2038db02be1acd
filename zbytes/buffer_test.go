package zbytes

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/contig/internal/gold"
)

func TestMain(m *testing.M) {
	// Explicitly registering flags for golden files.
	gold.Init()

	os.Exit(m.Run())
}

func TestBuffer_Encode(t *testing.T) {
	var b Buffer
	b.PutString("Hello, world!")
	b.PutUVarInt(100500)
	b.PutUInt64(1)
	b.PutBool(true)

	t.Run("Golden", func(t *testing.T) {
		gold.Bytes(t, b.Buf, "buffer")
	})
	t.Run("RoundTrip", func(t *testing.T) {
		r := b.Reader()

		s, err := r.Str()
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", s)

		n, err := r.UVarInt()
		require.NoError(t, err)
		require.Equal(t, uint64(100500), n)

		v, err := r.UInt64()
		require.NoError(t, err)
		require.Equal(t, uint64(1), v)

		ok, err := r.Bool()
		require.NoError(t, err)
		require.True(t, ok)
	})
}

func TestBuffer_Read(t *testing.T) {
	var b Buffer
	b.Put([]byte("abc"))

	out := make([]byte, 2)
	n, err := b.Read(out)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("ab"), out)

	n, err = b.Read(out)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte('c'), out[0])

	_, err = b.Read(out)
	require.ErrorIs(t, err, io.EOF)
}

func TestBuffer_Write(t *testing.T) {
	var b Buffer
	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 5, b.Len())
}

func TestBuffer_Reset(t *testing.T) {
	var b Buffer
	b.PutString("data")
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.NotZero(t, cap(b.Buf))
}

func TestReader_Errors(t *testing.T) {
	t.Run("UnexpectedEOF", func(t *testing.T) {
		var b Buffer
		b.PutLen(100) // length prefix with truncated payload
		b.Put([]byte("partial"))
		_, err := b.Reader().Str()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
	t.Run("SuspiciousLength", func(t *testing.T) {
		var b Buffer
		b.PutUVarInt(maxStrLen + 1)
		_, err := b.Reader().StrLen()
		require.Error(t, err)
	})
	t.Run("InvalidUTF8", func(t *testing.T) {
		var b Buffer
		b.PutLen(2)
		b.Put([]byte{0xff, 0xfe})
		_, err := b.Reader().Str()
		require.Error(t, err)
	})
	t.Run("BadBool", func(t *testing.T) {
		var b Buffer
		b.PutUInt8(2)
		_, err := b.Reader().Bool()
		require.Error(t, err)
	})
}

func BenchmarkBuffer_PutUVarInt(b *testing.B) {
	var buf Buffer

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		buf.PutUVarInt(100500)
	}
}
