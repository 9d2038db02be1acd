package zbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Buffer is an append-only byte buffer.
type Buffer struct {
	Buf []byte
}

// Reader returns new *Reader from *Buffer.
func (b *Buffer) Reader() *Reader {
	return NewReader(bytes.NewReader(b.Buf))
}

// Ensure Buf length.
func (b *Buffer) Ensure(n int) {
	b.Buf = append(b.Buf[:0], make([]byte, n)...)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Len returns count of written bytes.
func (b *Buffer) Len() int { return len(b.Buf) }

// Split detaches all written bytes as an immutable view without copying.
//
// The buffer starts over with fresh storage: subsequent writes cannot
// touch the detached region.
func (b *Buffer) Split() Bytes {
	v := Bytes{b: b.Buf[:len(b.Buf):len(b.Buf)]}
	b.Buf = nil
	return v
}

// SplitAt detaches the first n written bytes as an immutable view without
// copying. The buffer keeps the remaining tail.
//
// The view is capped at n, so the buffer's later growth never aliases it.
func (b *Buffer) SplitAt(n int) Bytes {
	v := Bytes{b: b.Buf[:n:n]}
	b.Buf = b.Buf[n:]
	return v
}

// SplitMut detaches the first n written bytes as an independent writable
// half without copying. The buffer keeps the remaining tail.
//
// The two regions are disjoint: mutating one from a different goroutine
// than the other is safe.
func (b *Buffer) SplitMut(n int) Mut {
	m := Mut{b: b.Buf[:n:n]}
	b.Buf = b.Buf[n:]
	return m
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Buf = append(b.Buf, p...)
	return len(p), nil
}

// Put writes v as raw bytes to buffer.
func (b *Buffer) Put(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutByte writes single byte to buffer.
func (b *Buffer) PutByte(x byte) {
	b.Buf = append(b.Buf, x)
}

// PutUVarInt encodes x as uvarint.
func (b *Buffer) PutUVarInt(x uint64) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, x)
	b.Buf = append(b.Buf, buf[:n]...)
}

// PutInt encodes integer as uvarint.
func (b *Buffer) PutInt(x int) {
	b.PutUVarInt(uint64(x))
}

// PutLen encodes length to buffer as uvarint.
func (b *Buffer) PutLen(x int) {
	b.PutUVarInt(uint64(x))
}

// PutString encodes length-prefixed string value to buffer.
func (b *Buffer) PutString(s string) {
	b.PutLen(len(s))
	b.Buf = append(b.Buf, s...)
}

func (b *Buffer) PutUInt8(x uint8) {
	b.Buf = append(b.Buf, x)
}

func (b *Buffer) PutUInt32(x uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}

func (b *Buffer) PutUInt64(x uint64) {
	buf := make([]byte, 64/8)
	bin.PutUint64(buf, x)
	b.Buf = append(b.Buf, buf...)
}

func (b *Buffer) PutInt32(x int32) {
	b.PutUInt32(uint32(x))
}

func (b *Buffer) PutInt64(x int64) {
	b.PutUInt64(uint64(x))
}

func (b *Buffer) PutBool(v bool) {
	if v {
		b.PutUInt8(boolTrue)
	} else {
		b.PutUInt8(boolFalse)
	}
}
